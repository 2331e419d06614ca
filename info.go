package main

import "strings"

func NewVCRecord(item map[string]string) *VCRecord {
	return &VCRecord{
		NGSCode:       item[NGSPrefix+"Code"],
		NGSParent:     item[NGSPrefix+"Parents_code"],
		SecondaryName: item[NGSPrefix+"Secondary name"],
		TestCode:      item[TestPrefix+"Code"],
		TestParent:    item[TestPrefix+"Parents_code"],
		TestType:      item[TestPrefix+"Sample type"],
		BiolCode:      item[BiolPrefix+"Code"],
		BiolParent:    item[BiolPrefix+"Parents_code"],
		Project:       item[BiolPrefix+"Project"],
		Tissue:        item[BiolPrefix+"Primary tissue/body fluid"],
		Entity:        item["Entity"],
		IsTumor:       item["IsTumor"] == "1",
		Status:        item["Status"],
		VCName:        item["VC_name"],
		Path:          item["VCpath"],
	}
}

// IsTumorTissue only knows the literal "tumor", in any case.
// "Tumour" or "carcinoma" are Normal.
func IsTumorTissue(tissue string) bool {
	return strings.Contains(strings.ToLower(tissue), "tumor")
}

// AnnotateTumor adds the IsTumor (1/0) and Status (Tumor/Normal) columns.
func AnnotateTumor(t *Table) {
	t.AddColumn("IsTumor", func(row map[string]string) string {
		return boolFlag(IsTumorTissue(row[BiolPrefix+"Primary tissue/body fluid"]))
	})
	t.AddColumn("Status", func(row map[string]string) string {
		if row["IsTumor"] == "1" {
			return "Tumor"
		}
		return "Normal"
	})
}

// IsDNA accepts both the bare vocabulary code and the openBIS label form "DNA [DNA]".
func IsDNA(sampleType string) bool {
	return sampleType == "DNA" || strings.HasPrefix(sampleType, "DNA [")
}

func SelectDNA(t *Table) *Table {
	return t.Filter(func(row map[string]string) bool {
		return IsDNA(row[TestPrefix+"Sample type"])
	})
}

// VCPath is the directory of one test sample: Entity/Biol/Status/Test/
func VCPath(entity, biol, status, test string) string {
	return strings.Join([]string{entity, biol, status, test}, "/") + "/"
}
