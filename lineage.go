package main

import "strconv"

// diagnostic stages
const (
	StageNGSParent  = "ngs_parent"
	StageTestParent = "test_parent"
	StageBiolParent = "biol_parent"
	StageTissue     = "tissue"
	StageEntity     = "entity"
	StageFastq      = "fastq"
	StageOrganize   = "organize"
)

// diagnostic steps of CreateVCTable
const (
	StepMerge        = "merge"
	StepEmptyColumns = "empty_columns"
	StepTissue       = "tissue"
	StepEntity       = "entity"
	StepTumor        = "tumor"
	StepDNA          = "dna"
)

// VCTable holds the DNA sequencing runs ready for variant calling.
type VCTable struct {
	Table   *Table
	Records []*VCRecord
}

// Paths returns the VC path of every record, in table order.
func (vc *VCTable) Paths() []string {
	var paths = make([]string, len(vc.Records))
	for i, record := range vc.Records {
		paths[i] = record.Path
	}
	return paths
}

// CreateVCTable joins the experiment and sample exports of project into one
// row per sequencing run: run -> experiment -> test sample -> biological
// sample -> entity. Rows that cannot be resolved are dropped and reported.
func CreateVCTable(exp, sample *Table, project string) (*VCTable, *Diagnostics) {
	var diag = &Diagnostics{}
	var matcher = NewCodeMatcher(project)

	sample = sample.Equal("Project", project)

	var ngs = sampleSubset(sample, NGSSampleType, NGSPrefix, matcher, diag, StageNGSParent)
	var test = sampleSubset(sample, TestSampleType, TestPrefix, matcher, diag, StageTestParent)
	var biol = sampleSubset(sample, BiolSampleType, BiolPrefix, matcher, diag, StageBiolParent)

	exp = exp.Equal("Experiment Type", MeasurementType).Prefix(ExpPrefix)

	var data = ngs.
		LeftJoin(exp, NGSPrefix+"Experiment", ExpPrefix+"Code").
		LeftJoin(test, NGSPrefix+"Parents_code", TestPrefix+"Code").
		LeftJoin(biol, TestPrefix+"Parents_code", BiolPrefix+"Code")

	// a biological sample may hang below another biological sample: one more hop
	data = data.LeftJoin(entityEdges(biol), BiolPrefix+"Parents_code", "BS_code")
	data.AddColumn("Entity", func(row map[string]string) string {
		if row["Entity"] == "" {
			return row[BiolPrefix+"Parents_code"]
		}
		return row["Entity"]
	})
	diag.AddStep(StepMerge, data)

	data = data.DropEmptyColumns()
	diag.AddStep(StepEmptyColumns, data)

	for _, row := range data.Rows {
		if row[BiolPrefix+"Primary tissue/body fluid"] == "" {
			diag.AddDrop(StageTissue, row[NGSPrefix+"Code"], brokenLineage(row))
		}
	}
	data = data.DropMissing(BiolPrefix + "Primary tissue/body fluid")
	diag.AddStep(StepTissue, data)

	for _, row := range data.Rows {
		if row["Entity"] == "" {
			diag.AddDrop(StageEntity, row[NGSPrefix+"Code"], "no entity for "+row[BiolPrefix+"Code"])
		}
	}
	data = data.DropMissing("Entity")
	diag.AddStep(StepEntity, data)

	AnnotateTumor(data)
	data.AddColumn("VC_name", func(row map[string]string) string {
		return row[TestPrefix+"Code"]
	})
	diag.AddStep(StepTumor, data)

	data = SelectDNA(data)
	data.AddColumn("VCpath", func(row map[string]string) string {
		return VCPath(row["Entity"], row[BiolPrefix+"Code"], row["Status"], row[TestPrefix+"Code"])
	})
	diag.AddStep(StepDNA, data)

	var vc = &VCTable{Table: data}
	for _, row := range data.Rows {
		vc.Records = append(vc.Records, NewVCRecord(row))
	}
	return vc, diag
}

func sampleSubset(sample *Table, sampleType, prefix string, matcher *CodeMatcher, diag *Diagnostics, stage string) *Table {
	var subset = sample.Equal("Sample Type", sampleType).Prefix(prefix)
	subset.AddColumn(prefix+"Parents_code", func(row map[string]string) string {
		return matcher.Match(row[prefix+"Parents"])
	})
	for _, row := range subset.Rows {
		if row[prefix+"Parents_code"] == "" {
			diag.AddDrop(stage, row[prefix+"Code"], "no parent code in "+strconv.Quote(row[prefix+"Parents"]))
		}
	}
	return subset
}

// entityEdges maps every biological sample to its parent code.
func entityEdges(biol *Table) *Table {
	var rows = make([]map[string]string, len(biol.Rows))
	for i, row := range biol.Rows {
		rows[i] = map[string]string{
			"BS_code": row[BiolPrefix+"Code"],
			"Entity":  row[BiolPrefix+"Parents_code"],
		}
	}
	return NewTable([]string{"BS_code", "Entity"}, rows)
}

func brokenLineage(row map[string]string) string {
	switch {
	case row[TestPrefix+"Code"] == "":
		return "no test sample for parent " + strconv.Quote(row[NGSPrefix+"Parents_code"])
	case row[BiolPrefix+"Code"] == "":
		return "no biological sample for parent " + strconv.Quote(row[TestPrefix+"Parents_code"])
	default:
		return "no tissue annotation on " + row[BiolPrefix+"Code"]
	}
}
