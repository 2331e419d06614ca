package main

import (
	"strconv"
	"strings"
)

// openBIS sample and experiment types
const (
	NGSSampleType   = "Q_NGS_SINGLE_SAMPLE_RUN"
	TestSampleType  = "Q_TEST_SAMPLE"
	BiolSampleType  = "Q_BIOLOGICAL_SAMPLE"
	MeasurementType = "Q_NGS_MEASUREMENT"
)

// column prefixes of the joined table
const (
	NGSPrefix  = "NGS_sample_"
	TestPrefix = "Test_sample_"
	BiolPrefix = "Biol_sample_"
	ExpPrefix  = "Exp_"
)

const DefaultSex = "XY"

// VCRecord is one sequencing run of a DNA test sample with its full lineage.
type VCRecord struct {
	NGSCode       string
	NGSParent     string
	SecondaryName string
	TestCode      string
	TestParent    string
	TestType      string
	BiolCode      string
	BiolParent    string
	Project       string
	Tissue        string
	Entity        string
	IsTumor       bool
	Status        string
	VCName        string
	Path          string
}

// FastqPair is one R1/R2 pair of one lane.
type FastqPair struct {
	Key  string
	Lane string
	R1   string
	R2   string
}

// ManifestRow is one line of the Sarek input.
type ManifestRow struct {
	Entity  string
	Sex     string
	IsTumor bool
	Code    string
	Lane    string
	R1      string
	R2      string
}

var ManifestTitle = []string{
	"Entity",
	"Sex",
	"IsTumor",
	"TestSampleCode",
	"Lane",
	"FastaR1Path",
	"FastaR2Path",
}

func (row *ManifestRow) Fields() []string {
	return []string{
		row.Entity,
		row.Sex,
		boolFlag(row.IsTumor),
		row.Code,
		row.Lane,
		row.R1,
		row.R2,
	}
}

func (row *ManifestRow) String() string {
	return strings.Join(row.Fields(), "\t")
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseFlag(s string) (bool, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
