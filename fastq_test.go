package main

import (
	"errors"
	"reflect"
	"testing"
)

func defaultPatterns(t *testing.T) *Patterns {
	t.Helper()
	p, err := NewPatterns(DefaultR1Pattern, DefaultR2Pattern, DefaultLanePattern)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestPairFastq(t *testing.T) {
	var files = []string{
		"b_R2_L001.fastq.gz",
		"a_R1_L001.fastq.gz",
		"notes.fastq.gz",
		"b_R1_L001.fastq.gz",
		"a_R2_L001.fastq.gz",
	}
	pairs, err := PairFastq(files, defaultPatterns(t))
	if err != nil {
		t.Fatal(err)
	}
	var got [][3]string
	for _, pair := range pairs {
		got = append(got, [3]string{pair.R1, pair.R2, pair.Lane})
	}
	var want = [][3]string{
		{"a_R1_L001.fastq.gz", "a_R2_L001.fastq.gz", "L001"},
		{"b_R1_L001.fastq.gz", "b_R2_L001.fastq.gz", "L001"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pairs = %v, want %v", got, want)
	}
}

func TestPairFastqLanes(t *testing.T) {
	var files = []string{
		"/fq/T1_S1_L002_R2_001.fastq.gz",
		"/fq/T1_S1_L001_R1_001.fastq.gz",
		"/fq/T1_S1_L002_R1_001.fastq.gz",
		"/fq/T1_S1_L001_R2_001.fastq.gz",
	}
	pairs, err := PairFastq(files, defaultPatterns(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs", len(pairs))
	}
	if pairs[0].Lane != "L001" || pairs[0].R2 != "/fq/T1_S1_L001_R2_001.fastq.gz" {
		t.Errorf("pair 0 = %+v", pairs[0])
	}
	if pairs[1].Lane != "L002" || pairs[1].R2 != "/fq/T1_S1_L002_R2_001.fastq.gz" {
		t.Errorf("pair 1 = %+v", pairs[1])
	}
}

func TestPairFastqErrors(t *testing.T) {
	var tests = []struct {
		name  string
		files []string
		err   error
	}{
		{
			"count",
			[]string{"a_R1_L001.fastq.gz", "b_R1_L001.fastq.gz", "a_R2_L001.fastq.gz", "b_R2_L001.fastq.gz", "c_R2_L001.fastq.gz"},
			ErrPairCount,
		},
		{
			"unpaired",
			[]string{"a_R1_L001.fastq.gz", "c_R2_L001.fastq.gz"},
			ErrUnpaired,
		},
		{
			"lane",
			[]string{"a_R1_.fastq.gz", "a_R2_.fastq.gz"},
			ErrNoLane,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := PairFastq(tt.files, defaultPatterns(t))
			if !errors.Is(err, tt.err) {
				t.Errorf("err = %v, want %v", err, tt.err)
			}
			if pairs != nil {
				t.Errorf("partial pairs returned: %v", pairs)
			}
		})
	}
}

func TestPairFastqDuplicateKey(t *testing.T) {
	p, err := NewPatterns(`_R?1_`, `_R?2_`, DefaultLanePattern)
	if err != nil {
		t.Fatal(err)
	}
	var files = []string{
		"a_R1_L001.fastq.gz",
		"a_1_L001.fastq.gz",
		"a_R2_L001.fastq.gz",
		"a_2_L001.fastq.gz",
	}
	if _, err := PairFastq(files, p); !errors.Is(err, ErrDuplicatePair) {
		t.Errorf("err = %v, want %v", err, ErrDuplicatePair)
	}
}

func TestNewPatternsInvalid(t *testing.T) {
	if _, err := NewPatterns("(", DefaultR2Pattern, DefaultLanePattern); err == nil {
		t.Error("invalid R1 pattern accepted")
	}
}

func TestResolveFastq(t *testing.T) {
	var tumor = &VCRecord{
		NGSCode:  run1,
		TestCode: test1,
		Entity:   entity1,
		IsTumor:  true,
		Path:     VCPath(entity1, biol1, "Tumor", test1),
	}
	// second run of the same test sample
	var tumorRerun = *tumor
	tumorRerun.NGSCode = "QABCD013B3"
	var normal = &VCRecord{
		NGSCode:  run2,
		TestCode: test2,
		Entity:   entity1,
		Path:     VCPath(entity1, biol2, "Normal", test2),
	}
	var root = "/data"
	var pairs = []*FastqPair{
		{Lane: "L001", R1: "/data/" + tumor.Path + test1 + "_R1_L001.fastq.gz", R2: "/data/" + tumor.Path + test1 + "_R2_L001.fastq.gz"},
		{Lane: "L002", R1: "/data/" + tumor.Path + test1 + "_R1_L002.fastq.gz", R2: "/data/" + tumor.Path + test1 + "_R2_L002.fastq.gz"},
		{Lane: "L001", R1: "/data/" + normal.Path + test2 + "_R1_L001.fastq.gz", R2: "/data/" + normal.Path + test2 + "_R2_L001.fastq.gz"},
		{Lane: "L001", R1: "/data/old/" + normal.Path + "x_R1_L001.fastq.gz", R2: "/data/old/" + normal.Path + "x_R2_L001.fastq.gz"},
		{Lane: "L001", R1: "/data/y_R1_L001.fastq.gz", R2: "/data/y_R2_L001.fastq.gz"},
	}

	rows, diag := ResolveFastq([]*VCRecord{tumor, &tumorRerun, normal}, root, pairs)

	var want = []*ManifestRow{
		{Entity: entity1, Sex: "XY", IsTumor: true, Code: test1, Lane: "L001", R1: pairs[0].R1, R2: pairs[0].R2},
		{Entity: entity1, Sex: "XY", IsTumor: true, Code: test1, Lane: "L002", R1: pairs[1].R1, R2: pairs[1].R2},
		{Entity: entity1, Sex: "XY", IsTumor: false, Code: test2, Lane: "L001", R1: pairs[2].R1, R2: pairs[2].R2},
	}
	if !reflect.DeepEqual(rows, want) {
		for _, row := range rows {
			t.Logf("row %s", row)
		}
		t.Errorf("got %d rows, want %d", len(rows), len(want))
	}
	if got := diag.Dropped(StageFastq); !reflect.DeepEqual(got, []string{pairs[3].R1, pairs[4].R1}) {
		t.Errorf("unassigned = %v", got)
	}
}

func TestResolveFastqOutsideRoot(t *testing.T) {
	var tumor = &VCRecord{
		NGSCode:  run1,
		TestCode: test1,
		Entity:   entity1,
		IsTumor:  true,
		Path:     VCPath(entity1, biol1, "Tumor", test1),
	}
	var pairs = []*FastqPair{
		{Lane: "L001", R1: "/mnt/run42/" + tumor.Path + test1 + "_R1_L001.fastq.gz", R2: "/mnt/run42/" + tumor.Path + test1 + "_R2_L001.fastq.gz"},
		{Lane: "L001", R1: "/mnt/run42/" + tumor.Path + "extra/z_R1_L001.fastq.gz", R2: "/mnt/run42/" + tumor.Path + "extra/z_R2_L001.fastq.gz"},
		// below root, so the exact directory is required
		{Lane: "L001", R1: "/data/old/" + tumor.Path + "x_R1_L001.fastq.gz", R2: "/data/old/" + tumor.Path + "x_R2_L001.fastq.gz"},
	}

	rows, diag := ResolveFastq([]*VCRecord{tumor}, "/data", pairs)

	var want = []*ManifestRow{
		{Entity: entity1, Sex: "XY", IsTumor: true, Code: test1, Lane: "L001", R1: pairs[0].R1, R2: pairs[0].R2},
	}
	if !reflect.DeepEqual(rows, want) {
		for _, row := range rows {
			t.Logf("row %s", row)
		}
		t.Errorf("got %d rows, want %d", len(rows), len(want))
	}
	if got := diag.Dropped(StageFastq); !reflect.DeepEqual(got, []string{pairs[1].R1, pairs[2].R1}) {
		t.Errorf("unassigned = %v", got)
	}
}

func TestRelDir(t *testing.T) {
	var tests = []struct {
		root, file, want string
		below            bool
	}{
		{"/data", "/data/E/B/Tumor/T/a.fastq.gz", "E/B/Tumor/T/", true},
		{"/data/", "/data/E/B/Tumor/T/a.fastq.gz", "E/B/Tumor/T/", true},
		{"/data", "/data/..E/a.fastq.gz", "..E/", true},
		{"/data", "/data/a.fastq.gz", "", true},
		{"/data", "/other/E/a.fastq.gz", "", false},
	}
	for _, tt := range tests {
		got, below := relDir(tt.root, tt.file)
		if got != tt.want || below != tt.below {
			t.Errorf("relDir(%q, %q) = %q, %v, want %q, %v", tt.root, tt.file, got, below, tt.want, tt.below)
		}
	}
}
