package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

var (
	project = flag.String(
		"project",
		"",
		"QBiC project code for which the variant calling input is generated",
	)
	sampleTable = flag.String(
		"sample",
		"",
		"sample table (.tsv or .xlsx) exported from openBIS",
	)
	experimentTable = flag.String(
		"experiment",
		"",
		"experiment table (.tsv or .xlsx) exported from openBIS",
	)
	fastqDir = flag.String(
		"path",
		".",
		"dir of fastq files",
	)
	contains = flag.String(
		"contains",
		ModeTest,
		"identifier the fastq file names start with:[Test|Secondary_name]\n"+
			"Test: QBiC test sample code\n"+
			"Secondary_name: NGS sample secondary name (usu. Genetics ID)",
	)
	patternR1 = flag.String(
		"pR1",
		DefaultR1Pattern,
		"regexp identifying the 1st fastq of a pair",
	)
	patternR2 = flag.String(
		"pR2",
		DefaultR2Pattern,
		"regexp identifying the 2nd fastq of a pair",
	)
	patternLane = flag.String(
		"pL",
		DefaultLanePattern,
		"regexp identifying the sequencing lane",
	)
	suffix = flag.String(
		"suffix",
		".fastq.gz",
		"suffix of fastq files",
	)
	fastqList = flag.String(
		"list",
		"",
		"fastq list file, one path per line, used instead of searching -path",
	)
	organize = flag.Bool(
		"organize",
		true,
		"move fastq files into Entity/Biol/Status/Test/ dirs below -path",
	)
	outDir = flag.String(
		"outdir",
		".",
		"output dir",
	)
	manifest = flag.String(
		"f",
		"Sarek_input.tsv",
		"Sarek input table, relative to -outdir",
	)
	treeFile = flag.String(
		"tree",
		"tree.txt",
		"sample tree, relative to -outdir",
	)
	xlsxFile = flag.String(
		"xlsx",
		"",
		"optional workbook with VC table and Sarek input, relative to -outdir",
	)
	logFile = flag.String(
		"log",
		"",
		"output log file, default is -outdir/log",
	)
)

func outPath(fileName string) string {
	if filepath.IsAbs(fileName) {
		return fileName
	}
	return filepath.Join(*outDir, fileName)
}

func main() {
	flag.Parse()
	if *project == "" || *sampleTable == "" || *experimentTable == "" {
		flag.Usage()
		log.Fatal("-project, -sample and -experiment required")
	}
	if err := CheckMode(*contains); err != nil {
		flag.Usage()
		log.Fatal(err)
	}
	var patterns = simpleUtil.HandleError(NewPatterns(*patternR1, *patternR2, *patternLane))

	simpleUtil.CheckErr(os.MkdirAll(*outDir, 0755))
	if *logFile == "" {
		*logFile = filepath.Join(*outDir, "log")
	}
	var logF = osUtil.Create(*logFile)
	defer simpleUtil.DeferClose(logF)
	log.SetOutput(io.MultiWriter(os.Stdout, logF))
	log.SetFlags(log.Ldate | log.Ltime)
	log.Printf("Log file:%v\n", *logFile)

	var expDB = simpleUtil.HandleError(LoadTable(*experimentTable))
	simpleUtil.CheckErr(CheckColumns(expDB, ExperimentColumns), *experimentTable)
	var sampleDB = simpleUtil.HandleError(LoadTable(*sampleTable))
	simpleUtil.CheckErr(CheckColumns(sampleDB, SampleColumns), *sampleTable)

	vc, diag := CreateVCTable(expDB, sampleDB, *project)
	diag.Log()
	log.Printf("VC table: %d DNA sequencing runs", len(vc.Records))

	var tree = BuildTree(vc.Records, *project)
	var treeF = osUtil.Create(outPath(*treeFile))
	WriteTree(treeF, tree)
	simpleUtil.CheckErr(treeF.Close())
	log.Printf("Tree file:%s", outPath(*treeFile))

	if *organize {
		diag, err := OrganizeDirs(*fastqDir, vc.Records, *contains)
		diag.Log()
		simpleUtil.CheckErr(err)
	}

	var files []string
	if *fastqList != "" {
		files = LoadFastqList(*fastqList, *fastqDir, *suffix)
	} else {
		files = simpleUtil.HandleError(ListFastq(*fastqDir, *suffix))
	}
	log.Printf("found %d fastq files", len(files))

	var pairs = simpleUtil.HandleError(PairFastq(files, patterns))
	rows, diag := ResolveFastq(vc.Records, *fastqDir, pairs)
	diag.Log()

	SaveManifest(outPath(*manifest), rows)
	log.Printf("Sarek input:%s rows:%d", outPath(*manifest), len(rows))

	if *xlsxFile != "" {
		simpleUtil.CheckErr(SaveXlsx(outPath(*xlsxFile), vc.Table, rows))
	}
	simpleUtil.CheckErr(ArchiveInputs(*outDir, *experimentTable, *sampleTable))
}
