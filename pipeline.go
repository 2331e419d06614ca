package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	simple_util "github.com/liserjrqlxue/simple-util"
	"github.com/vertgenlab/gonomics/fileio"
)

// identifier modes: what the fastq file names start with
const (
	ModeTest          = "Test"
	ModeSecondaryName = "Secondary_name"
)

var ErrInvalidMode = errors.New(`invalid contains parameter, choose from ["Test", "Secondary_name"]`)

func CheckMode(mode string) error {
	switch mode {
	case ModeTest, ModeSecondaryName:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

func fileID(record *VCRecord, mode string) string {
	if mode == ModeSecondaryName {
		return record.SecondaryName
	}
	return record.TestCode
}

func createDir(workdir string, pathList []string) error {
	for _, path := range pathList {
		if err := os.MkdirAll(filepath.Join(workdir, path), 0755); err != nil {
			return err
		}
	}
	return nil
}

// OrganizeDirs creates the VC path of every record below root and moves the
// files of root whose name starts with the record identifier into it.
func OrganizeDirs(root string, records []*VCRecord, mode string) (*Diagnostics, error) {
	if err := CheckMode(mode); err != nil {
		return nil, err
	}
	var diag = &Diagnostics{}
	for _, record := range records {
		var id = fileID(record, mode)
		if id == "" {
			diag.AddDrop(StageOrganize, record.NGSCode, "no "+mode+" identifier")
			continue
		}
		if err := createDir(root, []string{record.Path}); err != nil {
			return diag, err
		}
		matches, err := filepath.Glob(filepath.Join(root, escapeGlob(id)+"*"))
		if err != nil {
			return diag, err
		}
		for _, src := range matches {
			info, err := os.Stat(src)
			if err != nil {
				return diag, err
			}
			if info.IsDir() {
				continue
			}
			var dst = filepath.Join(root, record.Path, filepath.Base(src))
			if simple_util.FileExists(dst) {
				diag.AddDrop(StageOrganize, src, "already exists in "+record.Path)
				continue
			}
			if err := os.Rename(src, dst); err != nil {
				return diag, err
			}
		}
	}
	return diag, nil
}

func escapeGlob(s string) string {
	var replacer = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`)
	return replacer.Replace(s)
}

// ListFastq returns the absolute paths of all files below root ending in
// suffix, sorted.
func ListFastq(root, suffix string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), suffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// LoadFastqList reads a listing file, one path per line, plain or gzipped.
// Relative paths are taken relative to root.
func LoadFastqList(fileName, root, suffix string) []string {
	var files []string
	for _, line := range fileio.Read(fileName) {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasSuffix(line, suffix) {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(root, line)
		}
		files = append(files, line)
	}
	sort.Strings(files)
	return files
}

// ArchiveInputs copies the source tables next to the outputs.
func ArchiveInputs(outDir string, inputs ...string) error {
	for _, input := range inputs {
		var dst = filepath.Join(outDir, "input."+filepath.Base(input))
		if err := simple_util.CopyFile(dst, input); err != nil {
			return err
		}
	}
	return nil
}
