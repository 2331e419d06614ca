package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const (
	DefaultR1Pattern   = `_R1_`
	DefaultR2Pattern   = `_R2_`
	DefaultLanePattern = `_L[0-9]{3}[_.]`
)

var (
	ErrPairCount     = errors.New("fastq files are not correctly paired, different number of R1 and R2")
	ErrUnpaired      = errors.New("fastq R1 without matching R2")
	ErrDuplicatePair = errors.New("fastq pair key is not unique")
	ErrNoLane        = errors.New("no lane in fastq file name")
)

// pairMark replaces the R1/R2 match in the pairing key.
const pairMark = "\x00"

type Patterns struct {
	R1   *regexp.Regexp
	R2   *regexp.Regexp
	Lane *regexp.Regexp
}

func NewPatterns(r1, r2, lane string) (*Patterns, error) {
	var p = &Patterns{}
	var err error
	if p.R1, err = regexp.Compile(r1); err != nil {
		return nil, fmt.Errorf("R1 pattern: %w", err)
	}
	if p.R2, err = regexp.Compile(r2); err != nil {
		return nil, fmt.Errorf("R2 pattern: %w", err)
	}
	if p.Lane, err = regexp.Compile(lane); err != nil {
		return nil, fmt.Errorf("lane pattern: %w", err)
	}
	return p, nil
}

// LaneOf returns the lane token of a file name without its separators, e.g. L001.
func (p *Patterns) LaneOf(fileName string) (string, error) {
	var m = p.Lane.FindString(filepath.Base(fileName))
	if m == "" {
		return "", fmt.Errorf("%w: %s", ErrNoLane, fileName)
	}
	return strings.Trim(m, "_."), nil
}

// PairFastq splits files into R1 and R2 by pattern and pairs them on the file
// name with the R1/R2 match masked. Files matching neither are ignored.
// Pairs come back sorted by R1.
func PairFastq(files []string, p *Patterns) ([]*FastqPair, error) {
	var r1List, r2List []string
	for _, file := range files {
		switch {
		case p.R1.MatchString(filepath.Base(file)):
			r1List = append(r1List, file)
		case p.R2.MatchString(filepath.Base(file)):
			r2List = append(r2List, file)
		}
	}
	sort.Strings(r1List)
	sort.Strings(r2List)
	if len(r1List) != len(r2List) {
		return nil, fmt.Errorf("%w: %d R1, %d R2", ErrPairCount, len(r1List), len(r2List))
	}

	var r2Map = make(map[string]string, len(r2List))
	for _, r2 := range r2List {
		key := pairKey(p.R2, r2)
		if prior, ok := r2Map[key]; ok {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicatePair, prior, r2)
		}
		r2Map[key] = r2
	}

	var pairs []*FastqPair
	var seen = make(map[string]string, len(r1List))
	for _, r1 := range r1List {
		key := pairKey(p.R1, r1)
		if prior, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %s and %s", ErrDuplicatePair, prior, r1)
		}
		seen[key] = r1
		r2, ok := r2Map[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnpaired, r1)
		}
		lane, err := p.LaneOf(r1)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, &FastqPair{Key: key, Lane: lane, R1: r1, R2: r2})
	}
	return pairs, nil
}

// pairKey masks the read marker in the base name only, so a directory
// called e.g. "_R1_" cannot break the pairing.
func pairKey(marker *regexp.Regexp, file string) string {
	var dir, base = filepath.Split(file)
	var loc = marker.FindStringIndex(base)
	return dir + base[:loc[0]] + pairMark + base[loc[1]:]
}

// ResolveFastq assigns every pair to the record whose VC path is the pair's
// directory below root and returns one manifest row per pair, in pair order.
// Listed files outside root match a record when their directory ends in its
// VC path. Pairs outside any VC path are reported and skipped.
func ResolveFastq(records []*VCRecord, root string, pairs []*FastqPair) ([]*ManifestRow, *Diagnostics) {
	var diag = &Diagnostics{}

	// several runs of one test sample share one directory and one metadata row
	var byPath = make(map[string]*VCRecord)
	var paths []string
	for _, record := range records {
		if _, ok := byPath[record.Path]; !ok && record.Path != "" {
			byPath[record.Path] = record
			paths = append(paths, record.Path)
		}
	}

	var rows []*ManifestRow
	for _, pair := range pairs {
		var record *VCRecord
		if rel, below := relDir(root, pair.R1); below {
			record = byPath[rel]
		} else if path := suffixPath(paths, pair.R1); path != "" {
			record = byPath[path]
		}
		if record == nil {
			diag.AddDrop(StageFastq, pair.R1, "not below any VC path")
			continue
		}
		rows = append(rows, &ManifestRow{
			Entity:  record.Entity,
			Sex:     DefaultSex,
			IsTumor: record.IsTumor,
			Code:    record.TestCode,
			Lane:    pair.Lane,
			R1:      pair.R1,
			R2:      pair.R2,
		})
	}
	return rows, diag
}

// relDir is the directory of file relative to root, slash separated with a
// trailing slash, and whether file lies below root at all. Files directly in
// root give "".
func relDir(root, file string) (string, bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absFile, err := filepath.Abs(file)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, filepath.Dir(absFile))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	if rel == "." {
		return "", true
	}
	return filepath.ToSlash(rel) + "/", true
}

// suffixPath returns the first of paths that file's directory ends in.
func suffixPath(paths []string, file string) string {
	var dir = filepath.ToSlash(filepath.Dir(file)) + "/"
	for _, path := range paths {
		if strings.HasSuffix(dir, "/"+path) {
			return path
		}
	}
	return ""
}
