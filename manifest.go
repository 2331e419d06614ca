package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

// WriteManifest writes rows tab separated, without header and without any
// quoting. Values must not contain tabs or newlines.
func WriteManifest(w io.Writer, rows []*ManifestRow) error {
	var bw = bufio.NewWriter(w)
	for _, row := range rows {
		if _, err := fmt.Fprintln(bw, row); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveManifest creates fileName and writes rows to it.
func SaveManifest(fileName string, rows []*ManifestRow) {
	var out = osUtil.Create(fileName)
	defer simpleUtil.DeferClose(out)
	simpleUtil.CheckErr(WriteManifest(out, rows))
}

func ReadManifest(r io.Reader) ([]*ManifestRow, error) {
	var rows []*ManifestRow
	var scanner = bufio.NewScanner(r)
	var n int
	for scanner.Scan() {
		n++
		var line = scanner.Text()
		if line == "" {
			continue
		}
		var fields = strings.Split(line, "\t")
		if len(fields) != len(ManifestTitle) {
			return nil, fmt.Errorf("manifest line %d: %d fields, want %d", n, len(fields), len(ManifestTitle))
		}
		isTumor, err := parseFlag(fields[2])
		if err != nil {
			return nil, fmt.Errorf("manifest line %d: IsTumor: %w", n, err)
		}
		rows = append(rows, &ManifestRow{
			Entity:  fields[0],
			Sex:     fields[1],
			IsTumor: isTumor,
			Code:    fields[3],
			Lane:    fields[4],
			R1:      fields[5],
			R2:      fields[6],
		})
	}
	return rows, scanner.Err()
}
