package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/vertgenlab/gonomics/fileio"
	"github.com/xuri/excelize/v2"
)

const sep = "\t"

// required columns of the LIMS exports
var (
	ExperimentColumns = []string{"Experiment Type", "Code"}
	SampleColumns     = []string{
		"Project",
		"Sample Type",
		"Code",
		"Parents",
		"Primary tissue/body fluid",
		"Sample type",
		"Secondary name",
	}
)

// LoadTable reads a LIMS export: tab separated with header row, or the first
// sheet of an .xlsx workbook.
func LoadTable(fileName string) (*Table, error) {
	if _, err := os.Stat(fileName); err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(fileName), ".xlsx") {
		return loadXlsx(fileName)
	}
	if err := checkFields(fileName, sep); err != nil {
		return nil, err
	}
	var rows, title = textUtil.File2MapArray(fileName, sep, nil)
	return NewTable(title, rows), nil
}

// checkFields rejects rows wider than the header, which File2MapArray
// cannot map to a column.
func checkFields(fileName, delim string) error {
	var lines = fileio.Read(fileName)
	if len(lines) == 0 {
		return nil
	}
	var width = len(strings.Split(strings.TrimSuffix(lines[0], "\r"), delim))
	for i, line := range lines[1:] {
		var n = len(strings.Split(strings.TrimSuffix(line, "\r"), delim))
		if n > width {
			return fmt.Errorf("%s line %d: %d fields, header has %d", fileName, i+2, n, width)
		}
	}
	return nil
}

func loadXlsx(fileName string) (*Table, error) {
	xlsx, err := excelize.OpenFile(fileName)
	if err != nil {
		return nil, err
	}
	defer simpleUtil.DeferClose(xlsx)

	var sheets = xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no sheet", fileName)
	}
	cells, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return NewTable(nil, nil), nil
	}

	var title = cells[0]
	var rows []map[string]string
	for _, cell := range cells[1:] {
		var item = make(map[string]string, len(title))
		for j, key := range title {
			// trailing empty cells are not returned
			if j < len(cell) {
				item[key] = cell[j]
			} else {
				item[key] = ""
			}
		}
		rows = append(rows, item)
	}
	return NewTable(title, rows), nil
}

// CheckColumns reports the columns of want that t lacks.
func CheckColumns(t *Table, want []string) error {
	var missing []string
	for _, key := range want {
		if !t.HasColumn(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
