package main

import (
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

const (
	vcSheet       = "VC_table"
	manifestSheet = "Sarek_input"
)

// SaveXlsx writes the VC table and the manifest into one workbook.
func SaveXlsx(fileName string, vc *Table, rows []*ManifestRow) error {
	var xlsx = excelize.NewFile()
	defer simpleUtil.DeferClose(xlsx)

	if err := xlsx.SetSheetName("Sheet1", vcSheet); err != nil {
		return err
	}
	if err := setSheetRow(xlsx, vcSheet, 1, vc.Title); err != nil {
		return err
	}
	for i, row := range vc.Rows {
		var line = make([]string, len(vc.Title))
		for j, key := range vc.Title {
			line[j] = row[key]
		}
		if err := setSheetRow(xlsx, vcSheet, i+2, line); err != nil {
			return err
		}
	}

	if _, err := xlsx.NewSheet(manifestSheet); err != nil {
		return err
	}
	if err := setSheetRow(xlsx, manifestSheet, 1, ManifestTitle); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setSheetRow(xlsx, manifestSheet, i+2, row.Fields()); err != nil {
			return err
		}
	}
	return xlsx.SaveAs(fileName)
}

func setSheetRow(xlsx *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return xlsx.SetSheetRow(sheet, cell, &values)
}
