package report

import (
	"fmt"
	"strings"

	"github.com/dog-api-tests/dog-api-contract-tests/framework"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName          = "Results"
	defaultColumnWidth = 20
	wideColumnWidth    = 60
	failedBgColor      = "FFC7CE"
	skippedBgColor     = "FFEB9C"
)

var xlsxHeaders = []string{"ID", "Name", "Feature", "Severity", "Status", "Duration (ms)", "Errors"}

// WriteXLSX writes the results as a spreadsheet with one row per test. Failed and skipped rows
// are highlighted.
func WriteXLSX(path string, results framework.Results) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return errors.Wrap(err, "couldn't create worksheet")
	}

	lastColumn, _ := excelize.ColumnNumberToName(len(xlsxHeaders))
	if err := f.SetColWidth(sheetName, "A", lastColumn, defaultColumnWidth); err != nil {
		return errors.Wrap(err, "couldn't set column width")
	}
	if err := f.SetColWidth(sheetName, "B", "B", wideColumnWidth); err != nil {
		return errors.Wrap(err, "couldn't set column width")
	}
	if err := f.SetColWidth(sheetName, lastColumn, lastColumn, wideColumnWidth); err != nil {
		return errors.Wrap(err, "couldn't set column width")
	}

	header := make([]interface{}, 0, len(xlsxHeaders))
	for _, h := range xlsxHeaders {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return errors.Wrap(err, "couldn't write header row")
	}

	failedStyle, err := fillStyle(f, failedBgColor)
	if err != nil {
		return err
	}
	skippedStyle, err := fillStyle(f, skippedBgColor)
	if err != nil {
		return err
	}

	for i, e := range Entries(results) {
		rowNum := i + 2
		cell := fmt.Sprintf("A%d", rowNum)
		row := []interface{}{e.ID, e.Name, e.Feature, e.Severity, e.Status, e.DurationMS, strings.Join(e.Errors, "\n")}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return errors.Wrapf(err, "couldn't write row %d", rowNum)
		}
		style := 0
		switch e.Status {
		case StatusFailed:
			style = failedStyle
		case StatusSkipped:
			style = skippedStyle
		}
		if style != 0 {
			endCell := fmt.Sprintf("%s%d", lastColumn, rowNum)
			if err := f.SetCellStyle(sheetName, cell, endCell, style); err != nil {
				return errors.Wrapf(err, "couldn't style row %d", rowNum)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "couldn't write XLSX report to %s", path)
	}
	return nil
}

func fillStyle(f *excelize.File, color string) (int, error) {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	if err != nil {
		return 0, errors.Wrap(err, "couldn't create cell style")
	}
	return style, nil
}
