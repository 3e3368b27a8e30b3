package main

import (
	"fmt"
	"github.com/xuri/excelize/v2"
	"io"
	"lookupSheet/contracts"
	"slices"
)

const exportWorksheetName = "Sheet1"

const exportRowHeader = "row"

// XlsxSheetExporter writes a resolved sheet as a workbook: first column is the row key,
// then one column per schema column in schema order.
type XlsxSheetExporter struct {
	canonicalizer *Canonicalizer
}

func NewXlsxSheetExporter(canonicalizer *Canonicalizer) *XlsxSheetExporter {
	return &XlsxSheetExporter{canonicalizer: canonicalizer}
}

func (e *XlsxSheetExporter) Export(schema contracts.Schema, resolved contracts.SheetData, w io.Writer) (err error) {
	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	header := make([]any, 0, len(schema.Columns)+1)
	header = append(header, exportRowHeader)
	for _, column := range schema.Columns {
		header = append(header, column.Name)
	}

	if err = file.SetSheetRow(exportWorksheetName, "A1", &header); err != nil {
		return err
	}

	for index, rowKey := range e.rowKeys(resolved) {
		line := make([]any, 0, len(header))
		line = append(line, rowKey)
		for _, column := range schema.Columns {
			if value, ok := resolved[column.Name][rowKey]; ok {
				line = append(line, value.Interface())
			} else {
				line = append(line, nil)
			}
		}

		var cell string
		cell, err = excelize.CoordinatesToCellName(1, index+2)
		if err != nil {
			return err
		}

		if err = file.SetSheetRow(exportWorksheetName, cell, &line); err != nil {
			return fmt.Errorf("row %s: %w", rowKey, err)
		}
	}

	_, err = file.WriteTo(w)
	return err
}

func (e *XlsxSheetExporter) rowKeys(data contracts.SheetData) []string {
	seen := map[string]bool{}
	keys := make([]string, 0)
	for _, rows := range data {
		for rowKey := range rows {
			if !seen[rowKey] {
				seen[rowKey] = true
				keys = append(keys, rowKey)
			}
		}
	}

	slices.SortFunc(keys, e.canonicalizer.CompareRowKeys)
	return keys
}
