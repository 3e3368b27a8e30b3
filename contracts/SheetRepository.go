package contracts

import (
	"errors"
	"io"
)

type SheetRepository interface {
	CreateSheet(schema Schema) (string, error)
	GetSheet(sheetId string) (*SheetRecord, error)
	GetResolvedSheet(sheetId string) (SheetData, error)
	ReplaceSchema(sheetId string, schema Schema) error
	ExportSheet(sheetId string, w io.Writer) error

	SetCell(sheetId string, column string, row int, value Value) (*Cell, error)
	GetCell(sheetId string, column string, row int) (*Cell, error)
}

var SheetNotFoundError = errors.New("sheet not found")
