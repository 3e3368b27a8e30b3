package contracts

import (
	"errors"
	"fmt"
)

// CellAddress is a column name plus the canonical string form of the row index.
type CellAddress struct {
	Column string
	Row    string
}

func (a CellAddress) String() string {
	return fmt.Sprintf("%s[%s]", a.Column, a.Row)
}

// CellMap is a flat (column, row) -> value view of a sheet.
type CellMap map[CellAddress]Value

// SheetData is the raw storage shape: column -> row key -> value.
type SheetData map[string]map[string]Value

func (m CellMap) ToSheetData() SheetData {
	data := SheetData{}
	for address, value := range m {
		if _, ok := data[address.Column]; !ok {
			data[address.Column] = map[string]Value{}
		}
		data[address.Column][address.Row] = value
	}

	return data
}

type Sheet interface {
	Schema() Schema
	Data() SheetData
	ResetSchema(schema Schema) error

	SetCell(column string, row int, value Value) error
	GetCellValue(column string, row int) (string, error)
	GetResolvedCellValue(column string, row int) (string, error)
	GetCell(column string, row int) (*Cell, error)
	GetFlatSheet() CellMap
	GetResolvedSheet() (CellMap, error)
}

type FormulaParser interface {
	IsFormula(text string) bool
	Parse(text string) (CellAddress, error)
}

type CellStore interface {
	GetRaw(address CellAddress) (Value, error)
	PutRaw(address CellAddress, value Value)
	FlatView() CellMap
}

type ReferenceResolver interface {
	Resolve(address CellAddress) (Value, error)
	// CheckChain walks from start and fails with CyclicReferenceError if the walk
	// reaches writing or revisits any address.
	CheckChain(start CellAddress, writing CellAddress) error
}

var UnknownColumnError = errors.New("unknown column")

var UnknownRowError = errors.New("unknown row")

var InvalidRowError = errors.New("row index must be non-negative")

var DuplicateColumnError = errors.New("duplicate column name")

var UnsupportedColumnTypeError = errors.New("unsupported column type")

var TypeMismatchError = errors.New("value type does not match column type")

var MalformedFormulaError = errors.New("malformed formula")

var MissingColumnError = errors.New("formula references missing column")

var MissingValueError = errors.New("formula references missing value")

var SelfReferenceError = errors.New("formula cannot reference the same cell")

var UnsupportedReferenceColumnTypeError = errors.New("only string columns can be referenced")

var CyclicReferenceError = errors.New("cyclic reference detected")
