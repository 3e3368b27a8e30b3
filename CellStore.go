package main

import (
	"fmt"
	"lookupSheet/contracts"
)

// CellStore keeps raw cell values per column; a column's row map is created on its first write.
// It does not validate writes, Sheet does that before calling PutRaw.
type CellStore struct {
	schema  *contracts.Schema
	columns contracts.SheetData
}

func NewCellStore(schema *contracts.Schema, data contracts.SheetData) *CellStore {
	store := &CellStore{
		schema:  schema,
		columns: contracts.SheetData{},
	}

	for column, rows := range data {
		for row, value := range rows {
			store.PutRaw(contracts.CellAddress{Column: column, Row: row}, value)
		}
	}

	return store
}

func (s *CellStore) GetRaw(address contracts.CellAddress) (contracts.Value, error) {
	if !s.schema.HasColumn(address.Column) {
		return contracts.Value{}, fmt.Errorf("column `%s`: %w", address.Column, contracts.UnknownColumnError)
	}

	value, ok := s.columns[address.Column][address.Row]
	if !ok {
		return contracts.Value{}, fmt.Errorf("row `%s` in column `%s`: %w", address.Row, address.Column, contracts.UnknownRowError)
	}

	return value, nil
}

func (s *CellStore) PutRaw(address contracts.CellAddress, value contracts.Value) {
	rows, ok := s.columns[address.Column]
	if !ok {
		rows = map[string]contracts.Value{}
		s.columns[address.Column] = rows
	}

	rows[address.Row] = value
}

func (s *CellStore) FlatView() contracts.CellMap {
	flat := contracts.CellMap{}
	for column, rows := range s.columns {
		for row, value := range rows {
			flat[contracts.CellAddress{Column: column, Row: row}] = value
		}
	}

	return flat
}

// Data returns a copy of the column -> row -> value mapping.
func (s *CellStore) Data() contracts.SheetData {
	data := make(contracts.SheetData, len(s.columns))
	for column, rows := range s.columns {
		data[column] = make(map[string]contracts.Value, len(rows))
		for row, value := range rows {
			data[column][row] = value
		}
	}

	return data
}
