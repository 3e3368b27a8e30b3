package main

import (
	"fmt"
	"lookupSheet/contracts"
)

// Sheet owns one schema and one cell store. Every write is type checked and
// formulas are validated before anything is stored, so a failed SetCell leaves
// the sheet untouched. Sheet is not safe for concurrent use.
type Sheet struct {
	schema        contracts.Schema
	store         *CellStore
	resolver      contracts.ReferenceResolver
	parser        contracts.FormulaParser
	canonicalizer *Canonicalizer
}

func NewSheet(schema contracts.Schema, data contracts.SheetData) (*Sheet, error) {
	sheet := &Sheet{
		parser:        NewLookupFormulaParser(),
		canonicalizer: NewCanonicalizer(),
	}

	if err := sheet.ResetSchema(schema); err != nil {
		return nil, err
	}

	for column, rows := range data {
		columnDef, ok := sheet.schema.Column(column)
		if !ok {
			return nil, fmt.Errorf("column `%s`: %w", column, contracts.UnknownColumnError)
		}

		kind, isKnownType := columnDef.Type.Kind()
		for row, value := range rows {
			if !value.IsValid() {
				return nil, fmt.Errorf("cell %s: %w", contracts.CellAddress{Column: column, Row: row}, contracts.InvalidValueError)
			}
			if isKnownType && value.Kind() != kind {
				return nil, fmt.Errorf("cell %s holds %s, column declared %s: %w", contracts.CellAddress{Column: column, Row: row}, value.Kind(), columnDef.Type, contracts.TypeMismatchError)
			}
		}
	}

	sheet.store = NewCellStore(&sheet.schema, data)
	sheet.resolver = NewReferenceResolver(sheet.store, sheet.parser)

	return sheet, nil
}

func (s *Sheet) Schema() contracts.Schema {
	return s.schema.Clone()
}

func (s *Sheet) Data() contracts.SheetData {
	return s.store.Data()
}

// ResetSchema replaces the schema and drops all stored cells.
func (s *Sheet) ResetSchema(schema contracts.Schema) error {
	seen := make(map[string]bool, len(schema.Columns))
	for _, column := range schema.Columns {
		if seen[column.Name] {
			return fmt.Errorf("column `%s`: %w", column.Name, contracts.DuplicateColumnError)
		}
		seen[column.Name] = true
	}

	s.schema = schema.Clone()
	s.store = NewCellStore(&s.schema, nil)
	s.resolver = NewReferenceResolver(s.store, s.parser)

	return nil
}

func (s *Sheet) SetCell(column string, row int, value contracts.Value) error {
	columnDef, ok := s.schema.Column(column)
	if !ok {
		return fmt.Errorf("column `%s`: %w", column, contracts.UnknownColumnError)
	}

	address, err := s.canonicalizer.Address(column, row)
	if err != nil {
		return err
	}

	kind, ok := columnDef.Type.Kind()
	if !ok {
		return fmt.Errorf("column `%s` declares `%s`: %w", column, columnDef.Type, contracts.UnsupportedColumnTypeError)
	}

	if value.Kind() != kind {
		return fmt.Errorf(
			"type %s column `%s`: `%s` is type of %s: %w",
			columnDef.Type, column, value, value.Kind(), contracts.TypeMismatchError,
		)
	}

	if text, isText := value.Text(); isText && s.parser.IsFormula(text) {
		if err = s.validateFormula(address, text); err != nil {
			return err
		}
	}

	s.store.PutRaw(address, value)
	return nil
}

func (s *Sheet) validateFormula(address contracts.CellAddress, formula string) error {
	reference, err := s.parser.Parse(formula)
	if err != nil {
		return fmt.Errorf("cell %s: %w", address, err)
	}

	referenceDef, ok := s.schema.Column(reference.Column)
	if !ok {
		return fmt.Errorf("column `%s`: %w", reference.Column, contracts.MissingColumnError)
	}

	if referenceDef.Type != contracts.StringColumnType {
		return fmt.Errorf("column `%s` is type `%s`: %w", reference.Column, referenceDef.Type, contracts.UnsupportedReferenceColumnTypeError)
	}

	if _, err = s.store.GetRaw(reference); err != nil {
		return fmt.Errorf("value %s in column `%s`: %w", reference.Row, reference.Column, contracts.MissingValueError)
	}

	if reference == address {
		return fmt.Errorf("cell %s: %w", address, contracts.SelfReferenceError)
	}

	return s.resolver.CheckChain(reference, address)
}

func (s *Sheet) GetCellValue(column string, row int) (string, error) {
	value, err := s.getRaw(column, row)
	if err != nil {
		return "", err
	}

	return value.String(), nil
}

func (s *Sheet) GetResolvedCellValue(column string, row int) (string, error) {
	address, err := s.canonicalizer.Address(column, row)
	if err != nil {
		return "", err
	}

	value, err := s.resolver.Resolve(address)
	if err != nil {
		return "", err
	}

	return value.String(), nil
}

// GetCell returns the raw value together with its resolved form.
func (s *Sheet) GetCell(column string, row int) (*contracts.Cell, error) {
	address, err := s.canonicalizer.Address(column, row)
	if err != nil {
		return nil, err
	}

	value, err := s.store.GetRaw(address)
	if err != nil {
		return nil, err
	}

	result, err := s.resolver.Resolve(address)
	if err != nil {
		return nil, err
	}

	return &contracts.Cell{
		Column: address.Column,
		Row:    address.Row,
		Value:  value,
		Result: result.String(),
	}, nil
}

func (s *Sheet) GetFlatSheet() contracts.CellMap {
	return s.store.FlatView()
}

// GetResolvedSheet resolves every stored cell; one failing cell fails the whole call.
func (s *Sheet) GetResolvedSheet() (contracts.CellMap, error) {
	flat := s.store.FlatView()
	resolved := make(contracts.CellMap, len(flat))

	for address := range flat {
		value, err := s.resolver.Resolve(address)
		if err != nil {
			return nil, fmt.Errorf("cell %s: %w", address, err)
		}
		resolved[address] = value
	}

	return resolved, nil
}

func (s *Sheet) getRaw(column string, row int) (contracts.Value, error) {
	address, err := s.canonicalizer.Address(column, row)
	if err != nil {
		return contracts.Value{}, err
	}

	return s.store.GetRaw(address)
}
