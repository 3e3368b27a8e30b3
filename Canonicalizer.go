package main

import (
	"cmp"
	"fmt"
	"lookupSheet/contracts"
	"strconv"
	"strings"
)

// Canonicalizer converts boundary values (row indices, column type names) to
// the single representation used inside the sheet engine and storage.
type Canonicalizer struct {
	columnTypeAliases map[string]contracts.ColumnType
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{
		columnTypeAliases: map[string]contracts.ColumnType{
			"double": contracts.FloatColumnType,
		},
	}
}

func (c *Canonicalizer) RowKey(row int) (string, error) {
	if row < 0 {
		return "", fmt.Errorf("row index %d: %w", row, contracts.InvalidRowError)
	}

	return strconv.Itoa(row), nil
}

func (c *Canonicalizer) Address(column string, row int) (contracts.CellAddress, error) {
	rowKey, err := c.RowKey(row)
	return contracts.CellAddress{Column: column, Row: rowKey}, err
}

// CompareRowKeys orders numeric keys numerically and puts anything else after them, lexically.
func (c *Canonicalizer) CompareRowKeys(a string, b string) int {
	aIndex, aErr := strconv.Atoi(a)
	bIndex, bErr := strconv.Atoi(b)

	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(aIndex, bIndex)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}

	return strings.Compare(a, b)
}

// Schema rewrites type aliases accepted by the API ("double") to the engine's type names.
func (c *Canonicalizer) Schema(schema contracts.Schema) contracts.Schema {
	canonical := schema.Clone()
	for index, column := range canonical.Columns {
		if alias, ok := c.columnTypeAliases[string(column.Type)]; ok {
			canonical.Columns[index].Type = alias
		}
	}

	return canonical
}
