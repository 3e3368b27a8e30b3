package main

import (
	"fmt"
	"github.com/bytedance/sonic"
	"lookupSheet/contracts"
)

// SheetJsonSerializer stores a sheet as one JSON document. Cell values are decoded
// according to their column's declared type, so 1 in a float column stays a float.
type SheetJsonSerializer struct {
	decoder sonic.API
}

type rawSheetRecord struct {
	Id     string                    `json:"id"`
	Schema contracts.Schema          `json:"schema"`
	Data   map[string]map[string]any `json:"data"`
}

func NewSheetJsonSerializer() *SheetJsonSerializer {
	return &SheetJsonSerializer{
		// bbolt values are only valid inside their transaction, decoded strings must not alias them
		decoder: sonic.Config{UseNumber: true, CopyString: true}.Froze(),
	}
}

func (s *SheetJsonSerializer) Marshal(record *contracts.SheetRecord) ([]byte, error) {
	data, err := sonic.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w: %w", record.Id, contracts.SerializerError, err)
	}

	return data, nil
}

func (s *SheetJsonSerializer) Unmarshal(data []byte) (*contracts.SheetRecord, error) {
	raw := rawSheetRecord{}
	if err := s.decoder.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", contracts.SerializerError, err)
	}

	record := &contracts.SheetRecord{
		Id:     raw.Id,
		Schema: raw.Schema,
		Data:   make(contracts.SheetData, len(raw.Data)),
	}

	for column, rows := range raw.Data {
		columnDef, ok := raw.Schema.Column(column)
		if !ok {
			return nil, fmt.Errorf("%w: data for column `%s` missing in schema", contracts.SerializerError, column)
		}

		kind, isKnownType := columnDef.Type.Kind()
		record.Data[column] = make(map[string]contracts.Value, len(rows))

		for row, rawValue := range rows {
			var value contracts.Value
			var err error
			if isKnownType {
				value, err = contracts.ValueOfKind(kind, rawValue)
			} else {
				value, err = contracts.ValueOf(rawValue)
			}

			if err != nil {
				return nil, fmt.Errorf("%w: cell %s: %w", contracts.SerializerError, contracts.CellAddress{Column: column, Row: row}, err)
			}

			record.Data[column][row] = value
		}
	}

	return record, nil
}
