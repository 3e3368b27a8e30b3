package main

import (
	"github.com/google/uuid"
	"io"
	"lookupSheet/contracts"
)

// SheetRepository loads a sheet from storage, runs one engine operation on it and,
// for writes, saves the resulting data in the same storage transaction.
type SheetRepository struct {
	storage           contracts.SheetStorage
	canonicalizer     *Canonicalizer
	exporter          contracts.SheetExporter
	webhookDispatcher contracts.WebhookDispatcher
}

func NewSheetRepository(
	storage contracts.SheetStorage, canonicalizer *Canonicalizer,
	exporter contracts.SheetExporter, webhookDispatcher contracts.WebhookDispatcher,
) *SheetRepository {
	return &SheetRepository{
		storage:           storage,
		canonicalizer:     canonicalizer,
		exporter:          exporter,
		webhookDispatcher: webhookDispatcher,
	}
}

func (s *SheetRepository) CreateSheet(schema contracts.Schema) (string, error) {
	sheet, err := NewSheet(s.canonicalizer.Schema(schema), nil)
	if err != nil {
		return "", err
	}

	record := &contracts.SheetRecord{
		Id:     uuid.NewString(),
		Schema: sheet.Schema(),
		Data:   sheet.Data(),
	}

	if err = s.storage.Insert(record); err != nil {
		return "", err
	}

	return record.Id, nil
}

func (s *SheetRepository) GetSheet(sheetId string) (*contracts.SheetRecord, error) {
	record, sheet, err := s.load(sheetId)
	if err != nil {
		return nil, err
	}

	return &contracts.SheetRecord{
		Id:     record.Id,
		Schema: sheet.Schema(),
		Data:   sheet.GetFlatSheet().ToSheetData(),
	}, nil
}

func (s *SheetRepository) GetResolvedSheet(sheetId string) (contracts.SheetData, error) {
	_, sheet, err := s.load(sheetId)
	if err != nil {
		return nil, err
	}

	resolved, err := sheet.GetResolvedSheet()
	if err != nil {
		return nil, err
	}

	return resolved.ToSheetData(), nil
}

func (s *SheetRepository) ReplaceSchema(sheetId string, schema contracts.Schema) error {
	return s.storage.Update(sheetId, func(record *contracts.SheetRecord) error {
		sheet, err := NewSheet(record.Schema, record.Data)
		if err != nil {
			return err
		}

		if err = sheet.ResetSchema(s.canonicalizer.Schema(schema)); err != nil {
			return err
		}

		record.Schema = sheet.Schema()
		record.Data = sheet.Data()
		return nil
	})
}

func (s *SheetRepository) ExportSheet(sheetId string, w io.Writer) error {
	_, sheet, err := s.load(sheetId)
	if err != nil {
		return err
	}

	resolved, err := sheet.GetResolvedSheet()
	if err != nil {
		return err
	}

	return s.exporter.Export(sheet.Schema(), resolved.ToSheetData(), w)
}

func (s *SheetRepository) SetCell(sheetId string, column string, row int, value contracts.Value) (cell *contracts.Cell, err error) {
	err = s.storage.Update(sheetId, func(record *contracts.SheetRecord) error {
		sheet, err := NewSheet(record.Schema, record.Data)
		if err != nil {
			return err
		}

		if err = sheet.SetCell(column, row, value); err != nil {
			return err
		}

		cell, err = sheet.GetCell(column, row)
		if err != nil {
			return err
		}

		record.Data = sheet.Data()
		return nil
	})

	if err != nil {
		return nil, err
	}

	if s.webhookDispatcher != nil {
		s.webhookDispatcher.Notify(sheetId, []*contracts.Cell{cell})
	}

	return cell, nil
}

func (s *SheetRepository) GetCell(sheetId string, column string, row int) (*contracts.Cell, error) {
	_, sheet, err := s.load(sheetId)
	if err != nil {
		return nil, err
	}

	return sheet.GetCell(column, row)
}

func (s *SheetRepository) load(sheetId string) (*contracts.SheetRecord, contracts.Sheet, error) {
	record, err := s.storage.Load(sheetId)
	if err != nil {
		return nil, nil, err
	}

	sheet, err := NewSheet(record.Schema, record.Data)
	if err != nil {
		return nil, nil, err
	}

	return record, sheet, nil
}
