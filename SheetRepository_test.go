package main

import (
	"bytes"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"lookupSheet/contracts"
	"lookupSheet/mocks"
	"testing"
)

var _testSchema = contracts.Schema{Columns: []contracts.ColumnDef{
	{Name: "name", Type: contracts.StringColumnType},
	{Name: "count", Type: contracts.IntColumnType},
	{Name: "price", Type: "double"},
}}

func _newTestSheetRepository(t *testing.T, webhookDispatcher contracts.WebhookDispatcher) *SheetRepository {
	db, dbClose := _createTmpDb()
	t.Cleanup(dbClose)

	canonicalizer := NewCanonicalizer()

	return NewSheetRepository(
		NewBoltSheetStorage(db, NewSheetJsonSerializer()), canonicalizer,
		NewXlsxSheetExporter(canonicalizer), webhookDispatcher,
	)
}

func TestSheetRepository_CreateSheet(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		sheetRepository := _newTestSheetRepository(t, mocks.NewWebhookDispatcher(t))

		sheetId, err := sheetRepository.CreateSheet(_testSchema)
		require.NoError(t, err)
		assert.NoError(t, uuid.Validate(sheetId))

		record, err := sheetRepository.GetSheet(sheetId)
		require.NoError(t, err)
		assert.Equal(t, sheetId, record.Id)
		assert.Empty(t, record.Data)
		assert.Equal(t, contracts.FloatColumnType, record.Schema.Columns[2].Type)

		otherSheetId, err := sheetRepository.CreateSheet(_testSchema)
		require.NoError(t, err)
		assert.NotEqual(t, sheetId, otherSheetId)
	})

	t.Run("duplicate_column", func(t *testing.T) {
		sheetRepository := _newTestSheetRepository(t, nil)

		_, err := sheetRepository.CreateSheet(contracts.Schema{Columns: []contracts.ColumnDef{
			{Name: "a", Type: contracts.StringColumnType},
			{Name: "a", Type: contracts.IntColumnType},
		}})
		assert.ErrorIs(t, err, contracts.DuplicateColumnError)
	})
}

func TestSheetRepository_SetCell(t *testing.T) {
	expectedCellsMatcher := func(expectedCells ...contracts.Cell) interface{} {
		return mock.MatchedBy(func(cells []*contracts.Cell) bool {
			if len(cells) != len(expectedCells) {
				return false
			}

			for i, cell := range cells {
				if cell == nil || *cell != expectedCells[i] {
					return false
				}
			}
			return true
		})
	}

	t.Run("success", func(t *testing.T) {
		webhookDispatcher := mocks.NewWebhookDispatcher(t)
		sheetRepository := _newTestSheetRepository(t, webhookDispatcher)

		sheetId, err := sheetRepository.CreateSheet(_testSchema)
		require.NoError(t, err)

		expectedLiteral := contracts.Cell{Column: "name", Row: "2", Value: contracts.StringValue("item"), Result: "item"}
		expectedFormula := contracts.Cell{Column: "name", Row: "1", Value: contracts.StringValue("lookup(name,2)"), Result: "item"}

		webhookDispatcher.On("Notify", sheetId, expectedCellsMatcher(expectedLiteral)).Return().Once()
		webhookDispatcher.On("Notify", sheetId, expectedCellsMatcher(expectedFormula)).Return().Once()

		cell, err := sheetRepository.SetCell(sheetId, "name", 2, contracts.StringValue("item"))
		assert.NoError(t, err)
		assert.Equal(t, &expectedLiteral, cell)

		cell, err = sheetRepository.SetCell(sheetId, "name", 1, contracts.StringValue("lookup(name,2)"))
		assert.NoError(t, err)
		assert.Equal(t, &expectedFormula, cell)

		cell, err = sheetRepository.GetCell(sheetId, "name", 1)
		assert.NoError(t, err)
		assert.Equal(t, &expectedFormula, cell)

		record, err := sheetRepository.GetSheet(sheetId)
		assert.NoError(t, err)
		assert.Equal(t, contracts.SheetData{
			"name": {"1": contracts.StringValue("lookup(name,2)"), "2": contracts.StringValue("item")},
		}, record.Data)

		resolved, err := sheetRepository.GetResolvedSheet(sheetId)
		assert.NoError(t, err)
		assert.Equal(t, contracts.SheetData{
			"name": {"1": contracts.StringValue("item"), "2": contracts.StringValue("item")},
		}, resolved)
	})

	t.Run("rejected_write_is_not_saved", func(t *testing.T) {
		webhookDispatcher := mocks.NewWebhookDispatcher(t)
		sheetRepository := _newTestSheetRepository(t, webhookDispatcher)

		sheetId, err := sheetRepository.CreateSheet(_testSchema)
		require.NoError(t, err)

		webhookDispatcher.On("Notify", sheetId, mock.Anything).Return().Twice()

		_, err = sheetRepository.SetCell(sheetId, "name", 1, contracts.StringValue("lookup(name,2)"))
		assert.ErrorIs(t, err, contracts.MissingValueError)

		_, err = sheetRepository.SetCell(sheetId, "name", 2, contracts.StringValue("x"))
		require.NoError(t, err)
		_, err = sheetRepository.SetCell(sheetId, "name", 1, contracts.StringValue("lookup(name,2)"))
		require.NoError(t, err)

		_, err = sheetRepository.SetCell(sheetId, "name", 2, contracts.StringValue("lookup(name,1)"))
		assert.ErrorIs(t, err, contracts.CyclicReferenceError)

		_, err = sheetRepository.SetCell(sheetId, "count", 1, contracts.StringValue("1"))
		assert.ErrorIs(t, err, contracts.TypeMismatchError)

		_, err = sheetRepository.SetCell(sheetId, "name", -1, contracts.StringValue("x"))
		assert.ErrorIs(t, err, contracts.InvalidRowError)

		cell, err := sheetRepository.GetCell(sheetId, "name", 2)
		assert.NoError(t, err)
		assert.Equal(t, contracts.StringValue("x"), cell.Value)
	})

	t.Run("sheet_not_found", func(t *testing.T) {
		sheetRepository := _newTestSheetRepository(t, mocks.NewWebhookDispatcher(t))

		_, err := sheetRepository.SetCell(uuid.NewString(), "name", 1, contracts.StringValue("x"))
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})

	t.Run("without_dispatcher", func(t *testing.T) {
		sheetRepository := _newTestSheetRepository(t, nil)

		sheetId, err := sheetRepository.CreateSheet(_testSchema)
		require.NoError(t, err)

		cell, err := sheetRepository.SetCell(sheetId, "price", 0, contracts.FloatValue(9.5))
		assert.NoError(t, err)
		assert.Equal(t, "9.5", cell.Result)
	})
}

func TestSheetRepository_GetCell(t *testing.T) {
	sheetRepository := _newTestSheetRepository(t, nil)

	sheetId, err := sheetRepository.CreateSheet(_testSchema)
	require.NoError(t, err)

	_, err = sheetRepository.GetCell(sheetId, "name", 1)
	assert.ErrorIs(t, err, contracts.UnknownRowError)

	_, err = sheetRepository.GetCell(sheetId, "unknown", 1)
	assert.ErrorIs(t, err, contracts.UnknownColumnError)

	_, err = sheetRepository.GetCell(uuid.NewString(), "name", 1)
	assert.ErrorIs(t, err, contracts.SheetNotFoundError)
}

func TestSheetRepository_ReplaceSchema(t *testing.T) {
	sheetRepository := _newTestSheetRepository(t, nil)

	sheetId, err := sheetRepository.CreateSheet(_testSchema)
	require.NoError(t, err)

	_, err = sheetRepository.SetCell(sheetId, "count", 1, contracts.IntValue(3))
	require.NoError(t, err)

	t.Run("duplicate_column_keeps_sheet", func(t *testing.T) {
		err := sheetRepository.ReplaceSchema(sheetId, contracts.Schema{Columns: []contracts.ColumnDef{
			{Name: "x", Type: contracts.StringColumnType},
			{Name: "x", Type: contracts.StringColumnType},
		}})
		assert.ErrorIs(t, err, contracts.DuplicateColumnError)

		record, err := sheetRepository.GetSheet(sheetId)
		assert.NoError(t, err)
		assert.Len(t, record.Schema.Columns, 3)
		assert.Equal(t, contracts.IntValue(3), record.Data["count"]["1"])
	})

	t.Run("success_clears_data", func(t *testing.T) {
		err := sheetRepository.ReplaceSchema(sheetId, contracts.Schema{Columns: []contracts.ColumnDef{
			{Name: "total", Type: "double"},
		}})
		assert.NoError(t, err)

		record, err := sheetRepository.GetSheet(sheetId)
		assert.NoError(t, err)
		assert.Equal(t, contracts.Schema{Columns: []contracts.ColumnDef{
			{Name: "total", Type: contracts.FloatColumnType},
		}}, record.Schema)
		assert.Empty(t, record.Data)
	})

	t.Run("sheet_not_found", func(t *testing.T) {
		err := sheetRepository.ReplaceSchema(uuid.NewString(), _testSchema)
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})
}

func TestSheetRepository_ExportSheet(t *testing.T) {
	sheetRepository := _newTestSheetRepository(t, nil)

	sheetId, err := sheetRepository.CreateSheet(_testSchema)
	require.NoError(t, err)

	_, err = sheetRepository.SetCell(sheetId, "name", 1, contracts.StringValue("x"))
	require.NoError(t, err)

	buffer := &bytes.Buffer{}
	assert.NoError(t, sheetRepository.ExportSheet(sheetId, buffer))
	assert.NotZero(t, buffer.Len())

	err = sheetRepository.ExportSheet(uuid.NewString(), &bytes.Buffer{})
	assert.ErrorIs(t, err, contracts.SheetNotFoundError)
}
