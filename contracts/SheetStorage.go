package contracts

type SheetStorage interface {
	Insert(record *SheetRecord) error
	Load(sheetId string) (*SheetRecord, error)
	// Update loads the record, passes it to fn and saves it in the same transaction.
	// Nothing is saved when fn returns an error.
	Update(sheetId string, fn func(record *SheetRecord) error) error
	Close() error
}
