package contracts

import "errors"

type SheetSerializer interface {
	Marshal(record *SheetRecord) ([]byte, error)
	Unmarshal(data []byte) (*SheetRecord, error)
}

var SerializerError = errors.New("invalid serialized data")
