package main

import (
	"fmt"
	"go.etcd.io/bbolt"
	"lookupSheet/contracts"
)

var sheetsBucket = []byte("sheets")

var sheetAlreadyExistsError = fmt.Errorf("sheet already exists")

type BoltSheetStorage struct {
	db         *bbolt.DB
	serializer contracts.SheetSerializer
}

func NewBoltSheetStorage(db *bbolt.DB, serializer contracts.SheetSerializer) *BoltSheetStorage {
	return &BoltSheetStorage{
		db:         db,
		serializer: serializer,
	}
}

func OpenBoltSheetStorage(path string, serializer contracts.SheetSerializer) (*BoltSheetStorage, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}

	return NewBoltSheetStorage(db, serializer), nil
}

func (s *BoltSheetStorage) Insert(record *contracts.SheetRecord) error {
	serializedData, err := s.serializer.Marshal(record)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(sheetsBucket)
		if err != nil {
			return err
		}

		key := []byte(record.Id)
		if bucket.Get(key) != nil {
			return fmt.Errorf("%s: %w", record.Id, sheetAlreadyExistsError)
		}

		return bucket.Put(key, serializedData)
	})
}

func (s *BoltSheetStorage) Load(sheetId string) (record *contracts.SheetRecord, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		record, err = s.get(tx, sheetId)
		return err
	})

	return
}

func (s *BoltSheetStorage) Update(sheetId string, fn func(record *contracts.SheetRecord) error) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		record, err := s.get(tx, sheetId)
		if err != nil {
			return err
		}

		if err = fn(record); err != nil {
			return err
		}

		serializedData, err := s.serializer.Marshal(record)
		if err != nil {
			return err
		}

		return tx.Bucket(sheetsBucket).Put([]byte(sheetId), serializedData)
	})
}

func (s *BoltSheetStorage) Close() error {
	return s.db.Close()
}

func (s *BoltSheetStorage) get(tx *bbolt.Tx, sheetId string) (*contracts.SheetRecord, error) {
	bucket := tx.Bucket(sheetsBucket)
	if bucket == nil {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	byteValue := bucket.Get([]byte(sheetId))
	if byteValue == nil {
		return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	return s.serializer.Unmarshal(byteValue)
}
