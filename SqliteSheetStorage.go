package main

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"lookupSheet/contracts"
	"os"
	"path/filepath"
)

//go:embed schema.sql
var schemaFS embed.FS

type SqliteSheetStorage struct {
	db         *sql.DB
	serializer contracts.SheetSerializer
}

func OpenSqliteSheetStorage(path string, serializer contracts.SheetSerializer) (*SqliteSheetStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	storage := &SqliteSheetStorage{db: db, serializer: serializer}
	if err = storage.initSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return storage, nil
}

func (s *SqliteSheetStorage) initSchema() error {
	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}

	if _, err = s.db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

func (s *SqliteSheetStorage) Insert(record *contracts.SheetRecord) error {
	document, err := s.serializer.Marshal(record)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO sheets (id, document) VALUES (?, ?)`, record.Id, document)
	return err
}

func (s *SqliteSheetStorage) Load(sheetId string) (*contracts.SheetRecord, error) {
	return s.get(s.db.QueryRow(`SELECT document FROM sheets WHERE id = ?`, sheetId), sheetId)
}

func (s *SqliteSheetStorage) Update(sheetId string, fn func(record *contracts.SheetRecord) error) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	record, err := s.get(tx.QueryRow(`SELECT document FROM sheets WHERE id = ?`, sheetId), sheetId)
	if err != nil {
		return err
	}

	if err = fn(record); err != nil {
		return err
	}

	document, err := s.serializer.Marshal(record)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`UPDATE sheets SET document = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, document, sheetId)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SqliteSheetStorage) Close() error {
	return s.db.Close()
}

func (s *SqliteSheetStorage) get(row *sql.Row, sheetId string) (*contracts.SheetRecord, error) {
	var document []byte
	if err := row.Scan(&document); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}
		return nil, err
	}

	return s.serializer.Unmarshal(document)
}
