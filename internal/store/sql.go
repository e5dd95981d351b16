package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SQLStore keeps every collection in the entity_records table, one row per
// record, ordered by position. Queries are written with ? and rebound for
// the connected driver.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Load(ctx context.Context, kind string) ([]Record, error) {
	query := s.db.Rebind(`
		SELECT payload
		FROM entity_records
		WHERE kind = ?
		ORDER BY position
	`)

	var payloads []string
	if err := s.db.SelectContext(ctx, &payloads, query, kind); err != nil {
		return nil, fmt.Errorf("load %s: %w", kind, err)
	}

	records := make([]Record, 0, len(payloads))
	for i, p := range payloads {
		var r Record
		if err := json.Unmarshal([]byte(p), &r); err != nil {
			return nil, fmt.Errorf("decode %s record %d: %w", kind, i, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func (s *SQLStore) Save(ctx context.Context, kind string, records []Record) error {
	payloads := make([]string, 0, len(records))
	for i, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("encode %s record %d: %w", kind, i, err)
		}
		payloads = append(payloads, string(b))
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, s.db.Rebind(`DELETE FROM entity_records WHERE kind = ?`), kind); err != nil {
		return fmt.Errorf("clear %s: %w", kind, err)
	}

	insert := s.db.Rebind(`INSERT INTO entity_records (kind, position, payload) VALUES (?, ?, ?)`)
	for i, p := range payloads {
		if _, err := tx.ExecContext(ctx, insert, kind, i, p); err != nil {
			return fmt.Errorf("insert %s record %d: %w", kind, i, err)
		}
	}

	return tx.Commit()
}
