package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/attesto/attesto/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertEvent(ctx context.Context, e audit.Event) error {
	detail, err := json.Marshal(e.Detail)
	if err != nil {
		return fmt.Errorf("encoding event detail: %w", err)
	}

	query := `
		INSERT INTO activity_log (quote_id, staff_id, action, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := s.db.ExecContext(ctx, query, e.QuoteID, e.StaffID, e.Action, detail, e.CreatedAt); err != nil {
		return fmt.Errorf("inserting activity event: %w", err)
	}

	return nil
}
