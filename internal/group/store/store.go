package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/attesto/attesto/internal/group"
	"github.com/attesto/attesto/internal/pricing"
	quotestore "github.com/attesto/attesto/internal/quote/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectGroupColumns = `
	g.id, g.quote_id, g.group_label, g.document_type, g.complexity,
	g.complexity_multiplier, g.certification_type_id, g.certification_price,
	g.word_count, g.billable_pages, g.line_total, g.created_at, g.updated_at
`

func scanGroup(s scanner) (*group.Group, error) {
	var g group.Group

	var complexityStr string

	if err := s.Scan(
		&g.ID, &g.QuoteID, &g.Label, &g.DocumentType, &complexityStr,
		&g.ComplexityMultiplier, &g.CertificationTypeID, &g.CertificationPrice,
		&g.WordCount, &g.BillablePages, &g.LineTotal, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	g.Complexity = pricing.Complexity(complexityStr)

	return &g, nil
}

func (s *Store) GetGroup(ctx context.Context, id uuid.UUID) (*group.Group, error) {
	query := `SELECT ` + selectGroupColumns + ` FROM document_groups g WHERE g.id = $1`

	g, err := scanGroup(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrNotFound
		}

		return nil, fmt.Errorf("getting group: %w", err)
	}

	return g, nil
}

func (s *Store) ListGroups(ctx context.Context, quoteID uuid.UUID) ([]*group.Group, error) {
	query := `SELECT ` + selectGroupColumns + `
		FROM document_groups g
		WHERE g.quote_id = $1
		ORDER BY g.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}
	defer rows.Close()

	var groups []*group.Group

	for rows.Next() {
		g, err := scanGroup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning group: %w", err)
		}

		groups = append(groups, g)
	}

	return groups, rows.Err()
}

func (s *Store) ListAssignments(ctx context.Context, groupID uuid.UUID) ([]*group.Assignment, error) {
	query := `
		SELECT id, group_id, item_type, item_id, word_count_override, created_by, created_at
		FROM assignments
		WHERE group_id = $1
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*group.Assignment

	for rows.Next() {
		var a group.Assignment

		var itemTypeStr string

		if err := rows.Scan(&a.ID, &a.GroupID, &itemTypeStr, &a.ItemID, &a.WordCountOverride, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning assignment: %w", err)
		}

		a.ItemType = group.ItemType(itemTypeStr)
		assignments = append(assignments, &a)
	}

	return assignments, rows.Err()
}

func (s *Store) GroupQuoteID(ctx context.Context, groupID uuid.UUID) (uuid.UUID, error) {
	var quoteID uuid.UUID

	err := s.db.QueryRowContext(ctx, `SELECT quote_id FROM document_groups WHERE id = $1`, groupID).Scan(&quoteID)
	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, group.ErrNotFound
		}

		return uuid.Nil, fmt.Errorf("resolving group quote: %w", err)
	}

	return quoteID, nil
}

func (s *Store) AssignmentRef(ctx context.Context, assignmentID uuid.UUID) (*group.AssignmentRef, error) {
	query := `
		SELECT g.quote_id, a.group_id, a.item_type, a.item_id
		FROM assignments a
		JOIN document_groups g ON g.id = a.group_id
		WHERE a.id = $1
	`

	var ref group.AssignmentRef

	var itemTypeStr string

	err := s.db.QueryRowContext(ctx, query, assignmentID).
		Scan(&ref.QuoteID, &ref.GroupID, &itemTypeStr, &ref.ItemID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrAssignmentNotFound
		}

		return nil, fmt.Errorf("resolving assignment: %w", err)
	}

	ref.ItemType = group.ItemType(itemTypeStr)

	return &ref, nil
}

func (s *Store) Begin(ctx context.Context, quoteID uuid.UUID) (group.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning group tx: %w", err)
	}

	if err := quotestore.AcquireQuoteLock(ctx, dbTx, quoteID); err != nil {
		dbTx.Rollback()
		return nil, err
	}

	return &groupTx{tx: dbTx, TxTotals: quotestore.NewTxTotals(dbTx), TxGroups: NewTxGroups(dbTx)}, nil
}
