package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/attesto/attesto/internal/group"
	"github.com/attesto/attesto/internal/quote"
	quotestore "github.com/attesto/attesto/internal/quote/store"
)

type groupTx struct {
	tx *sql.Tx
	*quotestore.TxTotals
	*TxGroups
}

func (g *groupTx) Commit() error   { return g.tx.Commit() }
func (g *groupTx) Rollback() error { return g.tx.Rollback() }

func (g *groupTx) QuoteStatus(ctx context.Context, quoteID uuid.UUID) (quote.Status, error) {
	var statusStr string

	err := g.tx.QueryRowContext(ctx, `SELECT status FROM quotes WHERE id = $1`, quoteID).Scan(&statusStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", quote.ErrNotFound
		}

		return "", fmt.Errorf("reading quote status: %w", err)
	}

	return quote.Status(statusStr), nil
}

func (g *groupTx) InsertGroup(ctx context.Context, grp *group.Group) error {
	query := `
		INSERT INTO document_groups (
			quote_id, group_label, document_type, complexity,
			complexity_multiplier, certification_type_id, certification_price
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := g.tx.QueryRowContext(ctx, query,
		grp.QuoteID,
		grp.Label,
		grp.DocumentType,
		grp.Complexity,
		grp.ComplexityMultiplier,
		grp.CertificationTypeID,
		grp.CertificationPrice,
	).Scan(&grp.ID, &grp.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting group: %w", err)
	}

	return nil
}

func (g *groupTx) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	res, err := g.tx.ExecContext(ctx, `DELETE FROM document_groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return group.ErrNotFound
	}

	return nil
}

func (g *groupTx) ItemQuote(ctx context.Context, itemType group.ItemType, itemID uuid.UUID) (uuid.UUID, error) {
	var query string

	switch itemType {
	case group.ItemFile:
		query = `SELECT quote_id FROM analysis_results WHERE id = $1`
	case group.ItemPage:
		query = `SELECT quote_id FROM pages WHERE id = $1`
	default:
		return uuid.Nil, fmt.Errorf("unknown item type %q", itemType)
	}

	var quoteID uuid.UUID
	if err := g.tx.QueryRowContext(ctx, query, itemID).Scan(&quoteID); err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, group.ErrItemNotFound
		}

		return uuid.Nil, fmt.Errorf("resolving item quote: %w", err)
	}

	return quoteID, nil
}

func (g *groupTx) CurrentAssignment(ctx context.Context, itemType group.ItemType, itemID uuid.UUID) (*group.Assignment, error) {
	query := `
		SELECT id, group_id, item_type, item_id, word_count_override, created_by, created_at
		FROM assignments
		WHERE item_type = $1 AND item_id = $2
	`

	var a group.Assignment

	var itemTypeStr string

	err := g.tx.QueryRowContext(ctx, query, itemType, itemID).
		Scan(&a.ID, &a.GroupID, &itemTypeStr, &a.ItemID, &a.WordCountOverride, &a.CreatedBy, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}

	a.ItemType = group.ItemType(itemTypeStr)

	return &a, nil
}

func (g *groupTx) UpsertAssignment(ctx context.Context, a *group.Assignment) error {
	query := `
		INSERT INTO assignments (group_id, item_type, item_id, word_count_override, created_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (item_type, item_id) DO UPDATE SET
			group_id = EXCLUDED.group_id,
			word_count_override = EXCLUDED.word_count_override,
			created_by = EXCLUDED.created_by,
			created_at = NOW()
		RETURNING id, created_at
	`

	err := g.tx.QueryRowContext(ctx, query,
		a.GroupID,
		a.ItemType,
		a.ItemID,
		a.WordCountOverride,
		a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("upserting assignment: %w", err)
	}

	return nil
}

func (g *groupTx) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	res, err := g.tx.ExecContext(ctx, `DELETE FROM assignments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return group.ErrAssignmentNotFound
	}

	return nil
}

func (g *groupTx) DetachAssignments(ctx context.Context, groupID uuid.UUID) error {
	if _, err := g.tx.ExecContext(ctx, `DELETE FROM assignments WHERE group_id = $1`, groupID); err != nil {
		return fmt.Errorf("detaching assignments: %w", err)
	}

	return nil
}

func (g *groupTx) GroupPageAnalyses(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT p.analysis_id
		FROM assignments a
		JOIN pages p ON a.item_type = 'page' AND p.id = a.item_id
		WHERE a.group_id = $1 AND p.analysis_id IS NOT NULL
	`

	rows, err := g.tx.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing grouped page parents: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning page parent: %w", err)
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (g *groupTx) SetAnalysisGroup(ctx context.Context, analysisID uuid.UUID, groupID *uuid.UUID) error {
	query := `UPDATE analysis_results SET group_id = $1, updated_at = NOW() WHERE id = $2`

	if _, err := g.tx.ExecContext(ctx, query, groupID, analysisID); err != nil {
		return fmt.Errorf("setting analysis group: %w", err)
	}

	return nil
}

func (g *groupTx) ClearAnalysisGroup(ctx context.Context, groupID uuid.UUID) error {
	query := `UPDATE analysis_results SET group_id = NULL, updated_at = NOW() WHERE group_id = $1`

	if _, err := g.tx.ExecContext(ctx, query, groupID); err != nil {
		return fmt.Errorf("clearing analysis group: %w", err)
	}

	return nil
}

