package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/group"
)

// TxGroups implements the group read/write surface over an open
// database transaction, including group.PricingTx. The correction
// dispatcher embeds it so group-scoped corrections run the same
// recompute as the group manager itself.
type TxGroups struct {
	tx *sql.Tx
}

func NewTxGroups(tx *sql.Tx) *TxGroups {
	return &TxGroups{tx: tx}
}

func (g *TxGroups) GetGroup(ctx context.Context, id uuid.UUID) (*group.Group, error) {
	query := `SELECT ` + selectGroupColumns + ` FROM document_groups g WHERE g.id = $1`

	grp, err := scanGroup(g.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrNotFound
		}

		return nil, fmt.Errorf("getting group: %w", err)
	}

	return grp, nil
}

func (g *TxGroups) UpdateGroupFields(ctx context.Context, grp *group.Group) error {
	query := `
		UPDATE document_groups SET
			group_label = $1,
			document_type = $2,
			complexity = $3,
			complexity_multiplier = $4,
			certification_type_id = $5,
			certification_price = $6,
			updated_at = NOW()
		WHERE id = $7
	`

	res, err := g.tx.ExecContext(ctx, query,
		grp.Label,
		grp.DocumentType,
		grp.Complexity,
		grp.ComplexityMultiplier,
		grp.CertificationTypeID,
		grp.CertificationPrice,
		grp.ID,
	)
	if err != nil {
		return fmt.Errorf("updating group: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return group.ErrNotFound
	}

	return nil
}

func (g *TxGroups) GroupPricing(ctx context.Context, groupID uuid.UUID) (*group.PricingContext, error) {
	query := `
		SELECT g.quote_id, g.complexity_multiplier, q.language_multiplier, q.base_rate
		FROM document_groups g
		JOIN quotes q ON q.id = g.quote_id
		WHERE g.id = $1
	`

	var pc group.PricingContext

	err := g.tx.QueryRowContext(ctx, query, groupID).
		Scan(&pc.QuoteID, &pc.ComplexityMultiplier, &pc.LanguageMultiplier, &pc.BaseRate)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrNotFound
		}

		return nil, fmt.Errorf("reading group pricing context: %w", err)
	}

	return &pc, nil
}

func (g *TxGroups) Members(ctx context.Context, groupID uuid.UUID) ([]group.Member, error) {
	query := `
		SELECT a.id, a.word_count_override,
			CASE a.item_type
				WHEN 'file' THEN f.word_count
				WHEN 'page' THEN p.word_count
			END AS item_word_count
		FROM assignments a
		LEFT JOIN analysis_results f ON a.item_type = 'file' AND f.id = a.item_id
		LEFT JOIN pages p ON a.item_type = 'page' AND p.id = a.item_id
		WHERE a.group_id = $1
	`

	rows, err := g.tx.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("reading group members: %w", err)
	}
	defer rows.Close()

	var members []group.Member

	for rows.Next() {
		var m group.Member
		if err := rows.Scan(&m.AssignmentID, &m.Override, &m.ItemWordCount); err != nil {
			return nil, fmt.Errorf("scanning group member: %w", err)
		}

		members = append(members, m)
	}

	return members, rows.Err()
}

func (g *TxGroups) PageAnalysis(ctx context.Context, pageID uuid.UUID) (*group.PageParent, error) {
	query := `
		SELECT p.analysis_id, a.group_id
		FROM pages p
		LEFT JOIN analysis_results a ON a.id = p.analysis_id
		WHERE p.id = $1
	`

	var (
		analysisID *uuid.UUID
		groupID    *uuid.UUID
	)

	err := g.tx.QueryRowContext(ctx, query, pageID).Scan(&analysisID, &groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrItemNotFound
		}

		return nil, fmt.Errorf("resolving page parent: %w", err)
	}

	if analysisID == nil {
		return nil, nil
	}

	return &group.PageParent{AnalysisID: *analysisID, GroupID: groupID}, nil
}

func (g *TxGroups) AnalysisSplitLine(ctx context.Context, analysisID uuid.UUID) (*group.SplitLine, error) {
	query := `
		SELECT a.id, a.group_id, a.word_count, a.complexity_multiplier,
			q.language_multiplier, a.base_rate, a.non_billable
		FROM analysis_results a
		JOIN quotes q ON q.id = a.quote_id
		WHERE a.id = $1
	`

	var sl group.SplitLine

	err := g.tx.QueryRowContext(ctx, query, analysisID).Scan(
		&sl.AnalysisID, &sl.GroupID, &sl.WordCount, &sl.ComplexityMultiplier,
		&sl.LanguageMultiplier, &sl.BaseRate, &sl.NonBillable,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, group.ErrItemNotFound
		}

		return nil, fmt.Errorf("reading analysis line: %w", err)
	}

	return &sl, nil
}

func (g *TxGroups) GroupedPages(ctx context.Context, analysisID uuid.UUID) (int, int, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(p.word_count), 0)
		FROM assignments a
		JOIN pages p ON a.item_type = 'page' AND p.id = a.item_id
		WHERE p.analysis_id = $1
	`

	var count, words int

	if err := g.tx.QueryRowContext(ctx, query, analysisID).Scan(&count, &words); err != nil {
		return 0, 0, fmt.Errorf("counting grouped pages: %w", err)
	}

	return count, words, nil
}

func (g *TxGroups) SetAnalysisLine(ctx context.Context, analysisID uuid.UUID, billablePages, lineTotal decimal.Decimal) error {
	query := `
		UPDATE analysis_results SET
			billable_pages = $1,
			line_total = $2,
			updated_at = NOW()
		WHERE id = $3
	`

	res, err := g.tx.ExecContext(ctx, query, billablePages, lineTotal, analysisID)
	if err != nil {
		return fmt.Errorf("saving analysis line: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return group.ErrItemNotFound
	}

	return nil
}

func (g *TxGroups) SaveAggregates(ctx context.Context, groupID uuid.UUID, agg group.Aggregates) error {
	query := `
		UPDATE document_groups SET
			word_count = $1,
			billable_pages = $2,
			line_total = $3,
			updated_at = NOW()
		WHERE id = $4
	`

	res, err := g.tx.ExecContext(ctx, query, agg.WordCount, agg.BillablePages, agg.LineTotal, groupID)
	if err != nil {
		return fmt.Errorf("saving group aggregates: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return group.ErrNotFound
	}

	return nil
}
