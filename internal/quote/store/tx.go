package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/attesto/attesto/internal/quote"
)

type quoteTx struct {
	tx *sql.Tx
	*TxTotals
}

func (q *quoteTx) Commit() error   { return q.tx.Commit() }
func (q *quoteTx) Rollback() error { return q.tx.Rollback() }

func (q *quoteTx) GetQuote(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	query := `SELECT ` + selectQuoteColumns + ` FROM quotes q WHERE q.id = $1`

	qt, err := scanQuote(q.tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("getting quote: %w", err)
	}

	return qt, nil
}

func (q *quoteTx) InsertAnalysis(ctx context.Context, a *quote.AnalysisResult) error {
	query := `
		INSERT INTO analysis_results (
			quote_id, source, file_name, detected_language, detected_document_type,
			assessed_complexity, complexity_multiplier, word_count, page_count,
			billable_pages, base_rate, line_total, certification_type_id,
			certification_price, non_billable
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at
	`

	err := q.tx.QueryRowContext(ctx, query,
		a.QuoteID,
		a.Source,
		a.FileName,
		a.DetectedLanguage,
		a.DetectedDocumentType,
		a.AssessedComplexity,
		a.ComplexityMultiplier,
		a.WordCount,
		a.PageCount,
		a.BillablePages,
		a.BaseRate,
		a.LineTotal,
		a.CertificationTypeID,
		a.CertificationPrice,
		a.NonBillable,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting analysis: %w", err)
	}

	return nil
}

func (q *quoteTx) InsertPages(ctx context.Context, pages []*quote.Page) error {
	query := `
		INSERT INTO pages (quote_id, analysis_id, page_number, word_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	for _, p := range pages {
		err := q.tx.QueryRowContext(ctx, query, p.QuoteID, p.AnalysisID, p.PageNumber, p.WordCount).
			Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting page %d: %w", p.PageNumber, err)
		}
	}

	return nil
}

func (q *quoteTx) DeleteManualAnalyses(ctx context.Context, quoteID uuid.UUID) error {
	query := `
		DELETE FROM analysis_results
		WHERE quote_id = $1 AND source = 'manual' AND group_id IS NULL
	`

	if _, err := q.tx.ExecContext(ctx, query, quoteID); err != nil {
		return fmt.Errorf("deleting manual analyses: %w", err)
	}

	return nil
}

func (q *quoteTx) SetStatus(ctx context.Context, quoteID uuid.UUID, status quote.Status) error {
	query := `UPDATE quotes SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := q.tx.ExecContext(ctx, query, status, quoteID)
	if err != nil {
		return fmt.Errorf("updating quote status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return quote.ErrNotFound
	}

	return nil
}

func (q *quoteTx) SetStaffNotes(ctx context.Context, quoteID uuid.UUID, notes string) error {
	query := `UPDATE quotes SET staff_notes = $1, updated_at = NOW() WHERE id = $2`

	if _, err := q.tx.ExecContext(ctx, query, notes, quoteID); err != nil {
		return fmt.Errorf("updating staff notes: %w", err)
	}

	return nil
}
