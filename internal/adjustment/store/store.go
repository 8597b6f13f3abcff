package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/adjustment"
	"github.com/attesto/attesto/internal/quote"
	quotestore "github.com/attesto/attesto/internal/quote/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectAdjustmentColumns = `
	id, quote_id, kind, value_type, value, calculated_amount,
	reason, created_by, superseded_by, created_at
`

func (s *Store) ListAdjustments(ctx context.Context, quoteID uuid.UUID) ([]*adjustment.Adjustment, error) {
	query := `SELECT ` + selectAdjustmentColumns + `
		FROM adjustments
		WHERE quote_id = $1
		ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("listing adjustments: %w", err)
	}
	defer rows.Close()

	var entries []*adjustment.Adjustment

	for rows.Next() {
		var a adjustment.Adjustment

		var kindStr, valueTypeStr string

		if err := rows.Scan(
			&a.ID, &a.QuoteID, &kindStr, &valueTypeStr, &a.Value, &a.CalculatedAmount,
			&a.Reason, &a.CreatedBy, &a.SupersededBy, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning adjustment: %w", err)
		}

		a.Kind = adjustment.Kind(kindStr)
		a.ValueType = adjustment.ValueType(valueTypeStr)
		entries = append(entries, &a)
	}

	return entries, rows.Err()
}

func (s *Store) Begin(ctx context.Context, quoteID uuid.UUID) (adjustment.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning adjustment tx: %w", err)
	}

	if err := quotestore.AcquireQuoteLock(ctx, dbTx, quoteID); err != nil {
		dbTx.Rollback()
		return nil, err
	}

	return &adjustmentTx{tx: dbTx, TxTotals: quotestore.NewTxTotals(dbTx)}, nil
}

type adjustmentTx struct {
	tx *sql.Tx
	*quotestore.TxTotals
}

func (a *adjustmentTx) Commit() error   { return a.tx.Commit() }
func (a *adjustmentTx) Rollback() error { return a.tx.Rollback() }

func (a *adjustmentTx) QuoteFinance(ctx context.Context, quoteID uuid.UUID) (*adjustment.Finance, error) {
	query := `SELECT status, subtotal, total, amount_paid FROM quotes WHERE id = $1`

	var fin adjustment.Finance

	var statusStr string

	err := a.tx.QueryRowContext(ctx, query, quoteID).
		Scan(&statusStr, &fin.Subtotal, &fin.Total, &fin.AmountPaid)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("reading quote finance: %w", err)
	}

	fin.Status = quote.Status(statusStr)

	return &fin, nil
}

func (a *adjustmentTx) InsertAdjustment(ctx context.Context, adj *adjustment.Adjustment) error {
	query := `
		INSERT INTO adjustments (quote_id, kind, value_type, value, calculated_amount, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := a.tx.QueryRowContext(ctx, query,
		adj.QuoteID,
		adj.Kind,
		adj.ValueType,
		adj.Value,
		adj.CalculatedAmount,
		adj.Reason,
		adj.CreatedBy,
	).Scan(&adj.ID, &adj.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting adjustment: %w", err)
	}

	return nil
}

func (a *adjustmentTx) MarkSuperseded(ctx context.Context, id, byID uuid.UUID) error {
	query := `UPDATE adjustments SET superseded_by = $1 WHERE id = $2 AND superseded_by IS NULL`

	res, err := a.tx.ExecContext(ctx, query, byID, id)
	if err != nil {
		return fmt.Errorf("superseding adjustment: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return adjustment.ErrNotFound
	}

	return nil
}

func (a *adjustmentTx) ApplyRefund(ctx context.Context, quoteID uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE quotes SET
			amount_paid = amount_paid - $1,
			refund_amount = refund_amount + $1,
			updated_at = NOW()
		WHERE id = $2
	`

	if _, err := a.tx.ExecContext(ctx, query, amount, quoteID); err != nil {
		return fmt.Errorf("applying refund: %w", err)
	}

	return nil
}

func (a *adjustmentTx) ApplyCredit(ctx context.Context, quoteID uuid.UUID, amount decimal.Decimal) error {
	query := `
		UPDATE quotes SET
			amount_paid = amount_paid + $1,
			updated_at = NOW()
		WHERE id = $2
	`

	if _, err := a.tx.ExecContext(ctx, query, amount, quoteID); err != nil {
		return fmt.Errorf("applying credit: %w", err)
	}

	return nil
}

func (a *adjustmentTx) SetStatus(ctx context.Context, quoteID uuid.UUID, status quote.Status) error {
	query := `UPDATE quotes SET status = $1, updated_at = NOW() WHERE id = $2`

	if _, err := a.tx.ExecContext(ctx, query, status, quoteID); err != nil {
		return fmt.Errorf("updating quote status: %w", err)
	}

	return nil
}
