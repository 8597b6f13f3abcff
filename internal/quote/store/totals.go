package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/attesto/attesto/internal/quote"
)

// TxTotals implements quote.TotalsTx over an open database transaction.
// The group, correction, and adjustment stores embed it so every
// mutation path shares one totals read/write implementation.
type TxTotals struct {
	tx *sql.Tx
}

func NewTxTotals(tx *sql.Tx) *TxTotals {
	return &TxTotals{tx: tx}
}

// PricedLines returns one line per billable unit: analyses not assigned
// to a group, plus every group aggregate. A group-assigned file is
// represented only through its group, never twice.
func (t *TxTotals) PricedLines(ctx context.Context, quoteID uuid.UUID) ([]quote.PricedLine, error) {
	query := `
		SELECT line_total, certification_price
		FROM analysis_results
		WHERE quote_id = $1 AND group_id IS NULL
		UNION ALL
		SELECT line_total, certification_price
		FROM document_groups
		WHERE quote_id = $1
	`

	rows, err := t.tx.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("reading priced lines: %w", err)
	}
	defer rows.Close()

	var lines []quote.PricedLine

	for rows.Next() {
		var l quote.PricedLine
		if err := rows.Scan(&l.LineTotal, &l.CertificationPrice); err != nil {
			return nil, fmt.Errorf("scanning priced line: %w", err)
		}

		lines = append(lines, l)
	}

	return lines, rows.Err()
}

func (t *TxTotals) AdjustmentSums(ctx context.Context, quoteID uuid.UUID) (quote.AdjustmentSums, error) {
	query := `
		SELECT
			COALESCE(SUM(calculated_amount) FILTER (WHERE kind IN ('discount', 'offset_discount')), 0),
			COALESCE(SUM(calculated_amount) FILTER (WHERE kind = 'surcharge'), 0)
		FROM adjustments
		WHERE quote_id = $1 AND superseded_by IS NULL
	`

	var sums quote.AdjustmentSums
	if err := t.tx.QueryRowContext(ctx, query, quoteID).Scan(&sums.Discount, &sums.Surcharge); err != nil {
		return quote.AdjustmentSums{}, fmt.Errorf("summing adjustments: %w", err)
	}

	return sums, nil
}

func (t *TxTotals) Charges(ctx context.Context, quoteID uuid.UUID) (quote.Charges, error) {
	query := `SELECT rush_fee, delivery_fee, tax_rate FROM quotes WHERE id = $1`

	var ch quote.Charges
	if err := t.tx.QueryRowContext(ctx, query, quoteID).Scan(&ch.RushFee, &ch.DeliveryFee, &ch.TaxRate); err != nil {
		if err == sql.ErrNoRows {
			return quote.Charges{}, quote.ErrNotFound
		}

		return quote.Charges{}, fmt.Errorf("reading quote charges: %w", err)
	}

	return ch, nil
}

// SaveTotals writes the flat columns and the calculated_totals snapshot
// in one statement. A reader can never observe one updated and the
// other stale.
func (t *TxTotals) SaveTotals(ctx context.Context, quoteID uuid.UUID, totals quote.Totals) error {
	snapshot, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("encoding totals snapshot: %w", err)
	}

	query := `
		UPDATE quotes SET
			translation_total = $1,
			certification_total = $2,
			subtotal = $3,
			discount_total = $4,
			surcharge_total = $5,
			rush_fee = $6,
			delivery_fee = $7,
			tax_rate = $8,
			tax_amount = $9,
			total = $10,
			balance_due = $10 - amount_paid,
			calculated_totals = $11,
			updated_at = NOW()
		WHERE id = $12
	`

	res, err := t.tx.ExecContext(ctx, query,
		totals.TranslationTotal,
		totals.CertificationTotal,
		totals.Subtotal,
		totals.DiscountTotal,
		totals.SurchargeTotal,
		totals.RushFee,
		totals.DeliveryFee,
		totals.TaxRate,
		totals.TaxAmount,
		totals.Total,
		snapshot,
		quoteID,
	)
	if err != nil {
		return fmt.Errorf("saving quote totals: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return quote.ErrNotFound
	}

	return nil
}
