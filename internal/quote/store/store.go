package store

import (
	"context"
	"database/sql"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"

	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/quote"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectQuoteColumns = `
	q.id, q.customer_id, q.status, q.source_language, q.target_language,
	q.language_multiplier, q.base_rate, q.is_rush, q.delivery_option,
	q.payment_method, q.shipping_address, q.billing_address, q.staff_notes,
	q.translation_total, q.certification_total, q.subtotal,
	q.discount_total, q.surcharge_total, q.rush_fee, q.delivery_fee,
	q.tax_rate, q.tax_amount, q.total,
	q.amount_paid, q.balance_due, q.refund_amount,
	q.created_at, q.updated_at
`

func scanQuote(s scanner) (*quote.Quote, error) {
	var q quote.Quote

	var statusStr string

	if err := s.Scan(
		&q.ID, &q.CustomerID, &statusStr, &q.SourceLanguage, &q.TargetLanguage,
		&q.LanguageMultiplier, &q.BaseRate, &q.IsRush, &q.DeliveryOption,
		&q.PaymentMethod, &q.ShippingAddress, &q.BillingAddress, &q.StaffNotes,
		&q.Totals.TranslationTotal, &q.Totals.CertificationTotal, &q.Totals.Subtotal,
		&q.Totals.DiscountTotal, &q.Totals.SurchargeTotal, &q.Totals.RushFee, &q.Totals.DeliveryFee,
		&q.Totals.TaxRate, &q.Totals.TaxAmount, &q.Totals.Total,
		&q.AmountPaid, &q.BalanceDue, &q.RefundAmount,
		&q.CreatedAt, &q.UpdatedAt,
	); err != nil {
		return nil, err
	}

	q.Status = quote.Status(statusStr)

	return &q, nil
}

func (s *Store) CreateCustomer(ctx context.Context, c *quote.Customer) error {
	query := `
		INSERT INTO customers (email, phone, full_name)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, c.Email, c.Phone, c.FullName).Scan(&c.ID); err != nil {
		return fmt.Errorf("creating customer: %w", err)
	}

	return nil
}

func (s *Store) CreateQuote(ctx context.Context, q *quote.Quote) error {
	query := `
		INSERT INTO quotes (
			customer_id, status, source_language, target_language,
			language_multiplier, base_rate, is_rush, delivery_option,
			tax_rate, rush_fee, delivery_fee
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		q.CustomerID,
		q.Status,
		q.SourceLanguage,
		q.TargetLanguage,
		q.LanguageMultiplier,
		q.BaseRate,
		q.IsRush,
		q.DeliveryOption,
		q.Totals.TaxRate,
		q.Totals.RushFee,
		q.Totals.DeliveryFee,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating quote: %w", err)
	}

	return nil
}

func (s *Store) GetQuote(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	query := `SELECT ` + selectQuoteColumns + ` FROM quotes q WHERE q.id = $1`

	q, err := scanQuote(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("getting quote: %w", err)
	}

	return q, nil
}

const selectAnalysisColumns = `
	a.id, a.quote_id, a.group_id, a.source, a.file_name,
	a.detected_language, a.detected_document_type, a.assessed_complexity,
	a.complexity_multiplier, a.word_count, a.page_count, a.billable_pages,
	a.base_rate, a.line_total, a.certification_type_id, a.certification_price,
	a.non_billable, a.created_at, a.updated_at
`

func scanAnalysis(s scanner) (*quote.AnalysisResult, error) {
	var a quote.AnalysisResult

	var sourceStr, complexityStr string

	if err := s.Scan(
		&a.ID, &a.QuoteID, &a.GroupID, &sourceStr, &a.FileName,
		&a.DetectedLanguage, &a.DetectedDocumentType, &complexityStr,
		&a.ComplexityMultiplier, &a.WordCount, &a.PageCount, &a.BillablePages,
		&a.BaseRate, &a.LineTotal, &a.CertificationTypeID, &a.CertificationPrice,
		&a.NonBillable, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	a.Source = quote.AnalysisSource(sourceStr)
	a.AssessedComplexity = pricing.Complexity(complexityStr)

	return &a, nil
}

func (s *Store) ListAnalyses(ctx context.Context, quoteID uuid.UUID) ([]*quote.AnalysisResult, error) {
	query := `SELECT ` + selectAnalysisColumns + `
		FROM analysis_results a
		WHERE a.quote_id = $1
		ORDER BY a.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("listing analyses: %w", err)
	}
	defer rows.Close()

	var results []*quote.AnalysisResult

	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning analysis: %w", err)
		}

		results = append(results, a)
	}

	return results, rows.Err()
}

// quoteLockKey hashes a quote id into the advisory lock keyspace.
func quoteLockKey(quoteID uuid.UUID) int64 {
	h := fnv.New64a()
	h.Write(quoteID[:])

	return int64(h.Sum64())
}

// AcquireQuoteLock serializes writers on a single quote for the
// lifetime of the transaction. Writers on different quotes proceed
// independently.
func AcquireQuoteLock(ctx context.Context, tx *sql.Tx, quoteID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", quoteLockKey(quoteID)); err != nil {
		return fmt.Errorf("acquiring quote lock: %w", err)
	}

	return nil
}

func (s *Store) Begin(ctx context.Context, quoteID uuid.UUID) (quote.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning quote tx: %w", err)
	}

	if err := AcquireQuoteLock(ctx, dbTx, quoteID); err != nil {
		dbTx.Rollback()
		return nil, err
	}

	return &quoteTx{tx: dbTx, TxTotals: NewTxTotals(dbTx)}, nil
}
