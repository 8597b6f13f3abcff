package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/adjustment"
	"github.com/attesto/attesto/internal/correction"
	"github.com/attesto/attesto/internal/group"
	groupstore "github.com/attesto/attesto/internal/group/store"
	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/quote"
	quotestore "github.com/attesto/attesto/internal/quote/store"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectCorrectionColumns = `
	id, quote_id, analysis_id, group_id, field_name, ai_value,
	corrected_value, reason, kb_flag, kb_comment, staff_id, created_at
`

func (s *Store) ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]*correction.Correction, error) {
	query := `SELECT ` + selectCorrectionColumns + `
		FROM corrections
		WHERE quote_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("listing corrections: %w", err)
	}
	defer rows.Close()

	var entries []*correction.Correction

	for rows.Next() {
		var c correction.Correction

		if err := rows.Scan(
			&c.ID, &c.QuoteID, &c.AnalysisID, &c.GroupID, &c.FieldName, &c.AIValue,
			&c.CorrectedValue, &c.Reason, &c.KnowledgeBaseFlag, &c.KnowledgeBaseComment,
			&c.StaffID, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning correction: %w", err)
		}

		entries = append(entries, &c)
	}

	return entries, rows.Err()
}

func (s *Store) Begin(ctx context.Context, quoteID uuid.UUID) (correction.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning correction tx: %w", err)
	}

	if err := quotestore.AcquireQuoteLock(ctx, dbTx, quoteID); err != nil {
		dbTx.Rollback()
		return nil, err
	}

	return &correctionTx{
		tx:       dbTx,
		TxTotals: quotestore.NewTxTotals(dbTx),
		TxGroups: groupstore.NewTxGroups(dbTx),
	}, nil
}

type correctionTx struct {
	tx *sql.Tx
	*quotestore.TxTotals
	*groupstore.TxGroups
}

func (c *correctionTx) Commit() error   { return c.tx.Commit() }
func (c *correctionTx) Rollback() error { return c.tx.Rollback() }

func (c *correctionTx) QuoteFields(ctx context.Context, quoteID uuid.UUID) (*correction.QuoteFields, error) {
	query := `
		SELECT customer_id, status, language_multiplier, base_rate, tax_rate,
		       delivery_option, shipping_address, billing_address, payment_method
		FROM quotes
		WHERE id = $1
	`

	var qf correction.QuoteFields

	var statusStr string

	err := c.tx.QueryRowContext(ctx, query, quoteID).Scan(
		&qf.CustomerID, &statusStr, &qf.LanguageMultiplier, &qf.BaseRate, &qf.TaxRate,
		&qf.DeliveryOption, &qf.ShippingAddress, &qf.BillingAddress, &qf.PaymentMethod,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrNotFound
		}

		return nil, fmt.Errorf("reading quote fields: %w", err)
	}

	qf.Status = quote.Status(statusStr)

	return &qf, nil
}

func (c *correctionTx) GetAnalysis(ctx context.Context, id uuid.UUID) (*quote.AnalysisResult, error) {
	query := `
		SELECT id, quote_id, group_id, source, file_name, detected_language,
		       detected_document_type, assessed_complexity, complexity_multiplier,
		       word_count, page_count, billable_pages, base_rate, line_total,
		       certification_type_id, certification_price, non_billable,
		       created_at, updated_at
		FROM analysis_results
		WHERE id = $1
	`

	var a quote.AnalysisResult

	var sourceStr, complexityStr string

	err := c.tx.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.QuoteID, &a.GroupID, &sourceStr, &a.FileName, &a.DetectedLanguage,
		&a.DetectedDocumentType, &complexityStr, &a.ComplexityMultiplier,
		&a.WordCount, &a.PageCount, &a.BillablePages, &a.BaseRate, &a.LineTotal,
		&a.CertificationTypeID, &a.CertificationPrice, &a.NonBillable,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, quote.ErrAnalysisNotFound
		}

		return nil, fmt.Errorf("reading analysis: %w", err)
	}

	a.Source = quote.AnalysisSource(sourceStr)
	a.AssessedComplexity = pricing.Complexity(complexityStr)

	return &a, nil
}

func (c *correctionTx) UpdateAnalysis(ctx context.Context, a *quote.AnalysisResult) error {
	query := `
		UPDATE analysis_results SET
			detected_language = $1,
			detected_document_type = $2,
			assessed_complexity = $3,
			complexity_multiplier = $4,
			word_count = $5,
			page_count = $6,
			billable_pages = $7,
			line_total = $8,
			certification_type_id = $9,
			certification_price = $10,
			updated_at = NOW()
		WHERE id = $11
	`

	res, err := c.tx.ExecContext(ctx, query,
		a.DetectedLanguage,
		a.DetectedDocumentType,
		a.AssessedComplexity,
		a.ComplexityMultiplier,
		a.WordCount,
		a.PageCount,
		a.BillablePages,
		a.LineTotal,
		a.CertificationTypeID,
		a.CertificationPrice,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating analysis: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return quote.ErrAnalysisNotFound
	}

	return nil
}

func (c *correctionTx) GetPage(ctx context.Context, id uuid.UUID) (*quote.Page, error) {
	query := `
		SELECT id, quote_id, analysis_id, page_number, word_count, created_at
		FROM pages
		WHERE id = $1
	`

	var p quote.Page

	err := c.tx.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.QuoteID, &p.AnalysisID, &p.PageNumber, &p.WordCount, &p.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, correction.ErrPageNotFound
		}

		return nil, fmt.Errorf("reading page: %w", err)
	}

	return &p, nil
}

func (c *correctionTx) SetPageWordCount(ctx context.Context, id uuid.UUID, wordCount int) error {
	query := `UPDATE pages SET word_count = $1, updated_at = NOW() WHERE id = $2`

	res, err := c.tx.ExecContext(ctx, query, wordCount, id)
	if err != nil {
		return fmt.Errorf("updating page word count: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return correction.ErrPageNotFound
	}

	return nil
}

func (c *correctionTx) PageGroup(ctx context.Context, pageID uuid.UUID) (*uuid.UUID, error) {
	query := `SELECT group_id FROM assignments WHERE item_type = $1 AND item_id = $2`

	var groupID uuid.UUID

	err := c.tx.QueryRowContext(ctx, query, group.ItemPage, pageID).Scan(&groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("reading page assignment: %w", err)
	}

	return &groupID, nil
}

func (c *correctionTx) SetTaxRate(ctx context.Context, quoteID uuid.UUID, rate decimal.Decimal) error {
	return c.setQuoteColumn(ctx, quoteID, "tax_rate", rate)
}

func (c *correctionTx) SetDeliveryOption(ctx context.Context, quoteID uuid.UUID, option string) error {
	return c.setQuoteColumn(ctx, quoteID, "delivery_option", option)
}

func (c *correctionTx) SetDeliveryFee(ctx context.Context, quoteID uuid.UUID, fee decimal.Decimal) error {
	return c.setQuoteColumn(ctx, quoteID, "delivery_fee", fee)
}

func (c *correctionTx) SetShippingAddress(ctx context.Context, quoteID uuid.UUID, address string) error {
	return c.setQuoteColumn(ctx, quoteID, "shipping_address", address)
}

func (c *correctionTx) SetBillingAddress(ctx context.Context, quoteID uuid.UUID, address string) error {
	return c.setQuoteColumn(ctx, quoteID, "billing_address", address)
}

func (c *correctionTx) SetPaymentMethod(ctx context.Context, quoteID uuid.UUID, method string) error {
	return c.setQuoteColumn(ctx, quoteID, "payment_method", method)
}

// setQuoteColumn is only ever called with a column name from this file.
func (c *correctionTx) setQuoteColumn(ctx context.Context, quoteID uuid.UUID, column string, value any) error {
	query := fmt.Sprintf(`UPDATE quotes SET %s = $1, updated_at = NOW() WHERE id = $2`, column)

	res, err := c.tx.ExecContext(ctx, query, value, quoteID)
	if err != nil {
		return fmt.Errorf("updating quote %s: %w", column, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return quote.ErrNotFound
	}

	return nil
}

func (c *correctionTx) GetCustomer(ctx context.Context, id uuid.UUID) (*quote.Customer, error) {
	query := `SELECT id, email, phone, full_name FROM customers WHERE id = $1`

	var cust quote.Customer

	err := c.tx.QueryRowContext(ctx, query, id).Scan(&cust.ID, &cust.Email, &cust.Phone, &cust.FullName)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, correction.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("reading customer: %w", err)
	}

	return &cust, nil
}

func (c *correctionTx) UpdateCustomer(ctx context.Context, cust *quote.Customer) error {
	query := `UPDATE customers SET email = $1, phone = $2, full_name = $3 WHERE id = $4`

	res, err := c.tx.ExecContext(ctx, query, cust.Email, cust.Phone, cust.FullName, cust.ID)
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return correction.ErrCustomerNotFound
	}

	return nil
}

func (c *correctionTx) LiveLedgerAmount(ctx context.Context, quoteID uuid.UUID, kind adjustment.Kind) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(calculated_amount), 0)
		FROM adjustments
		WHERE quote_id = $1 AND kind = $2 AND superseded_by IS NULL
	`

	var amount decimal.Decimal

	if err := c.tx.QueryRowContext(ctx, query, quoteID, kind).Scan(&amount); err != nil {
		return decimal.Decimal{}, fmt.Errorf("summing live %s entries: %w", kind, err)
	}

	return amount, nil
}

func (c *correctionTx) InsertLedgerEntry(ctx context.Context, adj *adjustment.Adjustment) error {
	query := `
		INSERT INTO adjustments (quote_id, kind, value_type, value, calculated_amount, reason, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := c.tx.QueryRowContext(ctx, query,
		adj.QuoteID,
		adj.Kind,
		adj.ValueType,
		adj.Value,
		adj.CalculatedAmount,
		adj.Reason,
		adj.CreatedBy,
	).Scan(&adj.ID, &adj.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting ledger entry: %w", err)
	}

	return nil
}

func (c *correctionTx) SupersedeLedgerKind(ctx context.Context, quoteID uuid.UUID, kind adjustment.Kind, byID uuid.UUID) error {
	query := `
		UPDATE adjustments SET superseded_by = $1
		WHERE quote_id = $2 AND kind = $3 AND superseded_by IS NULL AND id <> $1
	`

	if _, err := c.tx.ExecContext(ctx, query, byID, quoteID, kind); err != nil {
		return fmt.Errorf("superseding %s entries: %w", kind, err)
	}

	return nil
}

func (c *correctionTx) InsertCorrection(ctx context.Context, cor *correction.Correction) error {
	query := `
		INSERT INTO corrections (quote_id, analysis_id, group_id, field_name, ai_value,
			corrected_value, reason, kb_flag, kb_comment, staff_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := c.tx.QueryRowContext(ctx, query,
		cor.QuoteID,
		cor.AnalysisID,
		cor.GroupID,
		cor.FieldName,
		cor.AIValue,
		cor.CorrectedValue,
		cor.Reason,
		cor.KnowledgeBaseFlag,
		cor.KnowledgeBaseComment,
		cor.StaffID,
	).Scan(&cor.ID, &cor.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting correction: %w", err)
	}

	return nil
}
