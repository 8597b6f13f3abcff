package quote

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/audit"
	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/pricing"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=quote
type Repository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	CreateQuote(ctx context.Context, q *Quote) error
	GetQuote(ctx context.Context, id uuid.UUID) (*Quote, error)
	ListAnalyses(ctx context.Context, quoteID uuid.UUID) ([]*AnalysisResult, error)

	// Begin opens a transaction serialized per quote: it takes the
	// quote's advisory lock before returning, so two mutations against
	// the same quote never interleave.
	Begin(ctx context.Context, quoteID uuid.UUID) (Tx, error)
}

type Tx interface {
	TotalsTx

	GetQuote(ctx context.Context, id uuid.UUID) (*Quote, error)
	InsertAnalysis(ctx context.Context, a *AnalysisResult) error
	InsertPages(ctx context.Context, pages []*Page) error
	DeleteManualAnalyses(ctx context.Context, quoteID uuid.UUID) error
	SetStatus(ctx context.Context, quoteID uuid.UUID, status Status) error
	SetStaffNotes(ctx context.Context, quoteID uuid.UUID, notes string) error
	Commit() error
	Rollback() error
}

// RateSource supplies reference data. Safe to cache: read-only from
// this core's perspective.
type RateSource interface {
	BaseRate(ctx context.Context) (decimal.Decimal, error)
	LanguageMultiplier(ctx context.Context, code string) (decimal.Decimal, error)
	ComplexityMultiplier(ctx context.Context, level pricing.Complexity) (decimal.Decimal, error)
	CertificationPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	RushFee(ctx context.Context) (decimal.Decimal, error)
	DeliveryFee(ctx context.Context, option string) (decimal.Decimal, error)
}

type Service struct {
	repo     Repository
	rates    RateSource
	activity audit.Recorder
}

func NewService(repo Repository, rates RateSource, activity audit.Recorder) *Service {
	return &Service{repo: repo, rates: rates, activity: activity}
}

type CreateParams struct {
	CustomerEmail    string
	CustomerPhone    string
	CustomerFullName string
	SourceLanguage   string
	TargetLanguage   string
	IsRush           bool
	DeliveryOption   string
	TaxRate          decimal.Decimal
}

// Create opens a draft quote for a new customer. The language
// multiplier, base rate, and flat fees are resolved from the rate
// table at intake and frozen onto the quote row; a later rate import
// changes new quotes only.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Quote, error) {
	if params.CustomerEmail == "" {
		return nil, fault.Validationf("customer email is required")
	}

	if params.TaxRate.IsNegative() {
		return nil, fault.Validationf("tax rate must not be negative")
	}

	baseRate, err := s.rates.BaseRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolving base rate: %w", err)
	}

	langMult, err := s.rates.LanguageMultiplier(ctx, params.TargetLanguage)
	if err != nil {
		return nil, fmt.Errorf("resolving language multiplier: %w", err)
	}

	rushFee := decimal.Zero
	if params.IsRush {
		rushFee, err = s.rates.RushFee(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolving rush fee: %w", err)
		}
	}

	deliveryFee := decimal.Zero
	if params.DeliveryOption != "" {
		deliveryFee, err = s.rates.DeliveryFee(ctx, params.DeliveryOption)
		if err != nil {
			return nil, fmt.Errorf("resolving delivery fee: %w", err)
		}
	}

	customer := &Customer{
		Email:    params.CustomerEmail,
		Phone:    params.CustomerPhone,
		FullName: params.CustomerFullName,
	}
	if err := s.repo.CreateCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	q := &Quote{
		CustomerID:         customer.ID,
		Status:             StatusDraft,
		SourceLanguage:     params.SourceLanguage,
		TargetLanguage:     params.TargetLanguage,
		LanguageMultiplier: langMult,
		BaseRate:           baseRate,
		IsRush:             params.IsRush,
		DeliveryOption:     params.DeliveryOption,
		Totals: Totals{
			TaxRate:     params.TaxRate,
			RushFee:     rushFee,
			DeliveryFee: deliveryFee,
		},
	}
	if err := s.repo.CreateQuote(ctx, q); err != nil {
		return nil, fmt.Errorf("creating quote: %w", err)
	}

	s.activity.Record(ctx, audit.Event{
		QuoteID: &q.ID,
		Action:  "quote.created",
		Detail:  map[string]any{"customer_email": params.CustomerEmail},
	})

	return q, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Quote, error) {
	return s.repo.GetQuote(ctx, id)
}

func (s *Service) ListAnalyses(ctx context.Context, quoteID uuid.UUID) ([]*AnalysisResult, error) {
	return s.repo.ListAnalyses(ctx, quoteID)
}

type AnalysisParams struct {
	Source               AnalysisSource
	FileName             string
	DetectedLanguage     string
	DetectedDocumentType string
	AssessedComplexity   pricing.Complexity
	WordCount            int
	PageCount            int
	PageWordCounts       []int // optional per-page breakdown
	CertificationTypeID  *uuid.UUID
	NonBillable          bool
}

// AddAnalysis ingests one per-file analysis record, prices it
// provisionally, and recomputes the quote's totals in the same
// transaction. The OCR values are an unvalidated starting point: staff
// override them later through the correction path.
func (s *Service) AddAnalysis(ctx context.Context, quoteID uuid.UUID, params AnalysisParams) (*AnalysisResult, error) {
	if params.WordCount < 0 {
		return nil, fault.Validationf("word count must not be negative")
	}

	if !params.AssessedComplexity.Valid() {
		return nil, fault.Validationf("unknown complexity level %q", params.AssessedComplexity)
	}

	complexityMult, err := s.rates.ComplexityMultiplier(ctx, params.AssessedComplexity)
	if err != nil {
		return nil, fmt.Errorf("resolving complexity multiplier: %w", err)
	}

	certPrice := decimal.Zero
	if params.CertificationTypeID != nil {
		certPrice, err = s.rates.CertificationPrice(ctx, *params.CertificationTypeID)
		if err != nil {
			return nil, fmt.Errorf("resolving certification price: %w", err)
		}
	}

	tx, err := s.repo.Begin(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	q, err := tx.GetQuote(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if q.Status.Terminal() {
		return nil, fault.Validationf("quote %s is %s and cannot be changed", quoteID, q.Status)
	}

	priced := pricing.Calculate(pricing.Input{
		WordCount:            params.WordCount,
		ComplexityMultiplier: complexityMult,
		LanguageMultiplier:   q.LanguageMultiplier,
		BaseRate:             q.BaseRate,
		CertificationPrice:   certPrice,
		NonBillable:          params.NonBillable,
	})

	source := params.Source
	if source == "" {
		source = SourceOCR
	}

	a := &AnalysisResult{
		QuoteID:              quoteID,
		Source:               source,
		FileName:             params.FileName,
		DetectedLanguage:     params.DetectedLanguage,
		DetectedDocumentType: params.DetectedDocumentType,
		AssessedComplexity:   params.AssessedComplexity,
		ComplexityMultiplier: complexityMult,
		WordCount:            params.WordCount,
		PageCount:            params.PageCount,
		BillablePages:        priced.BillablePages,
		BaseRate:             q.BaseRate,
		LineTotal:            priced.LineTotal,
		CertificationTypeID:  params.CertificationTypeID,
		CertificationPrice:   priced.CertificationPrice,
		NonBillable:          params.NonBillable,
	}
	if err := tx.InsertAnalysis(ctx, a); err != nil {
		return nil, fmt.Errorf("inserting analysis: %w", err)
	}

	if len(params.PageWordCounts) > 0 {
		pages := make([]*Page, len(params.PageWordCounts))
		for i, wc := range params.PageWordCounts {
			pages[i] = &Page{
				QuoteID:    quoteID,
				AnalysisID: &a.ID,
				PageNumber: i + 1,
				WordCount:  wc,
			}
		}

		if err := tx.InsertPages(ctx, pages); err != nil {
			return nil, fmt.Errorf("inserting pages: %w", err)
		}
	}

	if _, err := s.RecalculateWithin(ctx, tx, quoteID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit analysis: %w", err)
	}

	s.activity.Record(ctx, audit.Event{
		QuoteID: &quoteID,
		Action:  "analysis.added",
		Detail:  map[string]any{"analysis_id": a.ID.String(), "source": string(source)},
	})

	return a, nil
}

// Recalculate re-derives the quote's totals from its current child
// records in a fresh transaction. Idempotent: with no intervening
// mutation, a second call writes the identical totals.
func (s *Service) Recalculate(ctx context.Context, quoteID uuid.UUID) (*Totals, error) {
	tx, err := s.repo.Begin(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	totals, err := s.RecalculateWithin(ctx, tx, quoteID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit recompute: %w", err)
	}

	return totals, nil
}

// RecalculateWithin runs the totals aggregation inside the caller's
// transaction so it commits or rolls back with the mutation that
// triggered it. Either the whole new Totals value is written, or the
// prior totals stay as they were.
func (s *Service) RecalculateWithin(ctx context.Context, tx TotalsTx, quoteID uuid.UUID) (*Totals, error) {
	lines, err := tx.PricedLines(ctx, quoteID)
	if err != nil {
		return nil, fault.Consistency("deriving quote line totals", err)
	}

	adj, err := tx.AdjustmentSums(ctx, quoteID)
	if err != nil {
		return nil, fault.Consistency("deriving quote adjustments", err)
	}

	charges, err := tx.Charges(ctx, quoteID)
	if err != nil {
		return nil, fault.Consistency("deriving quote charges", err)
	}

	totals := ComputeTotals(lines, adj, charges)
	if err := tx.SaveTotals(ctx, quoteID, totals); err != nil {
		return nil, fault.Consistency("saving quote totals", err)
	}

	return &totals, nil
}

// SnapshotLine is one staff-entered line of a finalized quote.
type SnapshotLine struct {
	FileName            string
	DetectedLanguage    string
	DocumentType        string
	Complexity          pricing.Complexity
	WordCount           int
	CertificationTypeID *uuid.UUID
	NonBillable         bool
}

// Finalize replaces the quote's staff-entered pricing with a complete,
// approved snapshot and moves the quote to quote_ready. Every line is
// validated before anything is written; the totals are then re-derived
// from the rows the same way incremental corrections do it, never
// trusted from the caller.
func (s *Service) Finalize(ctx context.Context, quoteID uuid.UUID, lines []SnapshotLine, staffNotes, staffID string) error {
	if len(lines) == 0 {
		return fault.Validationf("a finalized quote needs at least one line item")
	}

	for i, l := range lines {
		if l.WordCount < 0 {
			return fault.Validationf("line %d: word count must not be negative", i+1)
		}

		if !l.Complexity.Valid() {
			return fault.Validationf("line %d: unknown complexity level %q", i+1, l.Complexity)
		}
	}

	tx, err := s.repo.Begin(ctx, quoteID)
	if err != nil {
		return fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	q, err := tx.GetQuote(ctx, quoteID)
	if err != nil {
		return err
	}

	if q.Status.Terminal() || q.Status == StatusPaid {
		return fault.Validationf("quote %s is %s and cannot be finalized", quoteID, q.Status)
	}

	if err := tx.DeleteManualAnalyses(ctx, quoteID); err != nil {
		return fmt.Errorf("clearing prior manual lines: %w", err)
	}

	for _, l := range lines {
		complexityMult, err := s.rates.ComplexityMultiplier(ctx, l.Complexity)
		if err != nil {
			return fmt.Errorf("resolving complexity multiplier: %w", err)
		}

		certPrice := decimal.Zero
		if l.CertificationTypeID != nil {
			certPrice, err = s.rates.CertificationPrice(ctx, *l.CertificationTypeID)
			if err != nil {
				return fmt.Errorf("resolving certification price: %w", err)
			}
		}

		priced := pricing.Calculate(pricing.Input{
			WordCount:            l.WordCount,
			ComplexityMultiplier: complexityMult,
			LanguageMultiplier:   q.LanguageMultiplier,
			BaseRate:             q.BaseRate,
			CertificationPrice:   certPrice,
			NonBillable:          l.NonBillable,
		})

		a := &AnalysisResult{
			QuoteID:              quoteID,
			Source:               SourceManual,
			FileName:             l.FileName,
			DetectedLanguage:     l.DetectedLanguage,
			DetectedDocumentType: l.DocumentType,
			AssessedComplexity:   l.Complexity,
			ComplexityMultiplier: complexityMult,
			WordCount:            l.WordCount,
			BillablePages:        priced.BillablePages,
			BaseRate:             q.BaseRate,
			LineTotal:            priced.LineTotal,
			CertificationTypeID:  l.CertificationTypeID,
			CertificationPrice:   priced.CertificationPrice,
			NonBillable:          l.NonBillable,
		}
		if err := tx.InsertAnalysis(ctx, a); err != nil {
			return fmt.Errorf("inserting snapshot line: %w", err)
		}
	}

	if staffNotes != "" {
		if err := tx.SetStaffNotes(ctx, quoteID, staffNotes); err != nil {
			return fmt.Errorf("saving staff notes: %w", err)
		}
	}

	if err := tx.SetStatus(ctx, quoteID, StatusQuoteReady); err != nil {
		return fmt.Errorf("updating quote status: %w", err)
	}

	if _, err := s.RecalculateWithin(ctx, tx, quoteID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit finalize: %w", err)
	}

	s.activity.Record(ctx, audit.Event{
		QuoteID: &quoteID,
		StaffID: staffID,
		Action:  "quote.finalized",
		Detail:  map[string]any{"lines": len(lines)},
	})

	return nil
}
