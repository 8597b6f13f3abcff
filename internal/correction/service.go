package correction

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/adjustment"
	"github.com/attesto/attesto/internal/audit"
	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/group"
	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/quote"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=correction
type Repository interface {
	ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]*Correction, error)

	// Begin opens a transaction holding the quote's advisory lock, so
	// two corrections against the same quote are serialized and the
	// audit log keeps them in commit order.
	Begin(ctx context.Context, quoteID uuid.UUID) (Tx, error)
}

// QuoteFields is the quote-scoped state the dispatcher reads and
// corrects.
type QuoteFields struct {
	CustomerID         uuid.UUID
	Status             quote.Status
	LanguageMultiplier decimal.Decimal
	BaseRate           decimal.Decimal
	TaxRate            decimal.Decimal
	DeliveryOption     string
	ShippingAddress    string
	BillingAddress     string
	PaymentMethod      string
}

type Tx interface {
	quote.TotalsTx
	group.PricingTx
	group.LineTx

	QuoteFields(ctx context.Context, quoteID uuid.UUID) (*QuoteFields, error)

	GetAnalysis(ctx context.Context, id uuid.UUID) (*quote.AnalysisResult, error)
	UpdateAnalysis(ctx context.Context, a *quote.AnalysisResult) error

	GetGroup(ctx context.Context, id uuid.UUID) (*group.Group, error)
	UpdateGroupFields(ctx context.Context, g *group.Group) error

	GetPage(ctx context.Context, id uuid.UUID) (*quote.Page, error)
	SetPageWordCount(ctx context.Context, id uuid.UUID, wordCount int) error
	// PageGroup returns the id of the group the page is currently
	// assigned to, or nil.
	PageGroup(ctx context.Context, pageID uuid.UUID) (*uuid.UUID, error)

	SetTaxRate(ctx context.Context, quoteID uuid.UUID, rate decimal.Decimal) error
	SetDeliveryOption(ctx context.Context, quoteID uuid.UUID, option string) error
	SetDeliveryFee(ctx context.Context, quoteID uuid.UUID, fee decimal.Decimal) error
	SetShippingAddress(ctx context.Context, quoteID uuid.UUID, address string) error
	SetBillingAddress(ctx context.Context, quoteID uuid.UUID, address string) error
	SetPaymentMethod(ctx context.Context, quoteID uuid.UUID, method string) error

	GetCustomer(ctx context.Context, id uuid.UUID) (*quote.Customer, error)
	UpdateCustomer(ctx context.Context, c *quote.Customer) error

	// LiveLedgerAmount sums the non-superseded entries of one kind.
	LiveLedgerAmount(ctx context.Context, quoteID uuid.UUID, kind adjustment.Kind) (decimal.Decimal, error)
	InsertLedgerEntry(ctx context.Context, a *adjustment.Adjustment) error
	// SupersedeLedgerKind marks every live entry of the kind, except
	// byID, as superseded by byID.
	SupersedeLedgerKind(ctx context.Context, quoteID uuid.UUID, kind adjustment.Kind, byID uuid.UUID) error

	InsertCorrection(ctx context.Context, c *Correction) error
	Commit() error
	Rollback() error
}

type RateSource interface {
	ComplexityMultiplier(ctx context.Context, level pricing.Complexity) (decimal.Decimal, error)
	CertificationPrice(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	DeliveryFee(ctx context.Context, option string) (decimal.Decimal, error)
}

type TotalsRecalculator interface {
	RecalculateWithin(ctx context.Context, tx quote.TotalsTx, quoteID uuid.UUID) (*quote.Totals, error)
}

type Service struct {
	repo     Repository
	rates    RateSource
	totals   TotalsRecalculator
	activity audit.Recorder
}

func NewService(repo Repository, rates RateSource, totals TotalsRecalculator, activity audit.Recorder) *Service {
	return &Service{repo: repo, rates: rates, totals: totals, activity: activity}
}

func (s *Service) ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]*Correction, error) {
	return s.repo.ListByQuote(ctx, quoteID)
}

type ApplyParams struct {
	Target         TargetRef
	FieldName      string
	OriginalValue  string
	CorrectedValue string
	Reason         string
	KnowledgeBase  bool
	KBComment      string
	StaffID        string
}

// effect is what a dispatch branch reports back: the live value before
// the edit and whether the quote totals must be recomputed.
type effect struct {
	prior     string
	recompute bool
}

// Apply routes one staff override to its field's handler, writes the
// Correction record in the same transaction as the mutation, and, when
// a priced field changed, recomputes the owning group and quote before
// committing. Unknown fields are recorded as generic corrections and
// touch nothing; audit capture is never the reason a staff action
// fails.
//
// A direct billable_pages or line_total override stays live until its
// own inputs are corrected again: quote recomputes only read analysis
// rows, they never re-derive them.
func (s *Service) Apply(ctx context.Context, params ApplyParams) (*Correction, error) {
	if params.FieldName == "" {
		return nil, fault.Validationf("field_name is required")
	}

	tx, err := s.repo.Begin(ctx, params.Target.QuoteID)
	if err != nil {
		return nil, fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	qf, err := tx.QuoteFields(ctx, params.Target.QuoteID)
	if err != nil {
		return nil, err
	}

	if qf.Status.Terminal() {
		return nil, fault.Validationf("quote %s is %s and cannot be corrected", params.Target.QuoteID, qf.Status)
	}

	field := Field(params.FieldName)

	var eff effect

	switch field {
	case FieldWordCount, FieldPageCount, FieldBillablePages, FieldLineTotal,
		FieldComplexityMultiplier, FieldCertificationPrice:
		eff, err = s.applyAnalysisNumeric(ctx, tx, qf, field, params)

	case FieldDetectedLanguage, FieldDetectedDocumentType, FieldAssessedComplexity, FieldCertificationTypeID:
		eff, err = s.applyAnalysisCategorical(ctx, tx, qf, field, params)

	case FieldGroupComplexity, FieldGroupDocumentType, FieldGroupLabel, FieldGroupCertTypeID:
		eff, err = s.applyGroupField(ctx, tx, field, params)

	case FieldPageWordCount:
		eff, err = s.applyPageWordCount(ctx, tx, params)

	case FieldTaxRate, FieldDiscount, FieldSurcharge, FieldDeliveryOption,
		FieldShippingAddress, FieldBillingAddress, FieldPaymentMethod:
		eff, err = s.applyQuoteField(ctx, tx, qf, field, params)

	case FieldCustomerEmail, FieldCustomerPhone, FieldCustomerFullName:
		eff, err = s.applyCustomerField(ctx, tx, qf, field, params)

	default:
		// Unknown field: audit-only. The live value cannot be read, so
		// the caller's view of the original is the best record we have.
		eff = effect{prior: params.OriginalValue}
	}

	if err != nil {
		return nil, err
	}

	rec := &Correction{
		QuoteID:              params.Target.QuoteID,
		AnalysisID:           params.Target.AnalysisID,
		GroupID:              params.Target.GroupID,
		FieldName:            params.FieldName,
		AIValue:              eff.prior,
		CorrectedValue:       params.CorrectedValue,
		Reason:               params.Reason,
		KnowledgeBaseFlag:    params.KnowledgeBase,
		KnowledgeBaseComment: params.KBComment,
		StaffID:              params.StaffID,
	}
	if err := tx.InsertCorrection(ctx, rec); err != nil {
		return nil, fmt.Errorf("recording correction: %w", err)
	}

	if eff.recompute {
		if _, err := s.totals.RecalculateWithin(ctx, tx, params.Target.QuoteID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit correction: %w", err)
	}

	s.activity.Record(ctx, audit.Event{
		QuoteID: &rec.QuoteID,
		StaffID: params.StaffID,
		Action:  "correction.applied",
		Detail: map[string]any{
			"field":     params.FieldName,
			"corrected": params.CorrectedValue,
		},
	})

	return rec, nil
}

func (s *Service) applyAnalysisNumeric(ctx context.Context, tx Tx, qf *QuoteFields, field Field, params ApplyParams) (effect, error) {
	a, err := s.analysisTarget(ctx, tx, params)
	if err != nil {
		return effect{}, err
	}

	var prior string

	switch field {
	case FieldWordCount, FieldPageCount:
		v, err := parseCount(field, params.CorrectedValue)
		if err != nil {
			return effect{}, err
		}

		if field == FieldWordCount {
			prior = strconv.Itoa(a.WordCount)
			a.WordCount = v

			if err := s.repriceAnalysis(ctx, tx, a, qf); err != nil {
				return effect{}, err
			}
		} else {
			prior = strconv.Itoa(a.PageCount)
			a.PageCount = v
		}

	case FieldBillablePages:
		v, err := parseAmount(field, params.CorrectedValue)
		if err != nil {
			return effect{}, err
		}

		prior = a.BillablePages.String()
		a.BillablePages = v
		a.LineTotal = v.Mul(a.BaseRate).Mul(qf.LanguageMultiplier).Round(2)

	case FieldLineTotal:
		v, err := parseAmount(field, params.CorrectedValue)
		if err != nil {
			return effect{}, err
		}

		prior = a.LineTotal.String()
		a.LineTotal = v

	case FieldComplexityMultiplier:
		v, err := parseAmount(field, params.CorrectedValue)
		if err != nil {
			return effect{}, err
		}

		prior = a.ComplexityMultiplier.String()
		a.ComplexityMultiplier = v

		if err := s.repriceAnalysis(ctx, tx, a, qf); err != nil {
			return effect{}, err
		}

	case FieldCertificationPrice:
		v, err := parseAmount(field, params.CorrectedValue)
		if err != nil {
			return effect{}, err
		}

		prior = a.CertificationPrice.String()
		a.CertificationPrice = v
	}

	if err := tx.UpdateAnalysis(ctx, a); err != nil {
		return effect{}, fmt.Errorf("updating analysis: %w", err)
	}

	// A corrected word count feeds the group aggregate when the file is
	// group-assigned.
	if field == FieldWordCount && a.GroupID != nil {
		if _, err := group.Recalculate(ctx, tx, *a.GroupID); err != nil {
			return effect{}, err
		}
	}

	return effect{prior: prior, recompute: true}, nil
}

func (s *Service) applyAnalysisCategorical(ctx context.Context, tx Tx, qf *QuoteFields, field Field, params ApplyParams) (effect, error) {
	a, err := s.analysisTarget(ctx, tx, params)
	if err != nil {
		return effect{}, err
	}

	var (
		prior     string
		recompute bool
	)

	switch field {
	case FieldDetectedLanguage:
		prior = a.DetectedLanguage
		a.DetectedLanguage = params.CorrectedValue

	case FieldDetectedDocumentType:
		// Classification only. If the new document type implies a
		// different default certification, that arrives as its own
		// certification_type_id correction, never silently here.
		prior = a.DetectedDocumentType
		a.DetectedDocumentType = params.CorrectedValue

	case FieldAssessedComplexity:
		level := pricing.Complexity(params.CorrectedValue)
		if !level.Valid() {
			return effect{}, fault.Validationf("unknown complexity level %q", params.CorrectedValue)
		}

		mult, err := s.rates.ComplexityMultiplier(ctx, level)
		if err != nil {
			return effect{}, fmt.Errorf("resolving complexity multiplier: %w", err)
		}

		prior = string(a.AssessedComplexity)
		a.AssessedComplexity = level
		a.ComplexityMultiplier = mult

		if err := s.repriceAnalysis(ctx, tx, a, qf); err != nil {
			return effect{}, err
		}

		recompute = true

	case FieldCertificationTypeID:
		certID, err := uuid.Parse(params.CorrectedValue)
		if err != nil {
			return effect{}, fault.Validationf("%s expects a certification type id", field)
		}

		price, err := s.rates.CertificationPrice(ctx, certID)
		if err != nil {
			return effect{}, fmt.Errorf("resolving certification price: %w", err)
		}

		if a.CertificationTypeID != nil {
			prior = a.CertificationTypeID.String()
		}

		a.CertificationTypeID = &certID
		a.CertificationPrice = price

		recompute = true
	}

	if err := tx.UpdateAnalysis(ctx, a); err != nil {
		return effect{}, fmt.Errorf("updating analysis: %w", err)
	}

	return effect{prior: prior, recompute: recompute}, nil
}

func (s *Service) applyGroupField(ctx context.Context, tx Tx, field Field, params ApplyParams) (effect, error) {
	if params.Target.GroupID == nil {
		return effect{}, fault.Validationf("%s requires a group reference", field)
	}

	g, err := tx.GetGroup(ctx, *params.Target.GroupID)
	if err != nil {
		return effect{}, err
	}

	if g.QuoteID != params.Target.QuoteID {
		return effect{}, fault.Validationf("group belongs to a different quote")
	}

	var prior string

	switch field {
	case FieldGroupLabel:
		if params.CorrectedValue == "" {
			return effect{}, fault.Validationf("group label cannot be empty")
		}

		prior = g.Label
		g.Label = params.CorrectedValue

	case FieldGroupDocumentType:
		prior = g.DocumentType
		g.DocumentType = params.CorrectedValue

	case FieldGroupComplexity:
		level := pricing.Complexity(params.CorrectedValue)
		if !level.Valid() {
			return effect{}, fault.Validationf("unknown complexity level %q", params.CorrectedValue)
		}

		mult, err := s.rates.ComplexityMultiplier(ctx, level)
		if err != nil {
			return effect{}, fmt.Errorf("resolving complexity multiplier: %w", err)
		}

		prior = string(g.Complexity)
		g.Complexity = level
		g.ComplexityMultiplier = mult

	case FieldGroupCertTypeID:
		certID, err := uuid.Parse(params.CorrectedValue)
		if err != nil {
			return effect{}, fault.Validationf("%s expects a certification type id", field)
		}

		price, err := s.rates.CertificationPrice(ctx, certID)
		if err != nil {
			return effect{}, fmt.Errorf("resolving certification price: %w", err)
		}

		if g.CertificationTypeID != nil {
			prior = g.CertificationTypeID.String()
		}

		g.CertificationTypeID = &certID
		g.CertificationPrice = price
	}

	if err := tx.UpdateGroupFields(ctx, g); err != nil {
		return effect{}, fmt.Errorf("updating group: %w", err)
	}

	if _, err := group.Recalculate(ctx, tx, g.ID); err != nil {
		return effect{}, err
	}

	return effect{prior: prior, recompute: true}, nil
}

func (s *Service) applyPageWordCount(ctx context.Context, tx Tx, params ApplyParams) (effect, error) {
	if params.Target.PageID == nil {
		return effect{}, fault.Validationf("page_word_count requires a page reference")
	}

	p, err := tx.GetPage(ctx, *params.Target.PageID)
	if err != nil {
		return effect{}, err
	}

	if p.QuoteID != params.Target.QuoteID {
		return effect{}, fault.Validationf("page belongs to a different quote")
	}

	v, err := parseCount(FieldPageWordCount, params.CorrectedValue)
	if err != nil {
		return effect{}, err
	}

	prior := strconv.Itoa(p.WordCount)

	if err := tx.SetPageWordCount(ctx, p.ID, v); err != nil {
		return effect{}, fmt.Errorf("updating page word count: %w", err)
	}

	// Only the group the page is currently assigned to (if any) prices
	// off page word counts.
	groupID, err := tx.PageGroup(ctx, p.ID)
	if err != nil {
		return effect{}, fmt.Errorf("resolving page group: %w", err)
	}

	if groupID == nil {
		return effect{prior: prior}, nil
	}

	if _, err := group.Recalculate(ctx, tx, *groupID); err != nil {
		return effect{}, err
	}

	// The corrected words changed the grouped share of the parent's
	// word count, so the parent line's remainder reprices too.
	if p.AnalysisID != nil {
		if err := group.RepriceSplitLine(ctx, tx, *p.AnalysisID); err != nil {
			return effect{}, err
		}
	}

	return effect{prior: prior, recompute: true}, nil
}

func (s *Service) applyQuoteField(ctx context.Context, tx Tx, qf *QuoteFields, field Field, params ApplyParams) (effect, error) {
	quoteID := params.Target.QuoteID

	switch field {
	case FieldTaxRate:
		v, err := parseAmount(field, params.CorrectedValue)
		if err != nil {
			return effect{}, err
		}

		if err := tx.SetTaxRate(ctx, quoteID, v); err != nil {
			return effect{}, fmt.Errorf("updating tax rate: %w", err)
		}

		return effect{prior: qf.TaxRate.String(), recompute: true}, nil

	case FieldDiscount, FieldSurcharge:
		return s.applyLedgerCorrection(ctx, tx, field, params)

	case FieldDeliveryOption:
		fee, err := s.rates.DeliveryFee(ctx, params.CorrectedValue)
		if err != nil {
			return effect{}, fmt.Errorf("resolving delivery fee: %w", err)
		}

		if err := tx.SetDeliveryOption(ctx, quoteID, params.CorrectedValue); err != nil {
			return effect{}, fmt.Errorf("updating delivery option: %w", err)
		}

		if err := tx.SetDeliveryFee(ctx, quoteID, fee); err != nil {
			return effect{}, fmt.Errorf("updating delivery fee: %w", err)
		}

		return effect{prior: qf.DeliveryOption, recompute: true}, nil

	case FieldShippingAddress:
		if err := tx.SetShippingAddress(ctx, quoteID, params.CorrectedValue); err != nil {
			return effect{}, fmt.Errorf("updating shipping address: %w", err)
		}

		return effect{prior: qf.ShippingAddress}, nil

	case FieldBillingAddress:
		if err := tx.SetBillingAddress(ctx, quoteID, params.CorrectedValue); err != nil {
			return effect{}, fmt.Errorf("updating billing address: %w", err)
		}

		return effect{prior: qf.BillingAddress}, nil

	default: // FieldPaymentMethod
		if err := tx.SetPaymentMethod(ctx, quoteID, params.CorrectedValue); err != nil {
			return effect{}, fmt.Errorf("updating payment method: %w", err)
		}

		return effect{prior: qf.PaymentMethod}, nil
	}
}

// applyLedgerCorrection expresses a flat discount/surcharge override as
// an append-only ledger entry superseding the prior live entries of the
// same kind, so "last write wins" for the field while the ledger keeps
// the full history.
func (s *Service) applyLedgerCorrection(ctx context.Context, tx Tx, field Field, params ApplyParams) (effect, error) {
	kind := adjustment.KindDiscount
	if field == FieldSurcharge {
		kind = adjustment.KindSurcharge
	}

	v, err := parseAmount(field, params.CorrectedValue)
	if err != nil {
		return effect{}, err
	}

	if !v.IsPositive() {
		return effect{}, fault.Validationf("%s must be positive", field)
	}

	prior, err := tx.LiveLedgerAmount(ctx, params.Target.QuoteID, kind)
	if err != nil {
		return effect{}, fmt.Errorf("reading live %s: %w", field, err)
	}

	entry := &adjustment.Adjustment{
		QuoteID:          params.Target.QuoteID,
		Kind:             kind,
		ValueType:        adjustment.ValueFixed,
		Value:            v,
		CalculatedAmount: v,
		Reason:           params.Reason,
		CreatedBy:        params.StaffID,
	}
	if err := tx.InsertLedgerEntry(ctx, entry); err != nil {
		return effect{}, fmt.Errorf("inserting %s entry: %w", field, err)
	}

	if err := tx.SupersedeLedgerKind(ctx, params.Target.QuoteID, kind, entry.ID); err != nil {
		return effect{}, fmt.Errorf("superseding prior %s entries: %w", field, err)
	}

	return effect{prior: prior.String(), recompute: true}, nil
}

func (s *Service) applyCustomerField(ctx context.Context, tx Tx, qf *QuoteFields, field Field, params ApplyParams) (effect, error) {
	c, err := tx.GetCustomer(ctx, qf.CustomerID)
	if err != nil {
		return effect{}, err
	}

	var prior string

	switch field {
	case FieldCustomerEmail:
		if params.CorrectedValue == "" {
			return effect{}, fault.Validationf("customer email cannot be empty")
		}

		prior = c.Email
		c.Email = params.CorrectedValue
	case FieldCustomerPhone:
		prior = c.Phone
		c.Phone = params.CorrectedValue
	default: // FieldCustomerFullName
		prior = c.FullName
		c.FullName = params.CorrectedValue
	}

	if err := tx.UpdateCustomer(ctx, c); err != nil {
		return effect{}, fmt.Errorf("updating customer: %w", err)
	}

	return effect{prior: prior}, nil
}

func (s *Service) analysisTarget(ctx context.Context, tx Tx, params ApplyParams) (*quote.AnalysisResult, error) {
	if params.Target.AnalysisID == nil {
		return nil, fault.Validationf("%s requires an analysis reference", params.FieldName)
	}

	a, err := tx.GetAnalysis(ctx, *params.Target.AnalysisID)
	if err != nil {
		return nil, err
	}

	if a.QuoteID != params.Target.QuoteID {
		return nil, fault.Validationf("analysis belongs to a different quote")
	}

	return a, nil
}

// repriceAnalysis re-derives billable pages and the line total from
// the analysis's current word count and multipliers. Words already
// billed through grouped pages stay out of the line.
func (s *Service) repriceAnalysis(ctx context.Context, tx Tx, a *quote.AnalysisResult, qf *QuoteFields) error {
	_, grouped, err := tx.GroupedPages(ctx, a.ID)
	if err != nil {
		return fmt.Errorf("reading grouped pages: %w", err)
	}

	priced := pricing.CalculateSplit(pricing.Input{
		WordCount:            a.WordCount,
		ComplexityMultiplier: a.ComplexityMultiplier,
		LanguageMultiplier:   qf.LanguageMultiplier,
		BaseRate:             a.BaseRate,
		CertificationPrice:   a.CertificationPrice,
		NonBillable:          a.NonBillable,
	}, grouped)

	a.BillablePages = priced.BillablePages
	a.LineTotal = priced.LineTotal

	return nil
}

func parseCount(field Field, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fault.Validationf("%s expects a non-negative integer, got %q", field, raw)
	}

	return v, nil
}

func parseAmount(field Field, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return decimal.Decimal{}, fault.Validationf("%s expects a non-negative number, got %q", field, raw)
	}

	return v, nil
}
