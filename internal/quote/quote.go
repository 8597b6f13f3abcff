package quote

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/pricing"
)

var (
	ErrNotFound         = errors.New("quote not found")
	ErrAnalysisNotFound = errors.New("analysis result not found")
)

// Status represents the lifecycle state of a quote.
type Status string

const (
	StatusDraft           Status = "draft"
	StatusDetailsPending  Status = "details_pending"
	StatusQuoteReady      Status = "quote_ready"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusPaid            Status = "paid"
	StatusInProgress      Status = "in_progress"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
)

// Terminal reports whether the quote can no longer be mutated.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AnalysisSource marks where an analysis record came from.
type AnalysisSource string

const (
	SourceOCR    AnalysisSource = "ocr"
	SourceManual AnalysisSource = "manual"
)

// Quote is one customer order in progress. Its priced columns are
// written only by the totals aggregator.
type Quote struct {
	ID                 uuid.UUID
	CustomerID         uuid.UUID
	Status             Status
	SourceLanguage     string
	TargetLanguage     string
	LanguageMultiplier decimal.Decimal
	BaseRate           decimal.Decimal
	IsRush             bool
	DeliveryOption     string
	PaymentMethod      string
	ShippingAddress    string
	BillingAddress     string
	StaffNotes         string
	Totals             Totals
	AmountPaid         decimal.Decimal
	BalanceDue         decimal.Decimal
	RefundAmount       decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// AnalysisResult is the per-file record produced by the OCR/AI
// collaborator (or entered by staff, source "manual"). It may or may
// not belong to a document group; once assigned, its line total is
// carried by the group aggregate instead.
type AnalysisResult struct {
	ID                   uuid.UUID
	QuoteID              uuid.UUID
	GroupID              *uuid.UUID
	Source               AnalysisSource
	FileName             string
	DetectedLanguage     string
	DetectedDocumentType string
	AssessedComplexity   pricing.Complexity
	ComplexityMultiplier decimal.Decimal
	WordCount            int
	PageCount            int
	BillablePages        decimal.Decimal
	BaseRate             decimal.Decimal
	LineTotal            decimal.Decimal
	CertificationTypeID  *uuid.UUID
	CertificationPrice   decimal.Decimal
	NonBillable          bool
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// Page is a single page of an uploaded file, addressable for page-level
// group assignment and word count corrections.
type Page struct {
	ID         uuid.UUID
	QuoteID    uuid.UUID
	AnalysisID *uuid.UUID
	PageNumber int
	WordCount  int
	CreatedAt  time.Time
}

// Customer is the order's contact. Not priced; corrections to it are
// logged for audit only.
type Customer struct {
	ID       uuid.UUID
	Email    string
	Phone    string
	FullName string
}
