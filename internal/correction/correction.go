package correction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrCustomerNotFound = errors.New("customer not found")
)

// Field is one member of the closed set of correctable fields. Each
// known field has its own typed dispatch branch; anything else falls
// through to an audit-only record.
type Field string

const (
	// Numeric analysis fields: mutate the analysis row, then recompute
	// the quote (and the owning group where word counts feed it).
	FieldWordCount            Field = "word_count"
	FieldPageCount            Field = "page_count"
	FieldBillablePages        Field = "billable_pages"
	FieldLineTotal            Field = "line_total"
	FieldComplexityMultiplier Field = "complexity_multiplier"
	FieldCertificationPrice   Field = "certification_price"

	// Categorical analysis fields.
	FieldDetectedLanguage     Field = "detected_language"
	FieldDetectedDocumentType Field = "detected_document_type"
	FieldAssessedComplexity   Field = "assessed_complexity"
	FieldCertificationTypeID  Field = "certification_type_id"

	// Group-scoped fields: routed through the same update+recompute the
	// group manager runs.
	FieldGroupComplexity   Field = "group_complexity"
	FieldGroupDocumentType Field = "group_document_type"
	FieldGroupLabel        Field = "group_label"
	FieldGroupCertTypeID   Field = "group_certification_type_id"

	// Page-scoped.
	FieldPageWordCount Field = "page_word_count"

	// Quote-scoped.
	FieldTaxRate         Field = "tax_rate"
	FieldDiscount        Field = "discount"
	FieldSurcharge       Field = "surcharge"
	FieldDeliveryOption  Field = "delivery_option"
	FieldShippingAddress Field = "shipping_address"
	FieldBillingAddress  Field = "billing_address"
	FieldPaymentMethod   Field = "payment_method"

	// Customer fields: not priced, logged for audit only.
	FieldCustomerEmail    Field = "customer_email"
	FieldCustomerPhone    Field = "customer_phone"
	FieldCustomerFullName Field = "customer_full_name"
)

// Known reports whether f is in the closed dispatch set. Unknown
// fields are still recorded (fail-open for audit completeness) but
// produce no pricing side effect.
func (f Field) Known() bool {
	switch f {
	case FieldWordCount, FieldPageCount, FieldBillablePages, FieldLineTotal,
		FieldComplexityMultiplier, FieldCertificationPrice,
		FieldDetectedLanguage, FieldDetectedDocumentType, FieldAssessedComplexity, FieldCertificationTypeID,
		FieldGroupComplexity, FieldGroupDocumentType, FieldGroupLabel, FieldGroupCertTypeID,
		FieldPageWordCount,
		FieldTaxRate, FieldDiscount, FieldSurcharge, FieldDeliveryOption,
		FieldShippingAddress, FieldBillingAddress, FieldPaymentMethod,
		FieldCustomerEmail, FieldCustomerPhone, FieldCustomerFullName:
		return true
	}

	return false
}

// Correction is the write-once audit record of one staff override.
// AIValue holds the value immediately prior to this specific edit, so
// repeated corrections to the same field each preserve their own
// predecessor, never just the first-ever AI value.
type Correction struct {
	ID                   uuid.UUID
	QuoteID              uuid.UUID
	AnalysisID           *uuid.UUID
	GroupID              *uuid.UUID
	FieldName            string
	AIValue              string
	CorrectedValue       string
	Reason               string
	KnowledgeBaseFlag    bool
	KnowledgeBaseComment string
	StaffID              string
	CreatedAt            time.Time
}

// TargetRef locates the entity a correction applies to. QuoteID is
// always required; the others depend on the field's scope.
type TargetRef struct {
	QuoteID    uuid.UUID
	AnalysisID *uuid.UUID
	GroupID    *uuid.UUID
	PageID     *uuid.UUID
}
