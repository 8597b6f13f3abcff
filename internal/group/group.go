package group

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/pricing"
)

var (
	ErrNotFound           = errors.New("document group not found")
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrItemNotFound       = errors.New("item not found")
)

// ItemType distinguishes what an assignment points at: a whole uploaded
// file (its analysis record) or a single page.
type ItemType string

const (
	ItemFile ItemType = "file"
	ItemPage ItemType = "page"
)

func (t ItemType) Valid() bool {
	return t == ItemFile || t == ItemPage
}

// Group is a staff-defined aggregate of pages/files priced as one unit,
// e.g. a three-page driver's license. Its aggregate fields are always a
// deterministic function of its current member assignments.
type Group struct {
	ID                   uuid.UUID
	QuoteID              uuid.UUID
	Label                string
	DocumentType         string
	Complexity           pricing.Complexity
	ComplexityMultiplier decimal.Decimal
	CertificationTypeID  *uuid.UUID
	CertificationPrice   decimal.Decimal
	WordCount            int
	BillablePages        decimal.Decimal
	LineTotal            decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            *time.Time
}

// Assignment links one item to exactly one group. Assigning an already
// assigned item supersedes the previous membership.
type Assignment struct {
	ID                uuid.UUID
	GroupID           uuid.UUID
	ItemType          ItemType
	ItemID            uuid.UUID
	WordCountOverride *int
	CreatedBy         string
	CreatedAt         time.Time
}

// Member is one assignment's contribution to the group aggregate.
type Member struct {
	AssignmentID uuid.UUID
	Override     *int
	// ItemWordCount is the underlying page/file word count; nil when
	// the item row no longer exists (an orphaned assignment).
	ItemWordCount *int
}

// EffectiveWordCount resolves the word count an assignment contributes:
// the override when set, otherwise the item's own count.
func (m Member) EffectiveWordCount() (int, bool) {
	if m.Override != nil {
		return *m.Override, true
	}

	if m.ItemWordCount != nil {
		return *m.ItemWordCount, true
	}

	return 0, false
}

// Aggregates are the recomputed priced fields of a group.
type Aggregates struct {
	WordCount     int             `json:"word_count"`
	BillablePages decimal.Decimal `json:"billable_pages"`
	LineTotal     decimal.Decimal `json:"line_total"`
}
