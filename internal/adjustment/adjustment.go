package adjustment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/fault"
)

var ErrNotFound = errors.New("adjustment not found")

// Kind classifies a ledger entry. discount, offset_discount, and
// surcharge fold into the quote total; refund and offset_credit move
// paid balances instead.
type Kind string

const (
	KindDiscount       Kind = "discount"
	KindSurcharge      Kind = "surcharge"
	KindRefund         Kind = "refund"
	KindOffsetDiscount Kind = "offset_discount"
	KindOffsetCredit   Kind = "offset_credit"
)

func (k Kind) Valid() bool {
	switch k {
	case KindDiscount, KindSurcharge, KindRefund, KindOffsetDiscount, KindOffsetCredit:
		return true
	}

	return false
}

// Offset reports whether the entry is a small balance-reconciliation
// amount subject to role limits.
func (k Kind) Offset() bool {
	return k == KindOffsetDiscount || k == KindOffsetCredit
}

type ValueType string

const (
	ValueFixed      ValueType = "fixed"
	ValuePercentage ValueType = "percentage"
)

func (v ValueType) Valid() bool {
	return v == ValueFixed || v == ValuePercentage
}

// Adjustment is one append-only ledger entry. CalculatedAmount is the
// resolved currency amount frozen at insertion time: a percentage
// entry does not grow if the subtotal it was a percentage of later
// changes. Entries are never edited, only superseded.
type Adjustment struct {
	ID               uuid.UUID
	QuoteID          uuid.UUID
	Kind             Kind
	ValueType        ValueType
	Value            decimal.Decimal
	CalculatedAmount decimal.Decimal
	Reason           string
	CreatedBy        string
	SupersededBy     *uuid.UUID
	CreatedAt        time.Time
}

// Role is the staff role attached to the caller's session.
type Role string

const (
	RoleReviewer       Role = "reviewer"
	RoleSeniorReviewer Role = "senior_reviewer"
	RoleSuperAdmin     Role = "super_admin"
)

var offsetLimits = map[Role]decimal.Decimal{
	RoleReviewer:       decimal.RequireFromString("10"),
	RoleSeniorReviewer: decimal.RequireFromString("25"),
}

// CheckOffsetLimit enforces the per-role ceiling on offset entries.
// Exceeding the limit is a hard validation failure, never a silent
// cap. Ordinary discount/surcharge/refund entries are not limited.
func CheckOffsetLimit(role Role, amount decimal.Decimal) error {
	limit, limited := offsetLimits[role]
	if !limited {
		if role == RoleSuperAdmin {
			return nil
		}

		return fault.Validationf("role %q may not create offset entries", role)
	}

	if amount.GreaterThan(limit) {
		return fault.Validationf("offset amount %s exceeds the %s limit for role %q", amount.StringFixed(2), limit.StringFixed(2), role)
	}

	return nil
}
