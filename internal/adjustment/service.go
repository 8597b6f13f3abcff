package adjustment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/audit"
	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/quote"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=adjustment
type Repository interface {
	ListAdjustments(ctx context.Context, quoteID uuid.UUID) ([]*Adjustment, error)
	Begin(ctx context.Context, quoteID uuid.UUID) (Tx, error)
}

// Finance is the slice of a quote's state the ledger needs.
type Finance struct {
	Status     quote.Status
	Subtotal   decimal.Decimal
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
}

type Tx interface {
	quote.TotalsTx

	QuoteFinance(ctx context.Context, quoteID uuid.UUID) (*Finance, error)
	InsertAdjustment(ctx context.Context, a *Adjustment) error
	MarkSuperseded(ctx context.Context, id, byID uuid.UUID) error
	// ApplyRefund moves the paid balance: amount_paid down,
	// refund_amount up. balance_due follows from the totals write.
	ApplyRefund(ctx context.Context, quoteID uuid.UUID, amount decimal.Decimal) error
	ApplyCredit(ctx context.Context, quoteID uuid.UUID, amount decimal.Decimal) error
	SetStatus(ctx context.Context, quoteID uuid.UUID, status quote.Status) error
	Commit() error
	Rollback() error
}

type TotalsRecalculator interface {
	RecalculateWithin(ctx context.Context, tx quote.TotalsTx, quoteID uuid.UUID) (*quote.Totals, error)
}

type Service struct {
	repo     Repository
	totals   TotalsRecalculator
	activity audit.Recorder
}

func NewService(repo Repository, totals TotalsRecalculator, activity audit.Recorder) *Service {
	return &Service{repo: repo, totals: totals, activity: activity}
}

func (s *Service) ListByQuote(ctx context.Context, quoteID uuid.UUID) ([]*Adjustment, error) {
	return s.repo.ListAdjustments(ctx, quoteID)
}

type AddParams struct {
	Kind      Kind
	ValueType ValueType
	Value     decimal.Decimal
	// CalculatedAmount may be left zero, in which case it is resolved
	// here: fixed entries carry their value, percentage entries are
	// resolved against the subtotal as of this moment and frozen.
	CalculatedAmount decimal.Decimal
	Reason           string
	StaffID          string
	Role             Role
	// SupersedesID marks a prior entry as replaced by this one.
	SupersedesID *uuid.UUID
}

// Add appends one ledger entry and recomputes the quote totals in the
// same transaction. Refunds and offset credits additionally move the
// paid balance; a refund on a paid quote flips it back to
// awaiting_payment explicitly.
func (s *Service) Add(ctx context.Context, quoteID uuid.UUID, params AddParams) (*Adjustment, error) {
	if !params.Kind.Valid() {
		return nil, fault.Validationf("unknown adjustment type %q", params.Kind)
	}

	if !params.ValueType.Valid() {
		return nil, fault.Validationf("unknown value type %q", params.ValueType)
	}

	if !params.Value.IsPositive() {
		return nil, fault.Validationf("adjustment value must be positive")
	}

	tx, err := s.repo.Begin(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("begin quote tx: %w", err)
	}
	defer tx.Rollback()

	fin, err := tx.QuoteFinance(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if fin.Status.Terminal() {
		return nil, fault.Validationf("quote %s is %s and cannot be adjusted", quoteID, fin.Status)
	}

	amount := params.CalculatedAmount
	if amount.IsZero() {
		switch params.ValueType {
		case ValueFixed:
			amount = params.Value
		case ValuePercentage:
			amount = fin.Subtotal.Mul(params.Value).Div(decimal.NewFromInt(100)).Round(2)
		}
	}

	if !amount.IsPositive() {
		return nil, fault.Validationf("adjustment amount must resolve to a positive value")
	}

	if params.Kind.Offset() {
		if err := CheckOffsetLimit(params.Role, amount); err != nil {
			return nil, err
		}
	}

	if params.Kind == KindRefund {
		if fin.AmountPaid.IsZero() {
			return nil, fault.Validationf("refund requires a quote with payments on record")
		}

		if amount.GreaterThan(fin.AmountPaid) {
			return nil, fault.Validationf("refund %s exceeds the amount paid %s", amount.StringFixed(2), fin.AmountPaid.StringFixed(2))
		}
	}

	a := &Adjustment{
		QuoteID:          quoteID,
		Kind:             params.Kind,
		ValueType:        params.ValueType,
		Value:            params.Value,
		CalculatedAmount: amount,
		Reason:           params.Reason,
		CreatedBy:        params.StaffID,
	}
	if err := tx.InsertAdjustment(ctx, a); err != nil {
		return nil, fmt.Errorf("inserting adjustment: %w", err)
	}

	if params.SupersedesID != nil {
		if err := tx.MarkSuperseded(ctx, *params.SupersedesID, a.ID); err != nil {
			return nil, err
		}
	}

	switch params.Kind {
	case KindRefund:
		if err := tx.ApplyRefund(ctx, quoteID, amount); err != nil {
			return nil, err
		}

		if fin.Status == quote.StatusPaid {
			if err := tx.SetStatus(ctx, quoteID, quote.StatusAwaitingPayment); err != nil {
				return nil, err
			}
		}
	case KindOffsetCredit:
		if err := tx.ApplyCredit(ctx, quoteID, amount); err != nil {
			return nil, err
		}
	}

	if _, err := s.totals.RecalculateWithin(ctx, tx, quoteID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit adjustment: %w", err)
	}

	s.activity.Record(ctx, audit.Event{
		QuoteID: &quoteID,
		StaffID: params.StaffID,
		Action:  "adjustment.added",
		Detail: map[string]any{
			"adjustment_id": a.ID.String(),
			"kind":          string(params.Kind),
			"amount":        amount.StringFixed(2),
		},
	})

	return a, nil
}
