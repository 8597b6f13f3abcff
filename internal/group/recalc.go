package group

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/pricing"
)

// PricingContext is everything needed to reprice a group aggregate.
type PricingContext struct {
	QuoteID              uuid.UUID
	ComplexityMultiplier decimal.Decimal
	LanguageMultiplier   decimal.Decimal
	BaseRate             decimal.Decimal
}

// PricingTx is the slice of a transaction the group recompute needs.
// Both the group service and the correction dispatcher run the same
// recompute through it.
type PricingTx interface {
	GroupPricing(ctx context.Context, groupID uuid.UUID) (*PricingContext, error)
	Members(ctx context.Context, groupID uuid.UUID) ([]Member, error)
	SaveAggregates(ctx context.Context, groupID uuid.UUID, agg Aggregates) error
}

// Recalculate re-derives a group's aggregate word count, billable
// pages, and line total from its current member assignments.
// Idempotent and order-independent: the aggregate is a sum, so the
// assignment order cannot matter, and running it twice writes the same
// values twice.
//
// An empty group stays at zero across the board; it is a valid state
// staff fill later, not a minimum-billed unit.
func Recalculate(ctx context.Context, tx PricingTx, groupID uuid.UUID) (Aggregates, error) {
	pc, err := tx.GroupPricing(ctx, groupID)
	if err != nil {
		return Aggregates{}, err
	}

	members, err := tx.Members(ctx, groupID)
	if err != nil {
		return Aggregates{}, fault.Consistency("reading group assignments", err)
	}

	agg := Aggregates{
		BillablePages: decimal.Zero,
		LineTotal:     decimal.Zero,
	}

	if len(members) > 0 {
		total := 0

		for _, m := range members {
			wc, ok := m.EffectiveWordCount()
			if !ok {
				return Aggregates{}, fault.Consistency("group has an assignment to a missing item", nil)
			}

			total += wc
		}

		priced := pricing.Calculate(pricing.Input{
			WordCount:            total,
			ComplexityMultiplier: pc.ComplexityMultiplier,
			LanguageMultiplier:   pc.LanguageMultiplier,
			BaseRate:             pc.BaseRate,
		})

		agg = Aggregates{
			WordCount:     total,
			BillablePages: priced.BillablePages,
			LineTotal:     priced.LineTotal,
		}
	}

	if err := tx.SaveAggregates(ctx, groupID, agg); err != nil {
		return Aggregates{}, fault.Consistency("saving group aggregates", err)
	}

	return agg, nil
}
