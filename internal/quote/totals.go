package quote

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Totals is the single aggregated value object for a quote. The flat
// quote columns and the calculated_totals snapshot are both projections
// of one Totals value written in one statement, so they cannot diverge.
type Totals struct {
	TranslationTotal   decimal.Decimal `json:"translation_total"`
	CertificationTotal decimal.Decimal `json:"certification_total"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountTotal      decimal.Decimal `json:"discount_total"`
	SurchargeTotal     decimal.Decimal `json:"surcharge_total"`
	RushFee            decimal.Decimal `json:"rush_fee"`
	DeliveryFee        decimal.Decimal `json:"delivery_fee"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	TaxAmount          decimal.Decimal `json:"tax_amount"`
	Total              decimal.Decimal `json:"total"`
}

// PricedLine is one billable unit as seen by the aggregator: an
// unassigned analysis result, or a document group aggregate. A file
// assigned to a group is represented only by the group line, never
// twice.
type PricedLine struct {
	LineTotal          decimal.Decimal
	CertificationPrice decimal.Decimal
}

// AdjustmentSums are the resolved, non-superseded ledger amounts that
// fold into the pre-tax total. Refunds and offset credits move paid
// balances, not the quote total, so they are not represented here.
type AdjustmentSums struct {
	Discount  decimal.Decimal // discount + offset_discount, as positive amounts
	Surcharge decimal.Decimal
}

// Charges are the quote-level fees and tax rate the aggregator folds in.
type Charges struct {
	RushFee     decimal.Decimal
	DeliveryFee decimal.Decimal
	TaxRate     decimal.Decimal
}

// ComputeTotals folds priced lines, ledger sums, and charges into one
// Totals value. Pure: same inputs, same output, in any line order.
func ComputeTotals(lines []PricedLine, adj AdjustmentSums, ch Charges) Totals {
	translation := decimal.Zero
	certification := decimal.Zero

	for _, l := range lines {
		translation = translation.Add(l.LineTotal)
		certification = certification.Add(l.CertificationPrice)
	}

	subtotal := translation.Add(certification)
	discountTotal := adj.Discount.Neg()
	surchargeTotal := adj.Surcharge

	preTax := subtotal.
		Add(discountTotal).
		Add(surchargeTotal).
		Add(ch.RushFee).
		Add(ch.DeliveryFee)

	taxAmount := preTax.Mul(ch.TaxRate).Round(2)

	return Totals{
		TranslationTotal:   translation,
		CertificationTotal: certification,
		Subtotal:           subtotal,
		DiscountTotal:      discountTotal,
		SurchargeTotal:     surchargeTotal,
		RushFee:            ch.RushFee,
		DeliveryFee:        ch.DeliveryFee,
		TaxRate:            ch.TaxRate,
		TaxAmount:          taxAmount,
		Total:              preTax.Add(taxAmount),
	}
}

// TotalsTx is the slice of a database transaction the aggregator needs.
// Every mutation path (corrections, group changes, adjustments)
// implements it on its own transaction so the mutation and the
// recompute commit or roll back together.
type TotalsTx interface {
	PricedLines(ctx context.Context, quoteID uuid.UUID) ([]PricedLine, error)
	AdjustmentSums(ctx context.Context, quoteID uuid.UUID) (AdjustmentSums, error)
	Charges(ctx context.Context, quoteID uuid.UUID) (Charges, error)
	SaveTotals(ctx context.Context, quoteID uuid.UUID, t Totals) error
}
