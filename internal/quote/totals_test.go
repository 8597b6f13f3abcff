package quote_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attesto/attesto/internal/quote"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return v
}

func TestComputeTotals(t *testing.T) {
	type testCase struct {
		name  string
		lines []quote.PricedLine
		adj   quote.AdjustmentSums
		ch    quote.Charges
		want  quote.Totals
	}

	tests := []testCase{
		{
			// Two lines of $100 and $50, a $20 discount, 5% tax.
			name: "DiscountAndTax",
			lines: []quote.PricedLine{
				{LineTotal: d("100")},
				{LineTotal: d("50")},
			},
			adj: quote.AdjustmentSums{Discount: d("20")},
			ch:  quote.Charges{TaxRate: d("0.05")},
			want: quote.Totals{
				TranslationTotal: d("150"),
				Subtotal:         d("150"),
				DiscountTotal:    d("-20"),
				TaxRate:          d("0.05"),
				TaxAmount:        d("6.50"),
				Total:            d("136.50"),
			},
		},
		{
			name: "CertificationAddsToSubtotal",
			lines: []quote.PricedLine{
				{LineTotal: d("149.50"), CertificationPrice: d("20")},
			},
			want: quote.Totals{
				TranslationTotal:   d("149.50"),
				CertificationTotal: d("20"),
				Subtotal:           d("169.50"),
				Total:              d("169.50"),
			},
		},
		{
			name: "SurchargeAndFees",
			lines: []quote.PricedLine{
				{LineTotal: d("100")},
			},
			adj: quote.AdjustmentSums{Surcharge: d("10")},
			ch:  quote.Charges{RushFee: d("25"), DeliveryFee: d("7.50")},
			want: quote.Totals{
				TranslationTotal: d("100"),
				Subtotal:         d("100"),
				SurchargeTotal:   d("10"),
				RushFee:          d("25"),
				DeliveryFee:      d("7.50"),
				Total:            d("142.50"),
			},
		},
		{
			name: "NoLines",
			want: quote.Totals{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quote.ComputeTotals(tt.lines, tt.adj, tt.ch)

			assertDecimalEqual(t, tt.want.TranslationTotal, got.TranslationTotal, "translation_total")
			assertDecimalEqual(t, tt.want.CertificationTotal, got.CertificationTotal, "certification_total")
			assertDecimalEqual(t, tt.want.Subtotal, got.Subtotal, "subtotal")
			assertDecimalEqual(t, tt.want.DiscountTotal, got.DiscountTotal, "discount_total")
			assertDecimalEqual(t, tt.want.SurchargeTotal, got.SurchargeTotal, "surcharge_total")
			assertDecimalEqual(t, tt.want.RushFee, got.RushFee, "rush_fee")
			assertDecimalEqual(t, tt.want.DeliveryFee, got.DeliveryFee, "delivery_fee")
			assertDecimalEqual(t, tt.want.TaxAmount, got.TaxAmount, "tax_amount")
			assertDecimalEqual(t, tt.want.Total, got.Total, "total")
		})
	}
}

func assertDecimalEqual(t *testing.T, want, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, want.Equal(got), "%s: got %s, want %s", field, got, want)
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	lines := []quote.PricedLine{
		{LineTotal: d("33.30"), CertificationPrice: d("20")},
		{LineTotal: d("100.10")},
		{LineTotal: d("7.77"), CertificationPrice: d("45")},
	}
	reversed := []quote.PricedLine{lines[2], lines[1], lines[0]}

	adj := quote.AdjustmentSums{Discount: d("5"), Surcharge: d("2.50")}
	ch := quote.Charges{TaxRate: d("0.23")}

	a := quote.ComputeTotals(lines, adj, ch)
	b := quote.ComputeTotals(reversed, adj, ch)

	require.True(t, a.Total.Equal(b.Total), "totals differ by line order: %s vs %s", a.Total, b.Total)
	require.True(t, a.TaxAmount.Equal(b.TaxAmount))
	require.True(t, a.Subtotal.Equal(b.Subtotal))
}

func TestComputeTotals_Idempotent(t *testing.T) {
	lines := []quote.PricedLine{{LineTotal: d("149.50")}}
	adj := quote.AdjustmentSums{Discount: d("10")}
	ch := quote.Charges{TaxRate: d("0.05")}

	first := quote.ComputeTotals(lines, adj, ch)
	second := quote.ComputeTotals(lines, adj, ch)

	assert.Equal(t, first, second)
}
