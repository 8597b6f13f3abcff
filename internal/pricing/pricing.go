// Package pricing computes billable pages and line totals for a single
// unit of translation work: one file, one page, or a document group's
// aggregate word count. It is a pure calculation with no state, so a
// recompute with identical inputs always produces identical outputs.
package pricing

import (
	"github.com/shopspring/decimal"
)

// WordsPerPage is the word count of one billable page before the
// complexity multiplier is applied.
const WordsPerPage = 225

var (
	wordsPerPage = decimal.NewFromInt(WordsPerPage)
	ten          = decimal.NewFromInt(10)

	// MinBillablePages is the billing floor for a billable unit whose word
	// count rounds to zero. A unit marked non-billable prices at exactly
	// zero; everything else never prices below this floor.
	MinBillablePages = decimal.RequireFromString("0.1")
)

// Input is everything needed to price one billable unit.
type Input struct {
	WordCount            int
	ComplexityMultiplier decimal.Decimal // >= 1.0
	LanguageMultiplier   decimal.Decimal // >= 1.0
	BaseRate             decimal.Decimal // currency per page
	CertificationPrice   decimal.Decimal // additive, tracked separately
	NonBillable          bool
}

// Result is the priced outcome. CertificationPrice is carried through
// unchanged and never folded into LineTotal, so certifications can be
// swapped without re-deriving page counts.
type Result struct {
	BillablePages      decimal.Decimal
	LineTotal          decimal.Decimal
	CertificationPrice decimal.Decimal
}

// Calculate prices a single billable unit.
//
// billable_pages = ceil((word_count / 225) * complexity_multiplier * 10) / 10,
// i.e. pages are rounded up to the nearest tenth, then floored at
// MinBillablePages unless the unit is non-billable.
//
// line_total = billable_pages * base_rate * language_multiplier.
func Calculate(in Input) Result {
	if in.NonBillable {
		return Result{
			BillablePages:      decimal.Zero,
			LineTotal:          decimal.Zero,
			CertificationPrice: in.CertificationPrice,
		}
	}

	pages := BillablePages(in.WordCount, in.ComplexityMultiplier)
	if pages.LessThan(MinBillablePages) {
		pages = MinBillablePages
	}

	lineTotal := pages.Mul(in.BaseRate).Mul(in.LanguageMultiplier).Round(2)

	return Result{
		BillablePages:      pages,
		LineTotal:          lineTotal,
		CertificationPrice: in.CertificationPrice,
	}
}

// CalculateSplit prices the slice of a unit left behind after
// groupedWords of its word count moved into group aggregates. With
// nothing grouped it is exactly Calculate, floor included. Once any
// words are grouped, the remainder prices without the floor, down to
// zero when every page is grouped, so the words bill once: either on
// the line or in a group aggregate, never both.
func CalculateSplit(in Input, groupedWords int) Result {
	if groupedWords <= 0 {
		return Calculate(in)
	}

	if in.NonBillable {
		return Result{
			BillablePages:      decimal.Zero,
			LineTotal:          decimal.Zero,
			CertificationPrice: in.CertificationPrice,
		}
	}

	remaining := in.WordCount - groupedWords
	if remaining < 0 {
		remaining = 0
	}

	pages := BillablePages(remaining, in.ComplexityMultiplier)
	lineTotal := pages.Mul(in.BaseRate).Mul(in.LanguageMultiplier).Round(2)

	return Result{
		BillablePages:      pages,
		LineTotal:          lineTotal,
		CertificationPrice: in.CertificationPrice,
	}
}

// BillablePages applies the rounding law without the minimum floor:
// the raw page count scaled by complexity, rounded up to the nearest
// tenth of a page.
func BillablePages(wordCount int, complexityMultiplier decimal.Decimal) decimal.Decimal {
	if wordCount <= 0 {
		return decimal.Zero
	}

	raw := decimal.NewFromInt(int64(wordCount)).
		Div(wordsPerPage).
		Mul(complexityMultiplier)

	return raw.Mul(ten).Ceil().Div(ten)
}
