package group

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/pricing"
)

// SplitLine is the slice of an analysis row needed to reprice it when
// page assignments move some of its words into group aggregates.
type SplitLine struct {
	AnalysisID           uuid.UUID
	GroupID              *uuid.UUID
	WordCount            int
	ComplexityMultiplier decimal.Decimal
	LanguageMultiplier   decimal.Decimal
	BaseRate             decimal.Decimal
	NonBillable          bool
}

// PageParent locates the analysis a page was extracted from, with the
// parent's own group membership.
type PageParent struct {
	AnalysisID uuid.UUID
	GroupID    *uuid.UUID
}

// LineTx is the transaction slice the split repricing needs. The group
// service and the correction dispatcher both run it, so a page moving
// in or out of a group adjusts the parent line the same way in either
// path.
type LineTx interface {
	AnalysisSplitLine(ctx context.Context, analysisID uuid.UUID) (*SplitLine, error)
	// GroupedPages reports how many of the analysis's pages are
	// group-assigned and their summed word count. Overrides on the
	// assignments do not apply here: the words leaving the line are the
	// pages' own counts, whatever the group chooses to bill for them.
	GroupedPages(ctx context.Context, analysisID uuid.UUID) (count int, words int, err error)
	SetAnalysisLine(ctx context.Context, analysisID uuid.UUID, billablePages, lineTotal decimal.Decimal) error
}

// RepriceSplitLine re-derives one analysis line from the pages that
// are NOT group-assigned. With no grouped pages the line prices the
// full word count under the normal minimum floor; with every page
// grouped it settles at exactly zero, leaving the words billed only
// through the group aggregates.
func RepriceSplitLine(ctx context.Context, tx LineTx, analysisID uuid.UUID) error {
	sl, err := tx.AnalysisSplitLine(ctx, analysisID)
	if err != nil {
		return err
	}

	_, grouped, err := tx.GroupedPages(ctx, analysisID)
	if err != nil {
		return fault.Consistency("reading grouped pages", err)
	}

	priced := pricing.CalculateSplit(pricing.Input{
		WordCount:            sl.WordCount,
		ComplexityMultiplier: sl.ComplexityMultiplier,
		LanguageMultiplier:   sl.LanguageMultiplier,
		BaseRate:             sl.BaseRate,
		NonBillable:          sl.NonBillable,
	}, grouped)

	if err := tx.SetAnalysisLine(ctx, analysisID, priced.BillablePages, priced.LineTotal); err != nil {
		return fault.Consistency("saving split line", err)
	}

	return nil
}
