package correction_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/attesto/attesto/internal/adjustment"
	"github.com/attesto/attesto/internal/audit"
	"github.com/attesto/attesto/internal/correction"
	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/group"
	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/quote"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type serviceMocks struct {
	repo   *correction.MockRepository
	rates  *correction.MockRateSource
	totals *correction.MockTotalsRecalculator
	tx     *correction.MockTx
}

func newService(t *testing.T) (*correction.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:   correction.NewMockRepository(ctrl),
		rates:  correction.NewMockRateSource(ctrl),
		totals: correction.NewMockTotalsRecalculator(ctrl),
		tx:     correction.NewMockTx(ctrl),
	}

	return correction.NewService(m.repo, m.rates, m.totals, audit.Discard{}), m
}

func (m serviceMocks) expectOpen(quoteID uuid.UUID, qf *correction.QuoteFields) {
	m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
	m.tx.EXPECT().QuoteFields(gomock.Any(), quoteID).Return(qf, nil)
	m.tx.EXPECT().Rollback().Return(nil).AnyTimes()
}

func (m serviceMocks) expectClose(quoteID uuid.UUID, recompute bool) {
	m.tx.EXPECT().
		InsertCorrection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *correction.Correction) error {
			c.ID = uuid.New()
			return nil
		})

	if recompute {
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
	}

	m.tx.EXPECT().Commit().Return(nil)
}

func openQuote() *correction.QuoteFields {
	return &correction.QuoteFields{
		CustomerID:         uuid.New(),
		Status:             quote.StatusDetailsPending,
		LanguageMultiplier: d("1.0"),
		BaseRate:           d("65"),
		TaxRate:            d("0.05"),
	}
}

func TestService_Apply_DocumentTypeReclassification(t *testing.T) {
	quoteID := uuid.New()
	analysisID := uuid.New()

	svc, m := newService(t)

	m.expectOpen(quoteID, openQuote())
	m.tx.EXPECT().GetAnalysis(gomock.Any(), analysisID).Return(&quote.AnalysisResult{
		ID:                   analysisID,
		QuoteID:              quoteID,
		DetectedDocumentType: "passport",
		AssessedComplexity:   pricing.ComplexityEasy,
		ComplexityMultiplier: d("1.00"),
		WordCount:            500,
		BillablePages:        d("2.3"),
		BaseRate:             d("65"),
		LineTotal:            d("149.50"),
	}, nil)
	m.tx.EXPECT().
		UpdateAnalysis(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *quote.AnalysisResult) error {
			assert.Equal(t, "id_card", a.DetectedDocumentType)
			// Reclassification does not touch pricing.
			assert.True(t, a.LineTotal.Equal(d("149.50")))
			return nil
		})
	// No RecalculateWithin expectation: a label change prices nothing.
	m.expectClose(quoteID, false)

	rec, err := svc.Apply(context.Background(), correction.ApplyParams{
		Target:         correction.TargetRef{QuoteID: quoteID, AnalysisID: &analysisID},
		FieldName:      "detected_document_type",
		OriginalValue:  "passport",
		CorrectedValue: "id_card",
		Reason:         "reviewer reclassified the scan",
		StaffID:        "staff-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "passport", rec.AIValue)
	assert.Equal(t, "id_card", rec.CorrectedValue)
}

func TestService_Apply_WordCount(t *testing.T) {
	quoteID := uuid.New()
	analysisID := uuid.New()

	t.Run("RepricesTheLine", func(t *testing.T) {
		svc, m := newService(t)

		m.expectOpen(quoteID, openQuote())
		m.tx.EXPECT().GetAnalysis(gomock.Any(), analysisID).Return(&quote.AnalysisResult{
			ID:                   analysisID,
			QuoteID:              quoteID,
			AssessedComplexity:   pricing.ComplexityEasy,
			ComplexityMultiplier: d("1.00"),
			WordCount:            500,
			BillablePages:        d("2.3"),
			BaseRate:             d("65"),
			LineTotal:            d("149.50"),
		}, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), analysisID).Return(0, 0, nil)
		m.tx.EXPECT().
			UpdateAnalysis(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *quote.AnalysisResult) error {
				assert.Equal(t, 700, a.WordCount)
				assert.True(t, a.BillablePages.Equal(d("3.2")), "billable pages: %s", a.BillablePages)
				assert.True(t, a.LineTotal.Equal(d("208.00")), "line total: %s", a.LineTotal)
				return nil
			})
		m.expectClose(quoteID, true)

		rec, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID, AnalysisID: &analysisID},
			FieldName:      "word_count",
			CorrectedValue: "700",
			StaffID:        "staff-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "500", rec.AIValue)
	})

	t.Run("GroupedFileCascadesIntoGroup", func(t *testing.T) {
		svc, m := newService(t)
		groupID := uuid.New()

		m.expectOpen(quoteID, openQuote())
		m.tx.EXPECT().GetAnalysis(gomock.Any(), analysisID).Return(&quote.AnalysisResult{
			ID:                   analysisID,
			QuoteID:              quoteID,
			GroupID:              &groupID,
			AssessedComplexity:   pricing.ComplexityEasy,
			ComplexityMultiplier: d("1.00"),
			WordCount:            500,
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), analysisID).Return(0, 0, nil)
		m.tx.EXPECT().UpdateAnalysis(gomock.Any(), gomock.Any()).Return(nil)
		m.tx.EXPECT().GroupPricing(gomock.Any(), groupID).Return(&group.PricingContext{
			QuoteID:              quoteID,
			ComplexityMultiplier: d("1.00"),
			LanguageMultiplier:   d("1.0"),
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().Members(gomock.Any(), groupID).Return(nil, nil)
		m.tx.EXPECT().SaveAggregates(gomock.Any(), groupID, gomock.Any()).Return(nil)
		m.expectClose(quoteID, true)

		_, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID, AnalysisID: &analysisID},
			FieldName:      "word_count",
			CorrectedValue: "700",
			StaffID:        "staff-1",
		})

		require.NoError(t, err)
	})

	t.Run("GroupedPageWordsStayOutOfTheLine", func(t *testing.T) {
		svc, m := newService(t)

		m.expectOpen(quoteID, openQuote())
		m.tx.EXPECT().GetAnalysis(gomock.Any(), analysisID).Return(&quote.AnalysisResult{
			ID:                   analysisID,
			QuoteID:              quoteID,
			AssessedComplexity:   pricing.ComplexityEasy,
			ComplexityMultiplier: d("1.00"),
			WordCount:            500,
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), analysisID).Return(1, 100, nil)
		m.tx.EXPECT().
			UpdateAnalysis(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *quote.AnalysisResult) error {
				// 700 corrected words minus 100 grouped: 600/225 = 2.67
				// -> 2.7 pages.
				assert.True(t, a.BillablePages.Equal(d("2.7")), "billable pages: %s", a.BillablePages)
				assert.True(t, a.LineTotal.Equal(d("175.50")), "line total: %s", a.LineTotal)
				return nil
			})
		m.expectClose(quoteID, true)

		_, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID, AnalysisID: &analysisID},
			FieldName:      "word_count",
			CorrectedValue: "700",
			StaffID:        "staff-1",
		})

		require.NoError(t, err)
	})

	t.Run("NonIntegerRejected", func(t *testing.T) {
		svc, m := newService(t)

		m.expectOpen(quoteID, openQuote())
		m.tx.EXPECT().GetAnalysis(gomock.Any(), analysisID).Return(&quote.AnalysisResult{
			ID:      analysisID,
			QuoteID: quoteID,
		}, nil)

		_, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID, AnalysisID: &analysisID},
			FieldName:      "word_count",
			CorrectedValue: "a lot",
			StaffID:        "staff-1",
		})

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})
}

func TestService_Apply_AssessedComplexity(t *testing.T) {
	quoteID := uuid.New()
	analysisID := uuid.New()

	svc, m := newService(t)

	m.expectOpen(quoteID, openQuote())
	m.tx.EXPECT().GetAnalysis(gomock.Any(), analysisID).Return(&quote.AnalysisResult{
		ID:                   analysisID,
		QuoteID:              quoteID,
		AssessedComplexity:   pricing.ComplexityEasy,
		ComplexityMultiplier: d("1.00"),
		WordCount:            230,
		BaseRate:             d("65"),
	}, nil)
	m.rates.EXPECT().ComplexityMultiplier(gomock.Any(), pricing.ComplexityMedium).Return(d("1.15"), nil)
	m.tx.EXPECT().GroupedPages(gomock.Any(), analysisID).Return(0, 0, nil)
	m.tx.EXPECT().
		UpdateAnalysis(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *quote.AnalysisResult) error {
			assert.Equal(t, pricing.ComplexityMedium, a.AssessedComplexity)
			assert.True(t, a.ComplexityMultiplier.Equal(d("1.15")))
			assert.True(t, a.BillablePages.Equal(d("1.2")), "billable pages: %s", a.BillablePages)
			return nil
		})
	m.expectClose(quoteID, true)

	rec, err := svc.Apply(context.Background(), correction.ApplyParams{
		Target:         correction.TargetRef{QuoteID: quoteID, AnalysisID: &analysisID},
		FieldName:      "assessed_complexity",
		CorrectedValue: "medium",
		StaffID:        "staff-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "easy", rec.AIValue)
}

func TestService_Apply_LedgerCorrection(t *testing.T) {
	quoteID := uuid.New()

	svc, m := newService(t)

	m.expectOpen(quoteID, openQuote())
	m.tx.EXPECT().
		LiveLedgerAmount(gomock.Any(), quoteID, adjustment.KindDiscount).
		Return(d("20"), nil)

	var entryID uuid.UUID
	m.tx.EXPECT().
		InsertLedgerEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *adjustment.Adjustment) error {
			assert.Equal(t, adjustment.KindDiscount, a.Kind)
			assert.Equal(t, adjustment.ValueFixed, a.ValueType)
			assert.True(t, a.CalculatedAmount.Equal(d("35")))

			a.ID = uuid.New()
			entryID = a.ID

			return nil
		})
	m.tx.EXPECT().
		SupersedeLedgerKind(gomock.Any(), quoteID, adjustment.KindDiscount, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ adjustment.Kind, byID uuid.UUID) error {
			assert.Equal(t, entryID, byID)
			return nil
		})
	m.expectClose(quoteID, true)

	rec, err := svc.Apply(context.Background(), correction.ApplyParams{
		Target:         correction.TargetRef{QuoteID: quoteID},
		FieldName:      "discount",
		CorrectedValue: "35",
		Reason:         "agreed rate on the phone",
		StaffID:        "staff-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "20", rec.AIValue, "prior is the live ledger sum, not the caller's claim")
}

func TestService_Apply_PageWordCount(t *testing.T) {
	quoteID := uuid.New()
	pageID := uuid.New()

	t.Run("UnassignedPageSkipsRecompute", func(t *testing.T) {
		svc, m := newService(t)

		m.expectOpen(quoteID, openQuote())
		m.tx.EXPECT().GetPage(gomock.Any(), pageID).Return(&quote.Page{
			ID:        pageID,
			QuoteID:   quoteID,
			WordCount: 100,
		}, nil)
		m.tx.EXPECT().SetPageWordCount(gomock.Any(), pageID, 160).Return(nil)
		m.tx.EXPECT().PageGroup(gomock.Any(), pageID).Return(nil, nil)
		m.expectClose(quoteID, false)

		rec, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID, PageID: &pageID},
			FieldName:      "page_word_count",
			CorrectedValue: "160",
			StaffID:        "staff-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "100", rec.AIValue)
	})

	t.Run("AssignedPageRecalculatesItsGroup", func(t *testing.T) {
		svc, m := newService(t)
		groupID := uuid.New()

		m.expectOpen(quoteID, openQuote())
		m.tx.EXPECT().GetPage(gomock.Any(), pageID).Return(&quote.Page{
			ID:        pageID,
			QuoteID:   quoteID,
			WordCount: 100,
		}, nil)
		m.tx.EXPECT().SetPageWordCount(gomock.Any(), pageID, 160).Return(nil)
		m.tx.EXPECT().PageGroup(gomock.Any(), pageID).Return(&groupID, nil)
		m.tx.EXPECT().GroupPricing(gomock.Any(), groupID).Return(&group.PricingContext{
			QuoteID:              quoteID,
			ComplexityMultiplier: d("1.15"),
			LanguageMultiplier:   d("1.0"),
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().Members(gomock.Any(), groupID).Return(nil, nil)
		m.tx.EXPECT().SaveAggregates(gomock.Any(), groupID, gomock.Any()).Return(nil)
		m.expectClose(quoteID, true)

		_, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID, PageID: &pageID},
			FieldName:      "page_word_count",
			CorrectedValue: "160",
			StaffID:        "staff-1",
		})

		require.NoError(t, err)
	})

	t.Run("GroupedPageRepricesItsParentLine", func(t *testing.T) {
		svc, m := newService(t)
		groupID := uuid.New()
		analysisID := uuid.New()

		m.expectOpen(quoteID, openQuote())
		m.tx.EXPECT().GetPage(gomock.Any(), pageID).Return(&quote.Page{
			ID:         pageID,
			QuoteID:    quoteID,
			AnalysisID: &analysisID,
			WordCount:  100,
		}, nil)
		m.tx.EXPECT().SetPageWordCount(gomock.Any(), pageID, 160).Return(nil)
		m.tx.EXPECT().PageGroup(gomock.Any(), pageID).Return(&groupID, nil)
		m.tx.EXPECT().GroupPricing(gomock.Any(), groupID).Return(&group.PricingContext{
			QuoteID:              quoteID,
			ComplexityMultiplier: d("1.00"),
			LanguageMultiplier:   d("1.0"),
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().Members(gomock.Any(), groupID).Return(nil, nil)
		m.tx.EXPECT().SaveAggregates(gomock.Any(), groupID, gomock.Any()).Return(nil)

		// The grouped share of the parent's 230 words grew from 100 to
		// 160, so its line shrinks to the 70-word remainder: 0.4 pages.
		m.tx.EXPECT().AnalysisSplitLine(gomock.Any(), analysisID).Return(&group.SplitLine{
			AnalysisID:           analysisID,
			WordCount:            230,
			ComplexityMultiplier: d("1.00"),
			LanguageMultiplier:   d("1.0"),
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), analysisID).Return(1, 160, nil)
		m.tx.EXPECT().
			SetAnalysisLine(gomock.Any(), analysisID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, pages, total decimal.Decimal) error {
				assert.True(t, pages.Equal(d("0.4")), "parent line pages: %s", pages)
				assert.True(t, total.Equal(d("26.00")), "parent line total: %s", total)
				return nil
			})
		m.expectClose(quoteID, true)

		_, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID, PageID: &pageID},
			FieldName:      "page_word_count",
			CorrectedValue: "160",
			StaffID:        "staff-1",
		})

		require.NoError(t, err)
	})
}

func TestService_Apply_UnknownFieldIsAuditOnly(t *testing.T) {
	quoteID := uuid.New()

	svc, m := newService(t)

	m.expectOpen(quoteID, openQuote())
	m.tx.EXPECT().
		InsertCorrection(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *correction.Correction) error {
			assert.Equal(t, "ocr_confidence", c.FieldName)
			assert.Equal(t, "0.82", c.AIValue)

			c.ID = uuid.New()

			return nil
		})
	m.tx.EXPECT().Commit().Return(nil)

	rec, err := svc.Apply(context.Background(), correction.ApplyParams{
		Target:         correction.TargetRef{QuoteID: quoteID},
		FieldName:      "ocr_confidence",
		OriginalValue:  "0.82",
		CorrectedValue: "0.95",
		StaffID:        "staff-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
}

func TestService_Apply_Guards(t *testing.T) {
	quoteID := uuid.New()

	t.Run("TerminalQuoteRejected", func(t *testing.T) {
		svc, m := newService(t)

		qf := openQuote()
		qf.Status = quote.StatusCompleted
		m.expectOpen(quoteID, qf)

		_, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID},
			FieldName:      "tax_rate",
			CorrectedValue: "0.10",
			StaffID:        "staff-1",
		})

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("MissingFieldNameRejected", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:  correction.TargetRef{QuoteID: quoteID},
			StaffID: "staff-1",
		})

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("AnalysisFieldNeedsAnalysisRef", func(t *testing.T) {
		svc, m := newService(t)

		m.expectOpen(quoteID, openQuote())

		_, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID},
			FieldName:      "word_count",
			CorrectedValue: "700",
			StaffID:        "staff-1",
		})

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("CrossQuoteAnalysisRejected", func(t *testing.T) {
		svc, m := newService(t)
		analysisID := uuid.New()

		m.expectOpen(quoteID, openQuote())
		m.tx.EXPECT().GetAnalysis(gomock.Any(), analysisID).Return(&quote.AnalysisResult{
			ID:      analysisID,
			QuoteID: uuid.New(),
		}, nil)

		_, err := svc.Apply(context.Background(), correction.ApplyParams{
			Target:         correction.TargetRef{QuoteID: quoteID, AnalysisID: &analysisID},
			FieldName:      "word_count",
			CorrectedValue: "700",
			StaffID:        "staff-1",
		})

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})
}

func TestService_Apply_TaxRate(t *testing.T) {
	quoteID := uuid.New()

	svc, m := newService(t)

	m.expectOpen(quoteID, openQuote())
	m.tx.EXPECT().SetTaxRate(gomock.Any(), quoteID, d("0.10")).Return(nil)
	m.expectClose(quoteID, true)

	rec, err := svc.Apply(context.Background(), correction.ApplyParams{
		Target:         correction.TargetRef{QuoteID: quoteID},
		FieldName:      "tax_rate",
		CorrectedValue: "0.10",
		StaffID:        "staff-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "0.05", rec.AIValue)
}

func TestService_Apply_DeliveryOption(t *testing.T) {
	quoteID := uuid.New()

	svc, m := newService(t)

	qf := openQuote()
	qf.DeliveryOption = "digital"

	m.expectOpen(quoteID, qf)
	m.rates.EXPECT().DeliveryFee(gomock.Any(), "postal").Return(d("7.50"), nil)
	m.tx.EXPECT().SetDeliveryOption(gomock.Any(), quoteID, "postal").Return(nil)
	m.tx.EXPECT().SetDeliveryFee(gomock.Any(), quoteID, d("7.50")).Return(nil)
	m.expectClose(quoteID, true)

	rec, err := svc.Apply(context.Background(), correction.ApplyParams{
		Target:         correction.TargetRef{QuoteID: quoteID},
		FieldName:      "delivery_option",
		CorrectedValue: "postal",
		StaffID:        "staff-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "digital", rec.AIValue)
}

func TestService_Apply_CustomerEmail(t *testing.T) {
	quoteID := uuid.New()
	qf := openQuote()

	svc, m := newService(t)

	m.expectOpen(quoteID, qf)
	m.tx.EXPECT().GetCustomer(gomock.Any(), qf.CustomerID).Return(&quote.Customer{
		ID:    qf.CustomerID,
		Email: "old@example.com",
	}, nil)
	m.tx.EXPECT().
		UpdateCustomer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *quote.Customer) error {
			assert.Equal(t, "new@example.com", c.Email)
			return nil
		})
	m.expectClose(quoteID, false)

	rec, err := svc.Apply(context.Background(), correction.ApplyParams{
		Target:         correction.TargetRef{QuoteID: quoteID},
		FieldName:      "customer_email",
		CorrectedValue: "new@example.com",
		StaffID:        "staff-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "old@example.com", rec.AIValue)
}
