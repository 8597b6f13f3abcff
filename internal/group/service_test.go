package group_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/attesto/attesto/internal/audit"
	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/group"
	"github.com/attesto/attesto/internal/pricing"
	"github.com/attesto/attesto/internal/quote"
)

type serviceMocks struct {
	repo   *group.MockRepository
	rates  *group.MockRateSource
	totals *group.MockTotalsRecalculator
	tx     *group.MockTx
}

func newService(t *testing.T) (*group.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:   group.NewMockRepository(ctrl),
		rates:  group.NewMockRateSource(ctrl),
		totals: group.NewMockTotalsRecalculator(ctrl),
		tx:     group.NewMockTx(ctrl),
	}

	return group.NewService(m.repo, m.rates, m.totals, audit.Discard{}), m
}

func TestService_Create(t *testing.T) {
	quoteID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, m := newService(t)

		m.rates.EXPECT().ComplexityMultiplier(gomock.Any(), pricing.ComplexityMedium).Return(d("1.15"), nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().QuoteStatus(gomock.Any(), quoteID).Return(quote.StatusDraft, nil)
		m.tx.EXPECT().
			InsertGroup(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *group.Group) error {
				g.ID = uuid.New()
				return nil
			})
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		g, err := svc.Create(context.Background(), quoteID, group.CreateParams{
			Label:      "Passport",
			Complexity: pricing.ComplexityMedium,
		}, "staff-1")

		require.NoError(t, err)
		assert.Equal(t, "Passport", g.Label)
		assert.True(t, g.ComplexityMultiplier.Equal(d("1.15")))
		assert.True(t, g.LineTotal.IsZero(), "a new group starts unpriced")
	})

	t.Run("MissingLabel", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Create(context.Background(), quoteID, group.CreateParams{
			Complexity: pricing.ComplexityEasy,
		}, "staff-1")

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("UnknownComplexity", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Create(context.Background(), quoteID, group.CreateParams{
			Label:      "Passport",
			Complexity: pricing.Complexity("impossible"),
		}, "staff-1")

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("TerminalQuoteRejected", func(t *testing.T) {
		svc, m := newService(t)

		m.rates.EXPECT().ComplexityMultiplier(gomock.Any(), pricing.ComplexityEasy).Return(d("1.00"), nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().QuoteStatus(gomock.Any(), quoteID).Return(quote.StatusCancelled, nil)
		m.tx.EXPECT().Rollback().Return(nil)

		_, err := svc.Create(context.Background(), quoteID, group.CreateParams{
			Label:      "Passport",
			Complexity: pricing.ComplexityEasy,
		}, "staff-1")

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})
}

func TestService_Assign(t *testing.T) {
	quoteID := uuid.New()
	groupID := uuid.New()
	itemID := uuid.New()

	expectGroupRecalc := func(tx *group.MockTx, id uuid.UUID) {
		tx.EXPECT().GroupPricing(gomock.Any(), id).Return(pricingCtx("1.00", "1.0", "65"), nil)
		tx.EXPECT().Members(gomock.Any(), id).Return(nil, nil)
		tx.EXPECT().SaveAggregates(gomock.Any(), id, gomock.Any()).Return(nil)
	}

	t.Run("PageIntoGroup", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().ItemQuote(gomock.Any(), group.ItemPage, itemID).Return(quoteID, nil)
		m.tx.EXPECT().PageAnalysis(gomock.Any(), itemID).Return(nil, nil)
		m.tx.EXPECT().CurrentAssignment(gomock.Any(), group.ItemPage, itemID).Return(nil, nil)
		m.tx.EXPECT().
			UpsertAssignment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *group.Assignment) error {
				assert.Equal(t, groupID, a.GroupID)
				assert.Equal(t, "staff-1", a.CreatedBy)

				a.ID = uuid.New()

				return nil
			})
		expectGroupRecalc(m.tx, groupID)
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		a, err := svc.Assign(context.Background(), groupID, group.ItemPage, itemID, "staff-1", nil)

		require.NoError(t, err)
		assert.Equal(t, group.ItemPage, a.ItemType)
	})

	t.Run("MoveBetweenGroupsRecalculatesBoth", func(t *testing.T) {
		svc, m := newService(t)
		priorGroupID := uuid.New()

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().ItemQuote(gomock.Any(), group.ItemPage, itemID).Return(quoteID, nil)
		m.tx.EXPECT().PageAnalysis(gomock.Any(), itemID).Return(nil, nil)
		m.tx.EXPECT().
			CurrentAssignment(gomock.Any(), group.ItemPage, itemID).
			Return(&group.Assignment{ID: uuid.New(), GroupID: priorGroupID}, nil)
		m.tx.EXPECT().UpsertAssignment(gomock.Any(), gomock.Any()).Return(nil)
		expectGroupRecalc(m.tx, priorGroupID)
		expectGroupRecalc(m.tx, groupID)
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		_, err := svc.Assign(context.Background(), groupID, group.ItemPage, itemID, "staff-1", nil)

		require.NoError(t, err)
	})

	t.Run("FileAssignmentLinksAnalysis", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().ItemQuote(gomock.Any(), group.ItemFile, itemID).Return(quoteID, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), itemID).Return(0, 0, nil)
		m.tx.EXPECT().CurrentAssignment(gomock.Any(), group.ItemFile, itemID).Return(nil, nil)
		m.tx.EXPECT().UpsertAssignment(gomock.Any(), gomock.Any()).Return(nil)
		m.tx.EXPECT().
			SetAnalysisGroup(gomock.Any(), itemID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, gid *uuid.UUID) error {
				require.NotNil(t, gid)
				assert.Equal(t, groupID, *gid)
				return nil
			})
		expectGroupRecalc(m.tx, groupID)
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		_, err := svc.Assign(context.Background(), groupID, group.ItemFile, itemID, "staff-1", nil)

		require.NoError(t, err)
	})

	// A 230-word file split into pages of 100 and 130: once both pages
	// are grouped, the file's own line must settle at zero so the words
	// bill only through the group aggregate.
	t.Run("FullyGroupedPagesZeroTheParentLine", func(t *testing.T) {
		svc, m := newService(t)
		analysisID := uuid.New()

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().ItemQuote(gomock.Any(), group.ItemPage, itemID).Return(quoteID, nil)
		m.tx.EXPECT().PageAnalysis(gomock.Any(), itemID).Return(&group.PageParent{AnalysisID: analysisID}, nil)
		m.tx.EXPECT().CurrentAssignment(gomock.Any(), group.ItemPage, itemID).Return(nil, nil)
		m.tx.EXPECT().UpsertAssignment(gomock.Any(), gomock.Any()).Return(nil)

		m.tx.EXPECT().GroupPricing(gomock.Any(), groupID).Return(pricingCtx("1.00", "1.0", "65"), nil)
		m.tx.EXPECT().Members(gomock.Any(), groupID).Return([]group.Member{
			{AssignmentID: uuid.New(), ItemWordCount: intp(100)},
			{AssignmentID: uuid.New(), ItemWordCount: intp(130)},
		}, nil)
		m.tx.EXPECT().
			SaveAggregates(gomock.Any(), groupID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, agg group.Aggregates) error {
				assert.Equal(t, 230, agg.WordCount)
				assert.True(t, agg.BillablePages.Equal(d("1.1")), "group pages: %s", agg.BillablePages)
				assert.True(t, agg.LineTotal.Equal(d("71.50")), "group total: %s", agg.LineTotal)
				return nil
			})

		m.tx.EXPECT().AnalysisSplitLine(gomock.Any(), analysisID).Return(&group.SplitLine{
			AnalysisID:           analysisID,
			WordCount:            230,
			ComplexityMultiplier: d("1.00"),
			LanguageMultiplier:   d("1.0"),
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), analysisID).Return(2, 230, nil)
		m.tx.EXPECT().
			SetAnalysisLine(gomock.Any(), analysisID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, pages, total decimal.Decimal) error {
				assert.True(t, pages.IsZero(), "parent line pages: %s", pages)
				assert.True(t, total.IsZero(), "parent line total: %s", total)
				return nil
			})

		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		_, err := svc.Assign(context.Background(), groupID, group.ItemPage, itemID, "staff-1", nil)

		require.NoError(t, err)
	})

	t.Run("PartiallyGroupedPagesPriceTheRemainder", func(t *testing.T) {
		svc, m := newService(t)
		analysisID := uuid.New()

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().ItemQuote(gomock.Any(), group.ItemPage, itemID).Return(quoteID, nil)
		m.tx.EXPECT().PageAnalysis(gomock.Any(), itemID).Return(&group.PageParent{AnalysisID: analysisID}, nil)
		m.tx.EXPECT().CurrentAssignment(gomock.Any(), group.ItemPage, itemID).Return(nil, nil)
		m.tx.EXPECT().UpsertAssignment(gomock.Any(), gomock.Any()).Return(nil)
		expectGroupRecalc(m.tx, groupID)

		m.tx.EXPECT().AnalysisSplitLine(gomock.Any(), analysisID).Return(&group.SplitLine{
			AnalysisID:           analysisID,
			WordCount:            230,
			ComplexityMultiplier: d("1.00"),
			LanguageMultiplier:   d("1.0"),
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), analysisID).Return(1, 100, nil)
		m.tx.EXPECT().
			SetAnalysisLine(gomock.Any(), analysisID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, pages, total decimal.Decimal) error {
				assert.True(t, pages.Equal(d("0.6")), "parent line pages: %s", pages)
				assert.True(t, total.Equal(d("39.00")), "parent line total: %s", total)
				return nil
			})

		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		_, err := svc.Assign(context.Background(), groupID, group.ItemPage, itemID, "staff-1", nil)

		require.NoError(t, err)
	})

	t.Run("PageOfGroupedFileRejected", func(t *testing.T) {
		svc, m := newService(t)
		parentGroup := uuid.New()

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().ItemQuote(gomock.Any(), group.ItemPage, itemID).Return(quoteID, nil)
		m.tx.EXPECT().
			PageAnalysis(gomock.Any(), itemID).
			Return(&group.PageParent{AnalysisID: uuid.New(), GroupID: &parentGroup}, nil)
		m.tx.EXPECT().Rollback().Return(nil)

		_, err := svc.Assign(context.Background(), groupID, group.ItemPage, itemID, "staff-1", nil)

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("FileWithGroupedPagesRejected", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().ItemQuote(gomock.Any(), group.ItemFile, itemID).Return(quoteID, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), itemID).Return(1, 100, nil)
		m.tx.EXPECT().Rollback().Return(nil)

		_, err := svc.Assign(context.Background(), groupID, group.ItemFile, itemID, "staff-1", nil)

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("CrossQuoteItemRejected", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().ItemQuote(gomock.Any(), group.ItemPage, itemID).Return(uuid.New(), nil)
		m.tx.EXPECT().Rollback().Return(nil)

		_, err := svc.Assign(context.Background(), groupID, group.ItemPage, itemID, "staff-1", nil)

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("NegativeOverrideRejected", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Assign(context.Background(), groupID, group.ItemPage, itemID, "staff-1", intp(-10))

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("UnknownItemTypeRejected", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Assign(context.Background(), groupID, group.ItemType("chapter"), itemID, "staff-1", nil)

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})
}

func TestService_Unassign(t *testing.T) {
	quoteID := uuid.New()
	groupID := uuid.New()
	assignmentID := uuid.New()
	pageID := uuid.New()

	t.Run("PageWordsReturnToParentLine", func(t *testing.T) {
		svc, m := newService(t)
		analysisID := uuid.New()

		m.repo.EXPECT().AssignmentRef(gomock.Any(), assignmentID).Return(&group.AssignmentRef{
			QuoteID:  quoteID,
			GroupID:  groupID,
			ItemType: group.ItemPage,
			ItemID:   pageID,
		}, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().DeleteAssignment(gomock.Any(), assignmentID).Return(nil)
		m.tx.EXPECT().PageAnalysis(gomock.Any(), pageID).Return(&group.PageParent{AnalysisID: analysisID}, nil)

		// With no pages grouped anymore the line prices its full word
		// count again, minimum floor included.
		m.tx.EXPECT().AnalysisSplitLine(gomock.Any(), analysisID).Return(&group.SplitLine{
			AnalysisID:           analysisID,
			WordCount:            230,
			ComplexityMultiplier: d("1.00"),
			LanguageMultiplier:   d("1.0"),
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), analysisID).Return(0, 0, nil)
		m.tx.EXPECT().
			SetAnalysisLine(gomock.Any(), analysisID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, pages, total decimal.Decimal) error {
				assert.True(t, pages.Equal(d("1.1")), "parent line pages: %s", pages)
				assert.True(t, total.Equal(d("71.50")), "parent line total: %s", total)
				return nil
			})

		m.tx.EXPECT().GroupPricing(gomock.Any(), groupID).Return(pricingCtx("1.00", "1.0", "65"), nil)
		m.tx.EXPECT().Members(gomock.Any(), groupID).Return(nil, nil)
		m.tx.EXPECT().SaveAggregates(gomock.Any(), groupID, gomock.Any()).Return(nil)
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		err := svc.Unassign(context.Background(), assignmentID, "staff-1")

		require.NoError(t, err)
	})

	t.Run("FileUnassignmentUnlinksAnalysis", func(t *testing.T) {
		svc, m := newService(t)
		fileID := uuid.New()

		m.repo.EXPECT().AssignmentRef(gomock.Any(), assignmentID).Return(&group.AssignmentRef{
			QuoteID:  quoteID,
			GroupID:  groupID,
			ItemType: group.ItemFile,
			ItemID:   fileID,
		}, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().DeleteAssignment(gomock.Any(), assignmentID).Return(nil)
		m.tx.EXPECT().SetAnalysisGroup(gomock.Any(), fileID, gomock.Nil()).Return(nil)
		m.tx.EXPECT().GroupPricing(gomock.Any(), groupID).Return(pricingCtx("1.00", "1.0", "65"), nil)
		m.tx.EXPECT().Members(gomock.Any(), groupID).Return(nil, nil)
		m.tx.EXPECT().SaveAggregates(gomock.Any(), groupID, gomock.Any()).Return(nil)
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		err := svc.Unassign(context.Background(), assignmentID, "staff-1")

		require.NoError(t, err)
	})
}

func TestService_Delete(t *testing.T) {
	quoteID := uuid.New()
	groupID := uuid.New()

	t.Run("DetachesWithoutTouchingItems", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().QuoteStatus(gomock.Any(), quoteID).Return(quote.StatusQuoteReady, nil)
		m.tx.EXPECT().ClearAnalysisGroup(gomock.Any(), groupID).Return(nil)
		m.tx.EXPECT().GroupPageAnalyses(gomock.Any(), groupID).Return(nil, nil)
		m.tx.EXPECT().DetachAssignments(gomock.Any(), groupID).Return(nil)
		m.tx.EXPECT().DeleteGroup(gomock.Any(), groupID).Return(nil)
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), groupID, "staff-1")

		require.NoError(t, err)
	})

	t.Run("RepricesParentLinesOfDetachedPages", func(t *testing.T) {
		svc, m := newService(t)
		analysisID := uuid.New()

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().QuoteStatus(gomock.Any(), quoteID).Return(quote.StatusQuoteReady, nil)
		m.tx.EXPECT().ClearAnalysisGroup(gomock.Any(), groupID).Return(nil)
		m.tx.EXPECT().GroupPageAnalyses(gomock.Any(), groupID).Return([]uuid.UUID{analysisID}, nil)
		m.tx.EXPECT().DetachAssignments(gomock.Any(), groupID).Return(nil)
		m.tx.EXPECT().AnalysisSplitLine(gomock.Any(), analysisID).Return(&group.SplitLine{
			AnalysisID:           analysisID,
			WordCount:            230,
			ComplexityMultiplier: d("1.00"),
			LanguageMultiplier:   d("1.0"),
			BaseRate:             d("65"),
		}, nil)
		m.tx.EXPECT().GroupedPages(gomock.Any(), analysisID).Return(0, 0, nil)
		m.tx.EXPECT().
			SetAnalysisLine(gomock.Any(), analysisID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, pages, total decimal.Decimal) error {
				assert.True(t, pages.Equal(d("1.1")), "parent line pages: %s", pages)
				assert.True(t, total.Equal(d("71.50")), "parent line total: %s", total)
				return nil
			})
		m.tx.EXPECT().DeleteGroup(gomock.Any(), groupID).Return(nil)
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		err := svc.Delete(context.Background(), groupID, "staff-1")

		require.NoError(t, err)
	})

	t.Run("PaidQuoteRefusesDelete", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().QuoteStatus(gomock.Any(), quoteID).Return(quote.StatusPaid, nil)
		m.tx.EXPECT().Rollback().Return(nil)

		err := svc.Delete(context.Background(), groupID, "staff-1")

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})
}

func TestService_Update(t *testing.T) {
	quoteID := uuid.New()
	groupID := uuid.New()

	t.Run("ComplexityChangeRederivesMultiplier", func(t *testing.T) {
		svc, m := newService(t)
		hard := pricing.ComplexityHard

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().GetGroup(gomock.Any(), groupID).Return(&group.Group{
			ID:                   groupID,
			QuoteID:              quoteID,
			Label:                "Diploma",
			Complexity:           pricing.ComplexityEasy,
			ComplexityMultiplier: d("1.00"),
		}, nil)
		m.rates.EXPECT().ComplexityMultiplier(gomock.Any(), hard).Return(d("1.25"), nil)
		m.tx.EXPECT().
			UpdateGroupFields(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *group.Group) error {
				assert.Equal(t, hard, g.Complexity)
				assert.True(t, g.ComplexityMultiplier.Equal(d("1.25")))
				return nil
			})
		m.tx.EXPECT().GroupPricing(gomock.Any(), groupID).Return(pricingCtx("1.25", "1.0", "65"), nil)
		m.tx.EXPECT().Members(gomock.Any(), groupID).Return([]group.Member{
			{AssignmentID: uuid.New(), ItemWordCount: intp(1000)},
		}, nil)
		m.tx.EXPECT().SaveAggregates(gomock.Any(), groupID, gomock.Any()).Return(nil)
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		g, err := svc.Update(context.Background(), groupID, group.UpdateParams{Complexity: &hard}, "staff-1")

		require.NoError(t, err)
		assert.Equal(t, 1000, g.WordCount)
		assert.True(t, g.BillablePages.Equal(d("5.6")), "billable pages: %s", g.BillablePages)
	})

	t.Run("EmptyLabelRejected", func(t *testing.T) {
		svc, m := newService(t)
		empty := ""

		m.repo.EXPECT().GroupQuoteID(gomock.Any(), groupID).Return(quoteID, nil)
		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().GetGroup(gomock.Any(), groupID).Return(&group.Group{ID: groupID, QuoteID: quoteID}, nil)
		m.tx.EXPECT().Rollback().Return(nil)

		_, err := svc.Update(context.Background(), groupID, group.UpdateParams{Label: &empty}, "staff-1")

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})
}
