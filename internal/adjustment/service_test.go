package adjustment_test

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
	"github.com/attesto/attesto/internal/fault"
	"github.com/attesto/attesto/internal/quote"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type serviceMocks struct {
	repo   *adjustment.MockRepository
	totals *adjustment.MockTotalsRecalculator
	tx     *adjustment.MockTx
}

func newService(t *testing.T) (*adjustment.Service, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:   adjustment.NewMockRepository(ctrl),
		totals: adjustment.NewMockTotalsRecalculator(ctrl),
		tx:     adjustment.NewMockTx(ctrl),
	}

	return adjustment.NewService(m.repo, m.totals, audit.Discard{}), m
}

func (m serviceMocks) expectLedgerWrite(quoteID uuid.UUID, fin *adjustment.Finance) {
	m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
	m.tx.EXPECT().QuoteFinance(gomock.Any(), quoteID).Return(fin, nil)
	m.tx.EXPECT().
		InsertAdjustment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *adjustment.Adjustment) error {
			a.ID = uuid.New()
			return nil
		})
	m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
	m.tx.EXPECT().Commit().Return(nil)
	m.tx.EXPECT().Rollback().Return(nil).AnyTimes()
}

func TestService_Add_OffsetLimits(t *testing.T) {
	quoteID := uuid.New()

	fin := func() *adjustment.Finance {
		return &adjustment.Finance{
			Status:   quote.StatusQuoteReady,
			Subtotal: d("150"),
			Total:    d("136.50"),
		}
	}

	t.Run("ReviewerOverLimitRejected", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().QuoteFinance(gomock.Any(), quoteID).Return(fin(), nil)
		m.tx.EXPECT().Rollback().Return(nil)

		_, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
			Kind:      adjustment.KindOffsetDiscount,
			ValueType: adjustment.ValueFixed,
			Value:     d("15"),
			StaffID:   "staff-1",
			Role:      adjustment.RoleReviewer,
		})

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
		assert.Contains(t, err.Error(), "exceeds")
	})

	t.Run("ReviewerAtLimitAccepted", func(t *testing.T) {
		svc, m := newService(t)
		m.expectLedgerWrite(quoteID, fin())

		a, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
			Kind:      adjustment.KindOffsetDiscount,
			ValueType: adjustment.ValueFixed,
			Value:     d("10"),
			StaffID:   "staff-1",
			Role:      adjustment.RoleReviewer,
		})

		require.NoError(t, err)
		assert.True(t, a.CalculatedAmount.Equal(d("10")))
	})

	t.Run("SuperAdminUnlimited", func(t *testing.T) {
		svc, m := newService(t)
		m.expectLedgerWrite(quoteID, fin())

		a, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
			Kind:      adjustment.KindOffsetDiscount,
			ValueType: adjustment.ValueFixed,
			Value:     d("15"),
			StaffID:   "staff-9",
			Role:      adjustment.RoleSuperAdmin,
		})

		require.NoError(t, err)
		assert.True(t, a.CalculatedAmount.Equal(d("15")))
	})

	t.Run("SeniorReviewerMidLimit", func(t *testing.T) {
		svc, m := newService(t)
		m.expectLedgerWrite(quoteID, fin())

		_, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
			Kind:      adjustment.KindOffsetDiscount,
			ValueType: adjustment.ValueFixed,
			Value:     d("20"),
			StaffID:   "staff-2",
			Role:      adjustment.RoleSeniorReviewer,
		})

		require.NoError(t, err)
	})

	t.Run("PlainDiscountNotLimited", func(t *testing.T) {
		svc, m := newService(t)
		m.expectLedgerWrite(quoteID, fin())

		_, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
			Kind:      adjustment.KindDiscount,
			ValueType: adjustment.ValueFixed,
			Value:     d("500"),
			StaffID:   "staff-1",
			Role:      adjustment.RoleReviewer,
		})

		require.NoError(t, err)
	})
}

func TestService_Add_PercentageResolution(t *testing.T) {
	quoteID := uuid.New()

	svc, m := newService(t)

	m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
	m.tx.EXPECT().QuoteFinance(gomock.Any(), quoteID).Return(&adjustment.Finance{
		Status:   quote.StatusQuoteReady,
		Subtotal: d("150"),
	}, nil)
	m.tx.EXPECT().
		InsertAdjustment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *adjustment.Adjustment) error {
			// 10% of the 150 subtotal, frozen at insertion.
			assert.True(t, a.CalculatedAmount.Equal(d("15.00")), "amount: %s", a.CalculatedAmount)
			assert.True(t, a.Value.Equal(d("10")))

			a.ID = uuid.New()

			return nil
		})
	m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
	m.tx.EXPECT().Commit().Return(nil)
	m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

	_, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
		Kind:      adjustment.KindDiscount,
		ValueType: adjustment.ValuePercentage,
		Value:     d("10"),
		StaffID:   "staff-1",
		Role:      adjustment.RoleSuperAdmin,
	})

	require.NoError(t, err)
}

func TestService_Add_Refund(t *testing.T) {
	quoteID := uuid.New()

	t.Run("PaidQuoteFlipsBackToAwaitingPayment", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().QuoteFinance(gomock.Any(), quoteID).Return(&adjustment.Finance{
			Status:     quote.StatusPaid,
			Subtotal:   d("150"),
			Total:      d("136.50"),
			AmountPaid: d("136.50"),
		}, nil)
		m.tx.EXPECT().
			InsertAdjustment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *adjustment.Adjustment) error {
				a.ID = uuid.New()
				return nil
			})
		m.tx.EXPECT().ApplyRefund(gomock.Any(), quoteID, d("50")).Return(nil)
		m.tx.EXPECT().SetStatus(gomock.Any(), quoteID, quote.StatusAwaitingPayment).Return(nil)
		m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
		m.tx.EXPECT().Commit().Return(nil)
		m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

		_, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
			Kind:      adjustment.KindRefund,
			ValueType: adjustment.ValueFixed,
			Value:     d("50"),
			StaffID:   "staff-1",
			Role:      adjustment.RoleSuperAdmin,
		})

		require.NoError(t, err)
	})

	t.Run("RefundWithoutPaymentsRejected", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().QuoteFinance(gomock.Any(), quoteID).Return(&adjustment.Finance{
			Status:   quote.StatusQuoteReady,
			Subtotal: d("150"),
		}, nil)
		m.tx.EXPECT().Rollback().Return(nil)

		_, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
			Kind:      adjustment.KindRefund,
			ValueType: adjustment.ValueFixed,
			Value:     d("50"),
			StaffID:   "staff-1",
			Role:      adjustment.RoleSuperAdmin,
		})

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})

	t.Run("RefundOverPaidAmountRejected", func(t *testing.T) {
		svc, m := newService(t)

		m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
		m.tx.EXPECT().QuoteFinance(gomock.Any(), quoteID).Return(&adjustment.Finance{
			Status:     quote.StatusPaid,
			Subtotal:   d("150"),
			AmountPaid: d("30"),
		}, nil)
		m.tx.EXPECT().Rollback().Return(nil)

		_, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
			Kind:      adjustment.KindRefund,
			ValueType: adjustment.ValueFixed,
			Value:     d("50"),
			StaffID:   "staff-1",
			Role:      adjustment.RoleSuperAdmin,
		})

		require.Error(t, err)
		assert.True(t, fault.IsValidation(err))
	})
}

func TestService_Add_Supersede(t *testing.T) {
	quoteID := uuid.New()
	priorID := uuid.New()

	svc, m := newService(t)

	m.repo.EXPECT().Begin(gomock.Any(), quoteID).Return(m.tx, nil)
	m.tx.EXPECT().QuoteFinance(gomock.Any(), quoteID).Return(&adjustment.Finance{
		Status:   quote.StatusQuoteReady,
		Subtotal: d("150"),
	}, nil)

	var newID uuid.UUID
	m.tx.EXPECT().
		InsertAdjustment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *adjustment.Adjustment) error {
			a.ID = uuid.New()
			newID = a.ID
			return nil
		})
	m.tx.EXPECT().
		MarkSuperseded(gomock.Any(), priorID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, byID uuid.UUID) error {
			assert.Equal(t, newID, byID)
			return nil
		})
	m.totals.EXPECT().RecalculateWithin(gomock.Any(), m.tx, quoteID).Return(&quote.Totals{}, nil)
	m.tx.EXPECT().Commit().Return(nil)
	m.tx.EXPECT().Rollback().Return(nil).AnyTimes()

	_, err := svc.Add(context.Background(), quoteID, adjustment.AddParams{
		Kind:         adjustment.KindDiscount,
		ValueType:    adjustment.ValueFixed,
		Value:        d("25"),
		StaffID:      "staff-1",
		Role:         adjustment.RoleSuperAdmin,
		SupersedesID: &priorID,
	})

	require.NoError(t, err)
}

func TestService_Add_Validation(t *testing.T) {
	quoteID := uuid.New()

	type testCase struct {
		name   string
		params adjustment.AddParams
	}

	tests := []testCase{
		{
			name: "UnknownKind",
			params: adjustment.AddParams{
				Kind:      adjustment.Kind("rebate"),
				ValueType: adjustment.ValueFixed,
				Value:     d("5"),
			},
		},
		{
			name: "UnknownValueType",
			params: adjustment.AddParams{
				Kind:      adjustment.KindDiscount,
				ValueType: adjustment.ValueType("ratio"),
				Value:     d("5"),
			},
		},
		{
			name: "ZeroValue",
			params: adjustment.AddParams{
				Kind:      adjustment.KindDiscount,
				ValueType: adjustment.ValueFixed,
				Value:     decimal.Zero,
			},
		},
		{
			name: "NegativeValue",
			params: adjustment.AddParams{
				Kind:      adjustment.KindDiscount,
				ValueType: adjustment.ValueFixed,
				Value:     d("-5"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.Add(context.Background(), quoteID, tt.params)

			require.Error(t, err)
			assert.True(t, fault.IsValidation(err))
		})
	}
}

func TestCheckOffsetLimit(t *testing.T) {
	tests := []struct {
		name    string
		role    adjustment.Role
		amount  string
		wantErr bool
	}{
		{"ReviewerUnderLimit", adjustment.RoleReviewer, "9.99", false},
		{"ReviewerAtLimit", adjustment.RoleReviewer, "10", false},
		{"ReviewerOverLimit", adjustment.RoleReviewer, "10.01", true},
		{"SeniorAtLimit", adjustment.RoleSeniorReviewer, "25", false},
		{"SeniorOverLimit", adjustment.RoleSeniorReviewer, "25.01", true},
		{"SuperAdminAnyAmount", adjustment.RoleSuperAdmin, "10000", false},
		{"UnknownRoleRefused", adjustment.Role("intern"), "1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := adjustment.CheckOffsetLimit(tt.role, d(tt.amount))

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, fault.IsValidation(err))
				return
			}

			require.NoError(t, err)
		})
	}
}
