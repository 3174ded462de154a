package debt

import (
	"testing"
	"time"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cardFixture() domain.DebtAccount {
	return domain.DebtAccount{
		ID:                 "card-1",
		Name:               "Everyday Card",
		Kind:               domain.DebtCard,
		CreditLimit:        domain.FloatPtr(1000),
		CurrentBalance:     500,
		StatementBalance:   domain.FloatPtr(500),
		MinimumPaymentMode: domain.MinimumFixed,
		FixedMinimum:       25,
		APR:                24,
		DueDay:             21,
		StatementDay:       1,
	}
}

func TestProjectCycle_FixedMinimumCard(t *testing.T) {
	// 500 at 24% APR: 500 * 0.02 = 10.00 interest.
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	result := ProjectCycle(cardFixture(), now)

	assert.Equal(t, 10.00, result.Interest)
	assert.Equal(t, 510.00, result.NewStatementBalance)
	assert.Equal(t, 25.00, result.MinimumDue)
	assert.Equal(t, 25.00, result.PlannedPayment)
	assert.Equal(t, 485.00, result.PostPaymentBalance)
}

func TestProjectCycle_PercentPlusInterest(t *testing.T) {
	d := cardFixture()
	d.MinimumPaymentMode = domain.MinimumPercentPlusInterest
	d.MinimumPercent = 2

	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	result := ProjectCycle(d, now)

	// 500 * 2% + 10 interest = 20.00
	assert.Equal(t, 20.00, result.MinimumDue)
	assert.Equal(t, 20.00, result.PlannedPayment)
}

func TestProjectCycle_ZeroAPRMeansZeroInterest(t *testing.T) {
	d := cardFixture()
	d.APR = 0

	result := ProjectCycle(d, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))

	assert.Zero(t, result.Interest)
	assert.Equal(t, 500.00, result.NewStatementBalance)
}

func TestProjectCycle_PaymentNeverExceedsBalance(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.DebtAccount)
	}{
		{"huge fixed minimum", func(d *domain.DebtAccount) { d.FixedMinimum = 10000 }},
		{"huge extra payment", func(d *domain.DebtAccount) { d.ExtraPayment = 10000 }},
		{"tiny balance", func(d *domain.DebtAccount) {
			d.StatementBalance = domain.FloatPtr(5)
			d.CurrentBalance = 5
		}},
		{"zero balance", func(d *domain.DebtAccount) {
			d.StatementBalance = domain.FloatPtr(0)
			d.CurrentBalance = 0
		}},
	}
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := cardFixture()
			tt.mutate(&d)
			result := ProjectCycle(d, now)
			assert.LessOrEqual(t, result.PlannedPayment, result.NewStatementBalance)
			assert.GreaterOrEqual(t, result.PostPaymentBalance, 0.0)
		})
	}
}

func TestProjectCycle_StatementFallsBackToCurrentBalance(t *testing.T) {
	d := cardFixture()
	d.StatementBalance = nil
	d.CurrentBalance = 300

	result := ProjectCycle(d, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, 6.00, result.Interest) // 300 * 2%
}

func TestProjectCycle_DueDayTiming(t *testing.T) {
	d := cardFixture() // due day 21

	before := ProjectCycle(d, time.Date(2024, 5, 21, 0, 0, 0, 0, time.UTC))
	assert.False(t, before.DueApplied)
	assert.Equal(t, 500.00, before.DisplayedBalance, "pre-due month shows raw current balance")

	after := ProjectCycle(d, time.Date(2024, 5, 22, 0, 0, 0, 0, time.UTC))
	assert.True(t, after.DueApplied)
	assert.Equal(t, after.PostPaymentBalance, after.DisplayedBalance)
}

func TestProjectCycle_DueDayClampedToMonthEnd(t *testing.T) {
	d := cardFixture()
	d.DueDay = 31

	// February 29th 2024: due day 31 clamps to the 29th, which has passed.
	result := ProjectCycle(d, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC))
	assert.False(t, result.DueApplied)

	d.DueDay = 28
	result = ProjectCycle(d, time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC))
	assert.True(t, result.DueApplied)
}

func TestProjectCycle_PendingAmountAddsAfterPayment(t *testing.T) {
	d := cardFixture()
	d.PendingAmount = 40

	result := ProjectCycle(d, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 525.00, result.PostPaymentBalance) // 510 - 25 + 40
}

func TestProjectCycle_MinimumBelowInterestIsSignalNotError(t *testing.T) {
	d := cardFixture()
	d.FixedMinimum = 5 // below the 10.00 interest due

	result := ProjectCycle(d, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, result.MinimumBelowInterest)
	assert.Equal(t, 5.00, result.MinimumDue)
}

func TestProjectCycle_NegativeInputsClamped(t *testing.T) {
	d := cardFixture()
	d.FixedMinimum = -50
	d.PendingAmount = -10
	d.ExtraPayment = -5

	result := ProjectCycle(d, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	assert.GreaterOrEqual(t, result.MinimumDue, 0.0)
	assert.GreaterOrEqual(t, result.PostPaymentBalance, 0.0)
}

func TestForecastInterest_CapturesNextMonthAndTotal(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	forecast := ForecastInterest(cardFixture(), now)

	require.Len(t, forecast.CycleBalances, 12)
	// Cycle 1 accrues on the post-payment balance of 485.00.
	assert.Equal(t, 9.70, forecast.NextMonthInterest)
	assert.Greater(t, forecast.TwelveMonthInterest, forecast.NextMonthInterest)
}

func TestForecastInterest_PlannedSpendAddedBeforeAccrual(t *testing.T) {
	d := cardFixture()
	d.PlannedSpend = 100

	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	forecast := ForecastInterest(d, now)

	// (485 + 100) * 2% = 11.70
	assert.Equal(t, 11.70, forecast.NextMonthInterest)
}

func TestForecastInterest_ZeroAPR(t *testing.T) {
	d := cardFixture()
	d.APR = 0

	forecast := ForecastInterest(d, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	assert.Zero(t, forecast.NextMonthInterest)
	assert.Zero(t, forecast.TwelveMonthInterest)
}

func TestForecastInterest_BalancesNeverNegative(t *testing.T) {
	d := cardFixture()
	d.ExtraPayment = 300

	forecast := ForecastInterest(d, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC))
	for i, bal := range forecast.CycleBalances {
		assert.GreaterOrEqual(t, bal, 0.0, "cycle %d", i+1)
	}
}
