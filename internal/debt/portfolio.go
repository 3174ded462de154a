package debt

import (
	"time"

	"github.com/avelacorte/moneta/internal/domain"
)

// PortfolioTotals aggregates per-account cycle results across a debt
// portfolio.
type PortfolioTotals struct {
	CurrentBalance      float64
	AvailableCredit     float64
	TotalLimit          float64
	UtilizationPercent  float64 // cards with a limit only
	MinimumDue          float64
	PlannedPayment      float64
	NextMonthInterest   float64
	TwelveMonthInterest float64
	WeightedAPR         float64 // balance-weighted average
}

// Portfolio sums per-account projections into portfolio totals.
func Portfolio(accounts []domain.DebtAccount, now time.Time) PortfolioTotals {
	var out PortfolioTotals
	var aprWeighted, balanceSum float64

	for _, raw := range accounts {
		d := raw.Sanitized()
		cycle := ProjectCycle(d, now)
		forecast := ForecastInterest(d, now)

		out.CurrentBalance += d.CurrentBalance
		out.AvailableCredit += d.AvailableCredit()
		out.TotalLimit += d.ResolvedLimit()
		out.MinimumDue += cycle.MinimumDue
		out.PlannedPayment += cycle.PlannedPayment
		out.NextMonthInterest += forecast.NextMonthInterest
		out.TwelveMonthInterest += forecast.TwelveMonthInterest

		aprWeighted += d.APR * d.CurrentBalance
		balanceSum += d.CurrentBalance
	}

	if out.TotalLimit > 0 {
		out.UtilizationPercent = out.CurrentBalance / out.TotalLimit * 100
	}
	if balanceSum > 0 {
		out.WeightedAPR = aprWeighted / balanceSum
	}

	out.CurrentBalance = domain.RoundCents(out.CurrentBalance)
	out.AvailableCredit = domain.RoundCents(out.AvailableCredit)
	out.TotalLimit = domain.RoundCents(out.TotalLimit)
	out.MinimumDue = domain.RoundCents(out.MinimumDue)
	out.PlannedPayment = domain.RoundCents(out.PlannedPayment)
	out.NextMonthInterest = domain.RoundCents(out.NextMonthInterest)
	out.TwelveMonthInterest = domain.RoundCents(out.TwelveMonthInterest)
	return out
}
