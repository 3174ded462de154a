package planning

import (
	"github.com/avelacorte/moneta/internal/domain"
)

// ForecastWindow is one derived forecast horizon. Never persisted.
type ForecastWindow struct {
	Days           int
	ProjectedNet   float64
	ProjectedCash  float64
	CoverageMonths float64
	Risk           domain.RiskLevel
}

var windowDays = []int{30, 90, 365}

// ForecastWindows projects the scenario over 30/90/365 days. Coverage
// saturates at 99 months when the scenario has no outflow.
func ForecastWindows(s ScenarioResult, ctx PlanContext) []ForecastWindow {
	outflow := s.FixedCommitments + s.VariableCap

	out := make([]ForecastWindow, 0, len(windowDays))
	for _, days := range windowDays {
		net := domain.RoundCents(s.MonthlyNet*(float64(days)/30) - s.OneOffExpense)
		cash := domain.RoundCents(ctx.LiquidReserves + net)

		coverage := float64(domain.RunwaySaturationMonths)
		if outflow > 0 {
			coverage = cash / outflow
		}

		risk := domain.RiskHealthy
		switch {
		case cash < 0:
			risk = domain.RiskCritical
		case cash < s.FixedCommitments:
			risk = domain.RiskWarning
		}

		out = append(out, ForecastWindow{
			Days:           days,
			ProjectedNet:   net,
			ProjectedCash:  cash,
			CoverageMonths: coverage,
			Risk:           risk,
		})
	}
	return out
}
