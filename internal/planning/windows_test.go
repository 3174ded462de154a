package planning

import (
	"testing"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastWindows_PositiveNet(t *testing.T) {
	s := ScenarioResult{
		MonthlyNet:       500,
		FixedCommitments: 2000,
		VariableCap:      1000,
	}
	ctx := PlanContext{LiquidReserves: 4000}

	windows := ForecastWindows(s, ctx)

	require.Len(t, windows, 3)
	assert.Equal(t, []int{30, 90, 365}, []int{windows[0].Days, windows[1].Days, windows[2].Days})

	assert.Equal(t, 500.00, windows[0].ProjectedNet)
	assert.Equal(t, 1500.00, windows[1].ProjectedNet)
	assert.InDelta(t, 500*365.0/30, windows[2].ProjectedNet, 0.01)

	assert.Equal(t, 4500.00, windows[0].ProjectedCash)
	assert.Equal(t, domain.RiskHealthy, windows[0].Risk)
	assert.InDelta(t, 4500.0/3000, windows[0].CoverageMonths, 1e-9)
}

func TestForecastWindows_OneOffSubtractedPerWindow(t *testing.T) {
	s := ScenarioResult{
		MonthlyNet:       500,
		FixedCommitments: 2000,
		VariableCap:      1000,
		OneOffExpense:    600,
	}
	windows := ForecastWindows(s, PlanContext{LiquidReserves: 4000})

	assert.Equal(t, -100.00, windows[0].ProjectedNet)
	assert.Equal(t, 900.00, windows[1].ProjectedNet)
}

func TestForecastWindows_RiskLevels(t *testing.T) {
	s := ScenarioResult{
		MonthlyNet:       -1000,
		FixedCommitments: 2000,
		VariableCap:      500,
	}

	// Critical: cash goes negative in the long windows.
	windows := ForecastWindows(s, PlanContext{LiquidReserves: 2900})
	assert.Equal(t, domain.RiskWarning, windows[0].Risk, "cash 1900 below fixed commitments")
	assert.Equal(t, domain.RiskCritical, windows[1].Risk)
	assert.Equal(t, domain.RiskCritical, windows[2].Risk)

	// Healthy across the board with deep reserves.
	windows = ForecastWindows(ScenarioResult{MonthlyNet: 100, FixedCommitments: 500, VariableCap: 100}, PlanContext{LiquidReserves: 50000})
	for _, w := range windows {
		assert.Equal(t, domain.RiskHealthy, w.Risk)
	}
}

func TestForecastWindows_ZeroOutflowSaturatesCoverage(t *testing.T) {
	s := ScenarioResult{MonthlyNet: 100}
	windows := ForecastWindows(s, PlanContext{LiquidReserves: 1000})

	for _, w := range windows {
		assert.Equal(t, 99.0, w.CoverageMonths)
	}
}
