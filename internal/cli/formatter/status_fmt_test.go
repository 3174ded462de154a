package formatter

import (
	"testing"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/integrity"
	"github.com/stretchr/testify/assert"
)

func TestFormatSummaryShowsAggregates(t *testing.T) {
	out := FormatSummary(&domain.Summary{
		MonthlyIncome:      3000,
		MonthlyBills:       300,
		MonthlyCommitments: 525,
		ProjectedNet:       2475,
		CardBalances:       500,
		UtilizationPercent: 50,
		LiquidTotal:        5000,
		PurchaseCount:      2,
		PurchaseTotal:      100,
		RunwayMonths:       9.5,
	})

	assert.Contains(t, out, "$3000.00")
	assert.Contains(t, out, "+$2475.00")
	assert.Contains(t, out, "50.0%")
	assert.Contains(t, out, "9.5 months")
	assert.Contains(t, out, "Purchases (2)")
}

func TestFormatSummarySaturatedRunway(t *testing.T) {
	out := FormatSummary(&domain.Summary{RunwayMonths: 99})
	assert.Contains(t, out, "99+ months")
}

func TestFormatIntegrityCleanReport(t *testing.T) {
	out := FormatIntegrity(&integrity.Report{Pass: 12})
	assert.Contains(t, out, "12 pass")
	assert.Contains(t, out, "All aggregates verified.")
}

func TestFormatIntegritySurfacesFailures(t *testing.T) {
	out := FormatIntegrity(&integrity.Report{
		Pass:    11,
		Warning: 1,
		Checks: []integrity.Check{
			{ID: "monthly_income", Label: "Monthly income", Status: domain.CheckPass, Actual: 3000, Expected: 3000},
			{ID: "runway_months", Label: "Runway months", Status: domain.CheckWarning, Actual: 9.5, Expected: 9.2, Delta: 0.3, Detail: "rounded inputs"},
		},
	})

	assert.Contains(t, out, "1 warning")
	assert.Contains(t, out, "Runway months")
	assert.Contains(t, out, "rounded inputs")
	assert.NotContains(t, out, "Monthly income", "passing checks stay out of the table")
}
