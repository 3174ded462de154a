package planning

import (
	"regexp"

	"github.com/avelacorte/moneta/internal/domain"
)

// Shock is a what-if scenario applied to the selected plan version,
// never to the baseline.
type Shock struct {
	IncomeDropPercent   float64 // [0,100]
	BillIncreasePercent float64 // [0,500]
	ExtraDebtPayment    float64
	OneOffExpense       float64
	SmoothingEnabled    bool
	LookbackMonths      int
}

// PlanContext carries the record-derived inputs a scenario needs beyond
// the plan triple itself.
type PlanContext struct {
	MonthlyBills      float64 // bill share of fixed commitments
	LiquidReserves    float64
	SavingsAllocation float64 // active savings/goals monthly bucket
	Categories        []domain.BudgetCategory
}

// ScenarioResult is the shocked plan month.
type ScenarioResult struct {
	VersionName        domain.PlanVersionName
	Income             float64
	FixedCommitments   float64
	VariableCap        float64
	SeasonalAdjustment float64
	MonthlyNet         float64
	ExtraDebtPayment   float64
	OneOffExpense      float64
}

// Smoothing weight bounds: lookbackMonths/12 clamped to [0.2, 1.5].
const (
	smoothingWeightMin = 0.2
	smoothingWeightMax = 1.5
)

// irregularVariance flags a category as irregular when its projection
// strays at least this fraction from target.
const irregularVariance = 0.24

var seasonalKeyword = regexp.MustCompile(`(?i)\b(holiday|christmas|gift|travel|vacation|seasonal|annual|insurance|school|tax|birthday)`)

// ApplyScenario composes the shock onto the workspace's selected version:
// income drops by the given percent, fixed commitments grow by their bill
// share times the bill increase plus a flat extra debt payment, and the
// variable cap absorbs the seasonal-smoothing adjustment.
func ApplyScenario(w Workspace, shock Shock, ctx PlanContext) ScenarioResult {
	v := w.Selected.Version

	drop := domain.ClampFloat(shock.IncomeDropPercent, 0, 100)
	income := domain.SafeAmount(v.ExpectedIncome) * (1 - drop/100)

	fixed := domain.SafeAmount(v.FixedCommitments)
	increase := domain.ClampFloat(shock.BillIncreasePercent, 0, 500)
	fixed += fixed * billShare(ctx.MonthlyBills, v.FixedCommitments) * (increase / 100)
	fixed += domain.SafeAmount(shock.ExtraDebtPayment)

	seasonal := seasonalAdjustment(shock, ctx.Categories)
	variable := domain.SafeAmount(v.VariableSpendingCap) + seasonal

	income = domain.RoundCents(income)
	fixed = domain.RoundCents(fixed)
	variable = domain.RoundCents(variable)

	return ScenarioResult{
		VersionName:        v.Name,
		Income:             income,
		FixedCommitments:   fixed,
		VariableCap:        variable,
		SeasonalAdjustment: domain.RoundCents(seasonal),
		MonthlyNet:         domain.RoundCents(income - fixed - variable),
		ExtraDebtPayment:   domain.SafeAmount(shock.ExtraDebtPayment),
		OneOffExpense:      domain.SafeAmount(shock.OneOffExpense),
	}
}

// billShare is bills / total commitments, clamped to [0,1].
func billShare(bills, totalCommitments float64) float64 {
	bills = domain.SafeAmount(bills)
	totalCommitments = domain.SafeAmount(totalCommitments)
	if totalCommitments <= 0 {
		return 0
	}
	return domain.ClampFloat(bills/totalCommitments, 0, 1)
}

// seasonalAdjustment sums the projected overshoot of every irregular
// category, scaled by the smoothing weight. Zero when smoothing is off.
func seasonalAdjustment(shock Shock, categories []domain.BudgetCategory) float64 {
	if !shock.SmoothingEnabled {
		return 0
	}
	weight := domain.ClampFloat(float64(shock.LookbackMonths)/12, smoothingWeightMin, smoothingWeightMax)

	var overshoot float64
	for i := range categories {
		c := categories[i]
		if !IsIrregular(c) {
			continue
		}
		overshoot += c.Overshoot()
	}
	return overshoot * weight
}

// IsIrregular classifies a budget category as irregular: its name matches
// a seasonal keyword, or its projection strays >= 24% from its target.
func IsIrregular(c domain.BudgetCategory) bool {
	if seasonalKeyword.MatchString(c.Name) {
		return true
	}
	target := domain.SafeAmount(c.TargetAmount)
	if target <= 0 {
		return false
	}
	variance := domain.SafeAmount(c.ProjectedAmount) - target
	if variance < 0 {
		variance = -variance
	}
	return variance/target >= irregularVariance
}
