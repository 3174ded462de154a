package planning

import (
	"fmt"
	"math"

	"github.com/avelacorte/moneta/internal/domain"
)

type SuggestionKind string

const (
	SuggestStable          SuggestionKind = "stable"
	SuggestTrimVariable    SuggestionKind = "trim_variable_cap"
	SuggestShiftSavings    SuggestionKind = "shift_savings_allocation"
	SuggestPauseExtraDebt  SuggestionKind = "pause_extra_debt_payment"
	SuggestSpreadOneOff    SuggestionKind = "spread_one_off"
	SuggestTargetIrregular SuggestionKind = "target_irregular_categories"
	SuggestResidualGap     SuggestionKind = "renegotiate_commitments"
)

// Suggestion is one step of the reallocation waterfall. ImpactAmount is
// the monthly amount the step contributes toward closing the gap, never
// exceeding the step's own capacity.
type Suggestion struct {
	Order        int
	Kind         SuggestionKind
	Detail       string
	ImpactAmount float64
	Capacity     float64
}

// variableTrimShare caps step 1 at 22% of the scenario variable cap.
// The step order below encodes a product policy decision, not an
// optimization result; keep it.
const variableTrimShare = 0.22

// oneOffSpreadMonths spreads the one-off expense over this many months.
const oneOffSpreadMonths = 3

// ReallocationPlan closes the monthly gap implied by a cash-negative
// forecast through the ordered greedy waterfall: variable trim, savings
// shift, extra-debt pause, one-off spreading, irregular-category
// targeting, then a residual structural gap. Returns a single stable
// suggestion when no window is cash-negative.
func ReallocationPlan(s ScenarioResult, windows []ForecastWindow, ctx PlanContext) []Suggestion {
	gap := monthlyGap(s, windows)
	if gap <= 0 {
		return []Suggestion{{
			Order:  1,
			Kind:   SuggestStable,
			Detail: "All forecast windows stay cash-positive; no reallocation needed",
		}}
	}

	remaining := gap
	var out []Suggestion
	add := func(kind SuggestionKind, capacity float64, detail string) {
		capacity = domain.RoundCents(capacity)
		impact := domain.RoundCents(math.Min(capacity, remaining))
		if impact <= 0 {
			return
		}
		remaining = domain.RoundCents(remaining - impact)
		out = append(out, Suggestion{
			Order:        len(out) + 1,
			Kind:         kind,
			Detail:       detail,
			ImpactAmount: impact,
			Capacity:     capacity,
		})
	}

	add(SuggestTrimVariable, s.VariableCap*variableTrimShare,
		fmt.Sprintf("Trim the variable spending cap (up to %.0f%% of %.2f)", variableTrimShare*100, s.VariableCap))
	add(SuggestShiftSavings, ctx.SavingsAllocation,
		"Shift part of the savings/goals allocation toward bills")
	add(SuggestPauseExtraDebt, s.ExtraDebtPayment,
		"Pause the configured extra debt payment")
	add(SuggestSpreadOneOff, s.OneOffExpense*(1-1.0/oneOffSpreadMonths),
		fmt.Sprintf("Spread the one-off expense over %d months", oneOffSpreadMonths))
	add(SuggestTargetIrregular, irregularOvershoot(ctx.Categories),
		"Target irregular budget categories for the remaining overshoot")

	if remaining > 0 {
		out = append(out, Suggestion{
			Order:        len(out) + 1,
			Kind:         SuggestResidualGap,
			Detail:       "Structural gap remains; fixed commitments need renegotiation",
			ImpactAmount: remaining,
			Capacity:     remaining,
		})
	}
	return out
}

// monthlyGap is the largest monthly shortfall implied by a negative
// scenario net or any cash-negative window normalized to a monthly rate.
// Zero when no window is cash-negative.
func monthlyGap(s ScenarioResult, windows []ForecastWindow) float64 {
	anyNegative := false
	gap := 0.0
	for _, w := range windows {
		if w.ProjectedCash >= 0 {
			continue
		}
		anyNegative = true
		monthly := -w.ProjectedCash / (float64(w.Days) / 30)
		gap = math.Max(gap, monthly)
	}
	if !anyNegative {
		return 0
	}
	if s.MonthlyNet < 0 {
		gap = math.Max(gap, -s.MonthlyNet)
	}
	return domain.RoundCents(gap)
}

func irregularOvershoot(categories []domain.BudgetCategory) float64 {
	var total float64
	for i := range categories {
		if IsIrregular(categories[i]) {
			total += categories[i].Overshoot()
		}
	}
	return total
}
