// Package integrity independently recomputes every top-level aggregate
// the display layer shows and reports pass/warning/fail deltas against
// the summary record. Mismatches are data for the caller, never errors.
package integrity

import (
	"fmt"
	"math"
	"time"

	"github.com/avelacorte/moneta/internal/cadence"
	"github.com/avelacorte/moneta/internal/debt"
	"github.com/avelacorte/moneta/internal/domain"
)

// Input is the full record set plus the summary under verification.
type Input struct {
	Now       time.Time
	Incomes   []domain.Income
	Bills     []domain.Bill
	Debts     []domain.DebtAccount
	Purchases []domain.Purchase
	Accounts  []domain.Account
	Goals     []domain.Goal
	Summary   domain.Summary
}

// Check is one recomputed aggregate compared against the summary.
type Check struct {
	ID       string
	Label    string
	Status   domain.CheckStatus
	Actual   float64 // the value the summary reports
	Expected float64 // independently recomputed
	Delta    float64
	Detail   string
}

// Report is the full integrity run.
type Report struct {
	Checks  []Check
	Pass    int
	Warning int
	Fail    int
}

// Default tolerances. Percentage and formula checks tolerate more
// because their inputs are themselves rounded aggregates.
const (
	tolCents   = 0.01
	tolFormula = 0.1
	tolPercent = 0.2
)

type checkDef struct {
	id        string
	label     string
	tolerance float64
	warnOnly  bool // downgrade a mismatch to warning instead of fail
	actual    func(domain.Summary) float64
	expected  func(*expectedValues) float64
}

// expectedValues caches the independent recomputation shared by the
// check definitions.
type expectedValues struct {
	monthlyIncome  float64
	monthlyBills   float64
	cards          debt.PortfolioTotals
	loans          debt.PortfolioTotals
	purchaseTotal  float64
	purchaseCount  int
	assetTotal     float64
	liabilityTotal float64
	liquidTotal    float64
	goalFunded     float64
	commitments    float64
}

var checks = []checkDef{
	{
		id: "monthly_income", label: "Monthly income", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.MonthlyIncome },
		expected: func(e *expectedValues) float64 { return e.monthlyIncome },
	},
	{
		id: "monthly_bills", label: "Monthly bills", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.MonthlyBills },
		expected: func(e *expectedValues) float64 { return e.monthlyBills },
	},
	{
		id: "card_minimum_due", label: "Card minimum due", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.CardMinimumDue },
		expected: func(e *expectedValues) float64 { return e.cards.MinimumDue },
	},
	{
		id: "card_planned_payments", label: "Card planned payments", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.CardPlannedPayments },
		expected: func(e *expectedValues) float64 { return e.cards.PlannedPayment },
	},
	{
		id: "card_limits", label: "Card limits", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.CardLimits },
		expected: func(e *expectedValues) float64 { return e.cards.TotalLimit },
	},
	{
		id: "card_balances", label: "Card balances", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.CardBalances },
		expected: func(e *expectedValues) float64 { return e.cards.CurrentBalance },
	},
	{
		id: "card_utilization", label: "Card utilization %", tolerance: tolPercent, warnOnly: true,
		actual:   func(s domain.Summary) float64 { return s.UtilizationPercent },
		expected: func(e *expectedValues) float64 { return e.cards.UtilizationPercent },
	},
	{
		id: "loan_payments", label: "Loan payments", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.LoanPayments },
		expected: func(e *expectedValues) float64 { return e.loans.PlannedPayment },
	},
	{
		id: "loan_balances", label: "Loan balances", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.LoanBalances },
		expected: func(e *expectedValues) float64 { return e.loans.CurrentBalance },
	},
	{
		id: "purchase_total", label: "Purchase total", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.PurchaseTotal },
		expected: func(e *expectedValues) float64 { return e.purchaseTotal },
	},
	{
		id: "purchase_count", label: "Purchase count", tolerance: 0,
		actual:   func(s domain.Summary) float64 { return float64(s.PurchaseCount) },
		expected: func(e *expectedValues) float64 { return float64(e.purchaseCount) },
	},
	{
		id: "asset_total", label: "Asset total", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.AssetTotal },
		expected: func(e *expectedValues) float64 { return e.assetTotal },
	},
	{
		id: "liability_total", label: "Liability total", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.LiabilityTotal },
		expected: func(e *expectedValues) float64 { return e.liabilityTotal },
	},
	{
		id: "liquid_total", label: "Liquid total", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.LiquidTotal },
		expected: func(e *expectedValues) float64 { return e.liquidTotal },
	},
	{
		id: "goal_funded_percent", label: "Goal funded %", tolerance: tolFormula, warnOnly: true,
		actual:   func(s domain.Summary) float64 { return s.GoalFundedPercent },
		expected: func(e *expectedValues) float64 { return e.goalFunded },
	},
	{
		id: "commitments_composition", label: "Commitments composition", tolerance: tolFormula,
		actual:   func(s domain.Summary) float64 { return s.MonthlyCommitments },
		expected: func(e *expectedValues) float64 { return e.commitments },
	},
	{
		id: "projected_net", label: "Projected net", tolerance: tolFormula,
		actual:   func(s domain.Summary) float64 { return s.ProjectedNet },
		expected: func(e *expectedValues) float64 { return e.monthlyIncome - e.commitments },
	},
	{
		id: "runway_pool", label: "Runway pool", tolerance: tolCents,
		actual:   func(s domain.Summary) float64 { return s.RunwayPool },
		expected: func(e *expectedValues) float64 { return e.liquidTotal },
	},
	{
		id: "runway_pressure", label: "Runway pressure", tolerance: tolFormula,
		actual:   func(s domain.Summary) float64 { return s.RunwayPressure },
		expected: func(e *expectedValues) float64 { return e.commitments },
	},
	{
		id: "runway_months", label: "Runway months", tolerance: tolPercent, warnOnly: true,
		actual:   func(s domain.Summary) float64 { return s.RunwayMonths },
		expected: func(e *expectedValues) float64 {
			if e.commitments <= 0 {
				return domain.RunwaySaturationMonths
			}
			return math.Min(e.liquidTotal/e.commitments, domain.RunwaySaturationMonths)
		},
	},
}

// Run recomputes every aggregate and compares it to the summary.
func Run(in Input) Report {
	e := recompute(in)

	var report Report
	for _, def := range checks {
		actual := def.actual(in.Summary)
		expected := def.expected(e)
		delta := actual - expected

		status := domain.CheckPass
		if math.Abs(delta) > def.tolerance {
			if def.warnOnly {
				status = domain.CheckWarning
			} else {
				status = domain.CheckFail
			}
		}

		report.add(Check{
			ID:       def.id,
			Label:    def.label,
			Status:   status,
			Actual:   actual,
			Expected: domain.RoundCents(expected),
			Delta:    domain.RoundCents(delta),
			Detail:   fmt.Sprintf("expected %.2f, summary reports %.2f", expected, actual),
		})
	}

	report.addRiskSignals(in)
	return report
}

func (r *Report) add(c Check) {
	r.Checks = append(r.Checks, c)
	switch c.Status {
	case domain.CheckPass:
		r.Pass++
	case domain.CheckWarning:
		r.Warning++
	case domain.CheckFail:
		r.Fail++
	}
}

// addRiskSignals appends warning records for debt accounts whose
// configured minimum does not cover the interest due. Informational by
// contract: a low minimum is a risk signal, not a blocked state.
func (r *Report) addRiskSignals(in Input) {
	for _, d := range in.Debts {
		cycle := debt.ProjectCycle(d, in.Now)
		if !cycle.MinimumBelowInterest {
			continue
		}
		r.add(Check{
			ID:       "minimum_below_interest:" + d.ID,
			Label:    "Minimum payment below interest",
			Status:   domain.CheckWarning,
			Actual:   cycle.MinimumDue,
			Expected: cycle.Interest,
			Delta:    domain.RoundCents(cycle.MinimumDue - cycle.Interest),
			Detail:   fmt.Sprintf("%s: minimum %.2f does not cover %.2f interest; balance grows", d.Name, cycle.MinimumDue, cycle.Interest),
		})
	}
}

func recompute(in Input) *expectedValues {
	e := &expectedValues{}

	for _, inc := range in.Incomes {
		e.monthlyIncome += cadence.Recurring(inc.Recurring)
	}
	e.monthlyIncome = domain.RoundCents(e.monthlyIncome)

	for _, b := range in.Bills {
		e.monthlyBills += cadence.Recurring(b.Recurring)
	}
	e.monthlyBills = domain.RoundCents(e.monthlyBills)

	var cards, loans []domain.DebtAccount
	for _, d := range in.Debts {
		if d.Kind == domain.DebtLoan {
			loans = append(loans, d)
		} else {
			cards = append(cards, d)
		}
	}
	e.cards = debt.Portfolio(cards, in.Now)
	e.loans = debt.Portfolio(loans, in.Now)

	for _, p := range in.Purchases {
		if p.Archived() {
			continue
		}
		e.purchaseTotal += domain.SafeAmount(p.Amount)
		e.purchaseCount++
	}
	e.purchaseTotal = domain.RoundCents(e.purchaseTotal)

	for _, a := range in.Accounts {
		bal := domain.SafeAmount(a.Balance)
		switch a.Class {
		case domain.AccountLiability:
			e.liabilityTotal += bal
		default:
			e.assetTotal += bal
			if a.Liquid {
				e.liquidTotal += bal
			}
		}
	}
	e.assetTotal = domain.RoundCents(e.assetTotal)
	e.liabilityTotal = domain.RoundCents(e.liabilityTotal)
	e.liquidTotal = domain.RoundCents(e.liquidTotal)

	var goalTarget, goalCurrent float64
	for _, g := range in.Goals {
		goalTarget += domain.SafeAmount(g.TargetAmount)
		goalCurrent += domain.SafeAmount(g.CurrentAmount)
	}
	if goalTarget > 0 {
		e.goalFunded = domain.ClampFloat(goalCurrent/goalTarget*100, 0, 100)
	}

	e.commitments = domain.RoundCents(e.monthlyBills + e.cards.PlannedPayment + e.loans.PlannedPayment)
	return e
}
