package domain

import "time"

// PlanVersion is one named what-if plan for a month. Exactly one version
// per month is selected at a time; the repository enforces the invariant
// on select.
type PlanVersion struct {
	ID                  string
	Month               string // YYYY-MM
	Name                PlanVersionName
	ExpectedIncome      float64
	FixedCommitments    float64
	VariableSpendingCap float64
	Selected            bool
	UpdatedAt           time.Time
}

// MonthlyNet returns income minus fixed and variable outflow. Always
// recomputed from the triple, never stored.
func (p *PlanVersion) MonthlyNet() float64 {
	return RoundCents(SafeAmount(p.ExpectedIncome) - SafeAmount(p.FixedCommitments) - SafeAmount(p.VariableSpendingCap))
}

// BudgetCategory is a spending category with its target and the amount
// currently projected for the month. Used by seasonal smoothing and the
// reallocation waterfall.
type BudgetCategory struct {
	Name            string
	TargetAmount    float64
	ProjectedAmount float64
}

// Overshoot returns how far the projection exceeds the target, floored at 0.
func (c *BudgetCategory) Overshoot() float64 {
	over := SafeAmount(c.ProjectedAmount) - SafeAmount(c.TargetAmount)
	if over < 0 {
		return 0
	}
	return over
}
