package domain

import "time"

// Goal is a savings target with a recurring planned contribution.
type Goal struct {
	ID             string
	Name           string
	TargetAmount   float64
	CurrentAmount  float64
	TargetDate     *time.Time
	Contribution   RecurringAmount
	FundingSources []string
	Paused         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProgressPercent returns percent complete, clamped to [0,100].
func (g *Goal) ProgressPercent() float64 {
	if g.TargetAmount <= 0 {
		return 100
	}
	return ClampFloat(SafeAmount(g.CurrentAmount)/g.TargetAmount*100, 0, 100)
}

// Remaining returns the amount still owed toward the target, floored at 0.
func (g *Goal) Remaining() float64 {
	r := SafeAmount(g.TargetAmount) - SafeAmount(g.CurrentAmount)
	if r < 0 {
		return 0
	}
	return r
}
