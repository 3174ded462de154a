// Package debt amortizes card and loan accounts one statement cycle
// forward, forecasts 12 cycles of interest, aggregates portfolio totals,
// and ranks payoff targets. All functions are pure: inputs are sanitized
// copies and every monetary output is rounded to cents.
package debt

import (
	"time"

	"github.com/avelacorte/moneta/internal/domain"
)

const forecastCycles = 12

// CycleResult is one statement cycle projected forward.
type CycleResult struct {
	AccountID           string
	Interest            float64
	NewStatementBalance float64
	MinimumDue          float64
	PlannedPayment      float64
	PostPaymentBalance  float64

	// DueApplied reports whether this month's due day has already passed.
	// Until it does, the displayed balance stays at the raw current
	// balance; projections always assume the payment occurs.
	DueApplied       bool
	DisplayedBalance float64

	// MinimumBelowInterest flags a configured minimum that does not even
	// cover the interest accrued. Not an error: surfaced as a risk signal.
	MinimumBelowInterest bool
}

// monthlyRate converts an APR percentage into a monthly decimal rate.
func monthlyRate(apr float64) float64 {
	if apr <= 0 {
		return 0
	}
	return apr / 100 / 12
}

// ProjectCycle amortizes a single account one statement cycle forward.
// now supplies the due-day timing context.
func ProjectCycle(d domain.DebtAccount, now time.Time) CycleResult {
	d = d.Sanitized()
	stmt := d.ResolvedStatementBalance()

	interest := domain.RoundCents(stmt * monthlyRate(d.APR))
	newStmt := domain.RoundCents(stmt + interest)
	minDue := minimumDue(d, stmt, interest, newStmt)

	planned := domain.RoundCents(minDue + d.ExtraPayment)
	if planned > newStmt {
		planned = newStmt
	}

	post := newStmt - planned
	if post < 0 {
		post = 0
	}
	post = domain.RoundCents(post + d.PendingAmount)

	applied := dueApplied(d.DueDay, now)
	displayed := domain.SafeAmount(d.CurrentBalance)
	if applied {
		displayed = post
	}

	return CycleResult{
		AccountID:            d.ID,
		Interest:             interest,
		NewStatementBalance:  newStmt,
		MinimumDue:           minDue,
		PlannedPayment:       planned,
		PostPaymentBalance:   post,
		DueApplied:           applied,
		DisplayedBalance:     displayed,
		MinimumBelowInterest: interest > 0 && minDue < interest,
	}
}

// minimumDue computes the configured minimum, floored at 0 and capped at
// the post-interest statement balance.
func minimumDue(d domain.DebtAccount, stmt, interest, newStmt float64) float64 {
	var raw float64
	switch d.MinimumPaymentMode {
	case domain.MinimumPercentPlusInterest:
		raw = stmt*(d.MinimumPercent/100) + interest
	default:
		raw = d.FixedMinimum
	}
	if raw < 0 {
		raw = 0
	}
	if raw > newStmt {
		raw = newStmt
	}
	return domain.RoundCents(raw)
}

// dueApplied reports whether the account's due day for now's month has
// already passed. The due day is clamped to the month's last day so a
// DueDay of 31 works in February.
func dueApplied(dueDay int, now time.Time) bool {
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if dueDay > lastDay {
		dueDay = lastDay
	}
	return now.Day() > dueDay
}

// InterestForecast is the 12-cycle interest projection for one account.
type InterestForecast struct {
	AccountID           string
	NextMonthInterest   float64
	TwelveMonthInterest float64
	CycleBalances       []float64 // post-payment balance after each cycle
}

// ForecastInterest iterates the statement-cycle formulas for 12 cycles
// starting from the post-payment balance, adding planned spend before
// each accrual.
func ForecastInterest(d domain.DebtAccount, now time.Time) InterestForecast {
	d = d.Sanitized()
	first := ProjectCycle(d, now)

	out := InterestForecast{
		AccountID:     d.ID,
		CycleBalances: make([]float64, 0, forecastCycles),
	}

	bal := first.PostPaymentBalance
	rate := monthlyRate(d.APR)
	var total float64
	for cycle := 1; cycle <= forecastCycles; cycle++ {
		bal = domain.RoundCents(bal + d.PlannedSpend)
		interest := domain.RoundCents(bal * rate)
		if cycle == 1 {
			out.NextMonthInterest = interest
		}
		total += interest

		newStmt := domain.RoundCents(bal + interest)
		minDue := minimumDue(d, bal, interest, newStmt)
		payment := domain.RoundCents(minDue + d.ExtraPayment)
		if payment > newStmt {
			payment = newStmt
		}
		bal = newStmt - payment
		if bal < 0 {
			bal = 0
		}
		out.CycleBalances = append(out.CycleBalances, bal)
	}
	out.TwelveMonthInterest = domain.RoundCents(total)
	return out
}
