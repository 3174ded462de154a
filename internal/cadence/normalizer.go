// Package cadence converts recurring amounts into monthly equivalents.
// Every other engine aggregates through it, so it normalizes defensively:
// non-finite or negative inputs become 0 and it never returns NaN.
package cadence

import (
	"github.com/avelacorte/moneta/internal/domain"
)

// daysPerYear is the mean Gregorian year length.
const daysPerYear = 365.2425

// MonthlyAmount converts an amount recurring at the given cadence into
// its monthly equivalent. one_time amounts have no monthly equivalent
// and return 0, as does a custom cadence with a non-positive interval.
func MonthlyAmount(amount float64, c domain.Cadence, customInterval int, customUnit domain.CadenceUnit) float64 {
	amount = domain.SafeAmount(amount)

	switch c {
	case domain.CadenceWeekly:
		return amount * 52 / 12
	case domain.CadenceBiweekly:
		return amount * 26 / 12
	case domain.CadenceMonthly:
		return amount
	case domain.CadenceQuarterly:
		return amount / 3
	case domain.CadenceYearly:
		return amount / 12
	case domain.CadenceCustom:
		return customMonthly(amount, customInterval, customUnit)
	case domain.CadenceOneTime:
		return 0
	default:
		return 0
	}
}

func customMonthly(amount float64, interval int, unit domain.CadenceUnit) float64 {
	if interval <= 0 {
		return 0
	}
	n := float64(interval)
	switch unit {
	case domain.UnitDays:
		return amount * daysPerYear / (n * 12)
	case domain.UnitWeeks:
		return amount * daysPerYear / (n * 7 * 12)
	case domain.UnitMonths:
		return amount / n
	case domain.UnitYears:
		return amount / (n * 12)
	default:
		return 0
	}
}

// Recurring is MonthlyAmount applied to a domain.RecurringAmount.
func Recurring(r domain.RecurringAmount) float64 {
	return MonthlyAmount(r.Amount, r.Cadence, r.CustomInterval, r.CustomUnit)
}
