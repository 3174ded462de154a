package cadence

import (
	"math"
	"testing"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyAmount_FixedCadences(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		cadence domain.Cadence
		want    float64
	}{
		{"weekly", 120, domain.CadenceWeekly, 120 * 52.0 / 12.0},
		{"biweekly", 200, domain.CadenceBiweekly, 200 * 26.0 / 12.0},
		{"monthly", 1500, domain.CadenceMonthly, 1500},
		{"quarterly", 300, domain.CadenceQuarterly, 100},
		{"yearly", 1200, domain.CadenceYearly, 100},
		{"one_time", 999, domain.CadenceOneTime, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyAmount(tt.amount, tt.cadence, 0, "")
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMonthlyAmount_CustomUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		interval int
		unit     domain.CadenceUnit
		want     float64
	}{
		{"every 10 days", 50, 10, domain.UnitDays, 50 * 365.2425 / (10 * 12)},
		{"every 2 weeks", 80, 2, domain.UnitWeeks, 80 * 365.2425 / (2 * 7 * 12)},
		{"every 3 months", 90, 3, domain.UnitMonths, 30},
		{"every 2 years", 240, 2, domain.UnitYears, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyAmount(tt.amount, domain.CadenceCustom, tt.interval, tt.unit)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMonthlyAmount_CustomGuards(t *testing.T) {
	assert.Zero(t, MonthlyAmount(100, domain.CadenceCustom, 0, domain.UnitDays))
	assert.Zero(t, MonthlyAmount(100, domain.CadenceCustom, -3, domain.UnitMonths))
	assert.Zero(t, MonthlyAmount(100, domain.CadenceCustom, 2, ""))
}

func TestMonthlyAmount_DefensiveInputs(t *testing.T) {
	assert.Zero(t, MonthlyAmount(math.NaN(), domain.CadenceMonthly, 0, ""))
	assert.Zero(t, MonthlyAmount(math.Inf(1), domain.CadenceWeekly, 0, ""))
	assert.Zero(t, MonthlyAmount(-250, domain.CadenceMonthly, 0, ""))
	assert.Zero(t, MonthlyAmount(100, domain.Cadence("unknown"), 0, ""))
}

// MonthlyAmount is linear in amount for every fixed cadence: f(2a) = 2f(a).
func TestMonthlyAmount_Linearity(t *testing.T) {
	cadences := []domain.Cadence{
		domain.CadenceWeekly, domain.CadenceBiweekly, domain.CadenceMonthly,
		domain.CadenceQuarterly, domain.CadenceYearly, domain.CadenceOneTime,
	}
	amounts := []float64{0, 0.01, 1, 17.35, 250, 99999.99}
	for _, c := range cadences {
		for _, a := range amounts {
			single := MonthlyAmount(a, c, 0, "")
			double := MonthlyAmount(2*a, c, 0, "")
			assert.InDelta(t, 2*single, double, 1e-6, "cadence %s amount %v", c, a)
		}
	}
}

func TestRecurring(t *testing.T) {
	r := domain.RecurringAmount{Amount: 90, Cadence: domain.CadenceCustom, CustomInterval: 3, CustomUnit: domain.UnitMonths}
	assert.InDelta(t, 30, Recurring(r), 1e-9)
}
