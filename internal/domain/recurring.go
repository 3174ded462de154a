package domain

import "time"

// RecurringAmount is an amount paired with how often it recurs.
// A custom cadence requires CustomInterval > 0 and a unit; the
// monthly equivalent of one_time is always 0.
type RecurringAmount struct {
	Amount         float64
	Cadence        Cadence
	CustomInterval int
	CustomUnit     CadenceUnit
}

// Income is a recurring income source.
type Income struct {
	ID        string
	Name      string
	Recurring RecurringAmount
	CreatedAt time.Time
}

// Bill is a recurring committed expense.
type Bill struct {
	ID        string
	Name      string
	Category  string
	Recurring RecurringAmount
	CreatedAt time.Time
}

// Account is a balance-carrying account used for asset/liability and
// liquid-reserve totals.
type Account struct {
	ID        string
	Name      string
	Class     AccountClass
	Liquid    bool
	Balance   float64
	CreatedAt time.Time
}
