package domain

import "time"

// DebtAccount is the unified card/loan shape. Optional fields use
// pointers; resolution methods below define the fallback precedence
// explicitly rather than scattering null-coalescing at call sites.
type DebtAccount struct {
	ID   string
	Name string
	Kind DebtKind

	CreditLimit      *float64 // nil for loans and cards without a limit
	CurrentBalance   float64
	StatementBalance *float64 // nil falls back to CurrentBalance
	PendingAmount    float64

	MinimumPaymentMode MinimumPaymentMode
	FixedMinimum       float64
	MinimumPercent     float64 // [0,100]
	ExtraPayment       float64
	PlannedSpend       float64

	APR          float64
	DueDay       int // [1,31]
	StatementDay int // [1,31]

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResolvedStatementBalance returns the balance the statement cycle
// amortizes. Precedence: explicit statement balance, then current balance.
func (d *DebtAccount) ResolvedStatementBalance() float64 {
	if d.StatementBalance != nil {
		return SafeAmount(*d.StatementBalance)
	}
	return SafeAmount(d.CurrentBalance)
}

// ResolvedLimit returns the credit limit, or 0 when the account has none.
func (d *DebtAccount) ResolvedLimit() float64 {
	if d.CreditLimit == nil {
		return 0
	}
	return SafeAmount(*d.CreditLimit)
}

// AvailableCredit returns limit minus current balance, floored at 0.
// Accounts without a limit report 0.
func (d *DebtAccount) AvailableCredit() float64 {
	limit := d.ResolvedLimit()
	if limit <= 0 {
		return 0
	}
	avail := limit - SafeAmount(d.CurrentBalance)
	if avail < 0 {
		return 0
	}
	return avail
}

// Sanitized returns a copy with every field clamped to its domain
// invariant: monetary fields non-negative, MinimumPercent in [0,100],
// day-of-month fields in [1,31].
func (d DebtAccount) Sanitized() DebtAccount {
	out := d
	out.CurrentBalance = SafeAmount(d.CurrentBalance)
	out.PendingAmount = SafeAmount(d.PendingAmount)
	out.FixedMinimum = SafeAmount(d.FixedMinimum)
	out.MinimumPercent = ClampFloat(d.MinimumPercent, 0, 100)
	out.ExtraPayment = SafeAmount(d.ExtraPayment)
	out.PlannedSpend = SafeAmount(d.PlannedSpend)
	out.APR = SafeAmount(d.APR)
	out.DueDay = ClampInt(d.DueDay, 1, 31)
	out.StatementDay = ClampInt(d.StatementDay, 1, 31)
	if d.CreditLimit != nil {
		limit := SafeAmount(*d.CreditLimit)
		out.CreditLimit = &limit
	}
	if d.StatementBalance != nil {
		stmt := SafeAmount(*d.StatementBalance)
		out.StatementBalance = &stmt
	}
	return out
}
