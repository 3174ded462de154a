package testutil

import (
	"time"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/google/uuid"
)

// Income options
type IncomeOption func(*domain.Income)

func WithIncomeCadence(c domain.Cadence) IncomeOption {
	return func(i *domain.Income) {
		i.Recurring.Cadence = c
	}
}

func NewTestIncome(name string, amount float64, opts ...IncomeOption) *domain.Income {
	i := &domain.Income{
		ID:        uuid.New().String(),
		Name:      name,
		Recurring: domain.RecurringAmount{Amount: amount, Cadence: domain.CadenceMonthly},
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Bill options
type BillOption func(*domain.Bill)

func WithBillCategory(c string) BillOption {
	return func(b *domain.Bill) {
		b.Category = c
	}
}

func WithBillCadence(c domain.Cadence) BillOption {
	return func(b *domain.Bill) {
		b.Recurring.Cadence = c
	}
}

func NewTestBill(name string, amount float64, opts ...BillOption) *domain.Bill {
	b := &domain.Bill{
		ID:        uuid.New().String(),
		Name:      name,
		Recurring: domain.RecurringAmount{Amount: amount, Cadence: domain.CadenceMonthly},
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// DebtAccount options
type DebtOption func(*domain.DebtAccount)

func WithCreditLimit(limit float64) DebtOption {
	return func(d *domain.DebtAccount) {
		d.CreditLimit = &limit
	}
}

func WithStatementBalance(bal float64) DebtOption {
	return func(d *domain.DebtAccount) {
		d.StatementBalance = &bal
	}
}

func WithAPR(apr float64) DebtOption {
	return func(d *domain.DebtAccount) {
		d.APR = apr
	}
}

func WithPercentMinimum(percent float64) DebtOption {
	return func(d *domain.DebtAccount) {
		d.MinimumPaymentMode = domain.MinimumPercentPlusInterest
		d.MinimumPercent = percent
	}
}

func WithExtraPayment(amount float64) DebtOption {
	return func(d *domain.DebtAccount) {
		d.ExtraPayment = amount
	}
}

func NewTestDebt(name string, kind domain.DebtKind, balance float64, opts ...DebtOption) *domain.DebtAccount {
	now := time.Now().UTC()
	d := &domain.DebtAccount{
		ID:                 uuid.New().String(),
		Name:               name,
		Kind:               kind,
		CurrentBalance:     balance,
		MinimumPaymentMode: domain.MinimumFixed,
		FixedMinimum:       25,
		APR:                20,
		DueDay:             21,
		StatementDay:       1,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Purchase options
type PurchaseOption func(*domain.Purchase)

func WithPurchaseDate(d time.Time) PurchaseOption {
	return func(p *domain.Purchase) {
		p.PurchaseDate = d
	}
}

func WithOwnership(o string) PurchaseOption {
	return func(p *domain.Purchase) {
		p.Ownership = o
	}
}

func WithNotes(n string) PurchaseOption {
	return func(p *domain.Purchase) {
		p.Notes = n
	}
}

func WithReconciliation(s domain.ReconciliationStatus) PurchaseOption {
	return func(p *domain.Purchase) {
		p.ReconciliationStatus = s
	}
}

func WithArchivedAt(t time.Time) PurchaseOption {
	return func(p *domain.Purchase) {
		p.ArchivedAt = &t
	}
}

func NewTestPurchase(item string, amount float64, opts ...PurchaseOption) *domain.Purchase {
	now := time.Now().UTC()
	p := &domain.Purchase{
		ID:                   uuid.New().String(),
		Item:                 item,
		Amount:               amount,
		PurchaseDate:         now.Truncate(24 * time.Hour),
		ReconciliationStatus: domain.ReconPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Account options
type AccountOption func(*domain.Account)

func WithClass(c domain.AccountClass) AccountOption {
	return func(a *domain.Account) {
		a.Class = c
	}
}

func WithLiquid() AccountOption {
	return func(a *domain.Account) {
		a.Liquid = true
	}
}

func NewTestAccount(name string, balance float64, opts ...AccountOption) *domain.Account {
	a := &domain.Account{
		ID:        uuid.New().String(),
		Name:      name,
		Class:     domain.AccountAsset,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalTargetDate(d time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.TargetDate = &d
	}
}

func WithContribution(amount float64, c domain.Cadence) GoalOption {
	return func(g *domain.Goal) {
		g.Contribution = domain.RecurringAmount{Amount: amount, Cadence: c}
	}
}

func WithCurrentAmount(a float64) GoalOption {
	return func(g *domain.Goal) {
		g.CurrentAmount = a
	}
}

func WithFundingSources(sources ...string) GoalOption {
	return func(g *domain.Goal) {
		g.FundingSources = sources
	}
}

func WithPaused() GoalOption {
	return func(g *domain.Goal) {
		g.Paused = true
	}
}

func NewTestGoal(name string, target float64, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	g := &domain.Goal{
		ID:           uuid.New().String(),
		Name:         name,
		TargetAmount: target,
		Contribution: domain.RecurringAmount{Cadence: domain.CadenceMonthly},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// PlanVersion options
type PlanVersionOption func(*domain.PlanVersion)

func WithPlanFigures(income, fixed, variableCap float64) PlanVersionOption {
	return func(p *domain.PlanVersion) {
		p.ExpectedIncome = income
		p.FixedCommitments = fixed
		p.VariableSpendingCap = variableCap
	}
}

func WithSelected() PlanVersionOption {
	return func(p *domain.PlanVersion) {
		p.Selected = true
	}
}

func NewTestPlanVersion(month string, name domain.PlanVersionName, opts ...PlanVersionOption) *domain.PlanVersion {
	p := &domain.PlanVersion{
		ID:        uuid.New().String(),
		Month:     month,
		Name:      name,
		UpdatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
