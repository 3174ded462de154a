package service

import (
	"context"

	"github.com/avelacorte/moneta/internal/debt"
	"github.com/avelacorte/moneta/internal/dedupe"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/goalcast"
	"github.com/avelacorte/moneta/internal/integrity"
	"github.com/avelacorte/moneta/internal/planning"
)

// LedgerService manages the raw records the engines project from:
// incomes, bills, balance accounts, and purchases.
type LedgerService interface {
	CreateIncome(ctx context.Context, i *domain.Income) error
	ListIncomes(ctx context.Context) ([]*domain.Income, error)
	UpdateIncome(ctx context.Context, i *domain.Income) error
	DeleteIncome(ctx context.Context, id string) error

	CreateBill(ctx context.Context, b *domain.Bill) error
	ListBills(ctx context.Context) ([]*domain.Bill, error)
	UpdateBill(ctx context.Context, b *domain.Bill) error
	DeleteBill(ctx context.Context, id string) error

	CreateAccount(ctx context.Context, a *domain.Account) error
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
	UpdateAccount(ctx context.Context, a *domain.Account) error
	DeleteAccount(ctx context.Context, id string) error

	CreatePurchase(ctx context.Context, p *domain.Purchase) error
	ListPurchases(ctx context.Context, includeArchived bool) ([]*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, p *domain.Purchase) error
	ArchivePurchase(ctx context.Context, id string) error
	DeletePurchase(ctx context.Context, id string) error
}

type SummaryService interface {
	// Compute assembles the full summary from raw records.
	Compute(ctx context.Context) (*domain.Summary, error)
	// Verify recomputes every aggregate and reports deltas against the
	// freshly computed summary. Mismatches are data, not errors.
	Verify(ctx context.Context) (*integrity.Report, error)
}

// DebtProjection is one account with its cycle and interest forecast.
type DebtProjection struct {
	Account  domain.DebtAccount
	Cycle    debt.CycleResult
	Forecast debt.InterestForecast
}

// DebtOverview is the full debt picture: per-account projections plus
// card and loan portfolio totals.
type DebtOverview struct {
	Cards      []DebtProjection
	Loans      []DebtProjection
	CardTotals debt.PortfolioTotals
	LoanTotals debt.PortfolioTotals
}

type DebtService interface {
	Create(ctx context.Context, d *domain.DebtAccount) error
	GetByID(ctx context.Context, id string) (*domain.DebtAccount, error)
	List(ctx context.Context) ([]*domain.DebtAccount, error)
	Update(ctx context.Context, d *domain.DebtAccount) error
	Delete(ctx context.Context, id string) error

	Overview(ctx context.Context) (*DebtOverview, error)
	RankPayoff(ctx context.Context, strategy domain.PayoffStrategy) (*debt.PayoffRanking, error)
}

type DedupeService interface {
	// Scan flags unresolved duplicate and overlap pairs in canonical order.
	Scan(ctx context.Context) ([]dedupe.Match, error)
	Merge(ctx context.Context, primaryID, secondaryID string) error
	ArchiveDuplicate(ctx context.Context, primaryID, secondaryID string) error
	MarkIntentional(ctx context.Context, aID, bID string) error
}

// GoalView pairs a stored goal with its derived forecast.
type GoalView struct {
	Goal    domain.Goal
	Metrics goalcast.GoalMetrics
}

type GoalService interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
	Pause(ctx context.Context, id string, paused bool) error

	ForecastAll(ctx context.Context) ([]GoalView, error)
}

// SimulationResult is the full output of one what-if run.
type SimulationResult struct {
	Workspace   planning.Workspace
	Scenario    planning.ScenarioResult
	Windows     []planning.ForecastWindow
	Suggestions []planning.Suggestion
}

type PlanningService interface {
	// Workspace diffs the month's stored versions against the baseline
	// derived from current records.
	Workspace(ctx context.Context, month string) (*planning.Workspace, error)
	SaveVersion(ctx context.Context, v *domain.PlanVersion) error
	SelectVersion(ctx context.Context, month string, name domain.PlanVersionName) error
	Simulate(ctx context.Context, month string, shock planning.Shock) (*SimulationResult, error)
}
