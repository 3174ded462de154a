package repository

import (
	"context"

	"github.com/avelacorte/moneta/internal/domain"
)

type IncomeRepo interface {
	Create(ctx context.Context, i *domain.Income) error
	GetByID(ctx context.Context, id string) (*domain.Income, error)
	List(ctx context.Context) ([]*domain.Income, error)
	Update(ctx context.Context, i *domain.Income) error
	Delete(ctx context.Context, id string) error
}

type BillRepo interface {
	Create(ctx context.Context, b *domain.Bill) error
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	List(ctx context.Context) ([]*domain.Bill, error)
	Update(ctx context.Context, b *domain.Bill) error
	Delete(ctx context.Context, id string) error
}

type DebtRepo interface {
	Create(ctx context.Context, d *domain.DebtAccount) error
	GetByID(ctx context.Context, id string) (*domain.DebtAccount, error)
	List(ctx context.Context) ([]*domain.DebtAccount, error)
	ListByKind(ctx context.Context, kind domain.DebtKind) ([]*domain.DebtAccount, error)
	Update(ctx context.Context, d *domain.DebtAccount) error
	Delete(ctx context.Context, id string) error
}

type PurchaseRepo interface {
	Create(ctx context.Context, p *domain.Purchase) error
	GetByID(ctx context.Context, id string) (*domain.Purchase, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Purchase, error)
	Update(ctx context.Context, p *domain.Purchase) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type AccountRepo interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) error
	Delete(ctx context.Context, id string) error
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

type PlanVersionRepo interface {
	Upsert(ctx context.Context, p *domain.PlanVersion) error
	GetByMonthName(ctx context.Context, month string, name domain.PlanVersionName) (*domain.PlanVersion, error)
	ListByMonth(ctx context.Context, month string) ([]*domain.PlanVersion, error)
	// Select marks the named version selected and deselects the month's
	// other versions in the same statement set.
	Select(ctx context.Context, month string, name domain.PlanVersionName) error
	Delete(ctx context.Context, month string, name domain.PlanVersionName) error
}

type ResolvedPairRepo interface {
	Add(ctx context.Context, pair domain.ResolvedPair) error
	List(ctx context.Context) ([]domain.ResolvedPair, error)
	Has(ctx context.Context, a, b string) (bool, error)
}
