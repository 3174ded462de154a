package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/repository"
	"github.com/google/uuid"
)

type ledgerService struct {
	incomes   repository.IncomeRepo
	bills     repository.BillRepo
	accounts  repository.AccountRepo
	purchases repository.PurchaseRepo
}

func NewLedgerService(
	incomes repository.IncomeRepo,
	bills repository.BillRepo,
	accounts repository.AccountRepo,
	purchases repository.PurchaseRepo,
) LedgerService {
	return &ledgerService{
		incomes:   incomes,
		bills:     bills,
		accounts:  accounts,
		purchases: purchases,
	}
}

// validateRecurring rejects unknown cadences and custom cadences missing
// their interval or unit. Amounts are clamped, never rejected.
func validateRecurring(r *domain.RecurringAmount) error {
	if r.Cadence == "" {
		r.Cadence = domain.CadenceMonthly
	}
	if !domain.ValidCadences[string(r.Cadence)] {
		return fmt.Errorf("unknown cadence %q", r.Cadence)
	}
	if r.Cadence == domain.CadenceCustom {
		if r.CustomInterval <= 0 {
			return fmt.Errorf("custom cadence requires a positive interval")
		}
		switch r.CustomUnit {
		case domain.UnitDays, domain.UnitWeeks, domain.UnitMonths, domain.UnitYears:
		default:
			return fmt.Errorf("unknown cadence unit %q", r.CustomUnit)
		}
	}
	r.Amount = domain.SafeAmount(r.Amount)
	return nil
}

func (s *ledgerService) CreateIncome(ctx context.Context, i *domain.Income) error {
	if i.Name == "" {
		return fmt.Errorf("income name is required")
	}
	if err := validateRecurring(&i.Recurring); err != nil {
		return err
	}
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	i.CreatedAt = time.Now().UTC()
	return s.incomes.Create(ctx, i)
}

func (s *ledgerService) ListIncomes(ctx context.Context) ([]*domain.Income, error) {
	return s.incomes.List(ctx)
}

func (s *ledgerService) UpdateIncome(ctx context.Context, i *domain.Income) error {
	if err := validateRecurring(&i.Recurring); err != nil {
		return err
	}
	return s.incomes.Update(ctx, i)
}

func (s *ledgerService) DeleteIncome(ctx context.Context, id string) error {
	return s.incomes.Delete(ctx, id)
}

func (s *ledgerService) CreateBill(ctx context.Context, b *domain.Bill) error {
	if b.Name == "" {
		return fmt.Errorf("bill name is required")
	}
	if err := validateRecurring(&b.Recurring); err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now().UTC()
	return s.bills.Create(ctx, b)
}

func (s *ledgerService) ListBills(ctx context.Context) ([]*domain.Bill, error) {
	return s.bills.List(ctx)
}

func (s *ledgerService) UpdateBill(ctx context.Context, b *domain.Bill) error {
	if err := validateRecurring(&b.Recurring); err != nil {
		return err
	}
	return s.bills.Update(ctx, b)
}

func (s *ledgerService) DeleteBill(ctx context.Context, id string) error {
	return s.bills.Delete(ctx, id)
}

func (s *ledgerService) CreateAccount(ctx context.Context, a *domain.Account) error {
	if a.Name == "" {
		return fmt.Errorf("account name is required")
	}
	if a.Class == "" {
		a.Class = domain.AccountAsset
	}
	if a.Class != domain.AccountAsset && a.Class != domain.AccountLiability {
		return fmt.Errorf("unknown account class %q", a.Class)
	}
	a.Balance = domain.SafeAmount(a.Balance)
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.CreatedAt = time.Now().UTC()
	return s.accounts.Create(ctx, a)
}

func (s *ledgerService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	return s.accounts.List(ctx)
}

func (s *ledgerService) UpdateAccount(ctx context.Context, a *domain.Account) error {
	a.Balance = domain.SafeAmount(a.Balance)
	return s.accounts.Update(ctx, a)
}

func (s *ledgerService) DeleteAccount(ctx context.Context, id string) error {
	return s.accounts.Delete(ctx, id)
}

func (s *ledgerService) CreatePurchase(ctx context.Context, p *domain.Purchase) error {
	if p.Item == "" {
		return fmt.Errorf("purchase item is required")
	}
	p.Amount = domain.SafeAmount(p.Amount)
	now := time.Now().UTC()
	if p.PurchaseDate.IsZero() {
		p.PurchaseDate = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if p.ReconciliationStatus == "" {
		p.ReconciliationStatus = domain.ReconPending
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.purchases.Create(ctx, p)
}

func (s *ledgerService) ListPurchases(ctx context.Context, includeArchived bool) ([]*domain.Purchase, error) {
	return s.purchases.List(ctx, includeArchived)
}

func (s *ledgerService) UpdatePurchase(ctx context.Context, p *domain.Purchase) error {
	p.Amount = domain.SafeAmount(p.Amount)
	return s.purchases.Update(ctx, p)
}

func (s *ledgerService) ArchivePurchase(ctx context.Context, id string) error {
	return s.purchases.Archive(ctx, id)
}

func (s *ledgerService) DeletePurchase(ctx context.Context, id string) error {
	return s.purchases.Delete(ctx, id)
}
