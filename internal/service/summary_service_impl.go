package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/avelacorte/moneta/internal/cadence"
	"github.com/avelacorte/moneta/internal/debt"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/integrity"
	"github.com/avelacorte/moneta/internal/repository"
)

type summaryService struct {
	incomes   repository.IncomeRepo
	bills     repository.BillRepo
	debts     repository.DebtRepo
	purchases repository.PurchaseRepo
	accounts  repository.AccountRepo
	goals     repository.GoalRepo
	observer  UseCaseObserver
	now       func() time.Time
}

func NewSummaryService(
	incomes repository.IncomeRepo,
	bills repository.BillRepo,
	debts repository.DebtRepo,
	purchases repository.PurchaseRepo,
	accounts repository.AccountRepo,
	goals repository.GoalRepo,
	observers ...UseCaseObserver,
) SummaryService {
	return &summaryService{
		incomes:   incomes,
		bills:     bills,
		debts:     debts,
		purchases: purchases,
		accounts:  accounts,
		goals:     goals,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// recordSet is one consistent read of every record type.
type recordSet struct {
	incomes   []*domain.Income
	bills     []*domain.Bill
	debts     []*domain.DebtAccount
	purchases []*domain.Purchase
	accounts  []*domain.Account
	goals     []*domain.Goal
}

func (s *summaryService) loadRecords(ctx context.Context) (*recordSet, error) {
	var rs recordSet
	var err error

	if rs.incomes, err = s.incomes.List(ctx); err != nil {
		return nil, fmt.Errorf("loading incomes: %w", err)
	}
	if rs.bills, err = s.bills.List(ctx); err != nil {
		return nil, fmt.Errorf("loading bills: %w", err)
	}
	if rs.debts, err = s.debts.List(ctx); err != nil {
		return nil, fmt.Errorf("loading debt accounts: %w", err)
	}
	if rs.purchases, err = s.purchases.List(ctx, true); err != nil {
		return nil, fmt.Errorf("loading purchases: %w", err)
	}
	if rs.accounts, err = s.accounts.List(ctx); err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}
	if rs.goals, err = s.goals.List(ctx); err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}
	return &rs, nil
}

func (s *summaryService) Compute(ctx context.Context) (summary *domain.Summary, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "compute-summary",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	rs, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	return buildSummary(rs, s.now()), nil
}

func (s *summaryService) Verify(ctx context.Context) (report *integrity.Report, err error) {
	startedAt := s.now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "verify-summary",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
		})
	}()

	rs, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	summary := buildSummary(rs, now)

	r := integrity.Run(integrity.Input{
		Now:       now,
		Incomes:   derefIncomes(rs.incomes),
		Bills:     derefBills(rs.bills),
		Debts:     derefDebts(rs.debts),
		Purchases: derefPurchases(rs.purchases),
		Accounts:  derefAccounts(rs.accounts),
		Goals:     derefGoals(rs.goals),
		Summary:   *summary,
	})
	return &r, nil
}

// buildSummary assembles every displayed aggregate from raw records using
// the same engine formulas the integrity checker verifies against.
func buildSummary(rs *recordSet, now time.Time) *domain.Summary {
	var sum domain.Summary

	for _, i := range rs.incomes {
		sum.MonthlyIncome += cadence.Recurring(i.Recurring)
	}
	sum.MonthlyIncome = domain.RoundCents(sum.MonthlyIncome)

	for _, b := range rs.bills {
		sum.MonthlyBills += cadence.Recurring(b.Recurring)
	}
	sum.MonthlyBills = domain.RoundCents(sum.MonthlyBills)

	var cards, loans []domain.DebtAccount
	for _, d := range rs.debts {
		if d.Kind == domain.DebtLoan {
			loans = append(loans, *d)
		} else {
			cards = append(cards, *d)
		}
	}
	cardTotals := debt.Portfolio(cards, now)
	loanTotals := debt.Portfolio(loans, now)

	sum.CardMinimumDue = cardTotals.MinimumDue
	sum.CardPlannedPayments = cardTotals.PlannedPayment
	sum.CardLimits = cardTotals.TotalLimit
	sum.CardBalances = cardTotals.CurrentBalance
	sum.UtilizationPercent = cardTotals.UtilizationPercent
	sum.LoanPayments = loanTotals.PlannedPayment
	sum.LoanBalances = loanTotals.CurrentBalance

	for _, p := range rs.purchases {
		if p.Archived() {
			continue
		}
		sum.PurchaseTotal += domain.SafeAmount(p.Amount)
		sum.PurchaseCount++
	}
	sum.PurchaseTotal = domain.RoundCents(sum.PurchaseTotal)

	for _, a := range rs.accounts {
		bal := domain.SafeAmount(a.Balance)
		switch a.Class {
		case domain.AccountLiability:
			sum.LiabilityTotal += bal
		default:
			sum.AssetTotal += bal
			if a.Liquid {
				sum.LiquidTotal += bal
			}
		}
	}
	sum.AssetTotal = domain.RoundCents(sum.AssetTotal)
	sum.LiabilityTotal = domain.RoundCents(sum.LiabilityTotal)
	sum.LiquidTotal = domain.RoundCents(sum.LiquidTotal)

	var goalTarget, goalCurrent float64
	for _, g := range rs.goals {
		goalTarget += domain.SafeAmount(g.TargetAmount)
		goalCurrent += domain.SafeAmount(g.CurrentAmount)
	}
	if goalTarget > 0 {
		sum.GoalFundedPercent = domain.ClampFloat(goalCurrent/goalTarget*100, 0, 100)
	}

	sum.MonthlyCommitments = domain.RoundCents(sum.MonthlyBills + sum.CardPlannedPayments + sum.LoanPayments)
	sum.ProjectedNet = domain.RoundCents(sum.MonthlyIncome - sum.MonthlyCommitments)
	sum.RunwayPool = sum.LiquidTotal
	sum.RunwayPressure = sum.MonthlyCommitments
	if sum.RunwayPressure <= 0 {
		sum.RunwayMonths = domain.RunwaySaturationMonths
	} else {
		sum.RunwayMonths = math.Min(sum.RunwayPool/sum.RunwayPressure, domain.RunwaySaturationMonths)
	}
	return &sum
}

func derefIncomes(in []*domain.Income) []domain.Income {
	out := make([]domain.Income, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}

func derefBills(in []*domain.Bill) []domain.Bill {
	out := make([]domain.Bill, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}

func derefDebts(in []*domain.DebtAccount) []domain.DebtAccount {
	out := make([]domain.DebtAccount, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}

func derefPurchases(in []*domain.Purchase) []domain.Purchase {
	out := make([]domain.Purchase, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}

func derefAccounts(in []*domain.Account) []domain.Account {
	out := make([]domain.Account, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}

func derefGoals(in []*domain.Goal) []domain.Goal {
	out := make([]domain.Goal, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}
