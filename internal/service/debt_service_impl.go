package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/debt"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/repository"
	"github.com/google/uuid"
)

type debtService struct {
	debts repository.DebtRepo
	now   func() time.Time
}

func NewDebtService(debts repository.DebtRepo) DebtService {
	return &debtService{
		debts: debts,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *debtService) Create(ctx context.Context, d *domain.DebtAccount) error {
	if d.Name == "" {
		return fmt.Errorf("debt account name is required")
	}
	if d.Kind != domain.DebtCard && d.Kind != domain.DebtLoan {
		return fmt.Errorf("unknown debt kind %q", d.Kind)
	}
	if d.MinimumPaymentMode == "" {
		d.MinimumPaymentMode = domain.MinimumFixed
	}
	if d.MinimumPaymentMode != domain.MinimumFixed && d.MinimumPaymentMode != domain.MinimumPercentPlusInterest {
		return fmt.Errorf("unknown minimum payment mode %q", d.MinimumPaymentMode)
	}
	*d = d.Sanitized()
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	now := s.now()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.debts.Create(ctx, d)
}

func (s *debtService) GetByID(ctx context.Context, id string) (*domain.DebtAccount, error) {
	return s.debts.GetByID(ctx, id)
}

func (s *debtService) List(ctx context.Context) ([]*domain.DebtAccount, error) {
	return s.debts.List(ctx)
}

func (s *debtService) Update(ctx context.Context, d *domain.DebtAccount) error {
	*d = d.Sanitized()
	d.UpdatedAt = s.now()
	return s.debts.Update(ctx, d)
}

func (s *debtService) Delete(ctx context.Context, id string) error {
	return s.debts.Delete(ctx, id)
}

func (s *debtService) Overview(ctx context.Context) (*DebtOverview, error) {
	all, err := s.debts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading debt accounts: %w", err)
	}
	now := s.now()

	var overview DebtOverview
	var cards, loans []domain.DebtAccount
	for _, d := range all {
		proj := DebtProjection{
			Account:  *d,
			Cycle:    debt.ProjectCycle(*d, now),
			Forecast: debt.ForecastInterest(*d, now),
		}
		if d.Kind == domain.DebtLoan {
			overview.Loans = append(overview.Loans, proj)
			loans = append(loans, *d)
		} else {
			overview.Cards = append(overview.Cards, proj)
			cards = append(cards, *d)
		}
	}
	overview.CardTotals = debt.Portfolio(cards, now)
	overview.LoanTotals = debt.Portfolio(loans, now)
	return &overview, nil
}

func (s *debtService) RankPayoff(ctx context.Context, strategy domain.PayoffStrategy) (*debt.PayoffRanking, error) {
	all, err := s.debts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading debt accounts: %w", err)
	}
	ranking := debt.RankPayoffTargets(derefDebts(all), strategy, s.now())
	return &ranking, nil
}
