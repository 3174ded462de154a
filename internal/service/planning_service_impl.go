package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/avelacorte/moneta/internal/cadence"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/planning"
	"github.com/avelacorte/moneta/internal/repository"
	"github.com/google/uuid"
)

type planningService struct {
	summaries SummaryService
	versions  repository.PlanVersionRepo
	goals     repository.GoalRepo
	purchases repository.PurchaseRepo
	observer  UseCaseObserver
	now       func() time.Time
}

func NewPlanningService(
	summaries SummaryService,
	versions repository.PlanVersionRepo,
	goals repository.GoalRepo,
	purchases repository.PurchaseRepo,
	observers ...UseCaseObserver,
) PlanningService {
	return &planningService{
		summaries: summaries,
		versions:  versions,
		goals:     goals,
		purchases: purchases,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func validateMonth(month string) error {
	if _, err := time.Parse("2006-01", month); err != nil {
		return fmt.Errorf("month must be YYYY-MM: %w", err)
	}
	return nil
}

func (s *planningService) Workspace(ctx context.Context, month string) (*planning.Workspace, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	baseline, err := s.baseline(ctx)
	if err != nil {
		return nil, err
	}
	stored, err := s.versions.ListByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("loading plan versions: %w", err)
	}
	w := planning.BuildWorkspace(month, baseline, derefVersions(stored))
	return &w, nil
}

func (s *planningService) SaveVersion(ctx context.Context, v *domain.PlanVersion) error {
	if err := validateMonth(v.Month); err != nil {
		return err
	}
	if !domain.ValidPlanVersionNames[string(v.Name)] {
		return fmt.Errorf("unknown plan version name %q", v.Name)
	}
	v.ExpectedIncome = domain.SafeAmount(v.ExpectedIncome)
	v.FixedCommitments = domain.SafeAmount(v.FixedCommitments)
	v.VariableSpendingCap = domain.SafeAmount(v.VariableSpendingCap)
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	v.UpdatedAt = s.now()

	if err := s.versions.Upsert(ctx, v); err != nil {
		return err
	}
	// Upserting a selected version must displace the month's previous
	// selection, never add a second one.
	if v.Selected {
		return s.versions.Select(ctx, v.Month, v.Name)
	}
	return nil
}

func (s *planningService) SelectVersion(ctx context.Context, month string, name domain.PlanVersionName) error {
	if err := validateMonth(month); err != nil {
		return err
	}
	if !domain.ValidPlanVersionNames[string(name)] {
		return fmt.Errorf("unknown plan version name %q", name)
	}
	return s.versions.Select(ctx, month, name)
}

func (s *planningService) Simulate(ctx context.Context, month string, shock planning.Shock) (result *SimulationResult, err error) {
	startedAt := s.now()
	fields := map[string]any{"month": month}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "simulate-plan",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	workspace, err := s.Workspace(ctx, month)
	if err != nil {
		return nil, err
	}
	planCtx, err := s.planContext(ctx, workspace.Selected.Version)
	if err != nil {
		return nil, err
	}

	scenario := planning.ApplyScenario(*workspace, shock, planCtx)
	windows := planning.ForecastWindows(scenario, planCtx)
	suggestions := planning.ReallocationPlan(scenario, windows, planCtx)
	fields["suggestions"] = len(suggestions)

	return &SimulationResult{
		Workspace:   *workspace,
		Scenario:    scenario,
		Windows:     windows,
		Suggestions: suggestions,
	}, nil
}

// baseline derives the plan comparison triple from current records:
// normalized income, monthly commitments, and observed purchase spending.
func (s *planningService) baseline(ctx context.Context) (planning.PlanBaseline, error) {
	summary, err := s.summaries.Compute(ctx)
	if err != nil {
		return planning.PlanBaseline{}, err
	}
	return planning.PlanBaseline{
		ExpectedIncome:      summary.MonthlyIncome,
		FixedCommitments:    summary.MonthlyCommitments,
		VariableSpendingCap: summary.PurchaseTotal,
	}, nil
}

// planContext assembles the scenario inputs beyond the plan triple:
// liquid reserves, the active savings bucket, and budget categories
// derived from purchase records. Category targets are an even split of
// the version's variable cap so overshoot measures concentration.
func (s *planningService) planContext(ctx context.Context, v domain.PlanVersion) (planning.PlanContext, error) {
	summary, err := s.summaries.Compute(ctx)
	if err != nil {
		return planning.PlanContext{}, err
	}

	goals, err := s.goals.List(ctx)
	if err != nil {
		return planning.PlanContext{}, fmt.Errorf("loading goals: %w", err)
	}
	var savings float64
	for _, g := range goals {
		if g.Paused {
			continue
		}
		savings += cadence.Recurring(g.Contribution)
	}

	purchases, err := s.purchases.List(ctx, false)
	if err != nil {
		return planning.PlanContext{}, fmt.Errorf("loading purchases: %w", err)
	}
	categories := buildCategories(purchases, v.VariableSpendingCap)

	return planning.PlanContext{
		MonthlyBills:      summary.MonthlyBills,
		LiquidReserves:    summary.LiquidTotal,
		SavingsAllocation: domain.RoundCents(savings),
		Categories:        categories,
	}, nil
}

func buildCategories(purchases []*domain.Purchase, variableCap float64) []domain.BudgetCategory {
	totals := make(map[string]float64)
	for _, p := range purchases {
		name := p.Category
		if name == "" {
			name = "uncategorized"
		}
		totals[name] += domain.SafeAmount(p.Amount)
	}
	if len(totals) == 0 {
		return nil
	}

	target := domain.SafeAmount(variableCap) / float64(len(totals))
	categories := make([]domain.BudgetCategory, 0, len(totals))
	for name, projected := range totals {
		categories = append(categories, domain.BudgetCategory{
			Name:            name,
			TargetAmount:    domain.RoundCents(target),
			ProjectedAmount: domain.RoundCents(projected),
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Name < categories[j].Name
	})
	return categories
}

func derefVersions(in []*domain.PlanVersion) []domain.PlanVersion {
	out := make([]domain.PlanVersion, 0, len(in))
	for _, v := range in {
		out = append(out, *v)
	}
	return out
}
