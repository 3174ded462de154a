package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/goalcast"
	"github.com/avelacorte/moneta/internal/repository"
	"github.com/google/uuid"
)

type goalService struct {
	goals repository.GoalRepo
	now   func() time.Time
}

func NewGoalService(goals repository.GoalRepo) GoalService {
	return &goalService{
		goals: goals,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *goalService) Create(ctx context.Context, g *domain.Goal) error {
	if g.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if g.TargetAmount < 0 {
		return fmt.Errorf("goal target amount cannot be negative")
	}
	if err := validateRecurring(&g.Contribution); err != nil {
		return err
	}
	g.CurrentAmount = domain.SafeAmount(g.CurrentAmount)
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	now := s.now()
	g.CreatedAt = now
	g.UpdatedAt = now
	return s.goals.Create(ctx, g)
}

func (s *goalService) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

func (s *goalService) List(ctx context.Context) ([]*domain.Goal, error) {
	return s.goals.List(ctx)
}

func (s *goalService) Update(ctx context.Context, g *domain.Goal) error {
	if err := validateRecurring(&g.Contribution); err != nil {
		return err
	}
	g.CurrentAmount = domain.SafeAmount(g.CurrentAmount)
	g.UpdatedAt = s.now()
	return s.goals.Update(ctx, g)
}

func (s *goalService) Delete(ctx context.Context, id string) error {
	return s.goals.Delete(ctx, id)
}

func (s *goalService) Pause(ctx context.Context, id string, paused bool) error {
	g, err := s.goals.GetByID(ctx, id)
	if err != nil {
		return err
	}
	g.Paused = paused
	g.UpdatedAt = s.now()
	return s.goals.Update(ctx, g)
}

func (s *goalService) ForecastAll(ctx context.Context) ([]GoalView, error) {
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}
	now := s.now()

	views := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, GoalView{
			Goal:    *g,
			Metrics: goalcast.Forecast(*g, now),
		})
	}
	return views, nil
}
