package service

import (
	"context"
	"testing"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_CreateValidation(t *testing.T) {
	repos := newRepoSet(t)
	svc := NewGoalService(repos.goals)
	ctx := context.Background()

	unnamed := testutil.NewTestGoal("", 1000)
	assert.Error(t, svc.Create(ctx, unnamed))

	negative := testutil.NewTestGoal("Emergency fund", -500)
	assert.Error(t, svc.Create(ctx, negative))

	badCadence := testutil.NewTestGoal("Emergency fund", 1000,
		testutil.WithContribution(50, "fortnightly"))
	assert.Error(t, svc.Create(ctx, badCadence))

	good := testutil.NewTestGoal("Emergency fund", 1000)
	good.ID = ""
	require.NoError(t, svc.Create(ctx, good))
	assert.NotEmpty(t, good.ID)
	assert.False(t, good.CreatedAt.IsZero())
}

func TestGoalService_PauseRoundTrip(t *testing.T) {
	repos := newRepoSet(t)
	svc := NewGoalService(repos.goals)
	ctx := context.Background()

	g := testutil.NewTestGoal("Vacation", 2000, testutil.WithContribution(100, domain.CadenceMonthly))
	require.NoError(t, svc.Create(ctx, g))

	require.NoError(t, svc.Pause(ctx, g.ID, true))
	got, err := svc.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, got.Paused)

	require.NoError(t, svc.Pause(ctx, g.ID, false))
	got, err = svc.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.False(t, got.Paused)

	assert.Error(t, svc.Pause(ctx, "missing", true))
}

func TestGoalService_ForecastAll(t *testing.T) {
	repos := newRepoSet(t)
	svc := NewGoalService(repos.goals)
	ctx := context.Background()

	funded := testutil.NewTestGoal("Emergency fund", 1200,
		testutil.WithCurrentAmount(300),
		testutil.WithContribution(100, domain.CadenceMonthly),
		testutil.WithFundingSources("Checking"))
	require.NoError(t, svc.Create(ctx, funded))

	stalled := testutil.NewTestGoal("New laptop", 2000)
	require.NoError(t, svc.Create(ctx, stalled))

	views, err := svc.ForecastAll(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)

	byName := make(map[string]GoalView, len(views))
	for _, v := range views {
		byName[v.Goal.Name] = v
	}

	fm := byName["Emergency fund"].Metrics
	assert.Equal(t, 25.00, fm.ProgressPercent)
	assert.Equal(t, 900.00, fm.Remaining)
	assert.Equal(t, 100.00, fm.PlannedMonthlyContribution)
	assert.Nil(t, fm.DaysLeft, "no target date set")
	require.NotNil(t, fm.PredictedMonthsToComplete)
	assert.InDelta(t, 9.0, *fm.PredictedMonthsToComplete, 1e-9)

	sm := byName["New laptop"].Metrics
	assert.Contains(t, sm.AtRiskReasons, "No planned contribution set")
	assert.Less(t, sm.HealthScore, fm.HealthScore)
}
