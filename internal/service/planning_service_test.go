package service

import (
	"context"
	"testing"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/planning"
	"github.com/avelacorte/moneta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlanningService(t *testing.T) (PlanningService, *repoSet) {
	t.Helper()
	repos := newRepoSet(t)
	summaries := NewSummaryService(repos.incomes, repos.bills, repos.debts, repos.purchases, repos.accounts, repos.goals)
	svc := NewPlanningService(summaries, repos.versions, repos.goals, repos.purchases)
	return svc, repos
}

func TestPlanningService_SaveVersionValidation(t *testing.T) {
	svc, _ := newPlanningService(t)
	ctx := context.Background()

	badMonth := testutil.NewTestPlanVersion("2025-13", domain.PlanBase)
	assert.Error(t, svc.SaveVersion(ctx, badMonth))

	badName := testutil.NewTestPlanVersion("2025-09", "yolo")
	assert.Error(t, svc.SaveVersion(ctx, badName))

	v := testutil.NewTestPlanVersion("2025-09", domain.PlanBase,
		testutil.WithPlanFigures(-100, 500, 300))
	v.ID = ""
	require.NoError(t, svc.SaveVersion(ctx, v))
	assert.NotEmpty(t, v.ID)
	assert.Zero(t, v.ExpectedIncome, "negative figures clamp to zero")
}

func TestPlanningService_SaveSelectedDisplacesPreviousSelection(t *testing.T) {
	svc, repos := newPlanningService(t)
	ctx := context.Background()

	base := testutil.NewTestPlanVersion("2025-09", domain.PlanBase,
		testutil.WithPlanFigures(3000, 500, 400), testutil.WithSelected())
	require.NoError(t, svc.SaveVersion(ctx, base))

	conservative := testutil.NewTestPlanVersion("2025-09", domain.PlanConservative,
		testutil.WithPlanFigures(2800, 500, 300), testutil.WithSelected())
	require.NoError(t, svc.SaveVersion(ctx, conservative))

	stored, err := repos.versions.ListByMonth(ctx, "2025-09")
	require.NoError(t, err)
	require.Len(t, stored, 2)

	selected := 0
	for _, v := range stored {
		if v.Selected {
			selected++
			assert.Equal(t, domain.PlanConservative, v.Name)
		}
	}
	assert.Equal(t, 1, selected)
}

func TestPlanningService_SelectVersion(t *testing.T) {
	svc, _ := newPlanningService(t)
	ctx := context.Background()

	assert.Error(t, svc.SelectVersion(ctx, "september", domain.PlanBase))
	assert.Error(t, svc.SelectVersion(ctx, "2025-09", "yolo"))
	assert.Error(t, svc.SelectVersion(ctx, "2025-09", domain.PlanBase), "nothing stored for the month yet")

	v := testutil.NewTestPlanVersion("2025-09", domain.PlanBase,
		testutil.WithPlanFigures(3000, 500, 400))
	require.NoError(t, svc.SaveVersion(ctx, v))
	require.NoError(t, svc.SelectVersion(ctx, "2025-09", domain.PlanBase))

	w, err := svc.Workspace(ctx, "2025-09")
	require.NoError(t, err)
	assert.Equal(t, domain.PlanBase, w.Selected.Version.Name)
	assert.True(t, w.Selected.Version.Selected)
}

func TestPlanningService_WorkspaceSynthesizesFromRecords(t *testing.T) {
	svc, repos := newPlanningService(t)
	ctx := context.Background()

	require.NoError(t, repos.incomes.Create(ctx, testutil.NewTestIncome("Salary", 3000)))
	require.NoError(t, repos.bills.Create(ctx, testutil.NewTestBill("Rent", 500)))
	require.NoError(t, repos.purchases.Create(ctx, testutil.NewTestPurchase("Groceries", 150)))

	w, err := svc.Workspace(ctx, "2025-09")
	require.NoError(t, err)

	assert.Equal(t, 3000.00, w.Baseline.ExpectedIncome)
	assert.Equal(t, 500.00, w.Baseline.FixedCommitments)
	assert.Equal(t, 150.00, w.Baseline.VariableSpendingCap)
	assert.Equal(t, 2350.00, w.BaselineNet)

	require.Len(t, w.Versions, 3)
	for _, view := range w.Versions {
		assert.Zero(t, view.IncomeDelta, "synthesized versions mirror the baseline")
		assert.Zero(t, view.FixedDelta)
		assert.Zero(t, view.VariableDelta)
	}
	assert.Equal(t, domain.PlanBase, w.Selected.Version.Name)
}

func TestPlanningService_SimulateStableWhenCashPositive(t *testing.T) {
	svc, repos := newPlanningService(t)
	ctx := context.Background()

	require.NoError(t, repos.incomes.Create(ctx, testutil.NewTestIncome("Salary", 3000)))
	require.NoError(t, repos.bills.Create(ctx, testutil.NewTestBill("Rent", 500)))
	require.NoError(t, repos.accounts.Create(ctx, testutil.NewTestAccount("Checking", 1000, testutil.WithLiquid())))

	v := testutil.NewTestPlanVersion("2025-09", domain.PlanBase,
		testutil.WithPlanFigures(3000, 500, 400), testutil.WithSelected())
	require.NoError(t, svc.SaveVersion(ctx, v))

	result, err := svc.Simulate(ctx, "2025-09", planning.Shock{})
	require.NoError(t, err)

	assert.Equal(t, 2100.00, result.Scenario.MonthlyNet)
	require.Len(t, result.Windows, 3)
	for _, w := range result.Windows {
		assert.Equal(t, domain.RiskHealthy, w.Risk)
	}
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, planning.SuggestStable, result.Suggestions[0].Kind)
}

func TestPlanningService_SimulateIncomeLossYieldsWaterfall(t *testing.T) {
	svc, repos := newPlanningService(t)
	ctx := context.Background()

	require.NoError(t, repos.incomes.Create(ctx, testutil.NewTestIncome("Salary", 3000)))
	require.NoError(t, repos.bills.Create(ctx, testutil.NewTestBill("Rent", 500)))
	require.NoError(t, repos.accounts.Create(ctx, testutil.NewTestAccount("Checking", 1000, testutil.WithLiquid())))
	require.NoError(t, repos.goals.Create(ctx, testutil.NewTestGoal("Emergency fund", 5000,
		testutil.WithContribution(100, domain.CadenceMonthly))))

	v := testutil.NewTestPlanVersion("2025-09", domain.PlanBase,
		testutil.WithPlanFigures(3000, 500, 400), testutil.WithSelected())
	require.NoError(t, svc.SaveVersion(ctx, v))

	result, err := svc.Simulate(ctx, "2025-09", planning.Shock{IncomeDropPercent: 100})
	require.NoError(t, err)

	assert.Equal(t, -900.00, result.Scenario.MonthlyNet)
	assert.Equal(t, domain.RiskCritical, result.Windows[2].Risk, "year-out window burns through reserves")

	// Trim 22% of the 400 cap, shift the 100 goal contribution, then a
	// structural gap absorbs the rest of the 900 monthly shortfall.
	require.Len(t, result.Suggestions, 3)
	assert.Equal(t, planning.SuggestTrimVariable, result.Suggestions[0].Kind)
	assert.Equal(t, 88.00, result.Suggestions[0].ImpactAmount)
	assert.Equal(t, planning.SuggestShiftSavings, result.Suggestions[1].Kind)
	assert.Equal(t, 100.00, result.Suggestions[1].ImpactAmount)
	assert.Equal(t, planning.SuggestResidualGap, result.Suggestions[2].Kind)
	assert.Equal(t, 712.00, result.Suggestions[2].ImpactAmount)
}

func TestPlanningService_PausedGoalExcludedFromSavingsBucket(t *testing.T) {
	svc, repos := newPlanningService(t)
	ctx := context.Background()

	require.NoError(t, repos.incomes.Create(ctx, testutil.NewTestIncome("Salary", 3000)))
	require.NoError(t, repos.goals.Create(ctx, testutil.NewTestGoal("Paused fund", 5000,
		testutil.WithContribution(100, domain.CadenceMonthly), testutil.WithPaused())))

	v := testutil.NewTestPlanVersion("2025-09", domain.PlanBase,
		testutil.WithPlanFigures(3000, 2900, 400), testutil.WithSelected())
	require.NoError(t, svc.SaveVersion(ctx, v))

	result, err := svc.Simulate(ctx, "2025-09", planning.Shock{IncomeDropPercent: 100})
	require.NoError(t, err)

	for _, s := range result.Suggestions {
		assert.NotEqual(t, planning.SuggestShiftSavings, s.Kind, "paused contributions offer no capacity")
	}
}
