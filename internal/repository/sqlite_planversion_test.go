package repository

import (
	"context"
	"testing"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanVersionRepo_UpsertInsertsThenUpdates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanVersionRepo(db)
	ctx := context.Background()

	v := testutil.NewTestPlanVersion("2024-06", domain.PlanBase,
		testutil.WithPlanFigures(3000, 1800, 600),
		testutil.WithSelected())
	require.NoError(t, repo.Upsert(ctx, v))

	v.VariableSpendingCap = 500
	require.NoError(t, repo.Upsert(ctx, v))

	got, err := repo.GetByMonthName(ctx, "2024-06", domain.PlanBase)
	require.NoError(t, err)
	assert.Equal(t, 3000.00, got.ExpectedIncome)
	assert.Equal(t, 500.00, got.VariableSpendingCap)
	assert.True(t, got.Selected)

	versions, err := repo.ListByMonth(ctx, "2024-06")
	require.NoError(t, err)
	assert.Len(t, versions, 1, "upsert never duplicates a month/name row")
}

func TestPlanVersionRepo_ListCanonicalOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanVersionRepo(db)
	ctx := context.Background()

	// Inserted out of order on purpose.
	for _, name := range []domain.PlanVersionName{domain.PlanAggressive, domain.PlanBase, domain.PlanConservative} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanVersion("2024-06", name)))
	}

	versions, err := repo.ListByMonth(ctx, "2024-06")
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, domain.PlanBase, versions[0].Name)
	assert.Equal(t, domain.PlanConservative, versions[1].Name)
	assert.Equal(t, domain.PlanAggressive, versions[2].Name)
}

func TestPlanVersionRepo_SelectDeselectsSiblings(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanVersionRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanVersion("2024-06", domain.PlanBase, testutil.WithSelected())))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanVersion("2024-06", domain.PlanConservative)))

	require.NoError(t, repo.Select(ctx, "2024-06", domain.PlanConservative))

	versions, err := repo.ListByMonth(ctx, "2024-06")
	require.NoError(t, err)

	var selected []domain.PlanVersionName
	for _, v := range versions {
		if v.Selected {
			selected = append(selected, v.Name)
		}
	}
	assert.Equal(t, []domain.PlanVersionName{domain.PlanConservative}, selected)
}

func TestPlanVersionRepo_SelectScopedToMonth(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanVersionRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanVersion("2024-06", domain.PlanBase, testutil.WithSelected())))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanVersion("2024-07", domain.PlanBase, testutil.WithSelected())))
	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanVersion("2024-07", domain.PlanAggressive)))

	require.NoError(t, repo.Select(ctx, "2024-07", domain.PlanAggressive))

	june, err := repo.GetByMonthName(ctx, "2024-06", domain.PlanBase)
	require.NoError(t, err)
	assert.True(t, june.Selected, "selection in another month is untouched")
}

func TestPlanVersionRepo_SelectMissingVersionFails(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanVersionRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanVersion("2024-06", domain.PlanBase, testutil.WithSelected())))

	err := repo.Select(ctx, "2024-06", domain.PlanAggressive)
	require.Error(t, err)

	got, err := repo.GetByMonthName(ctx, "2024-06", domain.PlanBase)
	require.NoError(t, err)
	assert.True(t, got.Selected, "failed select leaves the current selection alone")
}

func TestPlanVersionRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLitePlanVersionRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, testutil.NewTestPlanVersion("2024-06", domain.PlanBase)))
	require.NoError(t, repo.Delete(ctx, "2024-06", domain.PlanBase))

	_, err := repo.GetByMonthName(ctx, "2024-06", domain.PlanBase)
	assert.Error(t, err)
}
