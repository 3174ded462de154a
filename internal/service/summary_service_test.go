package service

import (
	"context"
	"testing"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummaryService(t *testing.T) (SummaryService, *repoSet) {
	t.Helper()
	repos := newRepoSet(t)
	svc := NewSummaryService(repos.incomes, repos.bills, repos.debts, repos.purchases, repos.accounts, repos.goals)
	return svc, repos
}

func TestSummaryService_ComputeAggregatesRecords(t *testing.T) {
	svc, repos := newSummaryService(t)
	ctx := context.Background()

	require.NoError(t, repos.incomes.Create(ctx, testutil.NewTestIncome("Salary", 3000)))
	require.NoError(t, repos.bills.Create(ctx, testutil.NewTestBill("Rent", 300)))
	card := testutil.NewTestDebt("Card", domain.DebtCard, 500,
		testutil.WithCreditLimit(1000),
		testutil.WithStatementBalance(500),
		testutil.WithAPR(24))
	card.FixedMinimum = 25
	require.NoError(t, repos.debts.Create(ctx, card))
	loan := testutil.NewTestDebt("Car Loan", domain.DebtLoan, 9000, testutil.WithAPR(0))
	loan.FixedMinimum = 200
	require.NoError(t, repos.debts.Create(ctx, loan))
	require.NoError(t, repos.purchases.Create(ctx, testutil.NewTestPurchase("Groceries", 40)))
	require.NoError(t, repos.purchases.Create(ctx, testutil.NewTestPurchase("Fuel", 60)))
	require.NoError(t, repos.accounts.Create(ctx, testutil.NewTestAccount("Checking", 5000, testutil.WithLiquid())))
	require.NoError(t, repos.accounts.Create(ctx, testutil.NewTestAccount("Brokerage", 2000)))
	require.NoError(t, repos.accounts.Create(ctx, testutil.NewTestAccount("Overdraft", 1500, testutil.WithClass(domain.AccountLiability))))
	require.NoError(t, repos.goals.Create(ctx, testutil.NewTestGoal("Fund", 1000, testutil.WithCurrentAmount(250))))

	summary, err := svc.Compute(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3000.00, summary.MonthlyIncome)
	assert.Equal(t, 300.00, summary.MonthlyBills)
	assert.Equal(t, 25.00, summary.CardMinimumDue)
	assert.Equal(t, 25.00, summary.CardPlannedPayments)
	assert.Equal(t, 1000.00, summary.CardLimits)
	assert.Equal(t, 500.00, summary.CardBalances)
	assert.Equal(t, 50.00, summary.UtilizationPercent)
	assert.Equal(t, 200.00, summary.LoanPayments)
	assert.Equal(t, 9000.00, summary.LoanBalances)
	assert.Equal(t, 100.00, summary.PurchaseTotal)
	assert.Equal(t, 2, summary.PurchaseCount)
	assert.Equal(t, 7000.00, summary.AssetTotal)
	assert.Equal(t, 1500.00, summary.LiabilityTotal)
	assert.Equal(t, 5000.00, summary.LiquidTotal)
	assert.Equal(t, 25.00, summary.GoalFundedPercent)
	assert.Equal(t, 525.00, summary.MonthlyCommitments)
	assert.Equal(t, 2475.00, summary.ProjectedNet)
	assert.InDelta(t, 5000.0/525.0, summary.RunwayMonths, 1e-9)
}

func TestSummaryService_ComputeEmptyDatabase(t *testing.T) {
	svc, _ := newSummaryService(t)

	summary, err := svc.Compute(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.MonthlyIncome)
	assert.Zero(t, summary.MonthlyCommitments)
	assert.Equal(t, float64(domain.RunwaySaturationMonths), summary.RunwayMonths)
}

func TestSummaryService_VerifyFreshSummaryPasses(t *testing.T) {
	svc, repos := newSummaryService(t)
	ctx := context.Background()

	require.NoError(t, repos.incomes.Create(ctx, testutil.NewTestIncome("Salary", 3000)))
	require.NoError(t, repos.bills.Create(ctx, testutil.NewTestBill("Rent", 1200)))
	require.NoError(t, repos.accounts.Create(ctx, testutil.NewTestAccount("Checking", 4000, testutil.WithLiquid())))

	report, err := svc.Verify(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Fail)
	assert.Zero(t, report.Warning)
	assert.Equal(t, len(report.Checks), report.Pass)
}

func TestSummaryService_VerifySurfacesMinimumBelowInterest(t *testing.T) {
	svc, repos := newSummaryService(t)
	ctx := context.Background()

	card := testutil.NewTestDebt("Card", domain.DebtCard, 500,
		testutil.WithStatementBalance(500),
		testutil.WithAPR(24))
	card.FixedMinimum = 5 // below the 10.00 monthly interest
	require.NoError(t, repos.debts.Create(ctx, card))

	report, err := svc.Verify(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Fail)
	require.NotZero(t, report.Warning)

	found := false
	for _, c := range report.Checks {
		if c.ID == "minimum_below_interest:"+card.ID {
			found = true
			assert.Equal(t, domain.CheckWarning, c.Status)
		}
	}
	assert.True(t, found, "risk signal emitted for the underwater minimum")
}

func TestSummaryService_ArchivedPurchasesExcluded(t *testing.T) {
	svc, repos := newSummaryService(t)
	ctx := context.Background()

	require.NoError(t, repos.purchases.Create(ctx, testutil.NewTestPurchase("Groceries", 40)))
	archived := testutil.NewTestPurchase("Old charge", 60)
	require.NoError(t, repos.purchases.Create(ctx, archived))
	require.NoError(t, repos.purchases.Archive(ctx, archived.ID))

	summary, err := svc.Compute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40.00, summary.PurchaseTotal)
	assert.Equal(t, 1, summary.PurchaseCount)
}
