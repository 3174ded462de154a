package service

import (
	"context"
	"testing"
	"time"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerService(t *testing.T) (LedgerService, *repoSet) {
	t.Helper()
	repos := newRepoSet(t)
	return NewLedgerService(repos.incomes, repos.bills, repos.accounts, repos.purchases), repos
}

func TestLedgerService_CreateIncomeDefaultsCadence(t *testing.T) {
	svc, _ := newLedgerService(t)
	ctx := context.Background()

	i := testutil.NewTestIncome("Salary", 3000)
	i.Recurring.Cadence = ""
	require.NoError(t, svc.CreateIncome(ctx, i))
	assert.Equal(t, domain.CadenceMonthly, i.Recurring.Cadence)

	got, err := svc.ListIncomes(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.CadenceMonthly, got[0].Recurring.Cadence)
}

func TestLedgerService_CreateIncomeRejectsBadCadence(t *testing.T) {
	svc, _ := newLedgerService(t)
	ctx := context.Background()

	i := testutil.NewTestIncome("Salary", 3000, testutil.WithIncomeCadence("fortnightly"))
	assert.Error(t, svc.CreateIncome(ctx, i))

	custom := testutil.NewTestIncome("Contract", 500, testutil.WithIncomeCadence(domain.CadenceCustom))
	assert.Error(t, svc.CreateIncome(ctx, custom), "custom cadence without an interval")

	custom.Recurring.CustomInterval = 6
	custom.Recurring.CustomUnit = domain.UnitWeeks
	assert.NoError(t, svc.CreateIncome(ctx, custom))
}

func TestLedgerService_CreateBillClampsNegativeAmount(t *testing.T) {
	svc, _ := newLedgerService(t)
	ctx := context.Background()

	b := testutil.NewTestBill("Rent", -1200)
	require.NoError(t, svc.CreateBill(ctx, b))
	assert.Zero(t, b.Recurring.Amount)

	unnamed := testutil.NewTestBill("", 100)
	assert.Error(t, svc.CreateBill(ctx, unnamed))
}

func TestLedgerService_CreateAccountValidatesClass(t *testing.T) {
	svc, _ := newLedgerService(t)
	ctx := context.Background()

	a := testutil.NewTestAccount("Checking", 5000)
	a.Class = ""
	require.NoError(t, svc.CreateAccount(ctx, a))
	assert.Equal(t, domain.AccountAsset, a.Class)

	bad := testutil.NewTestAccount("Vault", 100)
	bad.Class = "escrow"
	assert.Error(t, svc.CreateAccount(ctx, bad))
}

func TestLedgerService_CreatePurchaseDefaults(t *testing.T) {
	svc, _ := newLedgerService(t)
	ctx := context.Background()

	p := &domain.Purchase{Item: "Groceries", Amount: 42.50}
	require.NoError(t, svc.CreatePurchase(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ReconPending, p.ReconciliationStatus)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	assert.Equal(t, today, p.PurchaseDate)

	nameless := &domain.Purchase{Amount: 10}
	assert.Error(t, svc.CreatePurchase(ctx, nameless))
}

func TestLedgerService_ArchivePurchaseHidesFromListing(t *testing.T) {
	svc, _ := newLedgerService(t)
	ctx := context.Background()

	keep := testutil.NewTestPurchase("Groceries", 40)
	old := testutil.NewTestPurchase("Old charge", 60)
	require.NoError(t, svc.CreatePurchase(ctx, keep))
	require.NoError(t, svc.CreatePurchase(ctx, old))

	require.NoError(t, svc.ArchivePurchase(ctx, old.ID))

	visible, err := svc.ListPurchases(ctx, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, keep.ID, visible[0].ID)

	all, err := svc.ListPurchases(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
