package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avelacorte/moneta/internal/db"
	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A duplicate resolution archives the secondary purchase and records the
// pair in the same transaction; a failure between the two writes must
// roll both back.
func TestWithinTx_ResolutionCommitsAtomically(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	purchases := NewSQLitePurchaseRepo(database)
	primary := testutil.NewTestPurchase("Netflix", 15.99)
	secondary := testutil.NewTestPurchase("NETFLIX.COM", 15.99)
	require.NoError(t, purchases.Create(ctx, primary))
	require.NoError(t, purchases.Create(ctx, secondary))

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPurchases := NewSQLitePurchaseRepo(tx)
		txPairs := NewSQLiteResolvedPairRepo(tx)

		if err := txPurchases.Archive(ctx, secondary.ID); err != nil {
			return err
		}
		return txPairs.Add(ctx, domain.NewResolvedPair(primary.ID, secondary.ID, domain.ResolutionArchived, time.Now().UTC()))
	})
	require.NoError(t, err)

	got, err := purchases.GetByID(ctx, secondary.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived())

	has, err := NewSQLiteResolvedPairRepo(database).Has(ctx, primary.ID, secondary.ID)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestWithinTx_FailureRollsBackAllWrites(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	purchases := NewSQLitePurchaseRepo(database)
	primary := testutil.NewTestPurchase("Netflix", 15.99)
	secondary := testutil.NewTestPurchase("NETFLIX.COM", 15.99)
	require.NoError(t, purchases.Create(ctx, primary))
	require.NoError(t, purchases.Create(ctx, secondary))

	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPurchases := NewSQLitePurchaseRepo(tx)
		txPairs := NewSQLiteResolvedPairRepo(tx)

		if err := txPurchases.Archive(ctx, secondary.ID); err != nil {
			return err
		}
		return txPairs.Add(ctx, domain.NewResolvedPair(primary.ID, secondary.ID, domain.ResolutionArchived, time.Now().UTC()))
	})
	require.ErrorIs(t, err, injected)

	got, err := purchases.GetByID(ctx, secondary.ID)
	require.NoError(t, err)
	assert.False(t, got.Archived(), "archive rolled back with the failed pair insert")

	has, err := NewSQLiteResolvedPairRepo(database).Has(ctx, primary.ID, secondary.ID)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestWithinTx_ErrorFromCallbackPropagates(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	sentinel := errors.New("validation failed")
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}
