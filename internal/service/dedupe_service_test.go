package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avelacorte/moneta/internal/dedupe"
	"github.com/avelacorte/moneta/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNetflixPair(t *testing.T, repos *repoSet) (primaryID, secondaryID string) {
	t.Helper()
	ctx := context.Background()

	day1 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)

	primary := testutil.NewTestPurchase("Netflix", 15.99, testutil.WithPurchaseDate(day1))
	primary.CreatedAt = day1
	secondary := testutil.NewTestPurchase("NETFLIX.COM", 15.99, testutil.WithPurchaseDate(day2))
	secondary.CreatedAt = day2

	require.NoError(t, repos.purchases.Create(ctx, primary))
	require.NoError(t, repos.purchases.Create(ctx, secondary))
	return primary.ID, secondary.ID
}

func TestDedupeService_ScanFindsDuplicatePair(t *testing.T) {
	repos := newRepoSet(t)
	svc := NewDedupeService(repos.purchases, repos.pairs, repos.uow)
	primaryID, secondaryID := seedNetflixPair(t, repos)

	matches, err := svc.Scan(context.Background())
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, dedupe.MatchDuplicate, matches[0].Kind)
	assert.Equal(t, primaryID, matches[0].Primary.ID)
	assert.Equal(t, secondaryID, matches[0].Secondary.ID)
}

func TestDedupeService_ArchiveDuplicateEndToEnd(t *testing.T) {
	repos := newRepoSet(t)
	svc := NewDedupeService(repos.purchases, repos.pairs, repos.uow)
	primaryID, secondaryID := seedNetflixPair(t, repos)
	ctx := context.Background()

	require.NoError(t, svc.ArchiveDuplicate(ctx, primaryID, secondaryID))

	secondary, err := repos.purchases.GetByID(ctx, secondaryID)
	require.NoError(t, err)
	assert.True(t, secondary.Archived())
	assert.Contains(t, secondary.Notes, "purchase-duplicate-of:"+primaryID)

	// The resolved pair suppresses the match on every later scan.
	matches, err := svc.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDedupeService_MergeJoinsNotesAndDeletesSecondary(t *testing.T) {
	repos := newRepoSet(t)
	svc := NewDedupeService(repos.purchases, repos.pairs, repos.uow)
	ctx := context.Background()

	primaryID, secondaryID := seedNetflixPair(t, repos)
	primary, err := repos.purchases.GetByID(ctx, primaryID)
	require.NoError(t, err)
	primary.Notes = "monthly"
	require.NoError(t, repos.purchases.Update(ctx, primary))
	secondary, err := repos.purchases.GetByID(ctx, secondaryID)
	require.NoError(t, err)
	secondary.Notes = "imported"
	require.NoError(t, repos.purchases.Update(ctx, secondary))

	require.NoError(t, svc.Merge(ctx, primaryID, secondaryID))

	merged, err := repos.purchases.GetByID(ctx, primaryID)
	require.NoError(t, err)
	assert.Equal(t, "monthly | imported", merged.Notes)

	_, err = repos.purchases.GetByID(ctx, secondaryID)
	assert.Error(t, err, "secondary deleted by the merge")
}

func TestDedupeService_MarkIntentionalKeepsBothRecords(t *testing.T) {
	repos := newRepoSet(t)
	svc := NewDedupeService(repos.purchases, repos.pairs, repos.uow)
	primaryID, secondaryID := seedNetflixPair(t, repos)
	ctx := context.Background()

	require.NoError(t, svc.MarkIntentional(ctx, primaryID, secondaryID))

	a, err := repos.purchases.GetByID(ctx, primaryID)
	require.NoError(t, err)
	b, err := repos.purchases.GetByID(ctx, secondaryID)
	require.NoError(t, err)
	assert.Contains(t, a.Notes, "purchase-intentional-with:"+secondaryID)
	assert.Contains(t, b.Notes, "purchase-intentional-with:"+primaryID)

	matches, err := svc.Scan(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestDedupeService_ResolutionIdempotent(t *testing.T) {
	repos := newRepoSet(t)
	svc := NewDedupeService(repos.purchases, repos.pairs, repos.uow)
	primaryID, secondaryID := seedNetflixPair(t, repos)
	ctx := context.Background()

	require.NoError(t, svc.Merge(ctx, primaryID, secondaryID))
	// The secondary is gone; a second resolution of the same pair must
	// no-op instead of failing on the missing record.
	require.NoError(t, svc.Merge(ctx, primaryID, secondaryID))
	require.NoError(t, svc.MarkIntentional(ctx, secondaryID, primaryID), "reversed order hits the same pair")
}

func TestDedupeService_SelfResolutionRejected(t *testing.T) {
	repos := newRepoSet(t)
	svc := NewDedupeService(repos.purchases, repos.pairs, repos.uow)
	primaryID, _ := seedNetflixPair(t, repos)

	err := svc.Merge(context.Background(), primaryID, primaryID)
	assert.Error(t, err)
}

func TestDedupeService_FailedResolutionRollsBack(t *testing.T) {
	repos := newRepoSet(t)
	primaryID, secondaryID := seedNetflixPair(t, repos)
	ctx := context.Background()

	injected := errors.New("disk full")
	failing := &testutil.FailOnNthExecUoW{DB: repos.database, FailOn: 2, Err: injected}
	svc := NewDedupeService(repos.purchases, repos.pairs, failing)

	err := svc.ArchiveDuplicate(ctx, primaryID, secondaryID)
	require.ErrorIs(t, err, injected)

	secondary, err := repos.purchases.GetByID(ctx, secondaryID)
	require.NoError(t, err)
	assert.False(t, secondary.Archived(), "note update rolled back with the failed archive")
	assert.Empty(t, secondary.Notes)

	has, err := repos.pairs.Has(ctx, primaryID, secondaryID)
	require.NoError(t, err)
	assert.False(t, has)
}
