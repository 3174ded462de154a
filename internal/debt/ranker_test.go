package debt

import (
	"testing"
	"time"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankerAccounts() []domain.DebtAccount {
	return []domain.DebtAccount{
		{ID: "a", Name: "Alpha Card", CurrentBalance: 2000, APR: 19},
		{ID: "b", Name: "Beta Card", CurrentBalance: 500, APR: 27},
		{ID: "c", Name: "Car Loan", CurrentBalance: 9000, APR: 6},
		{ID: "d", Name: "Paid Off", CurrentBalance: 0, APR: 30},
	}
}

func TestRankPayoffTargets_Avalanche(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	ranking := RankPayoffTargets(rankerAccounts(), domain.StrategyAvalanche, now)

	require.Len(t, ranking.Ranked, 3, "zero-balance accounts excluded")
	assert.Equal(t, "b", ranking.Ranked[0].AccountID, "highest APR first")
	assert.Equal(t, "a", ranking.Ranked[1].AccountID)
	assert.Equal(t, "c", ranking.Ranked[2].AccountID)

	require.NotNil(t, ranking.Top)
	require.NotNil(t, ranking.Backup)
	assert.Equal(t, "b", ranking.Top.AccountID)
	assert.Equal(t, "a", ranking.Backup.AccountID)
}

func TestRankPayoffTargets_Snowball(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	ranking := RankPayoffTargets(rankerAccounts(), domain.StrategySnowball, now)

	assert.Equal(t, "b", ranking.Ranked[0].AccountID, "smallest balance first")
	assert.Equal(t, "a", ranking.Ranked[1].AccountID)
	assert.Equal(t, "c", ranking.Ranked[2].AccountID)
}

func TestRankPayoffTargets_NameTieBreakIsDeterministic(t *testing.T) {
	accounts := []domain.DebtAccount{
		{ID: "z", Name: "Zed", CurrentBalance: 1000, APR: 20},
		{ID: "m", Name: "Mid", CurrentBalance: 1000, APR: 20},
		{ID: "a", Name: "Ace", CurrentBalance: 1000, APR: 20},
	}
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	for _, strategy := range []domain.PayoffStrategy{domain.StrategyAvalanche, domain.StrategySnowball} {
		ranking := RankPayoffTargets(accounts, strategy, now)
		require.Len(t, ranking.Ranked, 3)
		assert.Equal(t, "Ace", ranking.Ranked[0].Name, "strategy %s", strategy)
		assert.Equal(t, "Mid", ranking.Ranked[1].Name)
		assert.Equal(t, "Zed", ranking.Ranked[2].Name)
	}
}

func TestRankPayoffTargets_Empty(t *testing.T) {
	ranking := RankPayoffTargets(nil, domain.StrategyAvalanche, time.Now())
	assert.Nil(t, ranking.Top)
	assert.Nil(t, ranking.Backup)
	assert.Empty(t, ranking.Ranked)
}
