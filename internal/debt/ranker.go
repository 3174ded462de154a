package debt

import (
	"sort"
	"time"

	"github.com/avelacorte/moneta/internal/domain"
)

// PayoffCandidate is one ranked payoff target.
type PayoffCandidate struct {
	AccountID       string
	Name            string
	Balance         float64
	APR             float64
	MonthlyInterest float64
}

// PayoffRanking is the ordered payoff target list for a strategy.
type PayoffRanking struct {
	Strategy domain.PayoffStrategy
	Ranked   []PayoffCandidate
	Top      *PayoffCandidate
	Backup   *PayoffCandidate
}

// RankPayoffTargets ranks accounts with a positive balance by the chosen
// strategy. Both orderings end in a name tie-break so the result is fully
// deterministic:
//
//	avalanche: APR desc, monthly interest desc, balance desc, name asc
//	snowball:  balance asc, APR desc, monthly interest desc, name asc
func RankPayoffTargets(accounts []domain.DebtAccount, strategy domain.PayoffStrategy, now time.Time) PayoffRanking {
	var candidates []PayoffCandidate
	for _, raw := range accounts {
		d := raw.Sanitized()
		if d.CurrentBalance <= 0 {
			continue
		}
		candidates = append(candidates, PayoffCandidate{
			AccountID:       d.ID,
			Name:            d.Name,
			Balance:         d.CurrentBalance,
			APR:             d.APR,
			MonthlyInterest: ProjectCycle(d, now).Interest,
		})
	}

	switch strategy {
	case domain.StrategySnowball:
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.Balance != b.Balance {
				return a.Balance < b.Balance
			}
			if a.APR != b.APR {
				return a.APR > b.APR
			}
			if a.MonthlyInterest != b.MonthlyInterest {
				return a.MonthlyInterest > b.MonthlyInterest
			}
			return a.Name < b.Name
		})
	default: // avalanche
		strategy = domain.StrategyAvalanche
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.APR != b.APR {
				return a.APR > b.APR
			}
			if a.MonthlyInterest != b.MonthlyInterest {
				return a.MonthlyInterest > b.MonthlyInterest
			}
			if a.Balance != b.Balance {
				return a.Balance > b.Balance
			}
			return a.Name < b.Name
		})
	}

	out := PayoffRanking{Strategy: strategy, Ranked: candidates}
	if len(candidates) > 0 {
		out.Top = &candidates[0]
	}
	if len(candidates) > 1 {
		out.Backup = &candidates[1]
	}
	return out
}
