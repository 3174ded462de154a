package dedupe

import (
	"math"
	"sort"
	"time"

	"github.com/avelacorte/moneta/internal/domain"
)

type MatchKind string

const (
	MatchDuplicate MatchKind = "duplicate"
	MatchOverlap   MatchKind = "overlap"
)

// Classification thresholds. A pair below the similarity floor is never
// compared further.
const (
	similarityFloor = 0.58

	duplicateSimilarity  = 0.9
	duplicateAmountDelta = 0.03
	duplicateDayDelta    = 2

	overlapSimilarity  = 0.7
	overlapAmountDelta = 0.2
	overlapDayDelta    = 7
)

// Match is a flagged purchase pair. Primary is the earlier-created record.
type Match struct {
	Kind               MatchKind
	Primary            domain.Purchase
	Secondary          domain.Purchase
	Similarity         float64
	AmountDeltaPercent float64
	DayDelta           int
}

// ResolvedSet answers whether an unordered purchase pair has already been
// resolved. Implemented by the repository; tests use a map.
type ResolvedSet interface {
	Resolved(aID, bID string) (domain.ResolutionKind, bool)
}

// MapResolvedSet is an in-memory ResolvedSet keyed by domain.PairKey.
type MapResolvedSet map[string]domain.ResolutionKind

func (m MapResolvedSet) Resolved(aID, bID string) (domain.ResolutionKind, bool) {
	kind, ok := m[domain.PairKey(aID, bID)]
	return kind, ok
}

// DetectMatches pairwise-compares purchases and returns duplicate and
// overlap matches in canonical order: duplicates before overlaps, then
// similarity descending, amount delta ascending, day delta ascending,
// and finally the pair key so equal-scoring pairs order identically on
// every run.
func DetectMatches(purchases []domain.Purchase, resolved ResolvedSet) []Match {
	var matches []Match
	for i := 0; i < len(purchases); i++ {
		for j := i + 1; j < len(purchases); j++ {
			if m, ok := comparePair(purchases[i], purchases[j], resolved); ok {
				matches = append(matches, m)
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Kind != b.Kind {
			return a.Kind == MatchDuplicate
		}
		if a.Similarity != b.Similarity {
			return a.Similarity > b.Similarity
		}
		if a.AmountDeltaPercent != b.AmountDeltaPercent {
			return a.AmountDeltaPercent < b.AmountDeltaPercent
		}
		if a.DayDelta != b.DayDelta {
			return a.DayDelta < b.DayDelta
		}
		return pairKeyOf(a) < pairKeyOf(b)
	})
	return matches
}

func pairKeyOf(m Match) string {
	return domain.PairKey(m.Primary.ID, m.Secondary.ID)
}

func comparePair(a, b domain.Purchase, resolved ResolvedSet) (Match, bool) {
	if a.Ownership != b.Ownership {
		return Match{}, false
	}
	if a.Archived() || b.Archived() {
		return Match{}, false
	}
	if resolved != nil {
		if _, ok := resolved.Resolved(a.ID, b.ID); ok {
			return Match{}, false
		}
	}

	sim := Similarity(a.Item, b.Item)
	if sim < similarityFloor {
		return Match{}, false
	}

	amountDelta := amountDeltaPercent(a.Amount, b.Amount)
	days := dayDelta(a.PurchaseDate, b.PurchaseDate)

	var kind MatchKind
	switch {
	case sim >= duplicateSimilarity && amountDelta <= duplicateAmountDelta && days <= duplicateDayDelta:
		kind = MatchDuplicate
	case sim >= overlapSimilarity && amountDelta <= overlapAmountDelta && days <= overlapDayDelta:
		kind = MatchOverlap
	default:
		return Match{}, false
	}

	primary, secondary := a, b
	if b.CreatedAt.Before(a.CreatedAt) {
		primary, secondary = b, a
	}
	return Match{
		Kind:               kind,
		Primary:            primary,
		Secondary:          secondary,
		Similarity:         sim,
		AmountDeltaPercent: amountDelta,
		DayDelta:           days,
	}, true
}

// amountDeltaPercent is |a-b| / max(a, b, 1). The 1 floor keeps tiny
// amounts from exploding the ratio.
func amountDeltaPercent(a, b float64) float64 {
	a, b = domain.SafeAmount(a), domain.SafeAmount(b)
	denom := math.Max(math.Max(a, b), 1)
	return math.Abs(a-b) / denom
}

// dayDelta is the absolute whole-day difference between two purchase dates.
func dayDelta(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	diff := da.Sub(db).Hours() / 24
	return int(math.Abs(diff))
}
