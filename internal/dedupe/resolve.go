package dedupe

import (
	"fmt"
	"strings"
	"time"

	"github.com/avelacorte/moneta/internal/domain"
)

// Note tags written alongside the resolved-pair record. The pair set is
// the idempotency source of truth; the tags exist for display parity with
// records exported to other tools.
const (
	tagDuplicateOf     = "purchase-duplicate-of:"
	tagIntentionalWith = "purchase-intentional-with:"
)

// Resolution is the planned outcome of a user-invoked resolution: the
// record edits to apply plus the resolved pair to record. Planning is
// pure; the service layer applies the plan transactionally.
type Resolution struct {
	Pair       domain.ResolvedPair
	Update     []domain.Purchase
	ArchiveIDs []string
	DeleteIDs  []string
}

// PlanMerge concatenates the secondary's notes onto the primary and
// deletes the secondary.
func PlanMerge(primary, secondary domain.Purchase, now time.Time) Resolution {
	merged := primary
	merged.Notes = joinNotes(primary.Notes, secondary.Notes)
	merged.UpdatedAt = now
	return Resolution{
		Pair:      domain.NewResolvedPair(primary.ID, secondary.ID, domain.ResolutionMerged, now),
		Update:    []domain.Purchase{merged},
		DeleteIDs: []string{secondary.ID},
	}
}

// PlanArchiveDuplicate marks the secondary pending and tags its note with
// the primary's ID. Nothing is deleted.
func PlanArchiveDuplicate(primary, secondary domain.Purchase, now time.Time) Resolution {
	tagged := secondary
	tagged.ReconciliationStatus = domain.ReconPending
	tagged.Notes = appendTag(secondary.Notes, tagDuplicateOf+primary.ID)
	tagged.UpdatedAt = now
	return Resolution{
		Pair:       domain.NewResolvedPair(primary.ID, secondary.ID, domain.ResolutionArchived, now),
		Update:     []domain.Purchase{tagged},
		ArchiveIDs: []string{secondary.ID},
	}
}

// PlanMarkIntentional tags both records with a mutual marker so the pair
// is excluded from future detection passes.
func PlanMarkIntentional(primary, secondary domain.Purchase, now time.Time) Resolution {
	a, b := primary, secondary
	a.Notes = appendTag(a.Notes, tagIntentionalWith+b.ID)
	a.UpdatedAt = now
	b.Notes = appendTag(b.Notes, tagIntentionalWith+a.ID)
	b.UpdatedAt = now
	return Resolution{
		Pair:   domain.NewResolvedPair(primary.ID, secondary.ID, domain.ResolutionIntentional, now),
		Update: []domain.Purchase{a, b},
	}
}

func joinNotes(a, b string) string {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return fmt.Sprintf("%s | %s", a, b)
	}
}

// appendTag adds a marker tag to a note unless it is already present.
func appendTag(notes, tag string) string {
	if strings.Contains(notes, tag) {
		return notes
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return tag
	}
	return notes + " " + tag
}
