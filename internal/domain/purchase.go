package domain

import "time"

// Purchase is a single recorded transaction. The engine never deletes
// purchases on its own; detection only flags pairs and resolutions are
// applied by an explicit user action.
type Purchase struct {
	ID                   string
	Item                 string
	Amount               float64
	Category             string
	PurchaseDate         time.Time // calendar day, UTC midnight
	Ownership            string
	ReconciliationStatus ReconciliationStatus
	Notes                string
	ArchivedAt           *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Archived reports whether the purchase has been archived.
func (p *Purchase) Archived() bool {
	return p.ArchivedAt != nil
}

// ResolvedPair records a duplicate/overlap resolution keyed by the
// unordered purchase ID pair. It is the idempotency source of truth for
// the detector: a pair present in the set is never re-flagged.
type ResolvedPair struct {
	AID        string // normalized: AID < BID
	BID        string
	Kind       ResolutionKind
	ResolvedAt time.Time
}

// NewResolvedPair normalizes the ID order so the pair is unordered.
func NewResolvedPair(a, b string, kind ResolutionKind, at time.Time) ResolvedPair {
	if b < a {
		a, b = b, a
	}
	return ResolvedPair{AID: a, BID: b, Kind: kind, ResolvedAt: at}
}

// Key returns the canonical unordered pair key.
func (r ResolvedPair) Key() string {
	return r.AID + "|" + r.BID
}

// PairKey returns the canonical key for an unordered purchase ID pair.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}
