// Package dedupe finds purchase pairs that are likely the same or
// overlapping transaction, and plans the record edits for resolving them.
// Detection is pure; resolutions are applied by the service layer and are
// idempotent through a resolved-pair set keyed by the unordered ID pair.
package dedupe

import (
	"strings"
	"unicode"
)

// merchantNoise lists tokens that carry no merchant identity and are
// excluded from the Jaccard overlap.
var merchantNoise = map[string]bool{
	"payment": true, "payments": true, "subscription": true, "subscriptions": true,
	"purchase": true, "order": true, "online": true, "store": true, "shop": true,
	"ltd": true, "llc": true, "inc": true, "co": true, "com": true, "www": true,
	"the": true, "and": true, "of": true, "for": true,
}

const (
	similarityEqual       = 1.0
	similarityContainment = 0.94
)

// normalizeName lowercases, strips non-alphanumerics to spaces, and
// collapses whitespace.
func normalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Similarity scores two purchase names in [0,1]: 1.0 when the normalized
// names are equal, 0.94 when one contains the other, otherwise the
// Jaccard overlap of their non-noise tokens.
func Similarity(a, b string) float64 {
	na, nb := normalizeName(a), normalizeName(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return similarityEqual
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return similarityContainment
	}
	return jaccard(tokens(na), tokens(nb))
}

func tokens(normalized string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(normalized) {
		if merchantNoise[tok] {
			continue
		}
		set[tok] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	var intersection int
	for tok := range a {
		if b[tok] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
