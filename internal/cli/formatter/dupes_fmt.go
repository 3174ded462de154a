package formatter

import (
	"fmt"
	"strings"

	"github.com/avelacorte/moneta/internal/dedupe"
)

// FormatMatches renders flagged purchase pairs with the evidence behind
// each flag, duplicates before overlaps (detection order is canonical).
func FormatMatches(matches []dedupe.Match) string {
	if len(matches) == 0 {
		return Dim("No duplicate or overlapping purchases found.") + "\n"
	}

	var b strings.Builder
	headers := []string{"KIND", "KEEP", "FLAGGED", "AMOUNTS", "SIMILARITY", "DAYS APART"}
	rows := make([][]string, 0, len(matches))

	for _, m := range matches {
		kind := StyleRed.Render("duplicate")
		if m.Kind == dedupe.MatchOverlap {
			kind = StyleYellow.Render("overlap")
		}
		rows = append(rows, []string{
			kind,
			fmt.Sprintf("%s %s", Bold(m.Primary.Item), TruncID(m.Primary.ID)),
			fmt.Sprintf("%s %s", m.Secondary.Item, TruncID(m.Secondary.ID)),
			fmt.Sprintf("%s / %s", Money(m.Primary.Amount), Money(m.Secondary.Amount)),
			fmt.Sprintf("%.0f%%", m.Similarity*100),
			fmt.Sprintf("%d", m.DayDelta),
		})
	}

	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim("Resolve with: moneta dupes merge|archive|keep KEEP_ID FLAGGED_ID") + "\n")
	return b.String()
}
