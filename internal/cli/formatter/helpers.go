package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Money formats an amount as a plain dollar figure.
func Money(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// SignedMoney formats an amount with an explicit sign, colored green for
// positive, red for negative, dim for zero.
func SignedMoney(amount float64) string {
	switch {
	case amount > 0:
		return StyleGreen.Render(fmt.Sprintf("+$%.2f", amount))
	case amount < 0:
		return StyleRed.Render(fmt.Sprintf("-$%.2f", -amount))
	default:
		return StyleDim.Render("$0.00")
	}
}

// Percent formats a percentage value with one decimal place.
func Percent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// CadenceLabel renders a recurring amount as "$50.00 / monthly" or
// "$50.00 / every 6 weeks" for custom cadences.
func CadenceLabel(r domain.RecurringAmount) string {
	if r.Cadence == domain.CadenceCustom {
		return fmt.Sprintf("%s / every %d %s", Money(r.Amount), r.CustomInterval, r.CustomUnit)
	}
	return fmt.Sprintf("%s / %s", Money(r.Amount), r.Cadence)
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// ReconPill returns a colored reconciliation status indicator.
func ReconPill(status domain.ReconciliationStatus) string {
	switch status {
	case domain.ReconPending:
		return StyleYellow.Render("○ Pending")
	case domain.ReconPosted:
		return StyleBlue.Render("● Posted")
	case domain.ReconReconciled:
		return StyleGreen.Render("✔ Reconciled")
	default:
		return StyleDim.Render(string(status))
	}
}

// PausedPill marks a goal as paused or active.
func PausedPill(paused bool) string {
	if paused {
		return StyleDim.Render("⊘ Paused")
	}
	return StyleGreen.Render("● Active")
}

// HealthIndicator colors a 0-100 health score: green >= 70, yellow >= 40,
// red below.
func HealthIndicator(score float64) string {
	text := fmt.Sprintf("%.0f", score)
	switch {
	case score >= 70:
		return StyleGreen.Render(text)
	case score >= 40:
		return StyleYellow.Render(text)
	default:
		return StyleRed.Render(text)
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}
