package formatter

import (
	"fmt"
	"strings"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/integrity"
)

// FormatSummary renders the aggregate summary as a boxed dashboard.
func FormatSummary(s *domain.Summary) string {
	var b strings.Builder

	b.WriteString(Header("Cash flow"))
	b.WriteString("\n")
	b.WriteString(line("Monthly income", Money(s.MonthlyIncome)))
	b.WriteString(line("Monthly bills", Money(s.MonthlyBills)))
	b.WriteString(line("Monthly commitments", Money(s.MonthlyCommitments)))
	b.WriteString(line("Projected net", SignedMoney(s.ProjectedNet)))

	b.WriteString("\n")
	b.WriteString(Header("Debt"))
	b.WriteString("\n")
	b.WriteString(line("Card balances", Money(s.CardBalances)))
	b.WriteString(line("Card limits", Money(s.CardLimits)))
	b.WriteString(line("Utilization", utilizationStyled(s.UtilizationPercent)))
	b.WriteString(line("Card minimum due", Money(s.CardMinimumDue)))
	b.WriteString(line("Card planned payments", Money(s.CardPlannedPayments)))
	b.WriteString(line("Loan balances", Money(s.LoanBalances)))
	b.WriteString(line("Loan payments", Money(s.LoanPayments)))

	b.WriteString("\n")
	b.WriteString(Header("Position"))
	b.WriteString("\n")
	b.WriteString(line("Assets", Money(s.AssetTotal)))
	b.WriteString(line("Liabilities", Money(s.LiabilityTotal)))
	b.WriteString(line("Liquid", Money(s.LiquidTotal)))
	b.WriteString(line(fmt.Sprintf("Purchases (%d)", s.PurchaseCount), Money(s.PurchaseTotal)))
	b.WriteString(line("Goals funded", Percent(s.GoalFundedPercent)))
	b.WriteString(line("Runway", runwayStyled(s.RunwayMonths)))

	return RenderBox("Summary", b.String())
}

func line(label, value string) string {
	return fmt.Sprintf("%-22s %s\n", Dim(label), value)
}

func utilizationStyled(pct float64) string {
	text := Percent(pct)
	switch {
	case pct >= 80:
		return StyleRed.Render(text)
	case pct >= 30:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

func runwayStyled(months float64) string {
	if months >= domain.RunwaySaturationMonths {
		return StyleGreen.Render(fmt.Sprintf("%d+ months", domain.RunwaySaturationMonths))
	}
	text := fmt.Sprintf("%.1f months", months)
	switch {
	case months < 1:
		return StyleRed.Render(text)
	case months < 3:
		return StyleYellow.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

// FormatIntegrity renders the integrity report: a counts line plus one
// row per non-passing check. A fully green report stays compact.
func FormatIntegrity(r *integrity.Report) string {
	var b strings.Builder

	passPart := StyleGreen.Render(fmt.Sprintf("%d pass", r.Pass))
	warnPart := StyleYellow.Render(fmt.Sprintf("%d warning", r.Warning))
	failPart := StyleRed.Render(fmt.Sprintf("%d fail", r.Fail))
	b.WriteString(fmt.Sprintf("%s, %s, %s\n", passPart, warnPart, failPart))

	if r.Warning == 0 && r.Fail == 0 {
		b.WriteString(Dim("All aggregates verified.") + "\n")
		return RenderBox("Integrity", b.String())
	}

	headers := []string{"CHECK", "STATUS", "REPORTED", "EXPECTED", "DELTA"}
	var rows [][]string
	for _, c := range r.Checks {
		if c.Status == domain.CheckPass {
			continue
		}
		rows = append(rows, []string{
			c.Label,
			CheckIndicator(c.Status),
			Money(c.Actual),
			Money(c.Expected),
			fmt.Sprintf("%.2f", c.Delta),
		})
	}
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows))

	for _, c := range r.Checks {
		if c.Status != domain.CheckPass && c.Detail != "" {
			b.WriteString(Dim("  "+c.Detail) + "\n")
		}
	}

	return RenderBox("Integrity", b.String())
}
