package formatter

import (
	"fmt"
	"strings"

	"github.com/avelacorte/moneta/internal/debt"
	"github.com/avelacorte/moneta/internal/service"
)

// FormatDebtOverview renders per-account cycle projections plus portfolio
// totals, cards first.
func FormatDebtOverview(o *service.DebtOverview) string {
	var b strings.Builder

	if len(o.Cards) == 0 && len(o.Loans) == 0 {
		return Dim("No debt accounts.") + "\n"
	}

	if len(o.Cards) > 0 {
		b.WriteString(Header("Cards"))
		b.WriteString("\n")
		b.WriteString(projectionTable(o.Cards))
		b.WriteString(portfolioLine(o.CardTotals))
		b.WriteString("\n")
	}
	if len(o.Loans) > 0 {
		b.WriteString(Header("Loans"))
		b.WriteString("\n")
		b.WriteString(projectionTable(o.Loans))
		b.WriteString(portfolioLine(o.LoanTotals))
	}

	return RenderBox("Debts", b.String())
}

func projectionTable(projections []service.DebtProjection) string {
	headers := []string{"NAME", "BALANCE", "APR", "INTEREST", "MINIMUM", "PAYMENT", "NEXT 12MO"}
	rows := make([][]string, 0, len(projections))

	for _, p := range projections {
		minimum := Money(p.Cycle.MinimumDue)
		if p.Cycle.MinimumBelowInterest {
			minimum = StyleYellow.Render(minimum + " ▲")
		}
		rows = append(rows, []string{
			Bold(p.Account.Name),
			Money(p.Cycle.DisplayedBalance),
			Percent(p.Account.APR),
			Money(p.Cycle.Interest),
			minimum,
			Money(p.Cycle.PlannedPayment),
			Money(p.Forecast.TwelveMonthInterest),
		})
	}

	return RenderTable(headers, rows)
}

func portfolioLine(t debt.PortfolioTotals) string {
	parts := []string{
		fmt.Sprintf("balance %s", Money(t.CurrentBalance)),
		fmt.Sprintf("payments %s", Money(t.PlannedPayment)),
		fmt.Sprintf("next-month interest %s", Money(t.NextMonthInterest)),
	}
	if t.TotalLimit > 0 {
		parts = append(parts,
			fmt.Sprintf("utilization %s", utilizationStyled(t.UtilizationPercent)),
			fmt.Sprintf("available %s", Money(t.AvailableCredit)))
	}
	if t.WeightedAPR > 0 {
		parts = append(parts, fmt.Sprintf("weighted APR %s", Percent(t.WeightedAPR)))
	}
	return Dim("Totals: ") + strings.Join(parts, Dim("  ·  ")) + "\n"
}

// FormatPayoffRanking renders the ordered payoff target list with the top
// target and its backup called out.
func FormatPayoffRanking(r *debt.PayoffRanking) string {
	var b strings.Builder

	if len(r.Ranked) == 0 {
		return Dim("No accounts carry a balance.") + "\n"
	}

	b.WriteString(fmt.Sprintf("Strategy: %s\n\n", StylePurple.Render(string(r.Strategy))))

	headers := []string{"#", "NAME", "BALANCE", "APR", "MONTHLY INTEREST"}
	rows := make([][]string, 0, len(r.Ranked))
	for i, c := range r.Ranked {
		name := c.Name
		switch {
		case r.Top != nil && c.AccountID == r.Top.AccountID:
			name = StyleGreen.Render(name + "  ← pay this first")
		case r.Backup != nil && c.AccountID == r.Backup.AccountID:
			name = StyleBlue.Render(name + "  ← then this")
		default:
			name = Bold(name)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			name,
			Money(c.Balance),
			Percent(c.APR),
			Money(c.MonthlyInterest),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Payoff targets", b.String())
}
