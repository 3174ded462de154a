package formatter

import (
	"fmt"
	"strings"

	"github.com/avelacorte/moneta/internal/domain"
	"github.com/avelacorte/moneta/internal/planning"
	"github.com/avelacorte/moneta/internal/service"
)

// FormatWorkspace renders the month's three plan versions diffed against
// the record-derived baseline.
func FormatWorkspace(w *planning.Workspace) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Baseline: income %s, fixed %s, variable %s, net %s\n\n",
		Money(w.Baseline.ExpectedIncome),
		Money(w.Baseline.FixedCommitments),
		Money(w.Baseline.VariableSpendingCap),
		SignedMoney(w.BaselineNet)))

	headers := []string{"VERSION", "INCOME", "FIXED", "VARIABLE", "NET", "VS BASELINE"}
	rows := make([][]string, 0, len(w.Versions))
	for _, view := range w.Versions {
		name := string(view.Version.Name)
		if view.Version.Name == w.Selected.Version.Name {
			name = StyleGreen.Render("● " + name)
		} else {
			name = Dim("  " + name)
		}
		rows = append(rows, []string{
			name,
			Money(view.Version.ExpectedIncome),
			Money(view.Version.FixedCommitments),
			Money(view.Version.VariableSpendingCap),
			Money(view.MonthlyNet),
			SignedMoney(view.MonthlyNet - w.BaselineNet),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("Plan "+w.Month, b.String())
}

// FormatSimulation renders the shocked scenario, its forecast windows,
// and the reallocation waterfall.
func FormatSimulation(r *service.SimulationResult) string {
	var b strings.Builder
	s := r.Scenario

	b.WriteString(Header("Scenario"))
	b.WriteString("\n")
	b.WriteString(line("Version", string(s.VersionName)))
	b.WriteString(line("Income", Money(s.Income)))
	b.WriteString(line("Fixed commitments", Money(s.FixedCommitments)))
	b.WriteString(line("Variable cap", Money(s.VariableCap)))
	if s.SeasonalAdjustment != 0 {
		b.WriteString(line("Seasonal adjustment", SignedMoney(s.SeasonalAdjustment)))
	}
	if s.OneOffExpense > 0 {
		b.WriteString(line("One-off expense", Money(s.OneOffExpense)))
	}
	b.WriteString(line("Monthly net", SignedMoney(s.MonthlyNet)))

	b.WriteString("\n")
	b.WriteString(Header("Forecast windows"))
	b.WriteString("\n")
	headers := []string{"WINDOW", "NET", "PROJECTED CASH", "COVERAGE", "RISK"}
	rows := make([][]string, 0, len(r.Windows))
	for _, w := range r.Windows {
		rows = append(rows, []string{
			fmt.Sprintf("%d days", w.Days),
			SignedMoney(w.ProjectedNet),
			Money(w.ProjectedCash),
			coverageLabel(w.CoverageMonths),
			RiskIndicator(w.Risk),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	b.WriteString("\n")
	b.WriteString(Header("Suggestions"))
	b.WriteString("\n")
	for _, sug := range r.Suggestions {
		marker := StyleBlue.Render(fmt.Sprintf("%d.", sug.Order))
		if sug.Kind == planning.SuggestStable {
			b.WriteString(fmt.Sprintf("%s %s\n", StyleGreen.Render("✔"), sug.Detail))
			continue
		}
		impact := StyleGreen.Render(Money(sug.ImpactAmount) + "/mo")
		if sug.Kind == planning.SuggestResidualGap {
			impact = StyleRed.Render(Money(sug.ImpactAmount) + "/mo")
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", marker, sug.Detail, impact))
	}

	return RenderBox("Simulation "+r.Workspace.Month, b.String())
}

func coverageLabel(months float64) string {
	if months >= domain.RunwaySaturationMonths {
		return fmt.Sprintf("%d+ mo", domain.RunwaySaturationMonths)
	}
	return fmt.Sprintf("%.1f mo", months)
}
