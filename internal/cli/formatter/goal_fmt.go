package formatter

import (
	"fmt"
	"strings"

	"github.com/avelacorte/moneta/internal/service"
)

const goalProgressBarWidth = 10

// FormatGoalViews renders every goal with its forecast health and any
// at-risk reasons beneath the table.
func FormatGoalViews(views []service.GoalView) string {
	if len(views) == 0 {
		return Dim("No goals yet.") + "\n"
	}

	var b strings.Builder
	headers := []string{"NAME", "STATUS", "PROGRESS", "REMAINING", "CONTRIBUTION", "HEALTH"}
	rows := make([][]string, 0, len(views))

	for _, v := range views {
		rows = append(rows, []string{
			Bold(v.Goal.Name),
			PausedPill(v.Goal.Paused),
			RenderProgress(v.Metrics.ProgressPercent/100, goalProgressBarWidth),
			Money(v.Metrics.Remaining),
			CadenceLabel(v.Goal.Contribution),
			HealthIndicator(v.Metrics.HealthScore),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	for _, v := range views {
		for _, reason := range v.Metrics.AtRiskReasons {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("  %s: %s", v.Goal.Name, reason)) + "\n")
		}
	}

	return RenderBox("Goals", b.String())
}

// FormatGoalDetail renders one goal's full forecast: pace, prediction,
// and milestone timeline.
func FormatGoalDetail(v service.GoalView) string {
	var b strings.Builder
	m := v.Metrics

	b.WriteString(line("Progress", RenderProgress(m.ProgressPercent/100, goalProgressBarWidth)))
	b.WriteString(line("Remaining", Money(m.Remaining)))
	b.WriteString(line("Planned / month", Money(m.PlannedMonthlyContribution)))
	if m.DaysLeft != nil {
		b.WriteString(line("Days left", fmt.Sprintf("%d", *m.DaysLeft)))
		b.WriteString(line("Required / month", Money(m.RequiredMonthlyContribution)))
	}
	if m.PredictedCompletionDate != nil {
		b.WriteString(line("Predicted finish", HumanDate(*m.PredictedCompletionDate)))
	}
	if m.PredictedLateDays != nil && *m.PredictedLateDays > 0 {
		b.WriteString(line("Predicted late", StyleRed.Render(fmt.Sprintf("%d days", *m.PredictedLateDays))))
	}
	b.WriteString(line("Consistency", fmt.Sprintf("%.0f", m.ConsistencyScore)))
	b.WriteString(line("Health", HealthIndicator(m.HealthScore)))

	if len(m.Milestones) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Milestones"))
		b.WriteString("\n")
		for _, ms := range m.Milestones {
			mark := Dim("○")
			if ms.Achieved {
				mark = StyleGreen.Render("●")
			}
			when := Dim("--")
			if ms.TargetDate != nil {
				when = HumanDate(*ms.TargetDate)
			}
			b.WriteString(fmt.Sprintf("%s %3.0f%%  %s\n", mark, ms.Percent, when))
		}
	}

	for _, reason := range m.AtRiskReasons {
		b.WriteString(StyleYellow.Render("  "+reason) + "\n")
	}

	return RenderBox(v.Goal.Name, b.String())
}
