package goalcast

import (
	"time"

	"github.com/avelacorte/moneta/internal/domain"
)

var milestonePercents = []float64{25, 50, 75, 100}

// milestones interpolates 25/50/75/100% waypoint dates across the goal's
// timeline. Without a valid timeline the target date (when present) is
// used flat for every waypoint.
func milestones(g domain.Goal, progress float64) []Milestone {
	out := make([]Milestone, 0, len(milestonePercents))
	for _, pct := range milestonePercents {
		ms := Milestone{Percent: pct, Achieved: progress >= pct}
		if g.TargetDate != nil {
			ms.TargetDate = milestoneDate(g.CreatedAt, *g.TargetDate, pct)
		}
		out = append(out, ms)
	}
	return out
}

func milestoneDate(createdAt, targetDate time.Time, pct float64) *time.Time {
	total := targetDate.Sub(createdAt)
	if total <= 0 {
		d := targetDate
		return &d
	}
	frac := domain.ClampFloat(pct/100, 0, 1)
	d := createdAt.Add(time.Duration(float64(total) * frac))
	return &d
}
