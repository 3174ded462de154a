// Package goalcast computes pace, consistency, predicted completion, and
// a composite health score per savings goal.
package goalcast

import (
	"fmt"
	"math"
	"time"

	"github.com/avelacorte/moneta/internal/cadence"
	"github.com/avelacorte/moneta/internal/domain"
)

// daysPerMonth is the mean Gregorian month length used for pace math.
const daysPerMonth = 30.4375

// Health score weights and penalties.
const (
	weightPace        = 0.45
	weightConsistency = 0.35
	weightSchedule    = 0.20

	penaltyPerReason   = 6.0
	penaltyLatenessMax = 20.0
	penaltyPaused      = 12.0

	behindPenaltyFactor     = 1.15
	noContributionPenalty   = 45.0
	noFundingPenalty        = 10.0
	paceShortfallPenaltyMax = 28.0
)

// At-risk thresholds.
const (
	paceShortfallThreshold  = 0.85
	behindScheduleThreshold = 10.0
	lowConsistencyThreshold = 55.0
	latenessThresholdDays   = 14
)

// GoalMetrics is the derived forecast for one goal. All fields are
// computed, never stored.
type GoalMetrics struct {
	GoalID          string
	ProgressPercent float64
	Remaining       float64
	DaysLeft        *int // nil when the goal has no target date

	PlannedMonthlyContribution  float64
	RequiredMonthlyContribution float64

	ExpectedProgressPercent float64
	BehindPercent           float64
	PaceCoverageRatio       float64
	ConsistencyScore        float64

	PredictedMonthsToComplete *float64
	PredictedCompletionDate   *time.Time
	PredictedLateDays         *int

	AtRiskReasons []string
	HealthScore   float64
	Milestones    []Milestone
}

// Milestone is a 25/50/75/100% waypoint with a timeline-interpolated
// target date.
type Milestone struct {
	Percent    float64
	TargetDate *time.Time
	Achieved   bool
}

// Forecast derives the full metric set for a goal as of now.
func Forecast(g domain.Goal, now time.Time) GoalMetrics {
	progress := g.ProgressPercent()
	remaining := g.Remaining()
	planned := cadence.Recurring(g.Contribution)

	m := GoalMetrics{
		GoalID:                     g.ID,
		ProgressPercent:            progress,
		Remaining:                  domain.RoundCents(remaining),
		PlannedMonthlyContribution: domain.RoundCents(planned),
	}

	if g.TargetDate != nil {
		days := wholeDays(now, *g.TargetDate)
		m.DaysLeft = &days
	}

	m.RequiredMonthlyContribution = domain.RoundCents(requiredMonthly(remaining, m.DaysLeft))
	m.ExpectedProgressPercent = expectedProgress(g.CreatedAt, g.TargetDate, now)
	m.BehindPercent = math.Max(m.ExpectedProgressPercent-progress, 0)
	m.PaceCoverageRatio = paceCoverage(planned, m.RequiredMonthlyContribution, remaining)
	m.ConsistencyScore = consistencyScore(m, planned, remaining, g)

	applyPrediction(&m, remaining, planned, g.TargetDate, now)
	m.AtRiskReasons = atRiskReasons(m, planned, remaining)
	m.HealthScore = healthScore(m, g.Paused)
	m.Milestones = milestones(g, progress)
	return m
}

// wholeDays is the whole-day difference from a to b, rounded up so a
// target later today still counts as a day left.
func wholeDays(a, b time.Time) int {
	return int(math.Ceil(b.Sub(a).Hours() / 24))
}

func requiredMonthly(remaining float64, daysLeft *int) float64 {
	if remaining <= 0 {
		return 0
	}
	if daysLeft == nil {
		return 0
	}
	if *daysLeft <= 0 {
		// Past the target: the full remaining amount is due immediately.
		return remaining
	}
	return remaining / (float64(*daysLeft) / daysPerMonth)
}

// expectedProgress linearly interpolates percent-complete between the
// goal's creation date and its target date, clamped to [0,100].
func expectedProgress(createdAt time.Time, targetDate *time.Time, now time.Time) float64 {
	if targetDate == nil {
		return 0
	}
	total := targetDate.Sub(createdAt)
	if total <= 0 {
		if !now.Before(*targetDate) {
			return 100
		}
		return 0
	}
	elapsed := now.Sub(createdAt)
	return domain.ClampFloat(float64(elapsed)/float64(total)*100, 0, 100)
}

func paceCoverage(planned, required, remaining float64) float64 {
	if required <= 0 {
		if remaining <= 0 {
			return 10 // nothing owed: fully covered
		}
		if planned > 0 {
			return 1
		}
		return 0
	}
	return domain.ClampFloat(planned/required, 0, 10)
}

func consistencyScore(m GoalMetrics, planned, remaining float64, g domain.Goal) float64 {
	score := 100.0
	score -= m.BehindPercent * behindPenaltyFactor
	if planned <= 0 && remaining > 0 {
		score -= noContributionPenalty
	}
	if len(g.FundingSources) == 0 {
		score -= noFundingPenalty
	}
	score -= (1 - math.Min(m.PaceCoverageRatio, 1)) * paceShortfallPenaltyMax
	return domain.ClampFloat(score, 0, 100)
}

func applyPrediction(m *GoalMetrics, remaining, planned float64, targetDate *time.Time, now time.Time) {
	if planned <= 0 || remaining <= 0 {
		return
	}
	months := remaining / planned
	m.PredictedMonthsToComplete = &months

	completion := now.Add(time.Duration(months * daysPerMonth * 24 * float64(time.Hour)))
	m.PredictedCompletionDate = &completion

	if targetDate != nil {
		late := wholeDays(*targetDate, completion)
		m.PredictedLateDays = &late
	}
}

func atRiskReasons(m GoalMetrics, planned, remaining float64) []string {
	var reasons []string
	if planned <= 0 && remaining > 0 {
		reasons = append(reasons, "No planned contribution set")
	}
	if planned > 0 && remaining > 0 && m.PaceCoverageRatio < paceShortfallThreshold {
		reasons = append(reasons, fmt.Sprintf("Contributions cover only %.0f%% of the required pace", m.PaceCoverageRatio*100))
	}
	if m.BehindPercent > behindScheduleThreshold {
		reasons = append(reasons, fmt.Sprintf("Progress is %.0f%% behind schedule", m.BehindPercent))
	}
	if m.ConsistencyScore < lowConsistencyThreshold {
		reasons = append(reasons, "Low contribution consistency")
	}
	if m.PredictedLateDays != nil && *m.PredictedLateDays > latenessThresholdDays {
		reasons = append(reasons, fmt.Sprintf("Predicted completion is %d days late", *m.PredictedLateDays))
	}
	return reasons
}

func healthScore(m GoalMetrics, paused bool) float64 {
	paceScore := math.Min(m.PaceCoverageRatio, 1) * 100
	score := paceScore*weightPace +
		m.ConsistencyScore*weightConsistency +
		(100-m.BehindPercent)*weightSchedule

	score -= float64(len(m.AtRiskReasons)) * penaltyPerReason
	if m.PredictedLateDays != nil && *m.PredictedLateDays > 0 {
		score -= math.Min(float64(*m.PredictedLateDays), 365) / 365 * penaltyLatenessMax
	}
	if paused {
		score -= penaltyPaused
	}
	return domain.ClampFloat(score, 0, 100)
}
