// Package planning diffs baseline vs. planned months, composes what-if
// shocks, projects 30/90/365-day forecast windows, and generates the
// reallocation waterfall when a forecast goes cash-negative. Everything
// here is a pure function over immutable inputs.
package planning

import (
	"github.com/avelacorte/moneta/internal/domain"
)

// PlanBaseline is the actual-summary-derived monthly triple a plan
// version is diffed against.
type PlanBaseline struct {
	ExpectedIncome      float64
	FixedCommitments    float64
	VariableSpendingCap float64
}

// Net returns the baseline monthly net.
func (b PlanBaseline) Net() float64 {
	return domain.RoundCents(domain.SafeAmount(b.ExpectedIncome) -
		domain.SafeAmount(b.FixedCommitments) -
		domain.SafeAmount(b.VariableSpendingCap))
}

// VersionView is one plan version with its deltas against the baseline.
type VersionView struct {
	Version       domain.PlanVersion
	IncomeDelta   float64
	FixedDelta    float64
	VariableDelta float64
	MonthlyNet    float64
}

// Workspace holds the three named plan versions for a month diffed
// against the baseline. Exactly one version is selected.
type Workspace struct {
	Month       string
	Baseline    PlanBaseline
	BaselineNet float64
	Versions    []VersionView // base, conservative, aggressive
	Selected    VersionView
}

var versionOrder = []domain.PlanVersionName{
	domain.PlanBase, domain.PlanConservative, domain.PlanAggressive,
}

// BuildWorkspace assembles the workspace for a month. Versions missing
// from storage are synthesized as unselected copies of the baseline; if
// no stored version is selected, base is.
func BuildWorkspace(month string, baseline PlanBaseline, versions []domain.PlanVersion) Workspace {
	byName := make(map[domain.PlanVersionName]domain.PlanVersion, len(versions))
	for _, v := range versions {
		if v.Month == month {
			byName[v.Name] = v
		}
	}

	w := Workspace{
		Month:       month,
		Baseline:    baseline,
		BaselineNet: baseline.Net(),
	}

	var selected *VersionView
	for _, name := range versionOrder {
		v, ok := byName[name]
		if !ok {
			v = domain.PlanVersion{
				Month:               month,
				Name:                name,
				ExpectedIncome:      baseline.ExpectedIncome,
				FixedCommitments:    baseline.FixedCommitments,
				VariableSpendingCap: baseline.VariableSpendingCap,
			}
		}
		view := VersionView{
			Version:       v,
			IncomeDelta:   domain.RoundCents(v.ExpectedIncome - baseline.ExpectedIncome),
			FixedDelta:    domain.RoundCents(v.FixedCommitments - baseline.FixedCommitments),
			VariableDelta: domain.RoundCents(v.VariableSpendingCap - baseline.VariableSpendingCap),
			MonthlyNet:    v.MonthlyNet(),
		}
		w.Versions = append(w.Versions, view)
		if v.Selected && selected == nil {
			selected = &w.Versions[len(w.Versions)-1]
		}
	}

	if selected == nil {
		selected = &w.Versions[0]
	}
	w.Selected = *selected
	return w
}
