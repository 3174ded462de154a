package domain

// Summary is the top-level aggregate record the display collaborator
// renders. The summary service produces it from raw records; the
// integrity checker independently recomputes every field and reports
// deltas as data, never as errors.
type Summary struct {
	MonthlyIncome float64
	MonthlyBills  float64

	CardMinimumDue      float64
	CardPlannedPayments float64
	CardLimits          float64
	CardBalances        float64
	UtilizationPercent  float64

	LoanPayments float64
	LoanBalances float64

	PurchaseTotal float64
	PurchaseCount int

	AssetTotal     float64
	LiabilityTotal float64
	LiquidTotal    float64

	GoalFundedPercent float64

	// Formula fields, each derivable from the ones above.
	MonthlyCommitments float64 // bills + card planned payments + loan payments
	ProjectedNet       float64 // income - commitments
	RunwayPool         float64 // liquid total
	RunwayPressure     float64 // monthly commitments
	RunwayMonths       float64 // pool / pressure, saturated at 99
}

// RunwaySaturationMonths is the cap reported when runway pressure is zero.
const RunwaySaturationMonths = 99
