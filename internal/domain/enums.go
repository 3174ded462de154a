package domain

type Cadence string

const (
	CadenceWeekly    Cadence = "weekly"
	CadenceBiweekly  Cadence = "biweekly"
	CadenceMonthly   Cadence = "monthly"
	CadenceQuarterly Cadence = "quarterly"
	CadenceYearly    Cadence = "yearly"
	CadenceCustom    Cadence = "custom"
	CadenceOneTime   Cadence = "one_time"
)

type CadenceUnit string

const (
	UnitDays   CadenceUnit = "days"
	UnitWeeks  CadenceUnit = "weeks"
	UnitMonths CadenceUnit = "months"
	UnitYears  CadenceUnit = "years"
)

// ValidCadences is the canonical set of accepted cadence strings.
var ValidCadences = map[string]bool{
	"weekly": true, "biweekly": true, "monthly": true, "quarterly": true,
	"yearly": true, "custom": true, "one_time": true,
}

type DebtKind string

const (
	DebtCard DebtKind = "card"
	DebtLoan DebtKind = "loan"
)

type MinimumPaymentMode string

const (
	MinimumFixed               MinimumPaymentMode = "fixed"
	MinimumPercentPlusInterest MinimumPaymentMode = "percent_plus_interest"
)

type PayoffStrategy string

const (
	StrategyAvalanche PayoffStrategy = "avalanche"
	StrategySnowball  PayoffStrategy = "snowball"
)

type ReconciliationStatus string

const (
	ReconPending    ReconciliationStatus = "pending"
	ReconPosted     ReconciliationStatus = "posted"
	ReconReconciled ReconciliationStatus = "reconciled"
)

type AccountClass string

const (
	AccountAsset     AccountClass = "asset"
	AccountLiability AccountClass = "liability"
)

type PlanVersionName string

const (
	PlanBase         PlanVersionName = "base"
	PlanConservative PlanVersionName = "conservative"
	PlanAggressive   PlanVersionName = "aggressive"
)

// ValidPlanVersionNames is the canonical set of accepted plan version names.
var ValidPlanVersionNames = map[string]bool{
	"base": true, "conservative": true, "aggressive": true,
}

type RiskLevel string

const (
	RiskHealthy  RiskLevel = "healthy"
	RiskWarning  RiskLevel = "warning"
	RiskCritical RiskLevel = "critical"
)

type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
)

type ResolutionKind string

const (
	ResolutionMerged      ResolutionKind = "merged"
	ResolutionArchived    ResolutionKind = "archived"
	ResolutionIntentional ResolutionKind = "intentional"
)
