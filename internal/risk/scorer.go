package risk

import (
	"log/slog"
	"math"

	"github.com/creditvision/riskd/internal/borrower"
)

// Probability thresholds shared by the risk and approval tier mappings.
const (
	ThresholdLow    = 0.3
	ThresholdMedium = 0.6
	ThresholdHigh   = 0.8
)

// Rate pricing constants: suggested APR is the base rate plus a premium
// proportional to default probability.
const (
	BaseRate       = 5.5
	MaxRiskPremium = 15
)

// Raw scores are halved then clamped, so the reported probability never
// touches 0 or 1 regardless of input.
const (
	scoreNormalizer    = 2.0
	probabilityFloor   = 0.05
	probabilityCeiling = 0.95
)

// Risk tier labels.
const (
	RiskLow    = "Low Risk"
	RiskMedium = "Medium Risk"
	RiskHigh   = "High Risk"
)

// Approval tier labels.
const (
	ApprovalPrime    = "Prime"
	ApprovalStandard = "Standard"
	ApprovalHighRate = "High-Rate"
	ApprovalDecline  = "Decline"
)

// Contribution records one input's weighted share of the raw score.
type Contribution struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Assessment is the complete scoring output for one borrower record.
type Assessment struct {
	DefaultProbability float64        `json:"defaultProbability"`
	RiskLevel          string         `json:"riskLevel"`
	ApprovalStatus     string         `json:"approvalStatus"`
	SuggestedRate      float64        `json:"suggestedRate"`
	Recommendation     string         `json:"recommendation"`
	TopFactors         []Factor       `json:"topFactors"`
	Contributions      []Contribution `json:"contributions"`
}

// Scorer computes default-risk assessments with a fixed weighted formula.
type Scorer struct {
	weights WeightSet
	logger  *slog.Logger
}

// NewScorer creates a Scorer with the given weights.
func NewScorer(weights WeightSet, logger *slog.Logger) *Scorer {
	return &Scorer{weights: weights, logger: logger}
}

// Score assesses a validated borrower record. It is pure: the same record
// always produces the same assessment.
func (s *Scorer) Score(rec borrower.Record) Assessment {
	var contributions []Contribution
	raw := 0.0

	add := func(name string, amount float64) {
		raw += amount
		contributions = append(contributions, Contribution{Name: name, Amount: amount})
	}

	add("late_90_days", float64(intOrZero(rec.Late90Days))*s.weights.Late90)
	add("late_60_days", float64(intOrZero(rec.Late60Days))*s.weights.Late60)
	add("late_30_days", float64(intOrZero(rec.Late30Days))*s.weights.Late30)
	add("credit_utilization", math.Min(floatOrZero(rec.CreditUtilization), s.weights.UtilizationCap)*s.weights.Utilization)
	add("debt_ratio", math.Min(floatOrZero(rec.DebtRatio), s.weights.DebtRatioCap)*s.weights.DebtRatio)
	add("age", ageAdjustment(intOrZero(rec.Age)))
	add("monthly_income", incomeAdjustment(floatOrZero(rec.MonthlyIncome)))
	add("open_credit_lines", creditLineAdjustment(intOr(rec.OpenCreditLines, 5)))
	add("dependents", math.Min(float64(intOrZero(rec.Dependents))*s.weights.DependentPer, s.weights.DependentCap))

	probability := clamp(raw/scoreNormalizer, probabilityFloor, probabilityCeiling)

	approval := ApprovalStatus(probability)
	rate := 0.0
	if approval != ApprovalDecline {
		rate = SuggestedRate(probability)
	}

	if s.logger != nil {
		s.logger.Debug("scored application",
			"raw_score", raw,
			"probability", probability,
			"approval", approval,
		)
	}

	return Assessment{
		DefaultProbability: probability,
		RiskLevel:          RiskLevel(probability),
		ApprovalStatus:     approval,
		SuggestedRate:      rate,
		Recommendation:     Recommendation(probability),
		TopFactors:         TopFactors(rec),
		Contributions:      contributions,
	}
}

// RiskLevel maps a default probability to its coarse tier.
func RiskLevel(probability float64) string {
	switch {
	case probability < ThresholdLow:
		return RiskLow
	case probability < ThresholdMedium:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// ApprovalStatus maps a default probability to a pricing decision.
func ApprovalStatus(probability float64) string {
	switch {
	case probability < ThresholdLow:
		return ApprovalPrime
	case probability < ThresholdMedium:
		return ApprovalStandard
	case probability < ThresholdHigh:
		return ApprovalHighRate
	default:
		return ApprovalDecline
	}
}

// SuggestedRate prices an annualized rate from the default probability,
// rounded to one decimal place.
func SuggestedRate(probability float64) float64 {
	return math.Round((BaseRate+probability*MaxRiskPremium)*10) / 10
}

// Recommendation produces the advisory text shown alongside a decision.
func Recommendation(probability float64) string {
	switch {
	case probability < ThresholdLow:
		return "Approve - Low default risk. Borrower shows strong financial indicators."
	case probability < ThresholdMedium:
		return "Review - Moderate risk. Consider additional verification or adjusted terms."
	default:
		return "Decline - High default risk. Significant concerns in payment history and financial profile."
	}
}

func ageAdjustment(age int) float64 {
	switch {
	case age < 25:
		return 0.08
	case age < 35:
		return 0.04
	default:
		return 0
	}
}

func incomeAdjustment(income float64) float64 {
	switch {
	case income < 2500:
		return 0.10
	case income < 4000:
		return 0.05
	default:
		return 0
	}
}

func creditLineAdjustment(lines int) float64 {
	if lines < 3 || lines > 20 {
		return 0.05
	}
	return 0
}

func intOrZero(p *int) int { return intOr(p, 0) }

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func floatOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
