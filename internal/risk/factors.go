package risk

import "github.com/creditvision/riskd/internal/borrower"

// Factor is one human-readable driver of the score.
type Factor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"` // high, medium, low
}

const maxTopFactors = 5

// TopFactors ranks the inputs most responsible for the score. Triggers are
// evaluated in fixed priority order and each appears at most once. A record
// with no triggered factors reports positive indicators instead, so the list
// is never empty.
func TopFactors(rec borrower.Record) []Factor {
	var factors []Factor

	if intOrZero(rec.Late90Days) > 0 {
		factors = append(factors, Factor{Factor: "90+ Days Late Payments", Impact: "high"})
	}
	if floatOrZero(rec.CreditUtilization) > 0.5 {
		factors = append(factors, Factor{Factor: "High Credit Utilization", Impact: "high"})
	}
	if floatOrZero(rec.DebtRatio) > 0.5 {
		factors = append(factors, Factor{Factor: "High Debt-to-Income Ratio", Impact: "high"})
	}
	if floatOrZero(rec.MonthlyIncome) < 3000 {
		factors = append(factors, Factor{Factor: "Low Monthly Income", Impact: "medium"})
	}
	if intOrZero(rec.Age) < 30 {
		factors = append(factors, Factor{Factor: "Young Age", Impact: "low"})
	}

	if len(factors) == 0 {
		factors = append(factors,
			Factor{Factor: "Clean Payment History", Impact: "low"},
			Factor{Factor: "Healthy Credit Utilization", Impact: "low"},
		)
	}

	if len(factors) > maxTopFactors {
		factors = factors[:maxTopFactors]
	}
	return factors
}
