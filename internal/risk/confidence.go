package risk

import (
	"math"

	"github.com/creditvision/riskd/internal/borrower"
)

// Confidence estimates how much trust to place in an assessment based on
// how complete the supplied record is. Completeness across the ten-field
// schema provides the base; the payment-history and income/debt fields are
// weighted extra because they drive most of the score.
func Confidence(rec borrower.Record) float64 {
	completeness := float64(rec.FieldCount()) / float64(borrower.FieldTotal)
	confidence := completeness * 0.8

	if rec.Late90Days != nil && rec.Late30Days != nil {
		confidence += 0.1
	}
	if floatOrZero(rec.MonthlyIncome) > 0 && floatOrZero(rec.DebtRatio) > 0 {
		confidence += 0.1
	}

	return math.Min(confidence, 1.0)
}
