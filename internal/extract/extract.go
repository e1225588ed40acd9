// Package extract mines borrower fields out of raw recognized document text.
// Extraction is best effort: every pattern is tried, the first match wins,
// and text with no recognizable labels simply yields an empty record.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/creditvision/riskd/internal/borrower"
)

var (
	agePattern         = regexp.MustCompile(`(?i)age\s*:?\s*(\d{2,3})`)
	incomePattern      = regexp.MustCompile(`(?i)(?:income|salary|monthly)\s*:?\s*\$?([\d,]+)`)
	debtRatioPattern   = regexp.MustCompile(`(?i)(?:debt|ratio)\s*:?\s*(\d+\.?\d*)`)
	utilizationPattern = regexp.MustCompile(`(?i)(?:credit|utilization)\s*:?\s*(\d+\.?\d*)`)
	dependentsPattern  = regexp.MustCompile(`(?i)(?:dependents|children)\s*:?\s*(\d+)`)
	late30Pattern      = regexp.MustCompile(`(?i)30\s*days?\s*late\s*:?\s*(\d+)`)
	late60Pattern      = regexp.MustCompile(`(?i)60\s*days?\s*late\s*:?\s*(\d+)`)
	late90Pattern      = regexp.MustCompile(`(?i)90\s*days?\s*late\s*:?\s*(\d+)`)
	creditLinesPattern = regexp.MustCompile(`(?i)(?:credit\s*lines?|open\s*credit)\s*:?\s*(\d+)`)
	realEstatePattern  = regexp.MustCompile(`(?i)(?:real\s*estate|mortgage)\s*:?\s*(\d+)`)
)

// Fields pulls whatever borrower fields it can find from rawText. No
// validation happens here; out-of-range values are left for the validator.
func Fields(rawText string) borrower.Record {
	var rec borrower.Record

	rec.Age = matchInt(agePattern, rawText)
	rec.MonthlyIncome = matchFloat(incomePattern, rawText)
	rec.DebtRatio = matchFloat(debtRatioPattern, rawText)
	rec.CreditUtilization = matchFloat(utilizationPattern, rawText)
	rec.Dependents = matchInt(dependentsPattern, rawText)
	rec.Late30Days = matchInt(late30Pattern, rawText)
	rec.Late60Days = matchInt(late60Pattern, rawText)
	rec.Late90Days = matchInt(late90Pattern, rawText)
	rec.OpenCreditLines = matchInt(creditLinesPattern, rawText)
	rec.RealEstateLoans = matchInt(realEstatePattern, rawText)

	return rec
}

func matchInt(pattern *regexp.Regexp, text string) *int {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.Atoi(stripSeparators(m[1]))
	if err != nil {
		return nil
	}
	return &v
}

func matchFloat(pattern *regexp.Regexp, text string) *float64 {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(stripSeparators(m[1]), 64)
	if err != nil {
		return nil
	}
	return &v
}

func stripSeparators(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
