package borrower

import "fmt"

const maxMonthlyIncome = 1_000_000

// Validate checks a candidate application and returns every violation found.
// An empty slice means the record is acceptable for scoring. Rules are not
// short-circuited: a record missing two fields reports both.
func Validate(r Record) []string {
	var violations []string

	if r.Age == nil {
		violations = append(violations, "Age is required")
	} else if *r.Age < 18 || *r.Age > 100 {
		violations = append(violations, "Age must be between 18 and 100")
	}

	if r.MonthlyIncome == nil {
		violations = append(violations, "Monthly Income is required")
	} else {
		if *r.MonthlyIncome <= 0 {
			violations = append(violations, "Monthly income must be positive")
		}
		if *r.MonthlyIncome > maxMonthlyIncome {
			violations = append(violations, "Monthly income seems unrealistic")
		}
	}

	if r.DebtRatio == nil {
		violations = append(violations, "Debt Ratio is required")
	} else if *r.DebtRatio < 0 || *r.DebtRatio > 5 {
		violations = append(violations, "Debt ratio must be between 0 and 5")
	}

	if r.CreditUtilization == nil {
		violations = append(violations, "Credit Utilization is required")
	} else if *r.CreditUtilization < 0 || *r.CreditUtilization > 2 {
		violations = append(violations, "Credit utilization must be between 0 and 2")
	}

	nonNegative := []struct {
		name  string
		value *int
	}{
		{"Open Credit Lines", r.OpenCreditLines},
		{"Real Estate Loans", r.RealEstateLoans},
		{"Dependents", r.Dependents},
		{"Late 30 Days", r.Late30Days},
		{"Late 60 Days", r.Late60Days},
		{"Late 90 Days", r.Late90Days},
	}
	for _, f := range nonNegative {
		if f.value != nil && *f.value < 0 {
			violations = append(violations, fmt.Sprintf("%s cannot be negative", f.name))
		}
	}

	return violations
}
