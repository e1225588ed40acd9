package borrower

// Record holds the ten-field borrower schema. Fields are pointers so a
// partially extracted or partially filled application can be distinguished
// from one where a value was explicitly supplied.
type Record struct {
	Age               *int     `json:"age,omitempty"`
	MonthlyIncome     *float64 `json:"monthlyIncome,omitempty"`
	DebtRatio         *float64 `json:"debtRatio,omitempty"`
	CreditUtilization *float64 `json:"creditUtilization,omitempty"`
	OpenCreditLines   *int     `json:"openCreditLines,omitempty"`
	RealEstateLoans   *int     `json:"realEstateLoans,omitempty"`
	Dependents        *int     `json:"dependents,omitempty"`
	Late30Days        *int     `json:"late30Days,omitempty"`
	Late60Days        *int     `json:"late60Days,omitempty"`
	Late90Days        *int     `json:"late90Days,omitempty"`
}

// FieldTotal is the number of fields in the canonical schema.
const FieldTotal = 10

// FieldCount returns how many of the ten fields are populated.
func (r Record) FieldCount() int {
	n := 0
	for _, set := range []bool{
		r.Age != nil, r.MonthlyIncome != nil, r.DebtRatio != nil,
		r.CreditUtilization != nil, r.OpenCreditLines != nil,
		r.RealEstateLoans != nil, r.Dependents != nil,
		r.Late30Days != nil, r.Late60Days != nil, r.Late90Days != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Empty reports whether no field is populated.
func (r Record) Empty() bool {
	return r.FieldCount() == 0
}
