package borrower

import (
	"strings"
	"testing"
)

func intPtr(v int) *int             { return &v }
func float64Ptr(v float64) *float64 { return &v }

func validRecord() Record {
	return Record{
		Age:               intPtr(45),
		MonthlyIncome:     float64Ptr(5000),
		DebtRatio:         float64Ptr(0.35),
		CreditUtilization: float64Ptr(0.25),
		OpenCreditLines:   intPtr(8),
		RealEstateLoans:   intPtr(1),
		Dependents:        intPtr(2),
		Late30Days:        intPtr(0),
		Late60Days:        intPtr(0),
		Late90Days:        intPtr(0),
	}
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	if v := Validate(validRecord()); len(v) != 0 {
		t.Errorf("expected no violations, got %v", v)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	r := Record{Age: intPtr(17)}
	v := Validate(r)
	// age range + three missing required fields
	if len(v) != 4 {
		t.Errorf("expected 4 violations, got %d: %v", len(v), v)
	}
}

func TestValidateAgeBounds(t *testing.T) {
	tests := []struct {
		age  int
		want bool // valid
	}{
		{17, false},
		{18, true},
		{100, true},
		{101, false},
	}
	for _, tt := range tests {
		r := validRecord()
		r.Age = intPtr(tt.age)
		v := Validate(r)
		if tt.want && len(v) != 0 {
			t.Errorf("age %d: expected valid, got %v", tt.age, v)
		}
		if !tt.want && len(v) == 0 {
			t.Errorf("age %d: expected violation", tt.age)
		}
	}
}

func TestValidateIncomeBounds(t *testing.T) {
	tests := []struct {
		name    string
		income  float64
		message string
	}{
		{"zero", 0, "Monthly income must be positive"},
		{"negative", -100, "Monthly income must be positive"},
		{"too large", 1_000_001, "Monthly income seems unrealistic"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			r.MonthlyIncome = float64Ptr(tt.income)
			v := Validate(r)
			if len(v) != 1 || !strings.Contains(v[0], tt.message) {
				t.Errorf("expected %q, got %v", tt.message, v)
			}
		})
	}

	r := validRecord()
	r.MonthlyIncome = float64Ptr(1_000_000)
	if v := Validate(r); len(v) != 0 {
		t.Errorf("income at upper bound should be accepted, got %v", v)
	}
}

func TestValidateRatioRanges(t *testing.T) {
	r := validRecord()
	r.DebtRatio = float64Ptr(5.1)
	if v := Validate(r); len(v) != 1 {
		t.Errorf("expected debt ratio violation, got %v", v)
	}

	r = validRecord()
	r.CreditUtilization = float64Ptr(2.5)
	if v := Validate(r); len(v) != 1 {
		t.Errorf("expected utilization violation, got %v", v)
	}
}

func TestValidateRejectsNegativeCounts(t *testing.T) {
	r := validRecord()
	r.Late30Days = intPtr(-1)
	v := Validate(r)
	if len(v) != 1 || !strings.Contains(v[0], "cannot be negative") {
		t.Errorf("expected negative count violation, got %v", v)
	}
}

func TestValidateMissingRequiredFields(t *testing.T) {
	v := Validate(Record{})
	required := []string{"Age is required", "Monthly Income is required", "Debt Ratio is required", "Credit Utilization is required"}
	for _, want := range required {
		found := false
		for _, got := range v {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing violation %q in %v", want, v)
		}
	}
}

func TestFieldCount(t *testing.T) {
	if got := (Record{}).FieldCount(); got != 0 {
		t.Errorf("empty record: expected 0, got %d", got)
	}
	if got := validRecord().FieldCount(); got != FieldTotal {
		t.Errorf("full record: expected %d, got %d", FieldTotal, got)
	}
	r := Record{Age: intPtr(30), MonthlyIncome: float64Ptr(4000)}
	if got := r.FieldCount(); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
	if !(Record{}).Empty() {
		t.Error("expected empty record to report Empty")
	}
}
