package extract

import "testing"

func TestFieldsExtractsLabeledValues(t *testing.T) {
	text := "Monthly Income: $4,500\n90 days late: 2"
	rec := Fields(text)

	if rec.MonthlyIncome == nil || *rec.MonthlyIncome != 4500 {
		t.Errorf("monthlyIncome = %v, want 4500", rec.MonthlyIncome)
	}
	if rec.Late90Days == nil || *rec.Late90Days != 2 {
		t.Errorf("late90Days = %v, want 2", rec.Late90Days)
	}
}

func TestFieldsEmptyOnUnrecognizedText(t *testing.T) {
	rec := Fields("lorem ipsum dolor sit amet")
	if !rec.Empty() {
		t.Errorf("expected empty record, got %+v", rec)
	}
}

func TestFieldsEmptyOnBlankText(t *testing.T) {
	if rec := Fields(""); !rec.Empty() {
		t.Errorf("expected empty record, got %+v", rec)
	}
}

func TestFieldsLabelSynonyms(t *testing.T) {
	rec := Fields("Salary: 3200")
	if rec.MonthlyIncome == nil || *rec.MonthlyIncome != 3200 {
		t.Errorf("salary synonym: got %v", rec.MonthlyIncome)
	}

	rec = Fields("Age: 42")
	if rec.Age == nil || *rec.Age != 42 {
		t.Errorf("age: got %v", rec.Age)
	}

	rec = Fields("children: 3")
	if rec.Dependents == nil || *rec.Dependents != 3 {
		t.Errorf("children synonym: got %v", rec.Dependents)
	}

	rec = Fields("mortgage: 1")
	if rec.RealEstateLoans == nil || *rec.RealEstateLoans != 1 {
		t.Errorf("mortgage synonym: got %v", rec.RealEstateLoans)
	}
}

func TestFieldsParsesRatiosAsFloats(t *testing.T) {
	rec := Fields("Debt Ratio: 0.45 Utilization: 0.8")
	if rec.DebtRatio == nil || *rec.DebtRatio != 0.45 {
		t.Errorf("debtRatio = %v, want 0.45", rec.DebtRatio)
	}
	if rec.CreditUtilization == nil || *rec.CreditUtilization != 0.8 {
		t.Errorf("creditUtilization = %v, want 0.8", rec.CreditUtilization)
	}
}

func TestFieldsLateBuckets(t *testing.T) {
	rec := Fields("30 days late: 1\n60 days late: 0\n90 days late: 4")
	if rec.Late30Days == nil || *rec.Late30Days != 1 {
		t.Errorf("late30 = %v, want 1", rec.Late30Days)
	}
	if rec.Late60Days == nil || *rec.Late60Days != 0 {
		t.Errorf("late60 = %v, want 0", rec.Late60Days)
	}
	if rec.Late90Days == nil || *rec.Late90Days != 4 {
		t.Errorf("late90 = %v, want 4", rec.Late90Days)
	}
}

func TestFieldsFirstMatchWins(t *testing.T) {
	rec := Fields("Income: 3000\nIncome: 9000")
	if rec.MonthlyIncome == nil || *rec.MonthlyIncome != 3000 {
		t.Errorf("expected first match 3000, got %v", rec.MonthlyIncome)
	}
}

func TestFieldsCaseInsensitive(t *testing.T) {
	rec := Fields("MONTHLY INCOME: $2,750")
	if rec.MonthlyIncome == nil || *rec.MonthlyIncome != 2750 {
		t.Errorf("got %v, want 2750", rec.MonthlyIncome)
	}
}
