// Package batch scores many applications from a CSV upload. Every row goes
// through the same Scorer as single predictions so the two paths cannot
// drift apart.
package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creditvision/riskd/internal/borrower"
	"github.com/creditvision/riskd/internal/risk"
)

var requiredColumns = []string{"age", "monthlyIncome", "debtRatio", "creditUtilization", "late90Days", "late30Days"}

// RowResult is the scoring outcome for one CSV data row. Rows that fail to
// parse or validate carry an Error and no score; they never fail the batch.
type RowResult struct {
	Row                int             `json:"row"`
	Record             borrower.Record `json:"record"`
	DefaultProbability float64         `json:"defaultProbability,omitempty"`
	RiskLevel          string          `json:"riskLevel,omitempty"`
	Decision           string          `json:"decision,omitempty"`
	SuggestedRate      float64         `json:"suggestedRate,omitempty"`
	Error              string          `json:"error,omitempty"`
}

// Result summarizes a processed batch.
type Result struct {
	Rows      []RowResult `json:"rows"`
	Processed int         `json:"processed"`
	Failed    int         `json:"failed"`
}

// Process reads CSV data and scores each row independently. The header must
// contain the required columns; beyond that, rows are isolated and processed
// in order.
func Process(r io.Reader, scorer *risk.Scorer) (*Result, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	result := &Result{}
	for row := 1; ; row++ {
		values, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Rows = append(result.Rows, RowResult{Row: row, Error: err.Error()})
			result.Failed++
			continue
		}

		rec, err := parseRow(cols, values)
		if err != nil {
			result.Rows = append(result.Rows, RowResult{Row: row, Error: err.Error()})
			result.Failed++
			continue
		}

		if violations := borrower.Validate(rec); len(violations) > 0 {
			result.Rows = append(result.Rows, RowResult{
				Row:    row,
				Record: rec,
				Error:  strings.Join(violations, "; "),
			})
			result.Failed++
			continue
		}

		a := scorer.Score(rec)
		result.Rows = append(result.Rows, RowResult{
			Row:                row,
			Record:             rec,
			DefaultProbability: a.DefaultProbability,
			RiskLevel:          a.RiskLevel,
			Decision:           a.ApprovalStatus,
			SuggestedRate:      a.SuggestedRate,
		})
		result.Processed++
	}

	return result, nil
}

func parseRow(cols map[string]int, values []string) (borrower.Record, error) {
	var rec borrower.Record

	get := func(name string) (string, bool) {
		i, ok := cols[name]
		if !ok || i >= len(values) {
			return "", false
		}
		v := strings.TrimSpace(values[i])
		return v, v != ""
	}

	parseInt := func(name string, dst **int) error {
		v, ok := get(name)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("column %s: %q is not a number", name, v)
		}
		*dst = &n
		return nil
	}

	parseFloat := func(name string, dst **float64) error {
		v, ok := get(name)
		if !ok {
			return nil
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
		if err != nil {
			return fmt.Errorf("column %s: %q is not a number", name, v)
		}
		*dst = &f
		return nil
	}

	for _, step := range []error{
		parseInt("age", &rec.Age),
		parseFloat("monthlyIncome", &rec.MonthlyIncome),
		parseFloat("debtRatio", &rec.DebtRatio),
		parseFloat("creditUtilization", &rec.CreditUtilization),
		parseInt("openCreditLines", &rec.OpenCreditLines),
		parseInt("realEstateLoans", &rec.RealEstateLoans),
		parseInt("dependents", &rec.Dependents),
		parseInt("late30Days", &rec.Late30Days),
		parseInt("late60Days", &rec.Late60Days),
		parseInt("late90Days", &rec.Late90Days),
	} {
		if step != nil {
			return borrower.Record{}, step
		}
	}

	return rec, nil
}
