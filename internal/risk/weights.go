package risk

import "fmt"

// WeightSet defines the contribution of each input to the raw risk score.
// Late-payment buckets are the strongest predictors; utilization and debt
// ratio are capped before weighting so one runaway input cannot dominate.
type WeightSet struct {
	Late90         float64
	Late60         float64
	Late30         float64
	Utilization    float64
	UtilizationCap float64
	DebtRatio      float64
	DebtRatioCap   float64
	DependentPer   float64
	DependentCap   float64
}

// DefaultWeights returns the canonical weight distribution.
func DefaultWeights() WeightSet {
	return WeightSet{
		Late90:         0.35,
		Late60:         0.25,
		Late30:         0.15,
		Utilization:    0.20,
		UtilizationCap: 1.5,
		DebtRatio:      0.15,
		DebtRatioCap:   2.0,
		DependentPer:   0.02,
		DependentCap:   0.08,
	}
}

// Validate checks that no weight or cap is negative.
func (w WeightSet) Validate() error {
	for _, v := range w.asList() {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

func (w WeightSet) asList() []float64 {
	return []float64{
		w.Late90, w.Late60, w.Late30,
		w.Utilization, w.UtilizationCap,
		w.DebtRatio, w.DebtRatioCap,
		w.DependentPer, w.DependentCap,
	}
}
