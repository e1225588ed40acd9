// Package modelinfo supplies the model-performance figures shown on the
// dashboard. Real figures come from a JSON file produced by the training
// pipeline; when none is configured a named demo dataset is served instead
// of leaving callers with module-level fallback state.
package modelinfo

import (
	"encoding/json"
	"fmt"
	"os"
)

type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

type Info struct {
	ROCAUCScore       float64             `json:"roc_auc_score"`
	TestSamples       int                 `json:"test_samples"`
	FeatureImportance []FeatureImportance `json:"feature_importance"`
}

// Provider serves model information from a file or the demo default.
type Provider struct {
	info Info
}

// DemoInfo returns the documented fallback dataset used when no trained
// model file is available.
func DemoInfo() Info {
	return Info{
		ROCAUCScore: 0.8248,
		TestSamples: 30000,
		FeatureImportance: []FeatureImportance{
			{Feature: "NumberOfTimes90DaysLate", Importance: 0.35},
			{Feature: "RevolvingUtilizationOfUnsecuredLines", Importance: 0.20},
			{Feature: "DebtRatio", Importance: 0.15},
			{Feature: "MonthlyIncome", Importance: 0.12},
			{Feature: "NumberOfTime30-59DaysPastDueNotWorse", Importance: 0.10},
		},
	}
}

// NewProvider loads model info from path, or uses demo data when path is
// empty. A missing or malformed file is an error so a misconfigured
// deployment fails loudly at startup.
func NewProvider(path string) (*Provider, error) {
	if path == "" {
		return &Provider{info: DemoInfo()}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model info: %w", err)
	}
	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("parse model info: %w", err)
	}
	return &Provider{info: info}, nil
}

// Info returns the loaded model information.
func (p *Provider) Info() Info {
	return p.info
}
