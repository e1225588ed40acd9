package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Events   EventsConfig   `yaml:"events"`
	OCR      OCRConfig      `yaml:"ocr"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Model    ModelConfig    `yaml:"model"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type ServerConfig struct {
	Port        int    `yaml:"port"`
	MetricsPort int    `yaml:"metrics_port"`
	AdminToken  string `yaml:"admin_token"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type OCRConfig struct {
	Backend      string   `yaml:"backend"` // tesseract, remote
	Language     string   `yaml:"language"`
	RemoteURL    string   `yaml:"remote_url"`
	RemoteToken  string   `yaml:"remote_token"`
	TimeoutMs    int      `yaml:"timeout_ms"`
	MaxFileBytes int64    `yaml:"max_file_bytes"`
	AllowedTypes []string `yaml:"allowed_types"`
}

type ScoringConfig struct {
	Weights ScoringWeights `yaml:"weights"`
}

type ScoringWeights struct {
	Late90         float64 `yaml:"late_90"`
	Late60         float64 `yaml:"late_60"`
	Late30         float64 `yaml:"late_30"`
	Utilization    float64 `yaml:"utilization"`
	UtilizationCap float64 `yaml:"utilization_cap"`
	DebtRatio      float64 `yaml:"debt_ratio"`
	DebtRatioCap   float64 `yaml:"debt_ratio_cap"`
	DependentPer   float64 `yaml:"dependent_per"`
	DependentCap   float64 `yaml:"dependent_cap"`
}

type ModelConfig struct {
	InfoPath string `yaml:"info_path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) OCRTimeout() time.Duration {
	return time.Duration(c.OCR.TimeoutMs) * time.Millisecond
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8080,
			MetricsPort: 8081,
		},
		OCR: OCRConfig{
			Backend:      "tesseract",
			Language:     "eng",
			TimeoutMs:    30000,
			MaxFileBytes: 10 * 1024 * 1024,
			AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "application/pdf"},
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				Late90:         0.35,
				Late60:         0.25,
				Late30:         0.15,
				Utilization:    0.20,
				UtilizationCap: 1.5,
				DebtRatio:      0.15,
				DebtRatioCap:   2.0,
				DependentPer:   0.02,
				DependentCap:   0.08,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("RISKD_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("RISKD_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("RISKD_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("RISKD_DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("RISKD_EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("RISKD_OCR_BACKEND"); v != "" {
		cfg.OCR.Backend = v
	}
	if v := os.Getenv("RISKD_OCR_REMOTE_URL"); v != "" {
		cfg.OCR.RemoteURL = v
	}
	if v := os.Getenv("RISKD_OCR_REMOTE_TOKEN"); v != "" {
		cfg.OCR.RemoteToken = v
	}
	if v := os.Getenv("RISKD_OCR_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.OCR.TimeoutMs = n
		}
	}
	if v := os.Getenv("RISKD_MODEL_INFO_PATH"); v != "" {
		cfg.Model.InfoPath = v
	}
	if v := os.Getenv("RISKD_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
