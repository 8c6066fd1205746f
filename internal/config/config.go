package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config holds everything a report run needs: where the per-technology
// spreadsheets live, where the artifacts go, and which groups to render.
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputConfig points at one folder per technology. Every .xlsx file in a
// folder is loaded and concatenated.
type InputConfig struct {
	Dir4G string `yaml:"dir_4g" envconfig:"DIR_4G" default:"4G"`
	Dir5G string `yaml:"dir_5g" envconfig:"DIR_5G" default:"5G"`
}

// OutputConfig names the report PDF and the intermediate normalized workbook.
type OutputConfig struct {
	PDF          string `yaml:"pdf" envconfig:"PDF" default:"report.pdf"`
	Intermediate string `yaml:"intermediate" envconfig:"INTERMEDIATE" default:"normalized_4g.xlsx"`
}

// ReportConfig controls report composition. An empty Groups list means every
// distinct group found in the merged dataset, in order of first appearance.
type ReportConfig struct {
	Groups []string `yaml:"groups" envconfig:"GROUPS"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text"`
}

// Load builds the configuration from environment variables (prefix NETREPORT),
// then applies overrides from the YAML file at path when one is given.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("NETREPORT", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Input.Dir4G == "" || c.Input.Dir5G == "" {
		return fmt.Errorf("both input directories must be set")
	}
	if c.Output.PDF == "" {
		return fmt.Errorf("output PDF path must be set")
	}
	if !strings.HasSuffix(strings.ToLower(c.Output.PDF), ".pdf") {
		return fmt.Errorf("output path %q does not end in .pdf", c.Output.PDF)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}
