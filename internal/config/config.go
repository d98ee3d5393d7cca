// Package config loads and validates the YAML config driving an enrichment
// run.
package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-indicators/internal/types"
	"github.com/rxtech-lab/argo-indicators/internal/version"
	"github.com/rxtech-lab/argo-indicators/pkg/errors"
)

// EnrichConfig describes a single enrichment run: where the bars come from,
// which indicators to export, and where the enriched output goes.
type EnrichConfig struct {
	// Version is the engine version this config was written for. Must be
	// compatible with the running engine (same major and minor).
	Version string `yaml:"version" json:"version" jsonschema:"title=Version,description=Engine version this config targets,required" validate:"required"`
	// Data is the path of the input bar file (.csv or .parquet).
	Data string `yaml:"data" json:"data" jsonschema:"title=Data,description=Path of the input bar file,required" validate:"required"`
	// Output is the path of the enriched output file. The format is inferred
	// from the extension unless Format is set.
	Output string `yaml:"output" json:"output" jsonschema:"title=Output,description=Path of the enriched output file,required" validate:"required"`
	// Format overrides the output format inferred from the Output extension.
	Format string `yaml:"format,omitempty" json:"format,omitempty" jsonschema:"title=Format,description=Output format,enum=csv,enum=parquet,enum=json" validate:"omitempty,oneof=csv parquet json"`
	// Indicators selects the indicator columns to export. Empty exports all.
	Indicators []string `yaml:"indicators,omitempty" json:"indicators,omitempty" jsonschema:"title=Indicators,description=Indicator ids to export" validate:"omitempty,dive,oneof=sma5 sma20 ema20 wma20 hma20 bollinger rsi14 macd obv donchian momentum10 roc10 atr14 cci20"`
	// Start and End bound the input bars by time (RFC3339, inclusive).
	Start string `yaml:"start,omitempty" json:"start,omitempty" jsonschema:"title=Start,description=Inclusive lower time bound (RFC3339)"`
	End   string `yaml:"end,omitempty" json:"end,omitempty" jsonschema:"title=End,description=Inclusive upper time bound (RFC3339)"`
}

// Load reads an EnrichConfig from a YAML file, validates it, and checks that
// its version is compatible with the running engine.
func Load(path string) (*EnrichConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeDataNotFound, err, "failed to read config file %s", path)
	}

	return Parse(content)
}

// Parse parses and validates an EnrichConfig from YAML bytes.
func Parse(content []byte) (*EnrichConfig, error) {
	var config EnrichConfig
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataParseFailed, "failed to parse config YAML", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the config fields and the engine version compatibility.
func (c *EnrichConfig) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	if err := version.CheckVersionCompatibility(version.GetVersion(), c.Version); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidVersion, "config version is not compatible with this engine", err)
	}

	if c.Start != "" {
		if _, err := time.Parse(time.RFC3339, c.Start); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid start time, expected RFC3339", err)
		}
	}

	if c.End != "" {
		if _, err := time.Parse(time.RFC3339, c.End); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidParameter, "invalid end time, expected RFC3339", err)
		}
	}

	return nil
}

// IndicatorTypes returns the selected indicator ids.
func (c *EnrichConfig) IndicatorTypes() []types.IndicatorType {
	ids := make([]types.IndicatorType, 0, len(c.Indicators))
	for _, id := range c.Indicators {
		ids = append(ids, types.IndicatorType(id))
	}

	return ids
}

// StartTime returns the parsed lower time bound, or None when unset.
func (c *EnrichConfig) StartTime() optional.Option[time.Time] {
	return parseOptionalTime(c.Start)
}

// EndTime returns the parsed upper time bound, or None when unset.
func (c *EnrichConfig) EndTime() optional.Option[time.Time] {
	return parseOptionalTime(c.End)
}

func parseOptionalTime(s string) optional.Option[time.Time] {
	if s == "" {
		return optional.None[time.Time]()
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return optional.None[time.Time]()
	}

	return optional.Some(t)
}
