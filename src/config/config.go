package config

import (
	"fmt"
	"sync"

	"PenguinPrep/src/utils"
)

// Config carries the bound constants of a preprocessing run. The pipeline
// takes no flags, environment variables or config files, so every field has
// a hardcoded default; tests build their own copies via New and point the
// paths at temp directories.
type Config struct {
	// RawDataPath is the primary input location. FallbackPaths are probed
	// in order when the primary file is absent.
	RawDataPath   string
	FallbackPaths []string
	// OutputPath receives the processed table, relative to the working
	// directory.
	OutputPath string

	LogName     string
	LogMaxBytes int64

	// CategoricalColumns each gain an integer-coded copy named
	// <column><EncodedSuffix>. NumericColumns are standardized in place.
	// TargetColumn must be one of the categorical columns; its encoded copy
	// is the training target.
	CategoricalColumns []string
	NumericColumns     []string
	TargetColumn       string
	EncodedSuffix      string
}

var (
	once     sync.Once
	instance *Config
)

// Default returns the process-wide configuration, built on first use.
func Default() *Config {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New returns a fresh Config with the bound defaults.
func New() *Config {
	return &Config{
		RawDataPath: "../penguins_raw.csv",
		FallbackPaths: []string{
			"penguins.csv",
			"../penguins.csv",
			"penguins_raw.csv",
		},
		OutputPath:  "penguins_processed.csv",
		LogName:     "preprocess.log",
		LogMaxBytes: 10 * 1024 * 1024,
		CategoricalColumns: []string{
			"species",
			"island",
			"sex",
		},
		NumericColumns: []string{
			"bill_length_mm",
			"bill_depth_mm",
			"flipper_length_mm",
			"body_mass_g",
		},
		TargetColumn:  "species",
		EncodedSuffix: "_encoded",
	}
}

// EncodedName returns the name of the integer-coded copy of a categorical
// column.
func (c *Config) EncodedName(col string) string {
	return col + c.EncodedSuffix
}

// Validate rejects configurations the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.RawDataPath == "" {
		return fmt.Errorf("config: raw data path is empty")
	}
	if c.OutputPath == "" {
		return fmt.Errorf("config: output path is empty")
	}
	if c.LogName == "" {
		return fmt.Errorf("config: log name is empty")
	}
	if c.LogMaxBytes <= 0 {
		return fmt.Errorf("config: log max size must be positive, got %d", c.LogMaxBytes)
	}
	if len(c.NumericColumns) == 0 {
		return fmt.Errorf("config: no numeric columns")
	}
	if len(c.CategoricalColumns) == 0 {
		return fmt.Errorf("config: no categorical columns")
	}
	if !utils.Contains(c.CategoricalColumns, c.TargetColumn) {
		return fmt.Errorf("config: target column %q is not categorical", c.TargetColumn)
	}
	for _, col := range c.NumericColumns {
		if utils.Contains(c.CategoricalColumns, col) {
			return fmt.Errorf("config: column %q is both numeric and categorical", col)
		}
	}
	if c.EncodedSuffix == "" {
		return fmt.Errorf("config: encoded-column suffix is empty")
	}
	return nil
}
