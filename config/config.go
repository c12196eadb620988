// Package config carries the tunable defaults of the filtering toolkit.
// Values load from the environment and can be overridden from custom
// directives embedded in the ledger itself.
package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"

	"github.com/iho/beanfilter/ledger"
)

// DirectiveName is the custom directive type carrying configuration:
//
//	2024-01-01 custom "beanfilter-config" "dedup-window-days" 5
const DirectiveName = "beanfilter-config"

// Configuration errors.
var (
	ErrUnknownKey   = errors.New("unknown configuration key")
	ErrInvalidValue = errors.New("invalid configuration value")
)

// Config holds all library configuration.
type Config struct {
	// Account classification
	SourceAccountPattern   string `env:"BEANFILTER_SOURCE_ACCOUNT_PATTERN"   envDefault:"^(Assets|Liabilities):"`
	CategoryAccountPattern string `env:"BEANFILTER_CATEGORY_ACCOUNT_PATTERN" envDefault:"^(Expenses|Income):"`

	// Import deduplication
	DedupWindowDays int `env:"BEANFILTER_DEDUP_WINDOW_DAYS" envDefault:"10"`

	// Prediction marking
	PredictedTagPrefix string `env:"BEANFILTER_PREDICTED_TAG_PREFIX" envDefault:"_new"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEntries overrides the configuration from the ledger's own custom
// directives. Each directive names one key and its value:
//
//	2024-01-01 custom "beanfilter-config" "regex-source-account" "^Assets:"
//
// Unknown keys are rejected so typos do not pass silently.
func (c *Config) ApplyEntries(entries ledger.Entries) error {
	for _, e := range entries {
		directive, ok := e.(*ledger.Custom)
		if !ok || directive.Name != DirectiveName {
			continue
		}
		if err := c.applyDirective(directive); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) applyDirective(directive *ledger.Custom) error {
	if len(directive.Values) != 2 {
		return fmt.Errorf("%w: %s needs a key and a value, got %d values",
			ErrInvalidValue, DirectiveName, len(directive.Values))
	}

	key, ok := directive.Values[0].(string)
	if !ok {
		return fmt.Errorf("%w: key must be a string, got %T", ErrInvalidValue, directive.Values[0])
	}

	switch key {
	case "regex-source-account":
		return stringValue(key, directive.Values[1], &c.SourceAccountPattern)
	case "regex-category-account":
		return stringValue(key, directive.Values[1], &c.CategoryAccountPattern)
	case "dedup-window-days":
		return intValue(key, directive.Values[1], &c.DedupWindowDays)
	case "predicted-tag-prefix":
		return stringValue(key, directive.Values[1], &c.PredictedTagPrefix)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

func stringValue(key string, value any, target *string) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidValue, key, value)
	}
	*target = s
	return nil
}

// intValue accepts the numeric shapes a ledger parser may deliver.
func intValue(key string, value any, target *int) error {
	switch v := value.(type) {
	case int:
		*target = v
	case int64:
		*target = int(v)
	case decimal.Decimal:
		*target = int(v.IntPart())
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidValue, key, err)
		}
		*target = parsed
	default:
		return fmt.Errorf("%w: %s must be a number, got %T", ErrInvalidValue, key, value)
	}
	return nil
}
