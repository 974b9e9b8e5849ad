package main

import (
	"github.com/kbukum/seqkit/config"
	"github.com/kbukum/seqkit/validation"
)

// Config is the seqdemo configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Demo                 DemoConfig    `yaml:"demo" mapstructure:"demo" json:"demo"`
	Tracing              TracingConfig `yaml:"tracing" mapstructure:"tracing" json:"tracing"`
}

// DemoConfig selects what runs.
type DemoConfig struct {
	// Scenarios run in order. Empty means all.
	Scenarios []string `yaml:"scenarios" mapstructure:"scenarios" json:"scenarios"`
	// Limit caps how many elements are taken from unbounded sources.
	Limit int `yaml:"limit" mapstructure:"limit" json:"limit" validate:"gte=1,lte=1000"`
}

// TracingConfig enables OTLP export of spans and metrics.
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled" json:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint" json:"endpoint" validate:"required_if=Enabled true"`
	Insecure   bool    `yaml:"insecure" mapstructure:"insecure" json:"insecure"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" json:"sample_rate" validate:"gte=0,lte=1"`
}

// loaderDefaults are the lowest-precedence config values.
var loaderDefaults = map[string]any{
	"name":                "seqdemo",
	"demo.limit":          5,
	"tracing.endpoint":    "localhost:4318",
	"tracing.insecure":    true,
	"tracing.sample_rate": 1.0,
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "seqdemo"
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Demo.Limit == 0 {
		c.Demo.Limit = 5
	}
	if len(c.Demo.Scenarios) == 0 {
		c.Demo.Scenarios = scenarioNames()
	}
}

// Validate checks struct tags, then that every scenario exists.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	return validation.New().
		EachOneOf("demo.scenarios", c.Demo.Scenarios, scenarioNames()).
		Err()
}
