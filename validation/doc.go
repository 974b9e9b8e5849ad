// Package validation checks configuration structs.
//
// Struct tags cover field-local rules:
//
//	type DemoConfig struct {
//	    Limit     int      `mapstructure:"limit" validate:"gte=1,lte=1000"`
//	    Scenarios []string `mapstructure:"scenarios" validate:"min=1"`
//	}
//	err := validation.Validate(cfg)
//
// The collector handles rules that need runtime data:
//
//	err := validation.New().EachOneOf("demo.scenarios", cfg.Demo.Scenarios, names).Err()
//
// Both report a single INVALID_CONFIG error whose "fields" detail lists
// every failure.
package validation
