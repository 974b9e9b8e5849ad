package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/seqkit/errors"
)

type Base struct {
	Name string `mapstructure:"name" validate:"required"`
}

type demo struct {
	Limit     int      `mapstructure:"limit" validate:"gte=1,lte=100"`
	Scenarios []string `mapstructure:"scenarios" validate:"min=1"`
}

type tracing struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Fallback string `mapstructure:"fallback" validate:"omitempty,hostname_port"`
}

type appConfig struct {
	Base    `mapstructure:",squash"`
	Demo    demo    `mapstructure:"demo"`
	Tracing tracing `mapstructure:"tracing"`
}

func validConfig() appConfig {
	return appConfig{
		Base: Base{Name: "seqdemo"},
		Demo: demo{Limit: 10, Scenarios: []string{"lazy"}},
	}
}

func fieldsOf(t *testing.T, err error) []FieldError {
	t.Helper()
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != errors.ErrCodeInvalidConfig {
		t.Errorf("expected INVALID_CONFIG, got %s", appErr.Code)
	}
	fields, _ := appErr.Details["fields"].([]FieldError)
	return fields
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Tracing = tracing{Enabled: true, Endpoint: "localhost:4318"}
	if err := Validate(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_FieldPaths(t *testing.T) {
	cfg := appConfig{Demo: demo{Limit: 0}}
	err := Validate(cfg)
	fields := fieldsOf(t, err)

	want := map[string]string{
		"name":           "is required",
		"demo.limit":     "must be at least 1",
		"demo.scenarios": "must have at least 1 entries",
	}
	if len(fields) != len(want) {
		t.Fatalf("expected %d field errors, got %v", len(want), fields)
	}
	for _, f := range fields {
		if want[f.Field] != f.Message {
			t.Errorf("field %q: got %q, want %q", f.Field, f.Message, want[f.Field])
		}
	}
	if !strings.Contains(err.Error(), "demo.limit: must be at least 1") {
		t.Errorf("message must list fields, got %q", err.Error())
	}
}

func TestValidate_ConditionalEndpoint(t *testing.T) {
	cfg := validConfig()
	cfg.Tracing.Enabled = true
	fields := fieldsOf(t, Validate(cfg))
	if len(fields) != 1 || fields[0].Field != "tracing.endpoint" {
		t.Fatalf("unexpected fields %v", fields)
	}

	cfg.Tracing.Endpoint = "localhost:4318"
	cfg.Tracing.Fallback = "not a host"
	fields = fieldsOf(t, Validate(cfg))
	if len(fields) != 1 || fields[0].Field != "tracing.fallback" || fields[0].Message != "must be host:port" {
		t.Fatalf("unexpected fields %v", fields)
	}
}

func TestValidate_NonStruct(t *testing.T) {
	if err := Validate(42); !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestValidator(t *testing.T) {
	tests := []struct {
		name    string
		build   func(v *Validator)
		wantErr bool
	}{
		{"required ok", func(v *Validator) { v.Required("name", "x") }, false},
		{"required blank", func(v *Validator) { v.Required("name", "  ") }, true},
		{"range ok", func(v *Validator) { v.Range("n", 5, 1, 10) }, false},
		{"range low", func(v *Validator) { v.Range("n", 0, 1, 10) }, true},
		{"min", func(v *Validator) { v.Min("n", 0, 1) }, true},
		{"oneof ok", func(v *Validator) { v.OneOf("s", "a", []string{"a", "b"}) }, false},
		{"oneof empty skipped", func(v *Validator) { v.OneOf("s", "", []string{"a"}) }, false},
		{"oneof bad", func(v *Validator) { v.OneOf("s", "c", []string{"a", "b"}) }, true},
		{"custom", func(v *Validator) { v.Custom(false, "x", "broken") }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New()
			tc.build(v)
			if v.HasErrors() != tc.wantErr {
				t.Errorf("HasErrors = %v, want %v (%v)", v.HasErrors(), tc.wantErr, v.Errors())
			}
			if (v.Err() != nil) != tc.wantErr {
				t.Errorf("Err = %v", v.Err())
			}
		})
	}
}

func TestEachOneOf(t *testing.T) {
	err := New().EachOneOf("demo.scenarios", []string{"lazy", "bogus", "fold", "nope"}, []string{"lazy", "fold"}).Err()
	fields := fieldsOf(t, err)
	if len(fields) != 2 || fields[0].Field != "demo.scenarios[1]" || fields[1].Field != "demo.scenarios[3]" {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("SampleRate"); got != "sample_rate" {
		t.Errorf("got %q", got)
	}
}
