package logger

import "time"

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldPipeline  = "pipeline"
	FieldRunID     = "run_id"
	FieldElements  = "elements"
	FieldScenario  = "scenario"
	FieldStatus    = "status"
	FieldError     = "error"
	FieldDuration  = "duration_ms"
)

// Fields builds a map from alternating key-value pairs. A trailing key
// without a value and non-string keys are dropped.
//
//	logger.Info("done", logger.Fields("pipeline", "squares", "elements", 5))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a failed pipeline run.
func ErrorFields(pipeline string, err error) map[string]any {
	return map[string]any{
		FieldPipeline: pipeline,
		FieldError:    err.Error(),
	}
}

// DurationFields creates fields for a timed pipeline run.
func DurationFields(pipeline string, d time.Duration) map[string]any {
	return map[string]any{
		FieldPipeline: pipeline,
		FieldDuration: d.Milliseconds(),
	}
}
