package logger

import "time"

// Standard field key constants for structured logging.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldURL       = "url"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
)

// Fields builds a map[string]interface{} from alternating key-value pairs.
//
//	logger.Info("done", logger.Fields(logger.FieldPath, "/users", logger.FieldStatus, 200))
func Fields(kvs ...interface{}) map[string]interface{} {
	m := make(map[string]interface{}, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for a request that failed.
func ErrorFields(method, path string, err error) map[string]interface{} {
	return map[string]interface{}{
		FieldMethod: method,
		FieldPath:   path,
		FieldError:  err.Error(),
	}
}

// DurationFields creates fields for a timed request.
func DurationFields(method, path string, d time.Duration) map[string]interface{} {
	return map[string]interface{}{
		FieldMethod:   method,
		FieldPath:     path,
		FieldDuration: d.Milliseconds(),
	}
}
