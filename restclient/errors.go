package restclient

import (
	"errors"
	"fmt"
)

// ErrorCode classifies client errors.
type ErrorCode int

const (
	// ErrCodeTransport indicates a connection-level failure (DNS, TLS
	// handshake, timeout) surfaced from the underlying transport.
	ErrCodeTransport ErrorCode = iota
	// ErrCodeUnauthorized indicates the server answered 401, regardless of body.
	ErrCodeUnauthorized
	// ErrCodeRequestFailed indicates any other non-2xx status.
	ErrCodeRequestFailed
	// ErrCodeDecode indicates a 2xx response whose body could not be decoded
	// into the target type, including empty and null bodies.
	ErrCodeDecode
	// ErrCodeFileNotFound indicates an upload path that does not exist locally.
	// Raised before any network call.
	ErrCodeFileNotFound
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeTransport:
		return "transport"
	case ErrCodeUnauthorized:
		return "unauthorized"
	case ErrCodeRequestFailed:
		return "request_failed"
	case ErrCodeDecode:
		return "decode"
	case ErrCodeFileNotFound:
		return "file_not_found"
	default:
		return "unknown"
	}
}

// Error is a classified client error. Every failing operation surfaces
// exactly one of these; nothing is recovered or retried locally.
type Error struct {
	// StatusCode is the HTTP status code (0 for pre-dispatch and
	// connection-level errors).
	StatusCode int
	// Code classifies the error.
	Code ErrorCode
	// Reason is the reason phrase from the response status line
	// (ErrCodeRequestFailed).
	Reason string
	// Message describes the error.
	Message string
	// Body is the raw response body (may be nil).
	Body []byte
	// Path is the offending local file path (ErrCodeFileNotFound).
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("restclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("restclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewTransportError creates a transport error wrapping the cause unchanged.
func NewTransportError(err error) *Error {
	return &Error{
		Code:    ErrCodeTransport,
		Message: err.Error(),
		Err:     err,
	}
}

// NewUnauthorizedError creates an unauthorized error. The body is carried for
// inspection but plays no part in classification.
func NewUnauthorizedError(body []byte) *Error {
	return &Error{
		StatusCode: 401,
		Code:       ErrCodeUnauthorized,
		Message:    "HTTP 401",
		Body:       body,
	}
}

// NewRequestFailedError creates a request-failed error carrying the reason
// phrase from the status line.
func NewRequestFailedError(statusCode int, reason string, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeRequestFailed,
		Reason:     reason,
		Message:    fmt.Sprintf("HTTP %d %s", statusCode, reason),
		Body:       body,
	}
}

// NewDecodeError creates a decode error for a 2xx response.
func NewDecodeError(statusCode int, body []byte, err error) *Error {
	msg := "empty or null response body"
	if err != nil {
		msg = err.Error()
	}
	return &Error{
		StatusCode: statusCode,
		Code:       ErrCodeDecode,
		Message:    msg,
		Body:       body,
		Err:        err,
	}
}

// NewFileNotFoundError creates a file-not-found error for an upload path.
func NewFileNotFoundError(path string, err error) *Error {
	return &Error{
		Code:    ErrCodeFileNotFound,
		Message: fmt.Sprintf("file does not exist: %s", path),
		Path:    path,
		Err:     err,
	}
}

// classifyStatus converts a status code into a typed error.
// Returns nil for 2xx status codes.
func classifyStatus(statusCode int, reason string, body []byte) *Error {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return nil
	case statusCode == 401:
		return NewUnauthorizedError(body)
	default:
		return NewRequestFailedError(statusCode, reason, body)
	}
}

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeTransport
}

// IsUnauthorized checks if an error is an unauthorized error.
func IsUnauthorized(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeUnauthorized
}

// IsRequestFailed checks if an error is a request-failed error.
func IsRequestFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeRequestFailed
}

// IsDecodeFailed checks if an error is a decode error.
func IsDecodeFailed(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDecode
}

// IsFileNotFound checks if an error is a file-not-found error.
func IsFileNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeFileNotFound
}
