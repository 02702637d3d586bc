package coops

import "fmt"

// APIError is an error the CO-OPS API reported in-band. The service
// signals problems such as unknown stations or empty result windows as a
// normal-looking JSON body with an error message rather than via HTTP
// status alone.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("CO-OPS API error: %s", e.Message)
}

// NewAPIError creates a new in-band API error
func NewAPIError(message string) *APIError {
	return &APIError{Message: message}
}

// TransportError reports a failed HTTP exchange: either the request never
// completed (Err is set) or the endpoint answered with a non-success
// status (StatusCode is set).
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("CO-OPS request failed: %v", e.Err)
	}
	return fmt.Sprintf("CO-OPS request failed: unexpected status %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError reports a response body that did not match the expected
// product schema. Value carries the offending field or payload fragment
// so callers can diagnose without re-reading raw bytes.
type DecodeError struct {
	Field string
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decoding %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("decoding %s %q", e.Field, e.Value)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a new decode error for a field and its raw value
func NewDecodeError(field, value string, err error) *DecodeError {
	return &DecodeError{Field: field, Value: value, Err: err}
}
