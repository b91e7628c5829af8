package scoring

import "fmt"

// UpstreamError preserves the backend's status code so HTTP callers can
// mirror it where that is the intended behavior.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("scoring backend %s returned HTTP %d", e.Operation, e.StatusCode)
}

// DecodeError reports a response that was not valid JSON or failed schema
// validation at the boundary.
type DecodeError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error for %s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error for %s: %s", e.Operation, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// RequestError wraps transport-level failures reaching the backend.
type RequestError struct {
	Operation string
	Cause     error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request error for %s: %v", e.Operation, e.Cause)
}

func (e *RequestError) Unwrap() error {
	return e.Cause
}
