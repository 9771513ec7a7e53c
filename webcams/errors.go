package webcams

import (
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// Common errors
var (
	// ErrMissingDevID indicates the client was created without a developer ID
	ErrMissingDevID = errors.New("webcams.travel developer ID is required")
	// ErrInvalidBaseURL indicates an unusable endpoint URL
	ErrInvalidBaseURL = errors.New("invalid webcams.travel base URL")
	// ErrTransport matches every TransportError
	ErrTransport = errors.New("webcams.travel transport failure")
	// ErrDecode matches every DecodeError
	ErrDecode = errors.New("webcams.travel response could not be decoded")
)

// TransportError reports a request that could not be sent or whose
// response could not be read.
type TransportError struct {
	// URL is the request URL with the developer ID redacted
	URL string
	Err error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("webcams.travel request failed: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Timeout reports whether the failure was a timeout
func (e *TransportError) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// DecodeError reports a response body that is not valid JSON.
type DecodeError struct {
	StatusCode int
	// Body holds the start of the offending body
	Body string
	Err  error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("webcams.travel response decode failed (status %d): %v", e.StatusCode, e.Err)
}

// Unwrap returns the underlying cause
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrDecode
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// IsTransportError checks if err is or wraps a TransportError
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecodeError checks if err is or wraps a DecodeError
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}

// RemoteError is a failure reported by the service inside an otherwise
// valid payload.
type RemoteError struct {
	Code    string
	Message string
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("webcams.travel API error: %s", e.Message)
	}
	return fmt.Sprintf("webcams.travel API error %s: %s", e.Code, e.Message)
}

// APIFault returns the service-side error carried by payload, or nil when
// the payload does not report a failure. The client never calls this on
// its own; payloads are always returned as decoded.
func APIFault(payload Payload) *RemoteError {
	root, ok := payload.(map[string]any)
	if !ok {
		return nil
	}

	status, _ := root["status"].(string)
	if status != "fail" {
		return nil
	}

	fault := &RemoteError{Message: "request failed"}
	details, ok := root["error"].(map[string]any)
	if !ok {
		if msg, ok := root["error"].(string); ok && msg != "" {
			fault.Message = msg
		}
		return fault
	}

	if code, ok := details["code"]; ok {
		fault.Code = cast.ToString(code)
	}
	for _, key := range []string{"description", "message", "msg"} {
		if msg, ok := details[key].(string); ok && msg != "" {
			fault.Message = msg
			break
		}
	}
	return fault
}
