package rdio

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is.
//
// Every typed error in this package reports itself as one of these, so
// callers can branch on the category without a type assertion:
//
//	if errors.Is(err, rdio.ErrInvalidArgument) {
//	    // the call never reached the network
//	}
var (
	// ErrInvalidArgument indicates a caller-supplied value failed local validation.
	ErrInvalidArgument = errors.New("rdio: invalid argument")

	// ErrTransport indicates a network or HTTP level failure.
	ErrTransport = errors.New("rdio: transport error")

	// ErrAPI indicates the response envelope reported a failure status.
	ErrAPI = errors.New("rdio: api error")

	// ErrUnknownType indicates a discriminator tag with no registered shape.
	ErrUnknownType = errors.New("rdio: unknown type")

	// ErrTypeMismatch indicates a wire value that cannot be coerced to its field type.
	ErrTypeMismatch = errors.New("rdio: type mismatch")

	// ErrMalformedEnvelope indicates a response body that is not a valid envelope.
	ErrMalformedEnvelope = errors.New("rdio: malformed envelope")

	// ErrPayloadTooLarge indicates a response exceeding the size or nesting limits.
	ErrPayloadTooLarge = errors.New("rdio: payload too large")

	// ErrInvalidConfig is returned when client configuration is invalid.
	ErrInvalidConfig = errors.New("rdio: invalid configuration")
)

// InvalidArgumentError is returned when an argument fails validation.
// It is always produced before any request is built.
type InvalidArgumentError struct {
	Param   string   // wire name of the offending parameter
	Value   any      // the rejected value
	Allowed []string // legal values, for enumerated parameters
	Bound   string   // human readable bound, for ranged parameters
}

// Error returns the error message.
func (e *InvalidArgumentError) Error() string {
	switch {
	case len(e.Allowed) > 0:
		return fmt.Sprintf("rdio: invalid argument %q (%v): must be one of [%s]",
			e.Param, e.Value, strings.Join(e.Allowed, ", "))
	case e.Bound != "":
		return fmt.Sprintf("rdio: invalid argument %q (%v): must be %s", e.Param, e.Value, e.Bound)
	default:
		return fmt.Sprintf("rdio: invalid argument %q (%v)", e.Param, e.Value)
	}
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// TransportError wraps a failure to complete the HTTP round trip.
type TransportError struct {
	StatusCode int   // HTTP status, zero when no response was received
	Err        error // underlying cause
}

// Error returns the error message.
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		if e.Err != nil {
			return fmt.Sprintf("rdio: transport error: status %d: %v", e.StatusCode, e.Err)
		}
		return fmt.Sprintf("rdio: transport error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("rdio: transport error: %v", e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// APIError represents a response whose envelope status was not "ok".
type APIError struct {
	Status  string // envelope status as sent by the server
	Message string // server explanation, verbatim
}

// Error returns the error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("rdio: api error: %s", e.Message)
}

// Is reports whether target is ErrAPI.
func (e *APIError) Is(target error) bool {
	return target == ErrAPI
}

// UnknownTypeError is returned when an object's discriminator tag is absent
// from the registry, or when the tag is missing altogether.
type UnknownTypeError struct {
	Tag  string // the tag found on the wire, empty if missing
	Path string // location of the object inside the result
}

// Error returns the error message.
func (e *UnknownTypeError) Error() string {
	loc := ""
	if e.Path != "" {
		loc = " at " + e.Path
	}
	if e.Tag == "" {
		return "rdio: unknown type: missing \"" + TagField + "\" field" + loc
	}
	return fmt.Sprintf("rdio: unknown type %q%s", e.Tag, loc)
}

// Is reports whether target is ErrUnknownType.
func (e *UnknownTypeError) Is(target error) bool {
	return target == ErrUnknownType
}

// TypeMismatchError is returned when a wire value cannot be coerced to the
// declared type of its field.
type TypeMismatchError struct {
	Shape    string // shape being decoded, e.g. "Album"
	Field    string // dotted path of the field, e.g. "label.name" or "tracks[2].duration"
	Expected string // semantic type, e.g. "integer" or "date (2006-01-02)"
	Value    string // offending raw value, truncated
	Err      error  // parse failure, if any
}

// Error returns the error message.
func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("rdio: type mismatch in %s at %s: expected %s, got %s", e.Shape, e.Field, e.Expected, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying parse error.
func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// MalformedEnvelopeError is returned when a response body is not JSON or
// does not carry a status field. It is a protocol failure, distinct from
// an APIError.
type MalformedEnvelopeError struct {
	Reason string
	Err    error
}

// Error returns the error message.
func (e *MalformedEnvelopeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rdio: malformed envelope: %s: %v", e.Reason, e.Err)
	}
	return "rdio: malformed envelope: " + e.Reason
}

// Unwrap returns the underlying cause.
func (e *MalformedEnvelopeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrMalformedEnvelope.
func (e *MalformedEnvelopeError) Is(target error) bool {
	return target == ErrMalformedEnvelope
}

// PayloadTooLargeError is returned when a response exceeds the configured
// byte size or nesting depth.
type PayloadTooLargeError struct {
	Limit    string // "depth" or "size"
	Max      int64
	Location string
}

// Error returns the error message.
func (e *PayloadTooLargeError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("rdio: payload too large: %s limit %d exceeded at %s", e.Limit, e.Max, e.Location)
	}
	return fmt.Sprintf("rdio: payload too large: %s limit %d exceeded", e.Limit, e.Max)
}

// Is reports whether target is ErrPayloadTooLarge.
func (e *PayloadTooLargeError) Is(target error) bool {
	return target == ErrPayloadTooLarge
}
