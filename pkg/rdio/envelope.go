package rdio

import (
	"bytes"
	"encoding/json"
)

// StatusOK is the envelope status of a successful call.
const StatusOK = "ok"

// Envelope is the wrapper around every API response.
type Envelope struct {
	Status  string          `json:"status"`
	Result  json.RawMessage `json:"result,omitempty"`
	Message string          `json:"message,omitempty"`
}

// rawEnvelope distinguishes a missing status from an empty one.
type rawEnvelope struct {
	Status  *string         `json:"status"`
	Result  json.RawMessage `json:"result"`
	Message string          `json:"message"`
}

// ParseEnvelope parses a response body.
//
// A body that is not a JSON object or lacks "status" yields a
// *MalformedEnvelopeError. A status other than "ok" yields an *APIError
// carrying the server's message; the result is not inspected in that case.
// On success the result is returned undecoded.
func ParseEnvelope(body []byte) (*Envelope, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &MalformedEnvelopeError{Reason: "empty body"}
	}
	if trimmed[0] != '{' {
		return nil, &MalformedEnvelopeError{Reason: "body is not a JSON object"}
	}

	var raw rawEnvelope
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &MalformedEnvelopeError{Reason: "invalid JSON", Err: err}
	}
	if raw.Status == nil {
		return nil, &MalformedEnvelopeError{Reason: "missing \"status\" field"}
	}

	if *raw.Status != StatusOK {
		return nil, &APIError{Status: *raw.Status, Message: raw.Message}
	}

	return &Envelope{
		Status:  *raw.Status,
		Result:  raw.Result,
		Message: raw.Message,
	}, nil
}

// isEnvelope reports whether body looks like an envelope, failed or not.
// The HTTP transport uses it to decide whether a non-2xx body should be
// handed on to ParseEnvelope.
func isEnvelope(body []byte) bool {
	var probe struct {
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(bytes.TrimSpace(body), &probe); err != nil {
		return false
	}
	return probe.Status != nil
}
