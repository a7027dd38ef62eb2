package rdio

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
)

// DefaultMaxResponseBytes caps the size of a response body.
const DefaultMaxResponseBytes = 16 << 20

// DefaultUserAgent is sent when Config.UserAgent is empty.
const DefaultUserAgent = "rdio-go/1.0"

// Transport performs one signed POST of params to endpoint and returns the
// raw response body.
//
// Implementations must be safe for concurrent use. Failures to complete the
// round trip should be reported as *TransportError. A body that carries an
// envelope should be returned even for a non-2xx status, so the server's
// message reaches the caller.
type Transport interface {
	Post(ctx context.Context, endpoint string, params *Params) ([]byte, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, endpoint string, params *Params) ([]byte, error)

// Post calls f.
func (f TransportFunc) Post(ctx context.Context, endpoint string, params *Params) ([]byte, error) {
	return f(ctx, endpoint, params)
}

// HTTPTransport is the default Transport: a form-encoded POST with an OAuth
// Authorization header.
type HTTPTransport struct {
	Client           *http.Client // defaults to http.DefaultClient
	Signer           *Signer      // nil sends unsigned requests
	UserAgent        string       // defaults to DefaultUserAgent
	MaxResponseBytes int64        // defaults to DefaultMaxResponseBytes
}

// Post implements Transport.
func (t *HTTPTransport) Post(ctx context.Context, endpoint string, params *Params) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", t.userAgent())

	if t.Signer != nil {
		auth, err := t.Signer.Authorization(http.MethodPost, endpoint, params.Values())
		if err != nil {
			return nil, &TransportError{Err: err}
		}
		req.Header.Set("Authorization", auth)
	}

	resp, err := t.client().Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	limit := t.maxResponseBytes()
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Err: err}
	}
	if int64(len(body)) > limit {
		return nil, &PayloadTooLargeError{Limit: "size", Max: limit}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if isEnvelope(body) {
			return body, nil
		}
		return nil, &TransportError{
			StatusCode: resp.StatusCode,
			Err:        errors.New(http.StatusText(resp.StatusCode)),
		}
	}

	return body, nil
}

func (t *HTTPTransport) client() *http.Client {
	if t.Client != nil {
		return t.Client
	}
	return http.DefaultClient
}

func (t *HTTPTransport) userAgent() string {
	if t.UserAgent != "" {
		return t.UserAgent
	}
	return DefaultUserAgent
}

func (t *HTTPTransport) maxResponseBytes() int64 {
	if t.MaxResponseBytes > 0 {
		return t.MaxResponseBytes
	}
	return DefaultMaxResponseBytes
}
