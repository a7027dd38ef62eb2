package rdio

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHTTPTransport_Post(t *testing.T) {
	tests := []struct {
		name        string
		statusCode  int
		response    string
		wantBody    bool
		wantErr     error
		wantStatus  int
		errContains string
	}{
		{
			name:       "success",
			statusCode: http.StatusOK,
			response:   `{"status":"ok","result":[]}`,
			wantBody:   true,
		},
		{
			name:       "error envelope on 401 is passed through",
			statusCode: http.StatusUnauthorized,
			response:   `{"status":"error","message":"invalid key"}`,
			wantBody:   true,
		},
		{
			name:        "html on 502",
			statusCode:  http.StatusBadGateway,
			response:    `<html>Bad Gateway</html>`,
			wantErr:     ErrTransport,
			wantStatus:  http.StatusBadGateway,
			errContains: "status 502",
		},
		{
			name:       "plain 404",
			statusCode: http.StatusNotFound,
			response:   `not found`,
			wantErr:    ErrTransport,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// Verify request method
				if r.Method != "POST" {
					t.Errorf("expected POST request, got %s", r.Method)
				}

				// Verify Content-Type
				if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
					t.Errorf("expected Content-Type application/x-www-form-urlencoded, got %s", ct)
				}
				if ua := r.Header.Get("User-Agent"); ua != "rdio-test/1.0" {
					t.Errorf("expected User-Agent rdio-test/1.0, got %s", ua)
				}
				if auth := r.Header.Get("Authorization"); !strings.HasPrefix(auth, "OAuth ") {
					t.Errorf("expected OAuth Authorization header, got %q", auth)
				}

				if err := r.ParseForm(); err != nil {
					t.Fatalf("failed to parse form: %v", err)
				}
				if method := r.FormValue("method"); method != "getTopCharts" {
					t.Errorf("expected method getTopCharts, got %s", method)
				}
				if typ := r.FormValue("type"); typ != "Album" {
					t.Errorf("expected type Album, got %s", typ)
				}

				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.response))
			}))
			defer server.Close()

			transport := &HTTPTransport{
				Signer:    NewSigner("key", "secret", "", ""),
				UserAgent: "rdio-test/1.0",
			}
			params := BuildParams("getTopCharts", []string{"type"}, StringArg("Album"))

			body, err := transport.Post(context.Background(), server.URL, params)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				var te *TransportError
				if !errors.As(err, &te) {
					t.Fatalf("expected *TransportError, got %T", err)
				}
				if te.StatusCode != tt.wantStatus {
					t.Errorf("expected status %d, got %d", tt.wantStatus, te.StatusCode)
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantBody && string(body) != tt.response {
				t.Errorf("expected body %q, got %q", tt.response, string(body))
			}
		})
	}
}

func TestHTTPTransport_ResponseTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","result":"` + strings.Repeat("x", 200) + `"}`))
	}))
	defer server.Close()

	transport := &HTTPTransport{MaxResponseBytes: 64}
	_, err := transport.Post(context.Background(), server.URL, BuildParams("currentUser", nil))

	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
}

func TestHTTPTransport_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transport := &HTTPTransport{}
	_, err := transport.Post(ctx, server.URL, BuildParams("currentUser", nil))

	if !errors.Is(err, ErrTransport) {
		t.Errorf("expected ErrTransport, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestHTTPTransport_Unsigned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			t.Errorf("expected no Authorization header, got %q", auth)
		}
		if ua := r.Header.Get("User-Agent"); ua != DefaultUserAgent {
			t.Errorf("expected default User-Agent, got %q", ua)
		}
		_, _ = w.Write([]byte(`{"status":"ok","result":true}`))
	}))
	defer server.Close()

	transport := &HTTPTransport{}
	if _, err := transport.Post(context.Background(), server.URL, BuildParams("deletePlaylist", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
