package journal

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

// Transport records every call made through Next. Recording failures are
// logged and never fail the call itself.
type Transport struct {
	Next    rdio.Transport
	Journal *Journal
	Logger  zerolog.Logger
}

// Wrap returns a Transport that records calls to next in j.
func (j *Journal) Wrap(next rdio.Transport, logger zerolog.Logger) *Transport {
	return &Transport{Next: next, Journal: j, Logger: logger}
}

// Post implements rdio.Transport.
func (t *Transport) Post(ctx context.Context, endpoint string, params *rdio.Params) ([]byte, error) {
	started := t.Journal.now()
	body, err := t.Next.Post(ctx, endpoint, params)

	call := Call{
		ID:       uuid.NewString(),
		Method:   params.Method(),
		Params:   params.Encode(),
		Bytes:    len(body),
		Duration: t.Journal.now().Sub(started),
		Started:  started,
	}
	call.Status, call.Message = classify(body, err)

	// Record even when the caller has already given up.
	if rerr := t.Journal.Record(context.WithoutCancel(ctx), call); rerr != nil {
		t.Logger.Warn().Err(rerr).Str("method", call.Method).Msg("Failed to record call")
	} else {
		t.Logger.Debug().
			Str("id", call.ID).
			Str("method", call.Method).
			Str("status", call.Status).
			Dur("duration", call.Duration).
			Msg("Recorded call")
	}

	return body, err
}

// classify derives the outcome of a call from the raw response.
func classify(body []byte, err error) (status, message string) {
	if err != nil {
		return StatusFailed, err.Error()
	}

	_, perr := rdio.ParseEnvelope(body)
	if perr == nil {
		return StatusOK, ""
	}

	var apiErr *rdio.APIError
	if errors.As(perr, &apiErr) {
		return StatusError, apiErr.Message
	}
	return StatusMalformed, perr.Error()
}
