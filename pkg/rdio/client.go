package rdio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
)

// Config holds client configuration.
type Config struct {
	ConsumerKey       string       // Required unless Transport is set: OAuth consumer key
	ConsumerSecret    string       // Required unless Transport is set: OAuth consumer secret
	AccessToken       string       // Optional: OAuth access token for user-scoped calls
	AccessTokenSecret string       // Optional: OAuth access token secret
	HTTPClient        *http.Client // Optional: HTTP client (defaults to http.DefaultClient)
	BaseURL           string       // Optional: API endpoint (defaults to DefaultBaseURL, used for testing)
	UserAgent         string       // Optional: User-Agent header (defaults to DefaultUserAgent)
	Transport         Transport    // Optional: replaces the signed HTTP transport entirely
	Logger            Logger       // Optional: Logger interface for debug logging
	MaxDepth          int          // Optional: nesting limit for decoded results (defaults to DefaultMaxDepth)
	MaxResponseBytes  int64        // Optional: response size limit (defaults to DefaultMaxResponseBytes)
}

// Logger is an optional interface for logging.
type Logger interface {
	// Debugf logs a debug message with format and arguments.
	Debugf(format string, args ...interface{})
}

// Client is the main entry point for Rdio API operations.
//
// A Client holds no mutable state after construction and is safe for
// concurrent use.
type Client struct {
	transport        Transport
	baseURL          string
	logger           Logger
	decoder          *Decoder
	maxResponseBytes int64

	activity   *ActivityService
	catalog    *CatalogService
	collection *CollectionService
	core       *CoreService
	playback   *PlaybackService
	playlists  *PlaylistService
	social     *SocialService
}

const (
	// DefaultBaseURL is the default Rdio API endpoint.
	DefaultBaseURL = "https://api.rdio.com/1/"
)

// NewClient creates a new Rdio API client.
//
// Returns an error wrapping ErrInvalidConfig if no Transport is given and
// the consumer credentials are missing.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	maxBytes := cfg.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxResponseBytes
	}

	transport := cfg.Transport
	if transport == nil {
		if cfg.ConsumerKey == "" {
			return nil, fmt.Errorf("%w: ConsumerKey is required", ErrInvalidConfig)
		}
		if cfg.ConsumerSecret == "" {
			return nil, fmt.Errorf("%w: ConsumerSecret is required", ErrInvalidConfig)
		}
		if (cfg.AccessToken == "") != (cfg.AccessTokenSecret == "") {
			return nil, fmt.Errorf("%w: AccessToken and AccessTokenSecret must be set together", ErrInvalidConfig)
		}
		transport = &HTTPTransport{
			Client:           cfg.HTTPClient,
			Signer:           NewSigner(cfg.ConsumerKey, cfg.ConsumerSecret, cfg.AccessToken, cfg.AccessTokenSecret),
			UserAgent:        cfg.UserAgent,
			MaxResponseBytes: maxBytes,
		}
	}

	if cfg.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: MaxDepth must not be negative", ErrInvalidConfig)
	}

	c := &Client{
		transport:        transport,
		baseURL:          baseURL,
		logger:           cfg.Logger,
		decoder:          &Decoder{MaxDepth: cfg.MaxDepth},
		maxResponseBytes: maxBytes,
	}

	c.activity = &ActivityService{client: c}
	c.catalog = &CatalogService{client: c}
	c.collection = &CollectionService{client: c}
	c.core = &CoreService{client: c}
	c.playback = &PlaybackService{client: c}
	c.playlists = &PlaylistService{client: c}
	c.social = &SocialService{client: c}

	return c, nil
}

// Activity returns the activity, charts and new releases service.
func (c *Client) Activity() *ActivityService {
	return c.activity
}

// Catalog returns the catalog lookup and search service.
func (c *Client) Catalog() *CatalogService {
	return c.catalog
}

// Collection returns the user collection service.
func (c *Client) Collection() *CollectionService {
	return c.collection
}

// Core returns the object lookup service.
func (c *Client) Core() *CoreService {
	return c.core
}

// Playback returns the playback service.
func (c *Client) Playback() *PlaybackService {
	return c.playback
}

// Playlists returns the playlist service.
func (c *Client) Playlists() *PlaylistService {
	return c.playlists
}

// Social returns the friends and followers service.
func (c *Client) Social() *SocialService {
	return c.social
}

// execute performs one call of m and decodes the result according to the
// method's decode mode:
//
//   - modeSingle: Entity, or *T when the method declares a shape
//   - modeCollection: []Entity
//   - modeBoolean: bool
//   - modeString: string
//
// Arguments must already be validated.
func (c *Client) execute(ctx context.Context, m *method, args ...Arg) (any, error) {
	if len(args) != len(m.params) {
		c.logDebugf("rdio: %s received %d arguments but declares %d parameters %v",
			m.name, len(args), len(m.params), m.params)
	}

	params := BuildParams(m.name, m.params, args...)
	c.logDebugf("rdio: calling %s with %d parameters", m.name, params.Len()-1)

	body, err := c.transport.Post(ctx, c.baseURL, params)
	if err != nil {
		c.logDebugf("rdio: %s failed: %v", m.name, err)
		var tooLarge *PayloadTooLargeError
		if errors.Is(err, ErrTransport) || errors.As(err, &tooLarge) {
			return nil, err
		}
		return nil, &TransportError{Err: err}
	}
	if int64(len(body)) > c.maxResponseBytes {
		return nil, &PayloadTooLargeError{Limit: "size", Max: c.maxResponseBytes}
	}

	if err := c.decoder.checkBody(body); err != nil {
		c.logDebugf("rdio: %s failed: %v", m.name, err)
		return nil, err
	}

	env, err := ParseEnvelope(body)
	if err != nil {
		c.logDebugf("rdio: %s failed: %v", m.name, err)
		return nil, err
	}

	result, err := c.decode(m, env.Result)
	if err != nil {
		c.logDebugf("rdio: %s returned an undecodable result: %v", m.name, err)
		return nil, err
	}

	c.logDebugf("rdio: %s succeeded", m.name)
	return result, nil
}

func (c *Client) decode(m *method, raw []byte) (any, error) {
	switch m.mode {
	case modeSingle:
		if m.shape != nil {
			v, err := c.decoder.Shape(m.shape, raw)
			if err != nil {
				return nil, err
			}
			return v.Interface(), nil
		}
		return c.decoder.Entity(raw)

	case modeCollection:
		return c.decoder.Entities(raw)

	case modeBoolean:
		b, err := decodeBool(raw)
		if err != nil {
			return nil, mismatch(m.name, rootPath, kindBool, raw, err)
		}
		return b, nil

	case modeString:
		s, err := decodeString(raw)
		if err != nil {
			return nil, mismatch(m.name, rootPath, kindString, raw, err)
		}
		return s, nil
	}

	return nil, fmt.Errorf("rdio: %s has unknown decode mode %d", m.name, m.mode)
}

// executeEntity runs a single-mode method without a declared shape.
func (c *Client) executeEntity(ctx context.Context, m *method, args ...Arg) (Entity, error) {
	v, err := c.execute(ctx, m, args...)
	if err != nil {
		return nil, err
	}
	return v.(Entity), nil
}

// executeEntities runs a collection-mode method.
func (c *Client) executeEntities(ctx context.Context, m *method, args ...Arg) ([]Entity, error) {
	v, err := c.execute(ctx, m, args...)
	if err != nil {
		return nil, err
	}
	return v.([]Entity), nil
}

// executeBool runs a boolean-mode method.
func (c *Client) executeBool(ctx context.Context, m *method, args ...Arg) (bool, error) {
	v, err := c.execute(ctx, m, args...)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

// executeAs runs a single-mode method that declares shape T.
func executeAs[T any](ctx context.Context, c *Client, m *method, args ...Arg) (*T, error) {
	v, err := c.execute(ctx, m, args...)
	if err != nil {
		return nil, err
	}
	out, ok := v.(*T)
	if !ok {
		return nil, fmt.Errorf("rdio: %s decoded to %T, not %s", m.name, v, reflect.TypeFor[T]())
	}
	return out, nil
}

// executeOne runs a single-mode method and narrows the result to T.
func executeOne[T Entity](ctx context.Context, c *Client, m *method, args ...Arg) (T, error) {
	var zero T
	e, err := c.executeEntity(ctx, m, args...)
	if err != nil {
		return zero, err
	}
	out, ok := e.(T)
	if !ok {
		return zero, narrowMismatch[T](rootPath, e)
	}
	return out, nil
}

// executeList runs a collection-mode method and narrows every element to T.
func executeList[T Entity](ctx context.Context, c *Client, m *method, args ...Arg) ([]T, error) {
	list, err := c.executeEntities(ctx, m, args...)
	if err != nil {
		return nil, err
	}
	return entitiesOf[T](list)
}

// entitiesOf narrows a polymorphic list. An element of another shape is a
// *TypeMismatchError.
func entitiesOf[T Entity](list []Entity) ([]T, error) {
	out := make([]T, 0, len(list))
	for i, e := range list {
		t, ok := e.(T)
		if !ok {
			return nil, narrowMismatch[T](indexPath(rootPath, i), e)
		}
		out = append(out, t)
	}
	return out, nil
}

func narrowMismatch[T Entity](path string, got Entity) *TypeMismatchError {
	want := reflect.TypeFor[T]()
	if want.Kind() == reflect.Pointer {
		want = want.Elem()
	}
	tag, _ := TagOf(got)
	gotName, _ := ShapeName(tag)
	return &TypeMismatchError{
		Shape:    want.Name(),
		Field:    path,
		Expected: "tagged object of shape " + want.Name(),
		Value:    fmt.Sprintf("%q (%s)", tag, gotName),
	}
}

// logDebugf logs a debug message if a logger is configured.
func (c *Client) logDebugf(format string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debugf(format, args...)
	}
}
