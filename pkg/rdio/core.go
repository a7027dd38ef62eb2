package rdio

import (
	"context"
	"encoding/json"
)

// CoreService fetches objects by key, short code or URL.
type CoreService struct {
	client *Client
}

// GetOptions are the optional arguments of Get.
type GetOptions struct {
	Options map[string]any // sent JSON-encoded in the "options" parameter
	Extras  []string
}

// Get fetches one or more objects by key. The server answers with an object
// keyed by the requested keys; elements are returned in the server's order
// and may be of any registered shape.
//
// Example:
//
//	objs, err := client.Core().Get(ctx, []string{"a171827", "r91318"}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range objs {
//	    tag, _ := rdio.TagOf(e)
//	    fmt.Println(tag, e.EntityKey())
//	}
func (s *CoreService) Get(ctx context.Context, keys []string, opts *GetOptions) ([]Entity, error) {
	opts = orDefault(opts)
	if err := checkKeys("keys", keys); err != nil {
		return nil, err
	}

	options := Unset
	if opts.Options != nil {
		b, err := json.Marshal(opts.Options)
		if err != nil {
			return nil, &InvalidArgumentError{Param: "options", Value: opts.Options, Bound: "JSON-encodable"}
		}
		options = StringArg(string(b))
	}

	return s.client.executeEntities(ctx, mGet,
		ListArg(keys),
		options,
		ListArg(opts.Extras),
	)
}

// GetObjectFromShortCode resolves a short code such as "QitDlTJb".
func (s *CoreService) GetObjectFromShortCode(ctx context.Context, shortCode string, extras []string) (Entity, error) {
	if err := checkRequired("short_code", shortCode); err != nil {
		return nil, err
	}
	return s.client.executeEntity(ctx, mGetObjectFromShortCode,
		StringArg(shortCode),
		ListArg(extras),
	)
}

// GetObjectFromURL resolves a site URL or path, such as
// "/artist/Radiohead/album/OK_Computer/".
func (s *CoreService) GetObjectFromURL(ctx context.Context, url string, extras []string) (Entity, error) {
	if err := checkRequired("url", url); err != nil {
		return nil, err
	}
	return s.client.executeEntity(ctx, mGetObjectFromURL,
		StringArg(url),
		ListArg(extras),
	)
}
