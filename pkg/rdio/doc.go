// Package rdio provides a client library for the Rdio web service API.
//
// # Overview
//
// Every API call is a form-encoded POST to a single endpoint, signed with
// OAuth 1.0a. The response is a JSON envelope whose result is an object, an
// array, or an object keyed by object key. Catalog objects carry a short
// "type" tag ("a" for albums, "t" for tracks, "sr" for song stations and so
// on) which this package uses to decode each object into its Go type.
//
// # Quick Start
//
//	import "github.com/jfmyers9/rdio/pkg/rdio"
//
//	client, err := rdio.NewClient(rdio.Config{
//	    ConsumerKey:    "your-consumer-key",
//	    ConsumerSecret: "your-consumer-secret",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	charts, err := client.Activity().GetTopCharts(ctx, rdio.TypeAlbum,
//	    &rdio.PageOptions{Count: rdio.Int(10)})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range charts {
//	    if a, ok := e.(*rdio.Album); ok {
//	        fmt.Println(rdio.Deref(a.Artist), "-", rdio.Deref(a.Name))
//	    }
//	}
//
// # Services
//
// Methods are grouped the way the API documentation groups them:
//
//   - Activity(): activity streams, heavy rotation, new releases, charts
//   - Catalog(): lookups by artist, label, UPC and ISRC; search
//   - Collection(): a user's albums, artists and tracks
//   - Core(): objects by key, short code or URL
//   - Playback(): playback tokens
//   - Playlists(): playlist listing and editing
//   - Social(): friends and followers
//
// # Arguments
//
// Required arguments are plain parameters. Optional ones live in a
// per-method options struct where a nil pointer, nil slice or empty string
// means "not supplied" and is left out of the request. Enumerated and
// bounded arguments are checked before anything is sent:
//
//	_, err := client.Activity().GetTopCharts(ctx, "Movie", nil)
//	// err is an *rdio.InvalidArgumentError; no request was made
//
// # Decoding
//
// Results that may hold several shapes come back as Entity values; use a
// type switch to get at the concrete type. Fields the server did not send
// are nil. DecodeEntity, DecodeEntities and DecodeAs expose the decoder for
// results obtained some other way, and MarshalEntity writes an entity back
// out with its tag so that the output decodes to the same value.
//
// # Error Handling
//
// All errors can be matched with errors.Is against the Err* sentinels:
//
//	if errors.Is(err, rdio.ErrAPI) {
//	    var apiErr *rdio.APIError
//	    errors.As(err, &apiErr)
//	    fmt.Println("server said:", apiErr.Message)
//	}
//
// Nothing is retried. Timeouts and cancellation come from the context and
// the configured http.Client.
//
// # Thread Safety
//
// A Client is safe for concurrent use. Each request is signed with its own
// nonce and timestamp.
package rdio
