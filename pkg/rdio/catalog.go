package rdio

import "context"

// CatalogService provides catalog lookups and search.
type CatalogService struct {
	client *Client
}

// GetAlbumsByUPC returns the albums carrying a UPC code.
func (s *CatalogService) GetAlbumsByUPC(ctx context.Context, upc string, extras []string) ([]*Album, error) {
	if err := checkRequired("upc", upc); err != nil {
		return nil, err
	}
	return executeList[*Album](ctx, s.client, mGetAlbumsByUPC,
		StringArg(upc),
		ListArg(extras),
	)
}

// AlbumsForArtistOptions are the optional arguments of GetAlbumsForArtist.
type AlbumsForArtistOptions struct {
	Featuring *bool // albums the artist appears on rather than owns
	Start     *int
	Count     *int
	Sort      Sort // name, playCount or releaseDate
	Query     string
	Extras    []string
}

// GetAlbumsForArtist returns the albums by an artist.
func (s *CatalogService) GetAlbumsForArtist(ctx context.Context, artist string, opts *AlbumsForArtistOptions) ([]*Album, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("artist", artist),
		checkPage(opts.Start, opts.Count),
		checkOptEnum("sort", opts.Sort, catalogSorts),
	); err != nil {
		return nil, err
	}

	return executeList[*Album](ctx, s.client, mGetAlbumsForArtist,
		StringArg(artist),
		OptBool(opts.Featuring),
		OptInt(opts.Start),
		OptInt(opts.Count),
		enumArg(opts.Sort),
		NonEmpty(opts.Query),
		ListArg(opts.Extras),
	)
}

// LabelAlbumsOptions are the optional arguments of GetAlbumsForLabel.
type LabelAlbumsOptions struct {
	Start  *int
	Count  *int
	Sort   Sort // name, playCount or releaseDate
	Query  string
	Extras []string
}

// GetAlbumsForLabel returns the albums released on a label.
func (s *CatalogService) GetAlbumsForLabel(ctx context.Context, label string, opts *LabelAlbumsOptions) ([]*Album, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("label", label),
		checkPage(opts.Start, opts.Count),
		checkOptEnum("sort", opts.Sort, catalogSorts),
	); err != nil {
		return nil, err
	}

	return executeList[*Album](ctx, s.client, mGetAlbumsForLabel,
		StringArg(label),
		OptInt(opts.Start),
		OptInt(opts.Count),
		enumArg(opts.Sort),
		NonEmpty(opts.Query),
		ListArg(opts.Extras),
	)
}

// GetArtistsForLabel returns the artists signed to a label.
func (s *CatalogService) GetArtistsForLabel(ctx context.Context, label string, opts *PageOptions) ([]*Artist, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("label", label),
		opts.check(),
	); err != nil {
		return nil, err
	}

	return executeList[*Artist](ctx, s.client, mGetArtistsForLabel,
		StringArg(label),
		OptInt(opts.Start),
		OptInt(opts.Count),
		ListArg(opts.Extras),
	)
}

// GetTracksByISRC returns the tracks carrying an ISRC code.
func (s *CatalogService) GetTracksByISRC(ctx context.Context, isrc string, extras []string) ([]*Track, error) {
	if err := checkRequired("isrc", isrc); err != nil {
		return nil, err
	}
	return executeList[*Track](ctx, s.client, mGetTracksByISRC,
		StringArg(isrc),
		ListArg(extras),
	)
}

// TracksForArtistOptions are the optional arguments of GetTracksForArtist.
type TracksForArtistOptions struct {
	AppearsOn *bool // include tracks the artist appears on
	Start     *int
	Count     *int
	Sort      Sort // name, playCount or releaseDate
	Query     string
	Extras    []string
}

// GetTracksForArtist returns the tracks by an artist.
func (s *CatalogService) GetTracksForArtist(ctx context.Context, artist string, opts *TracksForArtistOptions) ([]*Track, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("artist", artist),
		checkPage(opts.Start, opts.Count),
		checkOptEnum("sort", opts.Sort, catalogSorts),
	); err != nil {
		return nil, err
	}

	return executeList[*Track](ctx, s.client, mGetTracksForArtist,
		StringArg(artist),
		OptBool(opts.AppearsOn),
		OptInt(opts.Start),
		OptInt(opts.Count),
		enumArg(opts.Sort),
		NonEmpty(opts.Query),
		ListArg(opts.Extras),
	)
}

// SearchOptions are the optional arguments of Search.
type SearchOptions struct {
	NeverOr *bool // disable the fallback from an AND to an OR query
	Start   *int
	Count   *int
	Extras  []string
}

// Search searches the catalog. Every element of types must be one of
// SearchTypes(); an empty list is sent as such and left to the server.
//
// Example:
//
//	res, err := client.Catalog().Search(ctx, "radiohead",
//	    []rdio.ObjectType{rdio.TypeArtist, rdio.TypeAlbum}, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range res.Results {
//	    switch v := e.(type) {
//	    case *rdio.Artist:
//	        fmt.Println("artist", rdio.Deref(v.Name))
//	    case *rdio.Album:
//	        fmt.Println("album", rdio.Deref(v.Name))
//	    }
//	}
func (s *CatalogService) Search(ctx context.Context, query string, types []ObjectType, opts *SearchOptions) (*SearchResult, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("query", query),
		checkEnumList("types", types, searchTypes),
		checkPage(opts.Start, opts.Count),
	); err != nil {
		return nil, err
	}

	return executeAs[SearchResult](ctx, s.client, mSearch,
		StringArg(query),
		ListArg(append([]ObjectType{}, types...)),
		OptBool(opts.NeverOr),
		OptInt(opts.Start),
		OptInt(opts.Count),
		ListArg(opts.Extras),
	)
}

// DefaultSuggestionTypes are searched by SearchSuggestions when no types
// are given.
var DefaultSuggestionTypes = []ObjectType{TypeAlbum, TypeArtist, TypeTrack, TypeUser}

// SuggestionsOptions are the optional arguments of SearchSuggestions.
type SuggestionsOptions struct {
	Types       []ObjectType // defaults to DefaultSuggestionTypes
	CountryCode string       // ISO 3166-1 alpha-2, e.g. "US"
	Extras      []string
}

// SearchSuggestions returns autocomplete matches for a query prefix.
func (s *CatalogService) SearchSuggestions(ctx context.Context, query string, opts *SuggestionsOptions) ([]Entity, error) {
	opts = orDefault(opts)
	types := opts.Types
	if types == nil {
		types = DefaultSuggestionTypes
	}
	if err := validate(
		checkRequired("query", query),
		checkEnumList("types", types, searchTypes),
		checkCountryCode("country_code", opts.CountryCode),
	); err != nil {
		return nil, err
	}

	return s.client.executeEntities(ctx, mSearchSuggestions,
		StringArg(query),
		ListArg(types),
		NonEmpty(opts.CountryCode),
		ListArg(opts.Extras),
	)
}
