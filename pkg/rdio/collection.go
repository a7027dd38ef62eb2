package rdio

import "context"

// CollectionService provides access to a user's collection.
type CollectionService struct {
	client *Client
}

// AddToCollection adds tracks or playlists to the authenticated user's
// collection.
func (s *CollectionService) AddToCollection(ctx context.Context, keys []string) (bool, error) {
	if err := checkKeys("keys", keys); err != nil {
		return false, err
	}
	return s.client.executeBool(ctx, mAddToCollection, ListArg(keys))
}

// ArtistCollectionOptions are the optional arguments of
// GetAlbumsForArtistInCollection.
type ArtistCollectionOptions struct {
	Sort   Sort // name or releaseDate
	Extras []string
}

// GetAlbumsForArtistInCollection returns the albums by an artist in a
// user's collection. Elements are usually *CollectionAlbum.
func (s *CollectionService) GetAlbumsForArtistInCollection(ctx context.Context, user, artist string, opts *ArtistCollectionOptions) ([]Entity, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("user", user),
		checkRequired("artist", artist),
		checkOptEnum("sort", opts.Sort, artistCollectionSorts),
	); err != nil {
		return nil, err
	}

	return s.client.executeEntities(ctx, mGetAlbumsForArtistInCollection,
		StringArg(user),
		StringArg(artist),
		enumArg(opts.Sort),
		ListArg(opts.Extras),
	)
}

// AlbumsInCollectionOptions are the optional arguments of GetAlbumsInCollection.
type AlbumsInCollectionOptions struct {
	Artist string // restrict to one artist
	Start  *int
	Count  *int
	Sort   Sort // dateAdded, name, playCount or artist
	Query  string
	Extras []string
}

// GetAlbumsInCollection returns the albums in a user's collection.
func (s *CollectionService) GetAlbumsInCollection(ctx context.Context, user string, opts *AlbumsInCollectionOptions) ([]Entity, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("user", user),
		checkPage(opts.Start, opts.Count),
		checkOptEnum("sort", opts.Sort, albumsCollectionSorts),
	); err != nil {
		return nil, err
	}

	return s.client.executeEntities(ctx, mGetAlbumsInCollection,
		StringArg(user),
		NonEmpty(opts.Artist),
		OptInt(opts.Start),
		OptInt(opts.Count),
		enumArg(opts.Sort),
		NonEmpty(opts.Query),
		ListArg(opts.Extras),
	)
}

// ArtistsInCollectionOptions are the optional arguments of GetArtistsInCollection.
type ArtistsInCollectionOptions struct {
	Start  *int
	Count  *int
	Sort   Sort // name or playCount
	Query  string
	Extras []string
}

// GetArtistsInCollection returns the artists in a user's collection.
// Elements are usually *CollectionArtist.
func (s *CollectionService) GetArtistsInCollection(ctx context.Context, user string, opts *ArtistsInCollectionOptions) ([]Entity, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("user", user),
		checkPage(opts.Start, opts.Count),
		checkOptEnum("sort", opts.Sort, artistsCollectionSorts),
	); err != nil {
		return nil, err
	}

	return s.client.executeEntities(ctx, mGetArtistsInCollection,
		StringArg(user),
		OptInt(opts.Start),
		OptInt(opts.Count),
		enumArg(opts.Sort),
		NonEmpty(opts.Query),
		ListArg(opts.Extras),
	)
}

// GetOfflineTracks returns the tracks the authenticated user has synced
// for offline playback.
func (s *CollectionService) GetOfflineTracks(ctx context.Context, opts *PageOptions) ([]*Track, error) {
	opts = orDefault(opts)
	if err := opts.check(); err != nil {
		return nil, err
	}

	return executeList[*Track](ctx, s.client, mGetOfflineTracks,
		OptInt(opts.Start),
		OptInt(opts.Count),
		ListArg(opts.Extras),
	)
}

// GetTracksForAlbumInCollection returns the tracks of an album that are in
// a user's collection.
func (s *CollectionService) GetTracksForAlbumInCollection(ctx context.Context, album string, opts *UserOptions) ([]*Track, error) {
	opts = orDefault(opts)
	if err := checkRequired("album", album); err != nil {
		return nil, err
	}

	return executeList[*Track](ctx, s.client, mGetTracksForAlbumInCollection,
		StringArg(album),
		NonEmpty(opts.User),
		ListArg(opts.Extras),
	)
}

// GetTracksForArtistInCollection returns the tracks by an artist that are
// in a user's collection.
func (s *CollectionService) GetTracksForArtistInCollection(ctx context.Context, artist string, opts *UserOptions) ([]*Track, error) {
	opts = orDefault(opts)
	if err := checkRequired("artist", artist); err != nil {
		return nil, err
	}

	return executeList[*Track](ctx, s.client, mGetTracksForArtistInCollection,
		StringArg(artist),
		NonEmpty(opts.User),
		ListArg(opts.Extras),
	)
}

// TracksInCollectionOptions are the optional arguments of GetTracksInCollection.
type TracksInCollectionOptions struct {
	User   string // user key, empty for the authenticated user
	Artist string // restrict to one artist
	Start  *int
	Count  *int
	Sort   Sort // dateAdded, name, playCount, artist or album
	Query  string
	Extras []string
}

// GetTracksInCollection returns the tracks in a user's collection.
func (s *CollectionService) GetTracksInCollection(ctx context.Context, opts *TracksInCollectionOptions) ([]*Track, error) {
	opts = orDefault(opts)
	if err := validate(
		checkPage(opts.Start, opts.Count),
		checkOptEnum("sort", opts.Sort, tracksCollectionSorts),
	); err != nil {
		return nil, err
	}

	return executeList[*Track](ctx, s.client, mGetTracksInCollection,
		NonEmpty(opts.User),
		NonEmpty(opts.Artist),
		OptInt(opts.Start),
		OptInt(opts.Count),
		enumArg(opts.Sort),
		NonEmpty(opts.Query),
		ListArg(opts.Extras),
	)
}

// RemoveFromCollection removes tracks or playlists from the authenticated
// user's collection.
func (s *CollectionService) RemoveFromCollection(ctx context.Context, keys []string) (bool, error) {
	if err := checkKeys("keys", keys); err != nil {
		return false, err
	}
	return s.client.executeBool(ctx, mRemoveFromCollection, ListArg(keys))
}

// SetAvailableOffline marks tracks or playlists for offline sync.
func (s *CollectionService) SetAvailableOffline(ctx context.Context, keys []string, offline bool) (bool, error) {
	if err := checkKeys("keys", keys); err != nil {
		return false, err
	}
	return s.client.executeBool(ctx, mSetAvailableOffline,
		ListArg(keys),
		BoolArg(offline),
	)
}
