package rdio

import "context"

// PlaylistService provides playlist management.
type PlaylistService struct {
	client *Client
}

// AddToPlaylist appends tracks to a playlist and returns the updated playlist.
func (s *PlaylistService) AddToPlaylist(ctx context.Context, playlist string, tracks []string, extras []string) (*Playlist, error) {
	if err := validate(
		checkRequired("playlist", playlist),
		checkKeys("tracks", tracks),
	); err != nil {
		return nil, err
	}

	return executeOne[*Playlist](ctx, s.client, mAddToPlaylist,
		StringArg(playlist),
		ListArg(tracks),
		ListArg(extras),
	)
}

// CreatePlaylistOptions are the optional arguments of CreatePlaylist.
type CreatePlaylistOptions struct {
	CollaborationMode *CollaborationMode
	IsPublished       *bool
	Extras            []string
}

// CreatePlaylist creates a playlist owned by the authenticated user.
func (s *PlaylistService) CreatePlaylist(ctx context.Context, name, description string, tracks []string, opts *CreatePlaylistOptions) (*Playlist, error) {
	opts = orDefault(opts)

	mode := Unset
	var modeErr error
	if opts.CollaborationMode != nil {
		modeErr = checkIntEnum("collaboration_mode", *opts.CollaborationMode, collaborationModes)
		mode = IntArg(int(*opts.CollaborationMode))
	}
	if err := validate(
		checkRequired("name", name),
		checkKeys("tracks", tracks),
		modeErr,
	); err != nil {
		return nil, err
	}

	return executeOne[*Playlist](ctx, s.client, mCreatePlaylist,
		StringArg(name),
		StringArg(description),
		ListArg(tracks),
		mode,
		OptBool(opts.IsPublished),
		ListArg(opts.Extras),
	)
}

// DeletePlaylist deletes a playlist.
func (s *PlaylistService) DeletePlaylist(ctx context.Context, playlist string) (bool, error) {
	if err := checkRequired("playlist", playlist); err != nil {
		return false, err
	}
	return s.client.executeBool(ctx, mDeletePlaylist, StringArg(playlist))
}

// GetPlaylistsOptions are the optional arguments of GetPlaylists.
type GetPlaylistsOptions struct {
	OrderedList *bool // return owned playlists in the user's custom order
	Extras      []string
}

// GetPlaylists returns a user's owned, collaborative and subscribed
// playlists.
func (s *PlaylistService) GetPlaylists(ctx context.Context, user string, opts *GetPlaylistsOptions) (*PlaylistCollection, error) {
	opts = orDefault(opts)
	if err := checkRequired("user", user); err != nil {
		return nil, err
	}

	return executeAs[PlaylistCollection](ctx, s.client, mGetPlaylists,
		StringArg(user),
		OptBool(opts.OrderedList),
		ListArg(opts.Extras),
	)
}

// UserPlaylistsOptions are the optional arguments of GetUserPlaylists.
type UserPlaylistsOptions struct {
	Kind   Kind // owned, collab or subscribed
	Start  *int
	Count  *int
	Sort   Sort // lastUpdated or name
	Extras []string
}

// GetUserPlaylists returns one kind of a user's playlists.
func (s *PlaylistService) GetUserPlaylists(ctx context.Context, user string, opts *UserPlaylistsOptions) ([]*Playlist, error) {
	opts = orDefault(opts)
	if err := validate(
		checkRequired("user", user),
		checkOptEnum("kind", opts.Kind, kinds),
		checkPage(opts.Start, opts.Count),
		checkOptEnum("sort", opts.Sort, playlistSorts),
	); err != nil {
		return nil, err
	}

	return executeList[*Playlist](ctx, s.client, mGetUserPlaylists,
		StringArg(user),
		enumArg(opts.Kind),
		OptInt(opts.Start),
		OptInt(opts.Count),
		enumArg(opts.Sort),
		ListArg(opts.Extras),
	)
}

// RemoveFromPlaylist removes count tracks starting at index. tracks must
// list the keys being removed, as a guard against concurrent edits.
func (s *PlaylistService) RemoveFromPlaylist(ctx context.Context, playlist string, index, count int, tracks []string, extras []string) (*Playlist, error) {
	if err := validate(
		checkRequired("playlist", playlist),
		checkNonNegative("index", &index),
		checkNonNegative("count", &count),
		checkKeys("tracks", tracks),
	); err != nil {
		return nil, err
	}

	return executeOne[*Playlist](ctx, s.client, mRemoveFromPlaylist,
		StringArg(playlist),
		IntArg(index),
		IntArg(count),
		ListArg(tracks),
		ListArg(extras),
	)
}

// SetPlaylistCollaborating turns collaboration on or off.
func (s *PlaylistService) SetPlaylistCollaborating(ctx context.Context, playlist string, collaborating bool) (bool, error) {
	if err := checkRequired("playlist", playlist); err != nil {
		return false, err
	}
	return s.client.executeBool(ctx, mSetPlaylistCollaborating,
		StringArg(playlist),
		BoolArg(collaborating),
	)
}

// SetPlaylistCollaborationMode sets who may edit a playlist.
func (s *PlaylistService) SetPlaylistCollaborationMode(ctx context.Context, playlist string, mode CollaborationMode) (bool, error) {
	if err := validate(
		checkRequired("playlist", playlist),
		checkIntEnum("mode", mode, collaborationModes),
	); err != nil {
		return false, err
	}
	return s.client.executeBool(ctx, mSetPlaylistCollaborationMode,
		StringArg(playlist),
		IntArg(int(mode)),
	)
}

// SetPlaylistFields renames a playlist and replaces its description.
func (s *PlaylistService) SetPlaylistFields(ctx context.Context, playlist, name, description string) (bool, error) {
	if err := validate(
		checkRequired("playlist", playlist),
		checkRequired("name", name),
	); err != nil {
		return false, err
	}
	return s.client.executeBool(ctx, mSetPlaylistFields,
		StringArg(playlist),
		StringArg(name),
		StringArg(description),
	)
}

// SetPlaylistOrder reorders a playlist. tracks must be a permutation of the
// playlist's current track keys.
func (s *PlaylistService) SetPlaylistOrder(ctx context.Context, playlist string, tracks []string, extras []string) (*Playlist, error) {
	if err := validate(
		checkRequired("playlist", playlist),
		checkKeys("tracks", tracks),
	); err != nil {
		return nil, err
	}

	return executeOne[*Playlist](ctx, s.client, mSetPlaylistOrder,
		StringArg(playlist),
		ListArg(tracks),
		ListArg(extras),
	)
}
