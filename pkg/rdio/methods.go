package rdio

import (
	"reflect"
	"sort"
)

// decodeMode says how a method's result is decoded.
type decodeMode int

const (
	modeSingle decodeMode = iota
	modeCollection
	modeBoolean
	modeString
)

func (m decodeMode) String() string {
	switch m {
	case modeSingle:
		return "single"
	case modeCollection:
		return "collection"
	case modeBoolean:
		return "boolean"
	case modeString:
		return "string"
	}
	return "unknown"
}

// method is the static declaration of one API method: its wire name, the
// ordered wire names of its parameters, and how its result is decoded.
// A nil shape means the result is discriminated by its "type" tag.
type method struct {
	name   string
	params []string
	mode   decodeMode
	shape  reflect.Type
}

func declare(name string, mode decodeMode, params ...string) *method {
	m := &method{name: name, params: params, mode: mode}
	register(m)
	return m
}

func declareShape[T any](name string, params ...string) *method {
	m := &method{name: name, params: params, mode: modeSingle, shape: reflect.TypeFor[T]()}
	register(m)
	return m
}

var methods = map[string]*method{}

func register(m *method) {
	if _, dup := methods[m.name]; dup {
		panic("rdio: method " + m.name + " declared twice")
	}
	methods[m.name] = m
}

// Activity.
var (
	mGetActivityStream = declareShape[Activity]("getActivityStream", "user", "scope", "lastId", "count", "types", "extras")
	mGetHeavyRotation  = declare("getHeavyRotation", modeCollection, "user", "type", "friends", "limit", "start", "count", "extras")
	mGetNewReleases    = declare("getNewReleases", modeCollection, "time", "start", "count", "extras")
	mGetTopCharts      = declare("getTopCharts", modeCollection, "type", "start", "count", "extras")
)

// Catalog.
var (
	mGetAlbumsByUPC     = declare("getAlbumsByUPC", modeCollection, "upc", "extras")
	mGetAlbumsForArtist = declare("getAlbumsForArtist", modeCollection, "artist", "featuring", "start", "count", "sort", "query", "extras")
	mGetAlbumsForLabel  = declare("getAlbumsForLabel", modeCollection, "label", "start", "count", "sort", "query", "extras")
	mGetArtistsForLabel = declare("getArtistsForLabel", modeCollection, "label", "start", "count", "extras")
	mGetTracksByISRC    = declare("getTracksByISRC", modeCollection, "isrc", "extras")
	mGetTracksForArtist = declare("getTracksForArtist", modeCollection, "artist", "appears_on", "start", "count", "sort", "query", "extras")
	mSearch             = declareShape[SearchResult]("search", "query", "types", "never_or", "start", "count", "extras")
	// Upstream declares searchSuggestions with the search list (query, type,
	// never_or, start, count, extras) but documents and accepts query,
	// types, country_code and extras. The declaration follows the accepted
	// arguments; a facade that disagrees with it is logged, not corrected.
	mSearchSuggestions  = declare("searchSuggestions", modeCollection, "query", "types", "country_code", "extras")
)

// Collection.
var (
	mAddToCollection                = declare("addToCollection", modeBoolean, "keys")
	mGetAlbumsForArtistInCollection = declare("getAlbumsForArtistInCollection", modeCollection, "user", "artist", "sort", "extras")
	mGetAlbumsInCollection          = declare("getAlbumsInCollection", modeCollection, "user", "artist", "start", "count", "sort", "query", "extras")
	mGetArtistsInCollection         = declare("getArtistsInCollection", modeCollection, "user", "start", "count", "sort", "query", "extras")
	mGetOfflineTracks               = declare("getOfflineTracks", modeCollection, "start", "count", "extras")
	mGetTracksForAlbumInCollection  = declare("getTracksForAlbumInCollection", modeCollection, "album", "user", "extras")
	mGetTracksForArtistInCollection = declare("getTracksForArtistInCollection", modeCollection, "artist", "user", "extras")
	mGetTracksInCollection          = declare("getTracksInCollection", modeCollection, "user", "artist", "start", "count", "sort", "query", "extras")
	mRemoveFromCollection           = declare("removeFromCollection", modeBoolean, "keys")
	mSetAvailableOffline            = declare("setAvailableOffline", modeBoolean, "keys", "offline")
)

// Core.
var (
	mGet                    = declare("get", modeCollection, "keys", "options", "extras")
	mGetObjectFromShortCode = declare("getObjectFromShortCode", modeSingle, "short_code", "extras")
	mGetObjectFromURL       = declare("getObjectFromUrl", modeSingle, "url", "extras")
)

// Playback.
var (
	mGetPlaybackToken = declare("getPlaybackToken", modeString, "domain")
)

// Playlists.
var (
	mAddToPlaylist                = declare("addToPlaylist", modeSingle, "playlist", "tracks", "extras")
	mCreatePlaylist               = declare("createPlaylist", modeSingle, "name", "description", "tracks", "collaboration_mode", "isPublished", "extras")
	mDeletePlaylist               = declare("deletePlaylist", modeBoolean, "playlist")
	mGetPlaylists                 = declareShape[PlaylistCollection]("getPlaylists", "user", "ordered_list", "extras")
	mGetUserPlaylists             = declare("getUserPlaylists", modeCollection, "user", "kind", "start", "count", "sort", "extras")
	mRemoveFromPlaylist           = declare("removeFromPlaylist", modeSingle, "playlist", "index", "count", "tracks", "extras")
	mSetPlaylistCollaborating     = declare("setPlaylistCollaborating", modeBoolean, "playlist", "collaborating")
	mSetPlaylistCollaborationMode = declare("setPlaylistCollaborationMode", modeBoolean, "playlist", "mode")
	mSetPlaylistFields            = declare("setPlaylistFields", modeBoolean, "playlist", "name", "description")
	mSetPlaylistOrder             = declare("setPlaylistOrder", modeSingle, "playlist", "tracks", "extras")
)

// Social.
var (
	mAddFriend            = declare("addFriend", modeBoolean, "user")
	mApproveFollower      = declare("approveFollower", modeBoolean, "user")
	mCurrentUser          = declare("currentUser", modeSingle, "extras")
	mFindUser             = declare("findUser", modeSingle, "email", "vanityName", "extras")
	mHideFollower         = declare("hideFollower", modeBoolean, "user")
	mRemoveFriend         = declare("removeFriend", modeBoolean, "user")
	mUnapproveFollower    = declare("unapproveFollower", modeBoolean, "user")
	mUserFollowers        = declare("userFollowers", modeCollection, "user", "start", "count", "extras", "inCommon")
	mUserFollowing        = declare("userFollowing", modeCollection, "user", "start", "count", "extras", "inCommon")
	mUserHiddenFollowers  = declare("userHiddenFollowers", modeCollection, "user", "start", "count", "extras")
	mUserPendingFollowers = declare("userPendingFollowers", modeCollection, "user", "start", "count", "extras")
)

// MethodInfo describes a declared API method.
type MethodInfo struct {
	Name   string   // wire name
	Params []string // ordered wire parameter names
	Mode   string   // "single", "collection", "boolean" or "string"
	Shape  string   // declared result shape, empty when discriminated
}

// Methods returns the declaration of every API method, sorted by name.
func Methods() []MethodInfo {
	out := make([]MethodInfo, 0, len(methods))
	for _, m := range methods {
		info := MethodInfo{
			Name:   m.name,
			Params: append([]string(nil), m.params...),
			Mode:   m.mode.String(),
		}
		if m.shape != nil {
			info.Shape = m.shape.Name()
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
