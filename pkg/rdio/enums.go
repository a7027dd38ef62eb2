package rdio

// Scope selects whose activity stream is returned.
type Scope string

// Activity stream scopes.
const (
	ScopeEveryone Scope = "everyone"
	ScopeFriends  Scope = "friends"
	ScopeUser     Scope = "user"
)

// Sort is a result ordering. Each method accepts its own subset.
type Sort string

// Sort orders.
const (
	SortAlbum       Sort = "album"
	SortArtist      Sort = "artist"
	SortDateAdded   Sort = "dateAdded"
	SortLastUpdated Sort = "lastUpdated"
	SortName        Sort = "name"
	SortPlayCount   Sort = "playCount"
	SortReleaseDate Sort = "releaseDate"
)

// Timeframe restricts new releases to a window.
type Timeframe string

// New release timeframes.
const (
	TimeLastWeek Timeframe = "lastweek"
	TimeOverview Timeframe = "overview"
	TimeThisWeek Timeframe = "thisweek"
	TimeTwoWeeks Timeframe = "twoweeks"
)

// Kind selects which of a user's playlists are listed.
type Kind string

// Playlist kinds.
const (
	KindCollab     Kind = "collab"
	KindOwned      Kind = "owned"
	KindSubscribed Kind = "subscribed"
)

// ObjectType names a catalog object type in search and chart requests.
type ObjectType string

// Object types.
const (
	TypeAlbum    ObjectType = "Album"
	TypeArtist   ObjectType = "Artist"
	TypeLabel    ObjectType = "Label"
	TypePlaylist ObjectType = "Playlist"
	TypeTrack    ObjectType = "Track"
	TypeUser     ObjectType = "User"
)

// RotationType restricts heavy rotation results to albums or artists.
type RotationType string

// Heavy rotation types.
const (
	RotationAlbums  RotationType = "albums"
	RotationArtists RotationType = "artists"
)

// CollaborationMode controls who may edit a playlist.
type CollaborationMode int

// Collaboration modes.
const (
	CollaborationNone      CollaborationMode = 0
	CollaborationEveryone  CollaborationMode = 1
	CollaborationFollowing CollaborationMode = 2
)

// UpdateType is the kind of an activity stream update.
type UpdateType int

// Known activity update types. The server may send codes not listed here
// and GetActivityStream accepts any non-negative code.
const (
	UpdateTrackAddedToCollection UpdateType = 0
	UpdateTrackAddedToPlaylist   UpdateType = 1
	UpdateFriendAdded            UpdateType = 3
	UpdateUserJoined             UpdateType = 5
	UpdateCommentOnTrack         UpdateType = 6
	UpdateCommentOnAlbum         UpdateType = 7
	UpdateCommentOnArtist        UpdateType = 8
	UpdateCommentOnPlaylist      UpdateType = 9
	UpdateTrackAddedViaMatch     UpdateType = 10
	UpdateUserSubscribed         UpdateType = 11
	UpdateTrackSyncedToMobile    UpdateType = 12
)

var (
	scopes     = []Scope{ScopeEveryone, ScopeFriends, ScopeUser}
	timeframes = []Timeframe{TimeLastWeek, TimeOverview, TimeThisWeek, TimeTwoWeeks}
	kinds      = []Kind{KindCollab, KindOwned, KindSubscribed}
	rotations  = []RotationType{RotationAlbums, RotationArtists}

	chartTypes  = []ObjectType{TypeAlbum, TypeArtist, TypePlaylist, TypeTrack}
	searchTypes = []ObjectType{TypeAlbum, TypeArtist, TypeLabel, TypePlaylist, TypeTrack, TypeUser}

	catalogSorts           = []Sort{SortName, SortPlayCount, SortReleaseDate}
	artistCollectionSorts  = []Sort{SortName, SortReleaseDate}
	albumsCollectionSorts  = []Sort{SortDateAdded, SortName, SortPlayCount, SortArtist}
	artistsCollectionSorts = []Sort{SortName, SortPlayCount}
	tracksCollectionSorts  = []Sort{SortDateAdded, SortName, SortPlayCount, SortArtist, SortAlbum}
	playlistSorts          = []Sort{SortLastUpdated, SortName}

	collaborationModes = []CollaborationMode{CollaborationNone, CollaborationEveryone, CollaborationFollowing}
)

// ChartTypes returns the object types accepted by GetTopCharts.
func ChartTypes() []ObjectType {
	return append([]ObjectType(nil), chartTypes...)
}

// SearchTypes returns the object types accepted by Search and SearchSuggestions.
func SearchTypes() []ObjectType {
	return append([]ObjectType(nil), searchTypes...)
}
