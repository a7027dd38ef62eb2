package rdio

// Entity is a catalog object decoded from a tagged JSON object.
//
// The concrete type is one of the pointer types registered in registry.go;
// use a type switch to get at it:
//
//	switch v := e.(type) {
//	case *rdio.Album:
//	    fmt.Println("album", rdio.Deref(v.Name))
//	case *rdio.Track:
//	    fmt.Println("track", rdio.Deref(v.Name))
//	}
type Entity interface {
	// EntityKey returns the server-side key, or "" if it was not sent.
	EntityKey() string
}

// Album is tagged "a".
type Album struct {
	Key            *string  `json:"key,omitempty"`
	Name           *string  `json:"name,omitempty"`
	Artist         *string  `json:"artist,omitempty"`
	ArtistKey      *string  `json:"artistKey,omitempty"`
	ArtistURL      *string  `json:"artistUrl,omitempty"`
	URL            *string  `json:"url,omitempty"`
	ShortURL       *string  `json:"shortUrl,omitempty"`
	EmbedURL       *string  `json:"embedUrl,omitempty"`
	IframeURL      *string  `json:"iframeUrl,omitempty"`
	Icon           *string  `json:"icon,omitempty"`
	BaseIcon       *string  `json:"baseIcon,omitempty"`
	Icon400        *string  `json:"icon400,omitempty"`
	BigIcon        *string  `json:"bigIcon,omitempty"`
	BigIcon1200    *string  `json:"bigIcon1200,omitempty"`
	IsExplicit     *bool    `json:"isExplicit,omitempty"`
	IsClean        *bool    `json:"isClean,omitempty"`
	IsCompilation  *bool    `json:"isCompilation,omitempty"`
	Length         *int     `json:"length,omitempty"`
	Duration       *int     `json:"duration,omitempty"`
	Price          *int     `json:"price,omitempty"`
	CanStream      *bool    `json:"canStream,omitempty"`
	CanSample      *bool    `json:"canSample,omitempty"`
	CanTether      *bool    `json:"canTether,omitempty"`
	TrackKeys      []string `json:"trackKeys"`
	DisplayDate    *string  `json:"displayDate,omitempty"`
	ReleaseDate    *Date    `json:"releaseDate,omitempty"`
	ReleaseDateISO *string  `json:"releaseDateISO,omitempty"`
	RadioKey       *string  `json:"radioKey,omitempty"`
	StreamRegions  []string `json:"streamRegions"`
	Label          *Label   `json:"label,omitempty"`
	UPCs           []string `json:"upcs"`
}

// EntityKey implements Entity.
func (a *Album) EntityKey() string { return Deref(a.Key) }

// CollectionAlbum is an album as it appears in a user's collection. Tagged "al".
type CollectionAlbum struct {
	Album
	UserKey       *string  `json:"userKey,omitempty"`
	UserName      *string  `json:"userName,omitempty"`
	AlbumKey      *string  `json:"albumKey,omitempty"`
	AlbumURL      *string  `json:"albumUrl,omitempty"`
	ItemTrackKeys []string `json:"itemTrackKeys"`
}

// Artist is tagged "r".
type Artist struct {
	Key         *string `json:"key,omitempty"`
	Name        *string `json:"name,omitempty"`
	URL         *string `json:"url,omitempty"`
	ShortURL    *string `json:"shortUrl,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	BaseIcon    *string `json:"baseIcon,omitempty"`
	Length      *int    `json:"length,omitempty"`
	AlbumCount  *int    `json:"albumCount,omitempty"`
	HasRadio    *bool   `json:"hasRadio,omitempty"`
	RadioKey    *string `json:"radioKey,omitempty"`
	TopSongsKey *string `json:"topSongsKey,omitempty"`
}

// EntityKey implements Entity.
func (a *Artist) EntityKey() string { return Deref(a.Key) }

// CollectionArtist is an artist as it appears in a user's collection. Tagged "rl".
type CollectionArtist struct {
	Artist
	UserKey   *string `json:"userKey,omitempty"`
	UserName  *string `json:"userName,omitempty"`
	ArtistKey *string `json:"artistKey,omitempty"`
	ArtistURL *string `json:"artistUrl,omitempty"`
	Count     *int    `json:"count,omitempty"`
}

// Label is a record label. Tagged "l".
type Label struct {
	Key       *string `json:"key,omitempty"`
	Name      *string `json:"name,omitempty"`
	URL       *string `json:"url,omitempty"`
	ShortURL  *string `json:"shortUrl,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	HasRadio  *bool   `json:"hasRadio,omitempty"`
	RadioKey  *string `json:"radioKey,omitempty"`
	RadioType *string `json:"radioType,omitempty"`
}

// EntityKey implements Entity.
func (l *Label) EntityKey() string { return Deref(l.Key) }

// Track is tagged "t".
type Track struct {
	Key                  *string      `json:"key,omitempty"`
	Name                 *string      `json:"name,omitempty"`
	Artist               *string      `json:"artist,omitempty"`
	ArtistKey            *string      `json:"artistKey,omitempty"`
	ArtistURL            *string      `json:"artistUrl,omitempty"`
	Album                *string      `json:"album,omitempty"`
	AlbumKey             *string      `json:"albumKey,omitempty"`
	AlbumURL             *string      `json:"albumUrl,omitempty"`
	AlbumArtist          *string      `json:"albumArtist,omitempty"`
	AlbumArtistKey       *string      `json:"albumArtistKey,omitempty"`
	URL                  *string      `json:"url,omitempty"`
	ShortURL             *string      `json:"shortUrl,omitempty"`
	EmbedURL             *string      `json:"embedUrl,omitempty"`
	IframeURL            *string      `json:"iframeUrl,omitempty"`
	Icon                 *string      `json:"icon,omitempty"`
	BaseIcon             *string      `json:"baseIcon,omitempty"`
	Icon400              *string      `json:"icon400,omitempty"`
	BigIcon              *string      `json:"bigIcon,omitempty"`
	Length               *int         `json:"length,omitempty"`
	Duration             *int         `json:"duration,omitempty"`
	TrackNum             *int         `json:"trackNum,omitempty"`
	PlayCount            *int         `json:"playCount,omitempty"`
	IsExplicit           *bool        `json:"isExplicit,omitempty"`
	IsClean              *bool        `json:"isClean,omitempty"`
	IsInCollection       *bool        `json:"isInCollection,omitempty"`
	IsOnCompilation      *bool        `json:"isOnCompilation,omitempty"`
	CanDownload          *bool        `json:"canDownload,omitempty"`
	CanDownloadAlbumOnly *bool        `json:"canDownloadAlbumOnly,omitempty"`
	CanStream            *bool        `json:"canStream,omitempty"`
	CanTether            *bool        `json:"canTether,omitempty"`
	CanSample            *bool        `json:"canSample,omitempty"`
	Price                *string      `json:"price,omitempty"`
	RadioKey             *string      `json:"radioKey,omitempty"`
	Radio                *SongStation `json:"radio,omitempty"`
	ISRCs                []string     `json:"isrcs"`
	StreamRegions        []string     `json:"streamRegions"`
	TetherRegions        []string     `json:"tetherRegions"`
}

// EntityKey implements Entity.
func (t *Track) EntityKey() string { return Deref(t.Key) }

// Playlist is tagged "p".
type Playlist struct {
	Key               *string    `json:"key,omitempty"`
	Name              *string    `json:"name,omitempty"`
	Description       *string    `json:"description,omitempty"`
	Length            *int       `json:"length,omitempty"`
	URL               *string    `json:"url,omitempty"`
	ShortURL          *string    `json:"shortUrl,omitempty"`
	EmbedURL          *string    `json:"embedUrl,omitempty"`
	IframeURL         *string    `json:"iframeUrl,omitempty"`
	Icon              *string    `json:"icon,omitempty"`
	BaseIcon          *string    `json:"baseIcon,omitempty"`
	Icon400           *string    `json:"icon400,omitempty"`
	BigIcon           *string    `json:"bigIcon,omitempty"`
	BigIcon1200       *string    `json:"bigIcon1200,omitempty"`
	Owner             *string    `json:"owner,omitempty"`
	OwnerKey          *string    `json:"ownerKey,omitempty"`
	OwnerURL          *string    `json:"ownerUrl,omitempty"`
	OwnerIcon         *string    `json:"ownerIcon,omitempty"`
	LastUpdated       *Timestamp `json:"lastUpdated,omitempty"`
	RadioKey          *string    `json:"radioKey,omitempty"`
	CanStream         *bool      `json:"canStream,omitempty"`
	IsViewable        *bool      `json:"isViewable,omitempty"`
	IsPublished       *bool      `json:"isPublished,omitempty"`
	ReasonNotViewable *int       `json:"reasonNotViewable,omitempty"`
	TrackKeys         []string   `json:"trackKeys"`
	Tracks            []*Track   `json:"tracks"`
}

// EntityKey implements Entity.
func (p *Playlist) EntityKey() string { return Deref(p.Key) }

// Profile holds the fields a user shares with the stations built from that
// user's listening.
type Profile struct {
	FirstName               *string    `json:"firstName,omitempty"`
	LastName                *string    `json:"lastName,omitempty"`
	DisplayName             *string    `json:"displayName,omitempty"`
	Username                *string    `json:"username,omitempty"`
	Gender                  *string    `json:"gender,omitempty"`
	Icon250                 *string    `json:"icon250,omitempty"`
	Icon500                 *string    `json:"icon500,omitempty"`
	LibraryVersion          *int       `json:"libraryVersion,omitempty"`
	IsProtected             *bool      `json:"isProtected,omitempty"`
	IsTrial                 *bool      `json:"isTrial,omitempty"`
	IsUnlimited             *bool      `json:"isUnlimited,omitempty"`
	IsSubscriber            *bool      `json:"isSubscriber,omitempty"`
	FollowingURL            *string    `json:"followingUrl,omitempty"`
	FollowersURL            *string    `json:"followersUrl,omitempty"`
	CollectionURL           *string    `json:"collectionUrl,omitempty"`
	PlaylistsURL            *string    `json:"playlistsUrl,omitempty"`
	ReviewCount             *int       `json:"reviewCount,omitempty"`
	ArtistCount             *int       `json:"artistCount,omitempty"`
	AlbumCount              *int       `json:"albumCount,omitempty"`
	TrackCount              *int       `json:"trackCount,omitempty"`
	LastSongPlayed          *Track     `json:"lastSongPlayed,omitempty"`
	LastSongPlayTime        *Timestamp `json:"lastSongPlayTime,omitempty"`
	LastSourcePlayed        *string    `json:"lastSourcePlayed,omitempty"`
	HeavyRotationKey        *string    `json:"heavyRotationKey,omitempty"`
	NetworkHeavyRotationKey *string    `json:"networkHeavyRotationKey,omitempty"`
	CollectionKey           *string    `json:"collectionKey,omitempty"`
	TasteProfileKey         *string    `json:"tasteProfileKey,omitempty"`
	StreamRegion            *string    `json:"streamRegion,omitempty"`
}

// User is tagged "s".
type User struct {
	Key      *string `json:"key,omitempty"`
	URL      *string `json:"url,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	BaseIcon *string `json:"baseIcon,omitempty"`
	Profile
}

// EntityKey implements Entity.
func (u *User) EntityKey() string { return Deref(u.Key) }

// SearchResult is the untagged result of Search.
type SearchResult struct {
	AlbumCount    *int     `json:"album_count,omitempty"`
	ArtistCount   *int     `json:"artist_count,omitempty"`
	NumberResults *int     `json:"number_results,omitempty"`
	PersonCount   *int     `json:"person_count,omitempty"`
	PlaylistCount *int     `json:"playlist_count,omitempty"`
	TrackCount    *int     `json:"track_count,omitempty"`
	Results       Entities `json:"results"`
}

// PlaylistCollection is the untagged result of GetPlaylists.
type PlaylistCollection struct {
	Collab     []*Playlist `json:"collab"`
	Owned      []*Playlist `json:"owned"`
	Subscribed []*Playlist `json:"subscribed"`
}

// Activity is the untagged result of GetActivityStream.
type Activity struct {
	LastID  *int      `json:"lastId,omitempty"`
	User    *User     `json:"user,omitempty"`
	Updates []*Update `json:"updates"`
}

// Update is one event of an activity stream.
type Update struct {
	Owner      *User           `json:"owner,omitempty"`
	Date       *MicroTimestamp `json:"date,omitempty"`
	UpdateType *int            `json:"update_type,omitempty"`
}

// Deref returns the value p points to, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Int returns a pointer to n, for optional arguments.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for optional arguments.
func Bool(b bool) *bool { return &b }

// String returns a pointer to s, for optional arguments.
func String(s string) *string { return &s }
