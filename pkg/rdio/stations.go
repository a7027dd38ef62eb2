package rdio

// StationInfo holds the fields every station carries.
type StationInfo struct {
	Key              *string   `json:"key,omitempty"`
	Name             *string   `json:"name,omitempty"`
	Description      *string   `json:"description,omitempty"`
	URL              *string   `json:"url,omitempty"`
	ShortURL         *string   `json:"shortUrl,omitempty"`
	Icon             *string   `json:"icon,omitempty"`
	BaseIcon         *string   `json:"baseIcon,omitempty"`
	Icon170          *string   `json:"icon170,omitempty"`
	Icon400          *string   `json:"icon400,omitempty"`
	BigIcon          *string   `json:"bigIcon,omitempty"`
	BigIcon1200      *string   `json:"bigIcon1200,omitempty"`
	Length           *int      `json:"length,omitempty"`
	Count            *int      `json:"count,omitempty"`
	SourceName       *string   `json:"sourceName,omitempty"`
	ReloadOnRepeat   *bool     `json:"reloadOnRepeat,omitempty"`
	UsingEchonest    *bool     `json:"usingEchonest,omitempty"`
	PresetIndex      *string   `json:"presetIndex,omitempty"`
	AvailablePresets any       `json:"availablePresets,omitempty"`
	Restrictions     any       `json:"restrictions,omitempty"`
	TrackKeys        []string  `json:"trackKeys"`
	Tracks           []*Track  `json:"tracks"`
	Artists          []*Artist `json:"artists"`
	Albums           []*Album  `json:"albums"`
}

// EntityKey implements Entity for every station type.
func (s *StationInfo) EntityKey() string { return Deref(s.Key) }

// AlbumStation plays an album and related music. Tagged "ar".
type AlbumStation struct {
	StationInfo
	AlbumName      *string  `json:"albumName,omitempty"`
	AlbumURL       *string  `json:"albumUrl,omitempty"`
	Artist         *string  `json:"artist,omitempty"`
	ArtistKey      *string  `json:"artistKey,omitempty"`
	ArtistURL      *string  `json:"artistUrl,omitempty"`
	EmbedURL       *string  `json:"embedUrl,omitempty"`
	IframeURL      *string  `json:"iframeUrl,omitempty"`
	IsExplicit     *bool    `json:"isExplicit,omitempty"`
	IsClean        *bool    `json:"isClean,omitempty"`
	IsCompilation  *bool    `json:"isCompilation,omitempty"`
	CanStream      *bool    `json:"canStream,omitempty"`
	CanSample      *bool    `json:"canSample,omitempty"`
	CanTether      *bool    `json:"canTether,omitempty"`
	Price          *int     `json:"price,omitempty"`
	Duration       *int     `json:"duration,omitempty"`
	DisplayDate    *string  `json:"displayDate,omitempty"`
	ReleaseDate    *string  `json:"releaseDate,omitempty"`
	ReleaseDateISO *string  `json:"releaseDateISO,omitempty"`
	Label          *string  `json:"label,omitempty"`
	RadioKey       *string  `json:"radioKey,omitempty"`
	StreamRegions  []string `json:"streamRegions"`
	UPCs           []string `json:"upcs"`
}

// ArtistStation plays an artist and similar artists. Tagged "rr".
type ArtistStation struct {
	StationInfo
	ArtistName *string `json:"artistName,omitempty"`
	ArtistURL  *string `json:"artistUrl,omitempty"`
	HasRadio   *bool   `json:"hasRadio,omitempty"`
	RadioKey   *string `json:"radioKey,omitempty"`
	RadioType  *string `json:"radioType,omitempty"`
}

// ArtistTopSongsStation plays an artist's most popular tracks. Tagged "tr".
type ArtistTopSongsStation struct {
	StationInfo
	ArtistName *string `json:"artistName,omitempty"`
	ArtistURL  *string `json:"artistUrl,omitempty"`
	RadioKey   *string `json:"radioKey,omitempty"`
}

// AutoplayStation continues playback after a source ends. Tagged "?a".
type AutoplayStation struct {
	StationInfo
}

// GenreStation plays a genre. Tagged "gr".
type GenreStation struct {
	StationInfo
	RelatedGenreStationKeys []string `json:"relatedGenreStationKeys"`
}

// HeavyRotationStation plays what a user listens to most. Tagged "h".
type HeavyRotationStation struct {
	StationInfo
	User *User `json:"user,omitempty"`
}

// HeavyRotationUserStation plays what a user's network listens to most. Tagged "e".
type HeavyRotationUserStation struct {
	StationInfo
	User *User `json:"user,omitempty"`
}

// LabelStation plays a record label. Tagged "lr".
type LabelStation struct {
	StationInfo
	LabelName *string `json:"labelName,omitempty"`
	LabelURL  *string `json:"labelUrl,omitempty"`
	HasRadio  *bool   `json:"hasRadio,omitempty"`
	RadioKey  *string `json:"radioKey,omitempty"`
	RadioType *string `json:"radioType,omitempty"`
}

// PlaylistStation plays a playlist and related music. Tagged "pr".
type PlaylistStation struct {
	StationInfo
	PlaylistName      *string    `json:"playlistName,omitempty"`
	PlaylistURL       *string    `json:"playlistUrl,omitempty"`
	Owner             *string    `json:"owner,omitempty"`
	OwnerKey          *string    `json:"ownerKey,omitempty"`
	OwnerURL          *string    `json:"ownerUrl,omitempty"`
	OwnerIcon         *string    `json:"ownerIcon,omitempty"`
	LastUpdated       *Timestamp `json:"lastUpdated,omitempty"`
	EmbedURL          *string    `json:"embedUrl,omitempty"`
	IframeURL         *string    `json:"iframeUrl,omitempty"`
	RadioKey          *string    `json:"radioKey,omitempty"`
	CanStream         *bool      `json:"canStream,omitempty"`
	IsViewable        *bool      `json:"isViewable,omitempty"`
	IsPublished       *bool      `json:"isPublished,omitempty"`
	ReasonNotViewable *int       `json:"reasonNotViewable,omitempty"`
}

// SongStation plays a track and similar music. Tagged "sr".
//
// Radio refers to another SongStation; it is decoded as a fresh nested
// value, never as a reference back to its container.
type SongStation struct {
	StationInfo
	TrackName            *string      `json:"trackName,omitempty"`
	TrackURL             *string      `json:"trackUrl,omitempty"`
	TrackNum             *int         `json:"trackNum,omitempty"`
	Artist               *string      `json:"artist,omitempty"`
	ArtistKey            *string      `json:"artistKey,omitempty"`
	ArtistURL            *string      `json:"artistUrl,omitempty"`
	Album                *string      `json:"album,omitempty"`
	AlbumKey             *string      `json:"albumKey,omitempty"`
	AlbumURL             *string      `json:"albumUrl,omitempty"`
	AlbumArtist          *string      `json:"albumArtist,omitempty"`
	AlbumArtistKey       *string      `json:"albumArtistKey,omitempty"`
	EmbedURL             *string      `json:"embedUrl,omitempty"`
	IframeURL            *string      `json:"iframeUrl,omitempty"`
	Duration             *int         `json:"duration,omitempty"`
	PlayCount            *int         `json:"playCount,omitempty"`
	IsExplicit           *bool        `json:"isExplicit,omitempty"`
	IsClean              *bool        `json:"isClean,omitempty"`
	IsInCollection       *bool        `json:"isInCollection,omitempty"`
	IsOnCompilation      *bool        `json:"isOnCompilation,omitempty"`
	CanStream            *bool        `json:"canStream,omitempty"`
	CanSample            *bool        `json:"canSample,omitempty"`
	CanTether            *bool        `json:"canTether,omitempty"`
	CanDownloadAlbumOnly *bool        `json:"canDownloadAlbumOnly,omitempty"`
	Price                *float64     `json:"price,omitempty"`
	RadioKey             *string      `json:"radioKey,omitempty"`
	Radio                *SongStation `json:"radio,omitempty"`
	ISRCs                []string     `json:"isrcs"`
	StreamRegions        []string     `json:"streamRegions"`
	TetherRegions        []string     `json:"tetherRegions"`
}

// TasteProfileStation plays music matching a user's taste profile. Tagged "tp".
type TasteProfileStation struct {
	StationInfo
	User *User `json:"user,omitempty"`
}

// UserCollectionStation plays from a user's collection. Tagged "c".
type UserCollectionStation struct {
	StationInfo
	Profile
	User *User `json:"user,omitempty"`
}
