package rdio

import (
	"fmt"
	"reflect"
	"sort"
)

// TagField is the wire field that carries an entity's discriminator tag.
const TagField = "type"

type shapeDecl struct {
	tag string
	typ reflect.Type
}

func tagged[T any](tag string) shapeDecl {
	return shapeDecl{tag: tag, typ: reflect.TypeFor[T]()}
}

func untagged[T any]() shapeDecl {
	return shapeDecl{typ: reflect.TypeFor[T]()}
}

// registry maps discriminator tags and Go types to shapes. It is built once
// at package initialization and never modified afterwards.
type registry struct {
	byTag  map[string]*shape
	byType map[reflect.Type]*shape
}

var shapes = mustBuildRegistry(
	tagged[Album]("a"),
	tagged[AlbumStation]("ar"),
	tagged[Artist]("r"),
	tagged[ArtistStation]("rr"),
	tagged[ArtistTopSongsStation]("tr"),
	tagged[AutoplayStation]("?a"),
	tagged[CollectionAlbum]("al"),
	tagged[CollectionArtist]("rl"),
	tagged[GenreStation]("gr"),
	tagged[HeavyRotationStation]("h"),
	tagged[HeavyRotationUserStation]("e"),
	tagged[Label]("l"),
	tagged[LabelStation]("lr"),
	tagged[Playlist]("p"),
	tagged[PlaylistStation]("pr"),
	tagged[SongStation]("sr"),
	tagged[TasteProfileStation]("tp"),
	tagged[Track]("t"),
	tagged[User]("s"),
	tagged[UserCollectionStation]("c"),

	untagged[SearchResult](),
	untagged[PlaylistCollection](),
	untagged[Activity](),
	untagged[Update](),
)

func mustBuildRegistry(decls ...shapeDecl) *registry {
	r, err := buildRegistry(decls...)
	if err != nil {
		panic(err)
	}
	return r
}

func buildRegistry(decls ...shapeDecl) (*registry, error) {
	r := &registry{
		byTag:  make(map[string]*shape),
		byType: make(map[reflect.Type]*shape),
	}

	for _, d := range decls {
		if _, dup := r.byType[d.typ]; dup {
			return nil, fmt.Errorf("rdio: shape %s registered twice", d.typ)
		}
		s, err := buildShape(d.typ, d.tag)
		if err != nil {
			return nil, err
		}
		if d.tag != "" {
			if prev, dup := r.byTag[d.tag]; dup {
				return nil, fmt.Errorf("rdio: tag %q maps to both %s and %s", d.tag, prev.name, s.name)
			}
			if !reflect.PointerTo(d.typ).Implements(entityType) {
				return nil, fmt.Errorf("rdio: tagged shape %s does not implement Entity", s.name)
			}
			r.byTag[d.tag] = s
		}
		r.byType[d.typ] = s
	}

	// Every nested concrete shape must itself be registered.
	for _, s := range r.byType {
		for _, f := range s.fields {
			if f.kind != kindShape && f.kind != kindShapeList {
				continue
			}
			if _, ok := r.byType[f.elem]; !ok {
				return nil, fmt.Errorf("rdio: shape %s field %q refers to unregistered shape %s", s.name, f.wire, f.elem)
			}
		}
	}

	return r, nil
}

// TagOf returns the discriminator tag of an entity's concrete type.
func TagOf(e Entity) (string, bool) {
	if e == nil {
		return "", false
	}
	t := reflect.TypeOf(e)
	if t.Kind() != reflect.Pointer {
		return "", false
	}
	s, ok := shapes.byType[t.Elem()]
	if !ok || s.tag == "" {
		return "", false
	}
	return s.tag, true
}

// ShapeName returns the name of the shape a tag resolves to.
func ShapeName(tag string) (string, bool) {
	s, ok := shapes.byTag[tag]
	if !ok {
		return "", false
	}
	return s.name, true
}

// Tags returns every registered discriminator tag, sorted.
func Tags() []string {
	tags := make([]string, 0, len(shapes.byTag))
	for tag := range shapes.byTag {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
