package rdio

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryTags(t *testing.T) {
	want := []string{
		"?a", "a", "al", "ar", "c", "e", "gr", "h", "l", "lr",
		"p", "pr", "r", "rl", "rr", "s", "sr", "t", "tp", "tr",
	}
	assert.Equal(t, want, Tags())

	for _, tag := range Tags() {
		sh := shapes.byTag[tag]
		e, ok := reflect.New(sh.typ).Interface().(Entity)
		require.True(t, ok, "shape %s for tag %q is not an Entity", sh.name, tag)

		got, ok := TagOf(e)
		require.True(t, ok)
		assert.Equal(t, tag, got, "shape %s", sh.name)
	}
}

func TestShapeName(t *testing.T) {
	name, ok := ShapeName("sr")
	assert.True(t, ok)
	assert.Equal(t, "SongStation", name)

	_, ok = ShapeName("zz")
	assert.False(t, ok)
}

func TestTagOfUntaggedAndNil(t *testing.T) {
	_, ok := TagOf(nil)
	assert.False(t, ok)

	// StationInfo satisfies Entity through its method but is not registered.
	_, ok = TagOf(&StationInfo{})
	assert.False(t, ok)
}

func TestBuildRegistryRejectsBadDeclarations(t *testing.T) {
	tests := []struct {
		name  string
		decls []shapeDecl
	}{
		{
			name:  "duplicate tag",
			decls: []shapeDecl{tagged[Artist]("x"), tagged[Label]("x")},
		},
		{
			name:  "duplicate shape",
			decls: []shapeDecl{tagged[Label]("l"), tagged[Label]("l2")},
		},
		{
			name:  "nested shape not registered",
			decls: []shapeDecl{tagged[Album]("a")},
		},
		{
			name:  "tagged shape without EntityKey",
			decls: []shapeDecl{tagged[Update]("u")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildRegistry(tt.decls...)
			assert.Error(t, err)
		})
	}
}

func TestMarshalEntityAddsTag(t *testing.T) {
	b, err := MarshalEntity(&Artist{Key: String("r1"), Name: String("Björk")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"r","key":"r1","name":"Björk"}`, string(b))

	_, err = MarshalEntity(&StationInfo{})
	assert.Error(t, err)
}

// Every tagged shape survives encode -> decode -> encode unchanged.
func TestEntityRoundTrip(t *testing.T) {
	fixtures := []string{
		albumJSON,
		`{"type":"ar","key":"ar1","albumName":"Kid A","price":999,"label":"Parlophone","upcs":["1"],"tracks":[{"key":"t1"}]}`,
		`{"type":"r","key":"r1","name":"Radiohead","albumCount":9,"hasRadio":true}`,
		`{"type":"rr","key":"rr1","artistName":"Radiohead","count":100}`,
		`{"type":"tr","key":"tr1","artistName":"Radiohead","trackKeys":[]}`,
		`{"type":"?a","key":"x1","availablePresets":[{"name":"more","on":true}],"restrictions":{"skips":6}}`,
		`{"type":"al","key":"al1","name":"Kid A","userKey":"s1","itemTrackKeys":["t1","t2"],"releaseDate":"2000-10-02"}`,
		`{"type":"rl","key":"rl1","name":"Radiohead","count":4}`,
		`{"type":"gr","key":"gr1","relatedGenreStationKeys":["gr2"]}`,
		`{"type":"h","key":"h1","user":{"key":"s1","firstName":"Ian"}}`,
		`{"type":"e","key":"e1","user":{"key":"s1"}}`,
		`{"type":"l","key":"l1","name":"Parlophone"}`,
		`{"type":"lr","key":"lr1","labelName":"Parlophone"}`,
		`{"type":"p","key":"p1","lastUpdated":"2012-03-04T05:06:07-0800","tracks":[{"key":"t1","duration":30}]}`,
		`{"type":"pr","key":"pr1","playlistName":"Mix","lastUpdated":1330866367}`,
		`{"type":"sr","key":"sr1","price":0.99,"radio":{"key":"sr2"},"isrcs":["US1"]}`,
		`{"type":"tp","key":"tp1","user":{"key":"s1","lastSongPlayed":{"key":"t1"}}}`,
		`{"type":"t","key":"t1","price":"0.99","radio":{"key":"sr1"},"streamRegions":["US","GB"]}`,
		`{"type":"s","key":"s1","firstName":"Ian","lastSongPlayTime":"2013-01-02T03:04:05+0000"}`,
		`{"type":"c","key":"c1","firstName":"Ian","user":{"key":"s1"},"albums":[{"key":"a1"}]}`,
	}

	seen := map[string]bool{}
	for _, fixture := range fixtures {
		e, err := DecodeEntity([]byte(fixture))
		require.NoError(t, err, fixture)

		tag, _ := TagOf(e)
		seen[tag] = true

		first, err := MarshalEntity(e)
		require.NoError(t, err)

		again, err := DecodeEntity(first)
		require.NoError(t, err, string(first))
		assert.IsType(t, e, again)

		second, err := MarshalEntity(again)
		require.NoError(t, err)
		assert.JSONEq(t, string(first), string(second), "tag %q", tag)
	}

	assert.Len(t, seen, len(Tags()), "every tag needs a fixture")
}

func TestEntitiesMarshalJSON(t *testing.T) {
	res := SearchResult{
		NumberResults: Int(2),
		Results: Entities{
			&Album{Key: String("a1")},
			&Track{Key: String("t1"), ISRCs: []string{}},
		},
	}
	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"number_results": 2,
		"results": [
			{"type":"a","key":"a1","trackKeys":null,"streamRegions":null,"upcs":null},
			{"type":"t","key":"t1","isrcs":[],"streamRegions":null,"tetherRegions":null}
		]
	}`, string(b))

	back, err := DecodeAs[SearchResult](b)
	require.NoError(t, err)
	require.Len(t, back.Results, 2)
	assert.Nil(t, back.Results[0].(*Album).TrackKeys)
	assert.NotNil(t, back.Results[1].(*Track).ISRCs)
}

func TestEntitiesMarshalNil(t *testing.T) {
	b, err := json.Marshal(SearchResult{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"results":null}`, string(b))
}
