package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

func TestPadToWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "no padding when width is 0",
			input:    "Hello",
			width:    0,
			expected: "Hello",
		},
		{
			name:     "no padding when width is negative",
			input:    "Hello",
			width:    -1,
			expected: "Hello",
		},
		{
			name:     "pad short text with spaces",
			input:    "Hi",
			width:    10,
			expected: "Hi        ",
		},
		{
			name:     "exact width unchanged",
			input:    "Hello",
			width:    5,
			expected: "Hello",
		},
		{
			name:     "truncate long text with ellipsis",
			input:    "This is a very long string that needs truncation",
			width:    20,
			expected: "This is a very lo...",
		},
		{
			name:     "handle emoji correctly",
			input:    "🎵 Music",
			width:    15,
			expected: "🎵 Music       ", // emoji is 2 columns wide, so 8 total + 7 spaces
		},
		{
			name:     "handle unicode characters",
			input:    "日本語",
			width:    10,
			expected: "日本語    ",
		},
		{
			name:     "truncate unicode text",
			input:    "日本語とても長いテキスト",
			width:    10,
			expected: "日本語... ", // 日本語 is 6 columns, ... is 3, need 1 space
		},
		{
			name:     "empty string padding",
			input:    "",
			width:    5,
			expected: "     ",
		},
		{
			name:     "minimum width for truncation",
			input:    "Hello",
			width:    3,
			expected: "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := padToWidth(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("padToWidth(%q, %d) = %q, expected %q",
					tt.input, tt.width, result, tt.expected)
			}

			// Verify the result has the expected display width (if width > 0)
			if tt.width > 0 {
				resultWidth := runewidth.StringWidth(result)
				if resultWidth != tt.width {
					t.Errorf("padToWidth(%q, %d) produced width %d, expected %d",
						tt.input, tt.width, resultWidth, tt.width)
				}
			}
		})
	}
}

func TestFitColumns(t *testing.T) {
	tests := []struct {
		name    string
		natural []int
		total   int
		want    []int
	}{
		{"unlimited", []int{5, 20, 10}, 0, []int{5, 20, 10}},
		{"already fits", []int{5, 20, 10}, 60, []int{5, 20, 10}},
		{"shrinks widest first", []int{5, 20, 10}, 35, []int{5, 16, 10}},
		{"shrinks evenly", []int{5, 20, 10}, 25, []int{5, 8, 8}},
		{"stops at minimum", []int{5, 20, 10}, 5, []int{4, 4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitColumns(tt.natural, 2, tt.total))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "heavy rotation user station", humanize("HeavyRotationUserStation"))
	assert.Equal(t, "album", humanize("Album"))
	assert.Equal(t, "", humanize(""))
}

func testEntities() []rdio.Entity {
	return []rdio.Entity{
		&rdio.Album{Key: rdio.String("a1"), Name: rdio.String("Kid A"), Artist: rdio.String("Radiohead")},
		&rdio.User{Key: rdio.String("s1"), Profile: rdio.Profile{FirstName: rdio.String("Ian"), LastName: rdio.String("Rogers")}},
		&rdio.SongStation{StationInfo: rdio.StationInfo{Key: rdio.String("sr1")}, TrackName: rdio.String("Idioteque"), Artist: rdio.String("Radiohead")},
	}
}

func TestSummarize(t *testing.T) {
	list := testEntities()

	want := []Summary{
		{Type: "album", Tag: "a", Key: "a1", Name: "Kid A", Detail: "Radiohead"},
		{Type: "user", Tag: "s", Key: "s1", Name: "Ian Rogers"},
		{Type: "song station", Tag: "sr", Key: "sr1", Name: "Idioteque", Detail: "Radiohead"},
	}
	for i, e := range list {
		got, err := Summarize(e)
		require.NoError(t, err)
		assert.Equal(t, want[i], got)
	}
}

func TestPrinterTable(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: FormatTable}

	require.NoError(t, p.Entities(testEntities()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "TYPE          KEY  NAME        DETAIL", lines[0])
	assert.Equal(t, "album         a1   Kid A       Radiohead", lines[1])
	assert.Equal(t, "user          s1   Ian Rogers", lines[2])
	assert.Equal(t, "song station  sr1  Idioteque   Radiohead", lines[3])
}

func TestPrinterTableWidth(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: FormatTable, Width: 30}

	require.NoError(t, p.Table(
		[]string{"key", "name"},
		[][]string{{"t1", "Everything In Its Right Place (Live in France)"}},
	))

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 30, line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestPrinterJSON(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: FormatJSON}

	require.NoError(t, p.Entities(testEntities()[:1]))
	assert.JSONEq(t, `[{"type":"a","key":"a1","name":"Kid A","artist":"Radiohead","trackKeys":null,"streamRegions":null,"upcs":null}]`, buf.String())
}

func TestPrinterYAML(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: FormatYAML}

	require.NoError(t, p.Entities(testEntities()[:1]))
	out := buf.String()
	assert.Contains(t, out, "type: a\n")
	assert.Contains(t, out, "name: Kid A\n")
	assert.Contains(t, out, "artist: Radiohead\n")
}

func TestPrinterValue(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{W: &buf, Format: FormatTable}

	require.NoError(t, p.Value(map[string]int{"count": 3}))
	assert.JSONEq(t, `{"count":3}`, buf.String())
}
