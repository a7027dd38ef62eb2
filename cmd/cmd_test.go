package cmd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList(" , "))
	assert.Equal(t, []string{"a1", "t2"}, splitList("a1, t2,"))
}

func TestParseObjectTypes(t *testing.T) {
	types, err := parseObjectTypes("album, TRACK", rdio.SearchTypes())
	require.NoError(t, err)
	assert.Equal(t, []rdio.ObjectType{rdio.TypeAlbum, rdio.TypeTrack}, types)

	types, err = parseObjectTypes("", rdio.SearchTypes())
	require.NoError(t, err)
	assert.Nil(t, types)

	_, err = parseObjectTypes("Label", rdio.ChartTypes())
	assert.ErrorContains(t, err, `unknown type "Label"`)
}

func TestParseUpdateTypes(t *testing.T) {
	types, err := parseUpdateTypes("collection,12, Friend")
	require.NoError(t, err)
	assert.Equal(t, []rdio.UpdateType{
		rdio.UpdateTrackAddedToCollection,
		rdio.UpdateTrackSyncedToMobile,
		rdio.UpdateFriendAdded,
	}, types)

	_, err = parseUpdateTypes("likes")
	assert.Error(t, err)

	assert.Equal(t, "playlist", updateName(rdio.Int(1)))
	assert.Equal(t, "42", updateName(rdio.Int(42)))
	assert.Equal(t, "", updateName(nil))
}

func TestIsURL(t *testing.T) {
	assert.False(t, isURL("QitDlTJb"))
	assert.True(t, isURL("/artist/Radiohead/"))
	assert.True(t, isURL("https://www.rdio.com/artist/Radiohead/"))
}

func TestPrompt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		current string
		secret  bool
		want    string
		shown   string
	}{
		{"new value", "abc\n", "", false, "abc", "Key: "},
		{"keep current", "\n", "old", false, "old", "Key [old]: "},
		{"replace current", "new\n", "old", false, "new", "Key [old]: "},
		{"masked secret", "\n", "supersecret", true, "supersecret", "Key [*******cret]: "},
		{"eof keeps current", "", "old", false, "old", "Key [old]: "},
		{"eof without newline", "abc", "", false, "abc", "Key: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := prompt(bufio.NewReader(strings.NewReader(tt.input)), &out, "Key", tt.current, tt.secret)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.shown, out.String())
		})
	}
}

func TestMask(t *testing.T) {
	assert.Equal(t, "***", mask("abc"))
	assert.Equal(t, "**cdef", mask("abcdef"))
}

// fakeAPI answers API calls from canned results keyed by method name.
type fakeAPI struct {
	mu      sync.Mutex
	calls   []map[string]string
	results map[string]string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := make(map[string]string, len(r.PostForm))
	for k := range r.PostForm {
		params[k] = r.PostForm.Get(k)
	}
	f.mu.Lock()
	f.calls = append(f.calls, params)
	f.mu.Unlock()

	result, ok := f.results[params["method"]]
	if !ok {
		_, _ = w.Write([]byte(`{"status":"error","message":"unknown method"}`))
		return
	}
	_, _ = w.Write([]byte(`{"status":"ok","result":` + result + `}`))
}

func (f *fakeAPI) methods() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var methods []string
	for _, c := range f.calls {
		methods = append(methods, c["method"])
	}
	return methods
}

// setupAPI points the CLI at a fake API with an isolated home, working
// directory and journal.
func setupAPI(t *testing.T, results map[string]string) *fakeAPI {
	t.Helper()

	api := &fakeAPI{results: results}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("RDIO_BASE_URL", srv.URL+"/1/")
	t.Setenv("RDIO_CONSUMER_KEY", "test_key")
	t.Setenv("RDIO_CONSUMER_SECRET", "test_secret")
	t.Setenv("RDIO_ACCESS_TOKEN", "")
	t.Setenv("RDIO_ACCESS_TOKEN_SECRET", "")
	t.Setenv("RDIO_JOURNAL_PATH", filepath.Join(t.TempDir(), "journal.db"))

	return api
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags(rootCmd)
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag to its default between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

var chartResults = `[
	{"type":"a","key":"a1","name":"Kid A","artist":"Radiohead"},
	{"type":"t","key":"t1","name":"Idioteque","artist":"Radiohead"}
]`

func TestChartsCommand(t *testing.T) {
	api := setupAPI(t, map[string]string{"getTopCharts": chartResults})

	out, err := executeCommand(t, "charts", "--type", "track", "--count", "2")
	require.NoError(t, err, out)

	assert.Contains(t, out, "TYPE")
	assert.Contains(t, out, "Kid A")
	assert.Contains(t, out, "Idioteque")

	require.Len(t, api.calls, 1)
	assert.Equal(t, "Track", api.calls[0]["type"])
	assert.Equal(t, "2", api.calls[0]["count"])
	_, hasStart := api.calls[0]["start"]
	assert.False(t, hasStart, "unset flags are not sent")
}

func TestChartsAll(t *testing.T) {
	api := setupAPI(t, map[string]string{"getTopCharts": chartResults})

	out, err := executeCommand(t, "charts", "--type", "all", "-o", "json")
	require.NoError(t, err, out)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, 8)
	assert.Len(t, api.methods(), 4)
}

func TestSearchCommand(t *testing.T) {
	api := setupAPI(t, map[string]string{
		"search": `{"number_results":3,"results":[
			{"type":"r","key":"r1","name":"Radiohead"},
			{"type":"a","key":"a1","name":"Kid A","artist":"Radiohead"}
		]}`,
	})

	out, err := executeCommand(t, "search", "kid", "a", "--types", "album,artist")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Radiohead")
	assert.Contains(t, out, "2 of 3 results")
	assert.Equal(t, "kid a", api.calls[0]["query"])
	assert.Equal(t, "Album,Artist", api.calls[0]["types"])

	out, err = executeCommand(t, "search", "kid a", "--filter", `tag == "a"`, "-o", "yaml")
	require.NoError(t, err, out)
	assert.Contains(t, out, "key: a1")
	assert.NotContains(t, out, "key: r1")
}

func TestGetAndResolve(t *testing.T) {
	api := setupAPI(t, map[string]string{
		"get": `{"a1":{"type":"a","key":"a1","name":"Kid A"},"t1":{"type":"t","key":"t1","name":"Idioteque"}}`,
		"getObjectFromShortCode": `{"type":"a","key":"a1","name":"Kid A"}`,
		"getObjectFromUrl":       `{"type":"r","key":"r1","name":"Radiohead"}`,
	})

	out, err := executeCommand(t, "get", "a1,t1")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Kid A")
	assert.Contains(t, out, "Idioteque")
	assert.Equal(t, "a1,t1", api.calls[0]["keys"])

	out, err = executeCommand(t, "resolve", "QitDlTJb")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Kid A")

	out, err = executeCommand(t, "resolve", "/artist/Radiohead/")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Radiohead")

	assert.Equal(t, []string{"get", "getObjectFromShortCode", "getObjectFromUrl"}, api.methods())
}

func TestPlaylistsCommand(t *testing.T) {
	setupAPI(t, map[string]string{
		"getPlaylists": `{
			"owned":[{"type":"p","key":"p1","name":"Road Trip","owner":"Ian","length":12}],
			"collab":[],
			"subscribed":[{"type":"p","key":"p2","name":"Chill","owner":"Anthony"}]
		}`,
	})

	out, err := executeCommand(t, "playlists", "s1")
	require.NoError(t, err, out)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "owned"), lines[1])
	assert.Contains(t, lines[1], "12")
	assert.True(t, strings.HasPrefix(lines[2], "subscribed"), lines[2])

	_, err = executeCommand(t, "playlists", "s1", "--count", "5")
	assert.ErrorContains(t, err, "require --kind")
}

func TestActivityRejectsFilter(t *testing.T) {
	api := setupAPI(t, nil)

	_, err := executeCommand(t, "activity", "s1", "--filter", "true")
	assert.ErrorContains(t, err, "--filter is not supported")
	assert.Empty(t, api.methods())
}

func TestHistoryCommand(t *testing.T) {
	setupAPI(t, map[string]string{"getTopCharts": chartResults})

	_, err := executeCommand(t, "charts")
	require.NoError(t, err)
	_, err = executeCommand(t, "resolve", "QitDlTJb")
	require.Error(t, err)

	out, err := executeCommand(t, "history")
	require.NoError(t, err, out)
	assert.Contains(t, out, "getTopCharts")
	assert.Contains(t, out, "getObjectFromShortCode")
	assert.Contains(t, out, "unknown method")

	out, err = executeCommand(t, "history", "--status", "ok", "-o", "json")
	require.NoError(t, err, out)
	var calls []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &calls))
	require.Len(t, calls, 1)
	assert.Equal(t, "getTopCharts", calls[0]["method"])

	out, err = executeCommand(t, "history", "prune", "--older-than", "1h")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Deleted 0 calls")
	assert.Contains(t, out, "2 remaining")
}

func TestMissingCredentials(t *testing.T) {
	setupAPI(t, nil)
	t.Setenv("RDIO_CONSUMER_KEY", "")

	_, err := executeCommand(t, "charts")
	assert.ErrorContains(t, err, "no Rdio credentials configured")
}

func TestInvalidOutputFormat(t *testing.T) {
	setupAPI(t, nil)

	_, err := executeCommand(t, "charts", "-o", "xml")
	assert.ErrorContains(t, err, "output.format")
}
