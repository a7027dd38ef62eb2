package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/rdio/internal/output"
	"github.com/jfmyers9/rdio/pkg/rdio"
)

var playlistsCmd = &cobra.Command{
	Use:   "playlists USER",
	Short: "List a user's playlists",
	Long: `List the playlists USER owns, collaborates on and subscribes to.

With --kind only one kind is listed, and --sort, --start and --count
page through it.

Examples:
  rdio playlists s1234
  rdio playlists s1234 --kind owned --sort name --count 20`,
	Args: cobra.ExactArgs(1),
	RunE: runPlaylists,
}

func init() {
	rootCmd.AddCommand(playlistsCmd)

	playlistsCmd.Flags().StringP("kind", "k", "", "owned, collab or subscribed (default all)")
	playlistsCmd.Flags().String("sort", "", "lastUpdated or name (requires --kind)")
	playlistsCmd.Flags().Bool("ordered", false, "list owned playlists in the user's custom order")
	addPageFlags(playlistsCmd)
}

func runPlaylists(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}
	user := args[0]

	kind, _ := cmd.Flags().GetString("kind")
	sort, _ := cmd.Flags().GetString("sort")

	if kind == "" {
		if sort != "" || cmd.Flags().Changed("start") || cmd.Flags().Changed("count") {
			return fmt.Errorf("--sort, --start and --count require --kind")
		}

		playlists, err := c.Playlists().GetPlaylists(cmd.Context(), user, &rdio.GetPlaylistsOptions{
			OrderedList: boolFlag(cmd, "ordered"),
			Extras:      extrasFlag(cmd),
		})
		if err != nil {
			return fmt.Errorf("failed to get playlists: %w", err)
		}
		return printPlaylistCollection(playlists)
	}

	list, err := c.Playlists().GetUserPlaylists(cmd.Context(), user, &rdio.UserPlaylistsOptions{
		Kind:   rdio.Kind(strings.ToLower(kind)),
		Start:  intFlag(cmd, "start"),
		Count:  intFlag(cmd, "count"),
		Sort:   rdio.Sort(sort),
		Extras: extrasFlag(cmd),
	})
	if err != nil {
		return fmt.Errorf("failed to get playlists: %w", err)
	}

	list, err = filterPlaylists(list)
	if err != nil {
		return err
	}
	if printer.Format != output.FormatTable {
		return printer.Value(rdio.Entities(entitiesOf(list)))
	}
	return printer.Table(playlistHeaders, playlistRows(kind, list))
}

var playlistHeaders = []string{"kind", "key", "name", "owner", "tracks"}

func printPlaylistCollection(pc *rdio.PlaylistCollection) error {
	var err error
	if pc.Owned, err = filterPlaylists(pc.Owned); err != nil {
		return err
	}
	if pc.Collab, err = filterPlaylists(pc.Collab); err != nil {
		return err
	}
	if pc.Subscribed, err = filterPlaylists(pc.Subscribed); err != nil {
		return err
	}

	if printer.Format != output.FormatTable {
		return printer.Value(pc)
	}

	var rows [][]string
	rows = append(rows, playlistRows(string(rdio.KindOwned), pc.Owned)...)
	rows = append(rows, playlistRows(string(rdio.KindCollab), pc.Collab)...)
	rows = append(rows, playlistRows(string(rdio.KindSubscribed), pc.Subscribed)...)
	return printer.Table(playlistHeaders, rows)
}

func playlistRows(kind string, list []*rdio.Playlist) [][]string {
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		tracks := ""
		if p.Length != nil {
			tracks = strconv.Itoa(*p.Length)
		}
		rows = append(rows, []string{
			kind,
			rdio.Deref(p.Key),
			rdio.Deref(p.Name),
			rdio.Deref(p.Owner),
			tracks,
		})
	}
	return rows
}

// filterPlaylists applies --filter to a list of playlists.
func filterPlaylists(list []*rdio.Playlist) ([]*rdio.Playlist, error) {
	if resultFilter == nil {
		return list, nil
	}

	matched, err := resultFilter.Apply(entitiesOf(list))
	if err != nil {
		return nil, err
	}

	out := make([]*rdio.Playlist, 0, len(matched))
	for _, e := range matched {
		out = append(out, e.(*rdio.Playlist))
	}
	return out, nil
}
