package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/rdio/internal/output"
	"github.com/jfmyers9/rdio/pkg/rdio"
)

var activityCmd = &cobra.Command{
	Use:   "activity USER",
	Short: "Show a user's activity stream",
	Long: `Show recent activity of USER, of USER's friends (--scope friends),
or of everyone (--scope everyone), newest first.

Page back through older updates by passing the last id printed with
--last-id. --types restricts the updates by name or number:

  collection (0), playlist (1), friend (3), joined (5),
  track-comment (6), album-comment (7), artist-comment (8),
  playlist-comment (9), match (10), subscribed (11), synced (12)

Examples:
  rdio activity s1234
  rdio activity s1234 --scope friends --count 30
  rdio activity s1234 --types collection,playlist`,
	Args: cobra.ExactArgs(1),
	RunE: runActivity,
}

func init() {
	rootCmd.AddCommand(activityCmd)

	activityCmd.Flags().StringP("scope", "s", string(rdio.ScopeUser), "user, friends or everyone")
	activityCmd.Flags().Int("count", 0, fmt.Sprintf("maximum number of updates (at most %d)", rdio.MaxActivityCount))
	activityCmd.Flags().Int("last-id", 0, "only show updates older than this id")
	activityCmd.Flags().String("types", "", "comma separated update types")
	addExtrasFlag(activityCmd)
}

// updateNames are the short names of activity update types.
var updateNames = map[rdio.UpdateType]string{
	rdio.UpdateTrackAddedToCollection: "collection",
	rdio.UpdateTrackAddedToPlaylist:   "playlist",
	rdio.UpdateFriendAdded:            "friend",
	rdio.UpdateUserJoined:             "joined",
	rdio.UpdateCommentOnTrack:         "track-comment",
	rdio.UpdateCommentOnAlbum:         "album-comment",
	rdio.UpdateCommentOnArtist:        "artist-comment",
	rdio.UpdateCommentOnPlaylist:      "playlist-comment",
	rdio.UpdateTrackAddedViaMatch:     "match",
	rdio.UpdateUserSubscribed:         "subscribed",
	rdio.UpdateTrackSyncedToMobile:    "synced",
}

// parseUpdateTypes accepts update type names or numbers. Unknown numbers
// are passed through for the client to reject.
func parseUpdateTypes(s string) ([]rdio.UpdateType, error) {
	var types []rdio.UpdateType
	for _, item := range splitList(s) {
		if n, err := strconv.Atoi(item); err == nil {
			types = append(types, rdio.UpdateType(n))
			continue
		}

		found := false
		for t, name := range updateNames {
			if strings.EqualFold(item, name) {
				types = append(types, t)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown update type %q", item)
		}
	}
	return types, nil
}

func updateName(t *int) string {
	if t == nil {
		return ""
	}
	if name, ok := updateNames[rdio.UpdateType(*t)]; ok {
		return name
	}
	return strconv.Itoa(*t)
}

func runActivity(cmd *cobra.Command, args []string) error {
	if err := requireNoFilter(cmd); err != nil {
		return err
	}

	c, err := apiClient()
	if err != nil {
		return err
	}

	scope, _ := cmd.Flags().GetString("scope")
	typesFlag, _ := cmd.Flags().GetString("types")
	types, err := parseUpdateTypes(typesFlag)
	if err != nil {
		return err
	}

	stream, err := c.Activity().GetActivityStream(cmd.Context(), args[0], rdio.Scope(strings.ToLower(scope)), &rdio.ActivityStreamOptions{
		LastID: intFlag(cmd, "last-id"),
		Count:  intFlag(cmd, "count"),
		Types:  types,
		Extras: extrasFlag(cmd),
	})
	if err != nil {
		return fmt.Errorf("failed to get activity: %w", err)
	}

	if printer.Format != output.FormatTable {
		return printer.Value(stream)
	}

	rows := make([][]string, 0, len(stream.Updates))
	for _, u := range stream.Updates {
		date := ""
		if u.Date != nil {
			date = u.Date.Local().Format(time.DateTime)
		}
		owner := ""
		if u.Owner != nil {
			owner = strings.TrimSpace(rdio.Deref(u.Owner.FirstName) + " " + rdio.Deref(u.Owner.LastName))
		}
		rows = append(rows, []string{date, updateName(u.UpdateType), owner})
	}
	if err := printer.Table([]string{"date", "update", "by"}, rows); err != nil {
		return err
	}

	if stream.LastID != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "last id: %d\n", *stream.LastID)
	}
	return nil
}
