package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

var chartsCmd = &cobra.Command{
	Use:   "charts",
	Short: "Show the site-wide top charts",
	Long: `Show the most popular albums, artists, playlists or tracks.

With --type all every chart is fetched at once and the results are
listed one chart after another.

Examples:
  rdio charts
  rdio charts --type Track --count 20
  rdio charts --type all --count 5`,
	Args: cobra.NoArgs,
	RunE: runCharts,
}

var releasesCmd = &cobra.Command{
	Use:   "releases",
	Short: "Show new album releases",
	Long: `Show albums released in a timeframe: thisweek, lastweek, twoweeks
or overview.

Examples:
  rdio releases
  rdio releases --time lastweek --count 10`,
	Args: cobra.NoArgs,
	RunE: runReleases,
}

var rotationCmd = &cobra.Command{
	Use:   "rotation [USER]",
	Short: "Show albums or artists in heavy rotation",
	Long: `Show the albums or artists played most by USER, by USER's friends
with --friends, or across the whole site when USER is omitted.

Examples:
  rdio rotation
  rdio rotation s1234 --type artists
  rdio rotation s1234 --friends --count 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRotation,
}

func init() {
	rootCmd.AddCommand(chartsCmd)
	rootCmd.AddCommand(releasesCmd)
	rootCmd.AddCommand(rotationCmd)

	chartsCmd.Flags().StringP("type", "t", "Album", "chart type: Album, Artist, Playlist, Track or all")
	addPageFlags(chartsCmd)

	releasesCmd.Flags().String("time", "", "timeframe: thisweek, lastweek, twoweeks or overview")
	addPageFlags(releasesCmd)

	rotationCmd.Flags().StringP("type", "t", "", "albums or artists (default both)")
	rotationCmd.Flags().Bool("friends", false, "show the rotation of USER's friends")
	rotationCmd.Flags().Int("limit", 0, "maximum number of items per source")
	addPageFlags(rotationCmd)
}

func runCharts(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	typeFlag, _ := cmd.Flags().GetString("type")
	var types []rdio.ObjectType
	if strings.EqualFold(typeFlag, "all") {
		types = rdio.ChartTypes()
	} else {
		types, err = parseObjectTypes(typeFlag, rdio.ChartTypes())
		if err != nil {
			return err
		}
	}
	if len(types) == 0 {
		return fmt.Errorf("--type is required")
	}

	opts := &rdio.PageOptions{
		Start:  intFlag(cmd, "start"),
		Count:  intFlag(cmd, "count"),
		Extras: extrasFlag(cmd),
	}

	charts, err := fetchCharts(cmd.Context(), c, types, opts)
	if err != nil {
		return err
	}

	var all []rdio.Entity
	for _, chart := range charts {
		all = append(all, chart...)
	}
	return printEntities(all)
}

// fetchCharts fetches one chart per type concurrently. Results keep the
// order of types.
func fetchCharts(ctx context.Context, c *rdio.Client, types []rdio.ObjectType, opts *rdio.PageOptions) ([][]rdio.Entity, error) {
	charts := make([][]rdio.Entity, len(types))

	g, ctx := errgroup.WithContext(ctx)
	for i, typ := range types {
		g.Go(func() error {
			chart, err := c.Activity().GetTopCharts(ctx, typ, opts)
			if err != nil {
				return fmt.Errorf("failed to get %s chart: %w", typ, err)
			}
			logger.Debug().Str("type", string(typ)).Int("count", len(chart)).Msg("Fetched chart")
			charts[i] = chart
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return charts, nil
}

func runReleases(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	timeFlag, _ := cmd.Flags().GetString("time")
	albums, err := c.Activity().GetNewReleases(cmd.Context(), &rdio.NewReleasesOptions{
		Time:   rdio.Timeframe(strings.ToLower(timeFlag)),
		Start:  intFlag(cmd, "start"),
		Count:  intFlag(cmd, "count"),
		Extras: extrasFlag(cmd),
	})
	if err != nil {
		return fmt.Errorf("failed to get new releases: %w", err)
	}

	return printEntities(entitiesOf(albums))
}

func runRotation(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	var user string
	if len(args) > 0 {
		user = args[0]
	}
	friends := boolFlag(cmd, "friends")
	if friends != nil && *friends && user == "" {
		return fmt.Errorf("--friends requires a USER")
	}
	typeFlag, _ := cmd.Flags().GetString("type")

	items, err := c.Activity().GetHeavyRotation(cmd.Context(), &rdio.HeavyRotationOptions{
		User:    user,
		Type:    rdio.RotationType(strings.ToLower(typeFlag)),
		Friends: friends,
		Limit:   intFlag(cmd, "limit"),
		Start:   intFlag(cmd, "start"),
		Count:   intFlag(cmd, "count"),
		Extras:  extrasFlag(cmd),
	})
	if err != nil {
		return fmt.Errorf("failed to get heavy rotation: %w", err)
	}

	return printEntities(items)
}
