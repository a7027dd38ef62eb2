package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/rdio/internal/output"
	"github.com/jfmyers9/rdio/pkg/rdio"
)

var searchCmd = &cobra.Command{
	Use:   "search QUERY...",
	Short: "Search the catalog",
	Long: `Search the Rdio catalog for albums, artists, labels, playlists,
tracks and users.

Examples:
  rdio search radiohead
  rdio search "kid a" --types Album --count 5
  rdio search idioteque --types Track -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest PREFIX...",
	Short: "Autocomplete a search query",
	Long: `Return catalog objects whose names start with PREFIX, as an
autocomplete box would show them.

Examples:
  rdio suggest radi
  rdio suggest "kid" --types Album,Artist --country US`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(suggestCmd)

	searchCmd.Flags().String("types", "Album,Artist,Track", "comma separated object types to search")
	searchCmd.Flags().Bool("never-or", false, "do not fall back to an OR query when the AND query finds nothing")
	addPageFlags(searchCmd)

	suggestCmd.Flags().String("types", "", "comma separated object types (default Album,Artist,Track,User)")
	suggestCmd.Flags().String("country", "", "ISO 3166-1 alpha-2 country code, e.g. US")
	addExtrasFlag(suggestCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	typesFlag, _ := cmd.Flags().GetString("types")
	types, err := parseObjectTypes(typesFlag, rdio.SearchTypes())
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	result, err := c.Catalog().Search(cmd.Context(), query, types, &rdio.SearchOptions{
		NeverOr: boolFlag(cmd, "never-or"),
		Start:   intFlag(cmd, "start"),
		Count:   intFlag(cmd, "count"),
		Extras:  extrasFlag(cmd),
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	result.Results, err = filterEntities(result.Results)
	if err != nil {
		return err
	}

	if printer.Format != output.FormatTable {
		return printer.Value(result)
	}
	if err := printer.Entities(result.Results); err != nil {
		return err
	}
	if total := rdio.Deref(result.NumberResults); total > len(result.Results) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d results\n", len(result.Results), total)
	}
	return nil
}

func runSuggest(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	typesFlag, _ := cmd.Flags().GetString("types")
	types, err := parseObjectTypes(typesFlag, rdio.SearchTypes())
	if err != nil {
		return err
	}
	country, _ := cmd.Flags().GetString("country")

	suggestions, err := c.Catalog().SearchSuggestions(cmd.Context(), strings.Join(args, " "), &rdio.SuggestionsOptions{
		Types:       types,
		CountryCode: strings.ToUpper(country),
		Extras:      extrasFlag(cmd),
	})
	if err != nil {
		return fmt.Errorf("suggest failed: %w", err)
	}

	return printEntities(suggestions)
}
