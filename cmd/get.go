package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/rdio/pkg/rdio"
)

var getCmd = &cobra.Command{
	Use:   "get KEY...",
	Short: "Fetch objects by key",
	Long: `Fetch catalog objects by key. Keys may be given as separate
arguments or comma separated, and may be of any type.

Examples:
  rdio get a171827 r91318
  rdio get t2714517 --extras isrcs,playCount -o json
  rdio get a171827 --options '{"defaultToUserCollection": true}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve SHORTCODE|URL",
	Short: "Resolve a short code or site URL to an object",
	Long: `Resolve a short code such as QitDlTJb, or a site URL or path such
as /artist/Radiohead/album/OK_Computer/, to the object it names.

Examples:
  rdio resolve QitDlTJb
  rdio resolve https://www.rdio.com/artist/Radiohead/album/OK_Computer/`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(resolveCmd)

	getCmd.Flags().String("options", "", "JSON object of request options")
	addExtrasFlag(getCmd)
	addExtrasFlag(resolveCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	var keys []string
	for _, arg := range args {
		keys = append(keys, splitList(arg)...)
	}

	opts := &rdio.GetOptions{Extras: extrasFlag(cmd)}
	if raw, _ := cmd.Flags().GetString("options"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &opts.Options); err != nil {
			return fmt.Errorf("invalid --options: %w", err)
		}
	}

	objects, err := c.Core().Get(cmd.Context(), keys, opts)
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}

	return printEntities(objects)
}

func runResolve(cmd *cobra.Command, args []string) error {
	c, err := apiClient()
	if err != nil {
		return err
	}

	ref := strings.TrimSpace(args[0])
	var obj rdio.Entity
	if isURL(ref) {
		obj, err = c.Core().GetObjectFromURL(cmd.Context(), ref, extrasFlag(cmd))
	} else {
		obj, err = c.Core().GetObjectFromShortCode(cmd.Context(), ref, extrasFlag(cmd))
	}
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", ref, err)
	}

	return printEntities([]rdio.Entity{obj})
}

// isURL reports whether ref is a URL or path rather than a short code.
func isURL(ref string) bool {
	return strings.Contains(ref, "/")
}
