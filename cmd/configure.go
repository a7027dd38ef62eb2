package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store Rdio API credentials",
	Long: `Store Rdio API credentials in the config file.

This command will prompt for:
1. Your application's consumer key and secret (required)
2. An OAuth access token and secret (optional, needed for calls made
   on behalf of a user such as collection and playlist changes)

Values already configured are kept when you press Enter. The file is
written to ~/.config/rdio/config.yaml unless --config names another.`,
	Args: cobra.NoArgs,
	RunE: runConfigure,
}

func init() {
	rootCmd.AddCommand(configureCmd)
}

func runConfigure(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Rdio Configuration")
	fmt.Fprintln(out, "==================")
	fmt.Fprintln(out)

	prompts := []struct {
		label  string
		value  *string
		secret bool
	}{
		{"Consumer key", &cfg.Rdio.ConsumerKey, false},
		{"Consumer secret", &cfg.Rdio.ConsumerSecret, true},
		{"Access token (optional)", &cfg.Rdio.AccessToken, false},
		{"Access token secret (optional)", &cfg.Rdio.AccessTokenSecret, true},
	}

	for _, p := range prompts {
		value, err := prompt(reader, out, p.label, *p.value, p.secret)
		if err != nil {
			return err
		}
		*p.value = value
	}

	// Validate inputs
	if !cfg.HasCredentials() {
		return errors.New("consumer key and secret are required")
	}
	if (cfg.Rdio.AccessToken == "") != (cfg.Rdio.AccessTokenSecret == "") {
		return errors.New("access token and access token secret must be set together")
	}

	path, err := cfg.Save(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(out, "\n✓ Credentials saved to %s\n", path)
	fmt.Fprintln(out, "\nTry 'rdio charts' to check they work.")

	return nil
}

// prompt reads one line for label. An empty answer keeps current. Secrets
// are shown masked.
func prompt(r *bufio.Reader, w io.Writer, label, current string, secret bool) (string, error) {
	if current != "" {
		shown := current
		if secret {
			shown = mask(current)
		}
		fmt.Fprintf(w, "%s [%s]: ", label, shown)
	} else {
		fmt.Fprintf(w, "%s: ", label)
	}

	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}

	if line = strings.TrimSpace(line); line != "" {
		return line, nil
	}
	return current, nil
}

// mask hides all but the last four characters of s.
func mask(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
