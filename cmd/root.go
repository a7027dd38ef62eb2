/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jfmyers9/rdio/internal/config"
	"github.com/jfmyers9/rdio/internal/filter"
	"github.com/jfmyers9/rdio/internal/journal"
	"github.com/jfmyers9/rdio/internal/logging"
	"github.com/jfmyers9/rdio/internal/output"
	"github.com/jfmyers9/rdio/pkg/rdio"
)

// Version information (set via SetVersion from main)
var (
	version   = "dev"
	buildTime = "unknown"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       = zerolog.Nop()
	logCloser    io.Closer
	callJournal  *journal.Journal
	client       *rdio.Client
	printer      *output.Printer
	resultFilter *filter.Filter

	// Global flags
	outputFormat string
	filterExpr   string
	outputWidth  int
	logLevel     string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rdio",
	Short: "Command line client for the Rdio web API",
	Long: `rdio queries the Rdio music catalog from the command line.

It searches the catalog, lists charts and new releases, resolves keys,
short codes and URLs to objects, and reads playlists and activity.
Every call is recorded in a local journal that 'rdio history' shows.

Results print as a table by default; use --output json or --output yaml
for every field, and --filter to select results with an expression:

  rdio search "kid a" --filter 'tag == "a" and icontains(artist, "radiohead")'

Credentials come from ~/.config/rdio/config.yaml (see 'rdio configure'),
a .env file, or the RDIO_CONSUMER_KEY and RDIO_CONSUMER_SECRET variables.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version reported by --version.
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built: %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnFinalize(closeApp)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ~/.config/rdio/config.yaml)")
	pf.StringVarP(&outputFormat, "output", "o", "", "output format: table, json or yaml (overrides config)")
	pf.StringVar(&filterExpr, "filter", "", "only print results matching an expression")
	pf.IntVarP(&outputWidth, "width", "w", 0, "table width in columns (0=unlimited, overrides config)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
}

// initializeApp loads configuration and prepares the logger, printer and
// filter. The API client and journal are opened on first use.
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output.Format = strings.ToLower(outputFormat)
	}
	if flags.Changed("width") {
		cfg.Output.Width = outputWidth
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logCloser, err = logging.Open(cfg.Logging.File, cfg.Logging.Level)
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	printer = &output.Printer{
		W:      cmd.OutOrStdout(),
		Format: format,
		Width:  cfg.Output.Width,
	}

	resultFilter = nil
	if filterExpr != "" {
		resultFilter, err = filter.Compile(filterExpr)
		if err != nil {
			return err
		}
	}

	return nil
}

// closeApp releases everything initializeApp and the lazy openers created.
func closeApp() {
	if callJournal != nil {
		if err := callJournal.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close journal")
		}
		callJournal = nil
	}
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
	client = nil
}

// apiClient returns the Rdio client, creating it on first use. Calls go
// through the journal when it is enabled.
func apiClient() (*rdio.Client, error) {
	if client != nil {
		return client, nil
	}

	if !cfg.HasCredentials() {
		return nil, errors.New("no Rdio credentials configured: run 'rdio configure' or set RDIO_CONSUMER_KEY and RDIO_CONSUMER_SECRET")
	}
	if (cfg.Rdio.AccessToken == "") != (cfg.Rdio.AccessTokenSecret == "") {
		return nil, errors.New("access token and access token secret must be set together")
	}

	clientCfg := cfg.ClientConfig()
	clientCfg.Logger = logging.SDKAdapter{Logger: logger}

	var transport rdio.Transport = &rdio.HTTPTransport{
		Client: &http.Client{Timeout: cfg.Rdio.Timeout},
		Signer: rdio.NewSigner(clientCfg.ConsumerKey, clientCfg.ConsumerSecret,
			clientCfg.AccessToken, clientCfg.AccessTokenSecret),
	}
	if cfg.Journal.Enabled {
		j, err := openJournal()
		if err != nil {
			// Calls still work without the journal
			logger.Warn().Err(err).Msg("Journal unavailable, calls will not be recorded")
		} else {
			pruneJournal(j)
			transport = j.Wrap(transport, logger)
		}
	}
	clientCfg.Transport = transport

	c, err := rdio.NewClient(clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	logger.Debug().
		Str("base_url", cfg.Rdio.BaseURL).
		Bool("journal", cfg.Journal.Enabled).
		Msg("Client ready")

	client = c
	return client, nil
}

// openJournal opens the call journal on first use.
func openJournal() (*journal.Journal, error) {
	if callJournal != nil {
		return callJournal, nil
	}

	path := cfg.Journal.Path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	j, err := journal.Open(path)
	if err != nil {
		return nil, err
	}

	callJournal = j
	return callJournal, nil
}

// pruneJournal drops calls older than the configured retention.
func pruneJournal(j *journal.Journal) {
	if cfg.Journal.Retention <= 0 {
		return
	}

	deleted, err := j.Cleanup(context.Background(), cfg.Journal.Retention)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to clean up journal")
	} else if deleted > 0 {
		logger.Debug().Int64("deleted", deleted).Msg("Cleaned up old journal entries")
	}
}
