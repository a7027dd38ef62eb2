package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfmyers9/rdio/internal/journal"
	"github.com/jfmyers9/rdio/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent API calls from the journal",
	Long: `Show the API calls recorded in the local journal, newest first.

Each call has a status:
  ok         the server answered with a result
  error      the server answered with an error message
  malformed  the response was not a valid envelope
  failed     no response was received

Examples:
  rdio history
  rdio history --method search --limit 5
  rdio history --status error -o json`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old calls from the journal",
	Long: `Delete journal entries older than --older-than. The default is the
configured retention (journal.retention, 720h unless set).

Examples:
  rdio history prune
  rdio history prune --older-than 24h`,
	Args: cobra.NoArgs,
	RunE: runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "maximum number of calls (0=all)")
	historyCmd.Flags().String("method", "", "only calls of this API method")
	historyCmd.Flags().String("status", "", "only calls with this status: ok, error, malformed or failed")

	historyPruneCmd.Flags().Duration("older-than", 0, "delete calls older than this (default journal.retention)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := requireNoFilter(cmd); err != nil {
		return err
	}

	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}

	limit, _ := cmd.Flags().GetInt("limit")
	method, _ := cmd.Flags().GetString("method")
	status, _ := cmd.Flags().GetString("status")

	calls, err := j.Recent(cmd.Context(), journal.Filter{
		Method: method,
		Status: status,
		Limit:  limit,
	})
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	if printer.Format != output.FormatTable {
		return printer.Value(calls)
	}

	rows := make([][]string, 0, len(calls))
	for _, c := range calls {
		rows = append(rows, []string{
			c.Started.Local().Format(time.DateTime),
			c.Method,
			c.Status,
			c.Duration.Round(time.Millisecond).String(),
			strconv.Itoa(c.Bytes),
			c.Message,
		})
	}
	return printer.Table([]string{"started", "method", "status", "duration", "bytes", "message"}, rows)
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	olderThan, _ := cmd.Flags().GetDuration("older-than")
	if !cmd.Flags().Changed("older-than") {
		olderThan = cfg.Journal.Retention
	}
	if olderThan <= 0 {
		return fmt.Errorf("--older-than must be positive, got %s", olderThan)
	}

	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}

	deleted, err := j.Cleanup(cmd.Context(), olderThan)
	if err != nil {
		return fmt.Errorf("failed to prune journal: %w", err)
	}

	remaining, err := j.Count(cmd.Context(), "")
	if err != nil {
		return fmt.Errorf("failed to count journal entries: %w", err)
	}

	logger.Info().Int64("deleted", deleted).Int("remaining", remaining).Msg("Pruned journal")
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d calls older than %s, %d remaining\n", deleted, olderThan, remaining)
	return nil
}
