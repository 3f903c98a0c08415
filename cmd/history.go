package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepgenius/prepgenius/internal/api"
	"github.com/prepgenius/prepgenius/internal/screens/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent study activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		entries, err := e.newClient().History(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch history: %w", err)
		}

		printHistory(cmd.OutOrStdout(), entries, limit, time.Local)
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 0, "Maximum number of entries to show (0 for all)")
}

// printHistory writes kind, title and time for up to limit entries.
// Details are not shown.
func printHistory(out io.Writer, entries []api.HistoryEntry, limit int, loc *time.Location) {
	if len(entries) == 0 {
		fmt.Fprintln(out, history.EmptyText)
		return
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	sep := strings.Repeat("─", 60)
	for _, h := range entries {
		fmt.Fprintf(out, "[%s] %s\n", strings.ToUpper(h.Kind), h.Title)
		fmt.Fprintln(out, history.EntryTime(h, loc))
		fmt.Fprintln(out, sep)
	}
}
