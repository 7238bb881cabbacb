// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pubmed-screen/internal/runlog"
	"github.com/pdiddy/pubmed-screen/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past screening runs",
	Long: `History prints the run log: one line per completed fetch, newest first,
with the query and its result counts.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to show")
	historyCmd.Flags().String("log-db", defaultLogDB, "SQLite run log location")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("log-db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	store, err := runlog.Open(types.RunLogConfig{Path: dbPath})
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RAN AT\tQUERY\tFOUND\tINCLUDED\tSKIPPED")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\n",
			e.RanAt.Local().Format(time.DateTime), e.Query, e.Found, e.Included, e.Skipped)
	}
	return w.Flush()
}
