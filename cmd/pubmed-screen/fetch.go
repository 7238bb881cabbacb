// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmed-screen/internal/classify"
	"github.com/pdiddy/pubmed-screen/internal/pubmed"
	"github.com/pdiddy/pubmed-screen/internal/runlog"
	"github.com/pdiddy/pubmed-screen/internal/screen"
	"github.com/pdiddy/pubmed-screen/pkg/types"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxResults = 200
	defaultUserAgent  = "pubmed-screen/0.1"
	toolName          = "pubmed-screen"
	defaultLogDB      = ".pubmed-screen/runs.db"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [query]",
	Short: "Search PubMed and screen results for industry-affiliated authors",
	Long: `Fetch runs the full pipeline: it sends the query to PubMed verbatim
(full E-utilities query syntax is supported), fetches the matching article
records in one batch, and keeps the papers where at least one author has a
pharmaceutical or biotech company affiliation.

Results print as a console listing by default; use --file for CSV output or
--json for machine-readable output. NCBI asks that automated clients identify
themselves, so a contact email is required: pass --email, set pubmed.email in
the config file, or create .secrets/contact-email.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringP("file", "f", "", "write results as CSV to this path instead of the console")
	fetchCmd.Flags().BoolP("debug", "d", false, "print pipeline progress to stderr")
	fetchCmd.Flags().String("email", "", "contact email sent to NCBI with each request")
	fetchCmd.Flags().Int("max-results", 0, "maximum number of PMIDs to retrieve (default 200)")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	fetchCmd.Flags().Bool("json", false, "output results as JSON")
	fetchCmd.Flags().String("save", "", "save the query and results as a YAML run file")
	fetchCmd.Flags().String("keywords", "", "YAML file overriding the built-in classification keywords")
	fetchCmd.Flags().String("log-db", defaultLogDB, "SQLite run log location")
	fetchCmd.Flags().Bool("no-log", false, "skip recording this run in the run log")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	query := args[0]

	email, _ := cmd.Flags().GetString("email")
	if email == "" {
		email = viper.GetString("pubmed.email")
	}
	email = secretDefault("contact-email", email)
	if email == "" {
		return fmt.Errorf("a contact email is required: pass --email, set pubmed.email in the config file, or create .secrets/contact-email")
	}

	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = defaultTimeout
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults <= 0 {
		maxResults = viper.GetInt("pubmed.max_results")
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	cfg := types.PubMedConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		Email:      email,
		Tool:       toolName,
		APIKey:     secretDefault("ncbi-api-key", viper.GetString("pubmed.api_key")),
		MaxResults: maxResults,
	}

	clf, err := loadClassifier(cmd)
	if err != nil {
		return err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	var progress io.Writer = io.Discard
	if debug {
		progress = os.Stderr
	}

	client := pubmed.NewClient(cfg)
	res, err := screen.Run(context.Background(), client, clf, query, maxResults, progress)
	if err != nil {
		return err
	}

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := screen.WriteRunFile(savePath, query, maxResults, res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Run saved to %s\n", savePath)
	}

	recordRun(cmd, query, res)

	outFile, _ := cmd.Flags().GetString("file")
	if outFile != "" {
		if err := screen.SaveCSV(outFile, res.Records); err != nil {
			return err
		}
		fmt.Printf("Results saved to %s\n", outFile)
		return nil
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return screen.FormatJSON(res.Records, os.Stdout)
	}

	screen.FormatList(res.Records, os.Stdout)
	return nil
}

// loadClassifier builds the classifier from the built-in keyword set, with an
// optional YAML override file.
func loadClassifier(cmd *cobra.Command) (*classify.Classifier, error) {
	path, _ := cmd.Flags().GetString("keywords")
	if path == "" {
		path = viper.GetString("classify.keywords")
	}
	if path == "" {
		return classify.NewClassifier(classify.DefaultKeywords()), nil
	}

	kw, err := classify.LoadKeywords(path)
	if err != nil {
		return nil, err
	}
	return classify.NewClassifier(kw), nil
}

// recordRun appends a summary row to the run log. Logging failures warn but
// never fail the run; the results have already been produced.
func recordRun(cmd *cobra.Command, query string, res screen.Result) {
	if noLog, _ := cmd.Flags().GetBool("no-log"); noLog {
		return
	}
	dbPath, _ := cmd.Flags().GetString("log-db")

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not create run log directory: %v\n", err)
			return
		}
	}

	store, err := runlog.Open(types.RunLogConfig{Path: dbPath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open run log: %v\n", err)
		return
	}
	defer store.Close()

	entry := runlog.Entry{
		Query:    query,
		RanAt:    time.Now(),
		Found:    res.Found,
		Included: len(res.Records),
		Skipped:  res.Skipped,
	}
	if err := store.Record(cmd.Context(), entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}
