// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package screen runs the search, fetch, extract, classify pipeline and
// aggregates the papers that carry at least one industry-affiliated author.
package screen

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pubmed-screen/internal/classify"
	"github.com/pdiddy/pubmed-screen/internal/extract"
	"github.com/pdiddy/pubmed-screen/internal/pubmed"
	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// Stage identifies where the pipeline currently is, and on failure, where
// it stopped.
type Stage int

const (
	StageIdle Stage = iota
	StageSearching
	StageFetching
	StageExtracting
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageSearching:
		return "searching"
	case StageFetching:
		return "fetching"
	case StageExtracting:
		return "extracting"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// StageError is a fatal pipeline failure annotated with the stage that
// produced it. Only retrieval failures become StageErrors; per-article
// extraction problems are absorbed into Result.Skipped.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Client is the slice of the PubMed API the pipeline needs. Tests supply a
// mock; production uses *pubmed.Client.
type Client interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
	Fetch(ctx context.Context, ids []string) (*pubmed.ArticleSet, error)
}

// Result is the terminal state of a successful run.
type Result struct {
	// Records holds only the papers with a non-empty company set, in
	// document order.
	Records []types.PaperRecord

	// Found is the number of PMIDs the search returned.
	Found int

	// Skipped counts article fragments dropped for structural problems.
	Skipped int
}

// Run executes one pipeline invocation: a single search, a single batched
// fetch, then per-article extraction and classification. Debug output for
// stage transitions and skips goes to w (use io.Discard to silence it).
//
// Retrieval failures abort the run with a *StageError and no partial
// output. A malformed article fragment never does; it is counted in
// Result.Skipped and the remaining batch proceeds.
func Run(ctx context.Context, client Client, clf *classify.Classifier, query string, maxResults int, w io.Writer) (Result, error) {
	fmt.Fprintf(w, "stage: %s (query: %q)\n", StageSearching, query)
	ids, err := client.Search(ctx, query, maxResults)
	if err != nil {
		return Result{}, &StageError{Stage: StageSearching, Err: err}
	}
	fmt.Fprintf(w, "found %d PMIDs\n", len(ids))

	result := Result{Found: len(ids)}
	if len(ids) == 0 {
		fmt.Fprintf(w, "stage: %s (no matches)\n", StageDone)
		return result, nil
	}

	fmt.Fprintf(w, "stage: %s (%d articles, one batch)\n", StageFetching, len(ids))
	set, err := client.Fetch(ctx, ids)
	if err != nil {
		return Result{}, &StageError{Stage: StageFetching, Err: err}
	}

	fmt.Fprintf(w, "stage: %s\n", StageExtracting)
	seen := make(map[string]bool)
	for _, article := range set.Articles {
		rec, err := extract.ExtractRecord(article, clf)
		if err != nil {
			result.Skipped++
			fmt.Fprintf(w, "  %v\n", err)
			continue
		}
		// A PMID never repeats within one run's output.
		if seen[rec.PMID] {
			result.Skipped++
			fmt.Fprintf(w, "  skipping article: duplicate PMID %s\n", rec.PMID)
			continue
		}
		seen[rec.PMID] = true

		if !rec.HasNonAcademicAuthor() {
			fmt.Fprintf(w, "  %s: no non-academic authors\n", rec.PMID)
			continue
		}
		result.Records = append(result.Records, rec)
	}

	fmt.Fprintf(w, "stage: %s (%d of %d included, %d skipped)\n",
		StageDone, len(result.Records), len(set.Articles), result.Skipped)
	return result, nil
}
