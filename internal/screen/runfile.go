// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// RunFile is the on-disk representation of one completed screening run.
// Saving a run keeps the included records alongside the query that produced
// them, so a result set can be inspected later without re-querying the API.
type RunFile struct {
	Query   string              `yaml:"query"`
	Config  RunFileConfig       `yaml:"config"`
	Records []types.PaperRecord `yaml:"records"`
	Summary RunSummary          `yaml:"summary"`
}

// RunFileConfig stores the settings that produced the results.
type RunFileConfig struct {
	MaxResults int `yaml:"max_results"`
}

// RunSummary stores result statistics and a timestamp.
type RunSummary struct {
	Found     int       `yaml:"found"`
	Included  int       `yaml:"included"`
	Skipped   int       `yaml:"skipped"`
	Timestamp time.Time `yaml:"timestamp"`
}

// WriteRunFile saves the query, configuration, and results of a run to a
// YAML file.
func WriteRunFile(path, query string, maxResults int, res Result) error {
	rf := RunFile{
		Query:   query,
		Config:  RunFileConfig{MaxResults: maxResults},
		Records: res.Records,
		Summary: RunSummary{
			Found:     res.Found,
			Included:  len(res.Records),
			Skipped:   res.Skipped,
			Timestamp: time.Now(),
		},
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling run file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadRunFile loads a previously saved run file from disk.
func ReadRunFile(path string) (*RunFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run file: %w", err)
	}
	var rf RunFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing run file %s: %w", path, err)
	}
	return &rf, nil
}
