package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-screen/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the NCBI E-utilities client.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// Email is the contact address sent with every request per the
	// E-utilities courtesy convention. It has no effect on results.
	Email string `json:"email" yaml:"email"`

	// Tool is the client identifier sent alongside Email (default "pubmed-screen").
	Tool string `json:"tool" yaml:"tool"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxResults bounds the number of PMIDs returned by a search (default 200).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// RunLogConfig holds settings for the local run log.
type RunLogConfig struct {
	// Path is the SQLite database file for run summaries. Empty disables logging.
	Path string `json:"path" yaml:"path"`
}
