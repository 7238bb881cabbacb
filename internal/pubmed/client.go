// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API: esearch for PMID lists
// and efetch for batched article metadata.
package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/pubmed-screen/internal/httputil"
	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute
// httptest servers.
var (
	esearchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	efetchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"
)

// RetrievalError wraps a transport, non-2xx, or malformed-body failure from
// an E-utilities call. It is fatal to the run that triggered it.
type RetrievalError struct {
	// Op names the failing call: "esearch" or "efetch".
	Op  string
	Err error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RetrievalError) Unwrap() error { return e.Err }

// Client issues E-utilities requests. Each request carries the configured
// contact email and tool name per the NCBI courtesy convention; neither
// affects results.
type Client struct {
	HTTPClient *http.Client
	Config     types.PubMedConfig
}

// NewClient builds a Client with a timeout-bound http.Client from cfg.
func NewClient(cfg types.PubMedConfig) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Config:     cfg,
	}
}

// Search sends query verbatim to esearch and returns the matching PMIDs in
// API order, at most maxResults of them. Zero matches is a valid outcome
// and returns an empty slice.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = c.Config.MaxResults
	}
	if maxResults <= 0 {
		maxResults = 200
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {query},
		"retmax":  {fmt.Sprintf("%d", maxResults)},
		"retmode": {"xml"},
	}
	c.addCourtesyParams(params)

	var result esearchResult
	if err := c.get(ctx, esearchBase, params, &result); err != nil {
		return nil, &RetrievalError{Op: "esearch", Err: err}
	}

	ids := result.IDs
	if len(ids) > maxResults {
		ids = ids[:maxResults]
	}
	return ids, nil
}

// Fetch retrieves metadata for all ids in a single efetch round trip. An
// empty id list returns an empty set without issuing a network call.
func (c *Client) Fetch(ctx context.Context, ids []string) (*ArticleSet, error) {
	if len(ids) == 0 {
		return &ArticleSet{}, nil
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}
	c.addCourtesyParams(params)

	var set ArticleSet
	if err := c.get(ctx, efetchBase, params, &set); err != nil {
		return nil, &RetrievalError{Op: "efetch", Err: err}
	}
	return &set, nil
}

// addCourtesyParams attaches email, tool, and api_key when configured.
func (c *Client) addCourtesyParams(params url.Values) {
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
	if c.Config.Tool != "" {
		params.Set("tool", c.Config.Tool)
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
}

// get performs one GET request and decodes the XML response body into out.
func (c *Client) get(ctx context.Context, base string, params url.Values, out any) error {
	reqURL := base + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, 0)
	if err != nil {
		return fmt.Errorf("E-utilities request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}

	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// esearch response XML structure.
type esearchResult struct {
	XMLName xml.Name `xml:"eSearchResult"`
	Count   int      `xml:"Count"`
	IDs     []string `xml:"IdList>Id"`
}
