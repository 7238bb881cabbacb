// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// csvHeader is the fixed output schema, one row per included record.
var csvHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

// WriteCSV writes the records as CSV to w, header first. Multi-valued
// columns are semicolon-joined.
func WriteCSV(w io.Writer, records []types.PaperRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.PMID,
			r.Title,
			r.PubDate,
			strings.Join(r.NonAcademicAuthors, "; "),
			strings.Join(r.Companies, "; "),
			r.CorrespondingEmail,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.PMID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the records as CSV to path.
func SaveCSV(path string, records []types.PaperRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatList writes a human-readable block per record to w.
func FormatList(records []types.PaperRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers with non-academic authors found.")
		return
	}

	for _, r := range records {
		fmt.Fprintf(w, "%s: %s (%s)\n", r.PMID, r.Title, r.PubDate)
		fmt.Fprintf(w, "  Authors:   %s\n", strings.Join(r.NonAcademicAuthors, ", "))
		fmt.Fprintf(w, "  Companies: %s\n", strings.Join(r.Companies, ", "))
		if r.CorrespondingEmail != "" {
			fmt.Fprintf(w, "  Email:     %s\n", r.CorrespondingEmail)
		}
		fmt.Fprintln(w, strings.Repeat("-", 80))
	}
	fmt.Fprintf(w, "%d papers\n", len(records))
}

// FormatJSON writes the records as indented JSON to w.
func FormatJSON(records []types.PaperRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
