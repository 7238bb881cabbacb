// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package screen

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/pubmed-screen/pkg/types"
)

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{
			PMID:               "11111",
			Title:              "Checkpoint inhibition in solid tumors",
			PubDate:            "2023-01-05",
			NonAcademicAuthors: []string{"Linh Nguyen", "Priya Rao"},
			Companies:          []string{"Acme Therapeutics Inc", "BlueBird Pharma"},
			CorrespondingEmail: "l.nguyen@acmetx.com",
		},
		{
			PMID:      "22222",
			Title:     "A title, with a comma",
			PubDate:   "2001 Jul-Aug",
			Companies: []string{"CureVac GmbH"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want header + 2", len(rows))
	}

	wantHeader := []string{"PubmedID", "Title", "Publication Date",
		"Non-academic Author(s)", "Company Affiliation(s)", "Corresponding Author Email"}
	for i, h := range wantHeader {
		if rows[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, rows[0][i], h)
		}
	}

	if rows[1][3] != "Linh Nguyen; Priya Rao" {
		t.Errorf("authors column = %q, want semicolon-joined", rows[1][3])
	}
	if rows[1][4] != "Acme Therapeutics Inc; BlueBird Pharma" {
		t.Errorf("companies column = %q", rows[1][4])
	}
	// Commas inside fields must survive the round trip.
	if rows[2][1] != "A title, with a comma" {
		t.Errorf("title = %q, comma should be preserved", rows[2][1])
	}
	if rows[2][5] != "" {
		t.Errorf("missing email should be an empty column, got %q", rows[2][5])
	}
}

func TestWriteCSVNoRecords(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Errorf("len(rows) = %d, want header only", len(rows))
	}
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := SaveCSV(path, sampleRecords()); err != nil {
		t.Fatalf("SaveCSV: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "PubmedID,") {
		t.Errorf("file should start with the header, got %q", string(data)[:20])
	}
}

func TestFormatList(t *testing.T) {
	var buf bytes.Buffer
	FormatList(sampleRecords(), &buf)
	s := buf.String()

	for _, want := range []string{
		"11111: Checkpoint inhibition in solid tumors (2023-01-05)",
		"Linh Nguyen, Priya Rao",
		"Acme Therapeutics Inc, BlueBird Pharma",
		"l.nguyen@acmetx.com",
		"2 papers",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("output should contain %q\ngot:\n%s", want, s)
		}
	}
}

func TestFormatListEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatList(nil, &buf)
	if !strings.Contains(buf.String(), "No papers") {
		t.Errorf("empty output = %q", buf.String())
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(sampleRecords(), &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var parsed []types.PaperRecord
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("len(parsed) = %d, want 2", len(parsed))
	}
	if parsed[0].PMID != "11111" {
		t.Errorf("PMID = %q", parsed[0].PMID)
	}
}

func TestRunFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	res := Result{Records: sampleRecords(), Found: 5, Skipped: 1}

	if err := WriteRunFile(path, "cancer immunotherapy", 50, res); err != nil {
		t.Fatalf("WriteRunFile: %v", err)
	}

	rf, err := ReadRunFile(path)
	if err != nil {
		t.Fatalf("ReadRunFile: %v", err)
	}
	if rf.Query != "cancer immunotherapy" {
		t.Errorf("Query = %q", rf.Query)
	}
	if rf.Config.MaxResults != 50 {
		t.Errorf("MaxResults = %d", rf.Config.MaxResults)
	}
	if len(rf.Records) != 2 || rf.Records[0].PMID != "11111" {
		t.Errorf("Records = %+v", rf.Records)
	}
	if rf.Summary.Found != 5 || rf.Summary.Included != 2 || rf.Summary.Skipped != 1 {
		t.Errorf("Summary = %+v", rf.Summary)
	}
	if rf.Summary.Timestamp.IsZero() {
		t.Error("Timestamp should be set")
	}
}

func TestReadRunFileMissing(t *testing.T) {
	if _, err := ReadRunFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
