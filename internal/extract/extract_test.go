// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"testing"

	"github.com/pdiddy/pubmed-screen/internal/classify"
	"github.com/pdiddy/pubmed-screen/internal/pubmed"
)

func defaultClassifier() *classify.Classifier {
	return classify.NewClassifier(classify.DefaultKeywords())
}

func TestExtractRecordMissingPMID(t *testing.T) {
	_, err := ExtractRecord(pubmed.Article{Title: "Orphan fragment"}, defaultClassifier())

	var skip *SkipError
	if !errors.As(err, &skip) {
		t.Fatalf("err = %v, want *SkipError", err)
	}
}

func TestExtractRecordMixedAffiliations(t *testing.T) {
	article := pubmed.Article{
		PMID:  "11111",
		Title: "Checkpoint inhibition in solid tumors",
		PubDate: pubmed.PubDate{
			Year: "2023", Month: "Jan", Day: "5",
		},
		Authors: []pubmed.Author{
			{
				ForeName: "Chidi", LastName: "Okafor",
				Affiliations: []string{"Dept. of Oncology, Acme University"},
			},
			{
				ForeName: "Linh", LastName: "Nguyen",
				Affiliations: []string{"Acme Therapeutics Inc, Boston. l.nguyen@acmetx.com"},
			},
		},
	}

	rec, err := ExtractRecord(article, defaultClassifier())
	if err != nil {
		t.Fatalf("ExtractRecord: %v", err)
	}

	if rec.PMID != "11111" {
		t.Errorf("PMID = %q", rec.PMID)
	}
	if rec.PubDate != "2023-01-05" {
		t.Errorf("PubDate = %q, want 2023-01-05", rec.PubDate)
	}
	if len(rec.Authors) != 2 {
		t.Fatalf("len(Authors) = %d, want 2", len(rec.Authors))
	}
	if !rec.HasNonAcademicAuthor() {
		t.Fatal("record with an industry author should report HasNonAcademicAuthor")
	}
	if len(rec.Companies) != 1 || rec.Companies[0] != "Acme Therapeutics Inc" {
		t.Errorf("Companies = %v, want [Acme Therapeutics Inc]", rec.Companies)
	}
	if len(rec.NonAcademicAuthors) != 1 || rec.NonAcademicAuthors[0] != "Linh Nguyen" {
		t.Errorf("NonAcademicAuthors = %v", rec.NonAcademicAuthors)
	}
	if rec.CorrespondingEmail != "l.nguyen@acmetx.com" {
		t.Errorf("CorrespondingEmail = %q", rec.CorrespondingEmail)
	}
}

func TestExtractRecordAcademicOnly(t *testing.T) {
	article := pubmed.Article{
		PMID: "22222",
		Authors: []pubmed.Author{
			{LastName: "Meyer", Affiliations: []string{"University Hospital Basel"}},
		},
	}

	rec, err := ExtractRecord(article, defaultClassifier())
	if err != nil {
		t.Fatalf("ExtractRecord: %v", err)
	}
	if rec.HasNonAcademicAuthor() {
		t.Error("academic-only record should not report a non-academic author")
	}
	if len(rec.Companies) != 0 {
		t.Errorf("Companies = %v, want empty", rec.Companies)
	}
}

func TestExtractRecordPlaceholders(t *testing.T) {
	article := pubmed.Article{
		PMID: " 33333 ",
		Authors: []pubmed.Author{
			{Affiliations: []string{"Acme Therapeutics, Boston"}},
		},
	}

	rec, err := ExtractRecord(article, defaultClassifier())
	if err != nil {
		t.Fatalf("ExtractRecord: %v", err)
	}
	if rec.PMID != "33333" {
		t.Errorf("PMID = %q, should be trimmed", rec.PMID)
	}
	if rec.Title != "N/A" {
		t.Errorf("Title = %q, want N/A", rec.Title)
	}
	if rec.PubDate != "N/A" {
		t.Errorf("PubDate = %q, want N/A", rec.PubDate)
	}
	if rec.Authors[0].Name != "Unknown" {
		t.Errorf("nameless author = %q, want Unknown", rec.Authors[0].Name)
	}
	// The nameless author's commercial affiliation still counts.
	if got := rec.NonAcademicAuthors; len(got) != 1 || got[0] != "Unknown" {
		t.Errorf("NonAcademicAuthors = %v", got)
	}
}

func TestExtractRecordDeduplicatesCompanies(t *testing.T) {
	article := pubmed.Article{
		PMID: "44444",
		Authors: []pubmed.Author{
			{LastName: "First", Affiliations: []string{"Acme Therapeutics Inc, Boston"}},
			{LastName: "Second", Affiliations: []string{"Acme Therapeutics Inc, Boston"}},
			{LastName: "Third", Affiliations: []string{"BlueBird Pharma; Basel"}},
		},
	}

	rec, err := ExtractRecord(article, defaultClassifier())
	if err != nil {
		t.Fatalf("ExtractRecord: %v", err)
	}
	want := []string{"Acme Therapeutics Inc", "BlueBird Pharma"}
	if len(rec.Companies) != len(want) {
		t.Fatalf("Companies = %v, want %v", rec.Companies, want)
	}
	for i := range want {
		if rec.Companies[i] != want[i] {
			t.Errorf("Companies[%d] = %q, want %q (first-seen order)", i, rec.Companies[i], want[i])
		}
	}
	if len(rec.NonAcademicAuthors) != 3 {
		t.Errorf("NonAcademicAuthors = %v, want all three", rec.NonAcademicAuthors)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		date pubmed.PubDate
		want string
	}{
		{"full date", pubmed.PubDate{Year: "2023", Month: "Jan", Day: "5"}, "2023-01-05"},
		{"numeric month", pubmed.PubDate{Year: "2023", Month: "11", Day: "17"}, "2023-11-17"},
		{"year and month", pubmed.PubDate{Year: "2022", Month: "Dec"}, "2022-12"},
		{"year only", pubmed.PubDate{Year: "2021"}, "2021"},
		{"unparseable month degrades to year", pubmed.PubDate{Year: "2021", Month: "Winter"}, "2021"},
		{"medline date", pubmed.PubDate{MedlineDate: "2001 Jul-Aug"}, "2001 Jul-Aug"},
		{"nothing", pubmed.PubDate{}, "N/A"},
		{"day without month degrades to year", pubmed.PubDate{Year: "2020", Day: "9"}, "2020"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.date); got != tt.want {
				t.Errorf("NormalizeDate(%+v) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}

func TestFirstEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Contact: jane.doe@acmetx.com.", "jane.doe@acmetx.com"},
		{"Electronic address: a_b+c@sub.example.org", "a_b+c@sub.example.org"},
		{"no address here", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FirstEmail(tt.input); got != tt.want {
				t.Errorf("FirstEmail(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
