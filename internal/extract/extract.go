// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract normalizes fetched article fragments into PaperRecords.
//
// Extraction fails soft wherever the source allows it: missing titles,
// names, and date components degrade to placeholders. The one hard
// requirement is the PMID; a fragment without one yields a SkipError so
// the caller can count it and continue with the rest of the batch.
package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/pubmed-screen/internal/classify"
	"github.com/pdiddy/pubmed-screen/internal/pubmed"
	"github.com/pdiddy/pubmed-screen/pkg/types"
)

// Placeholders for absent source fields.
const (
	missingField      = "N/A"
	unknownAuthorName = "Unknown"
)

// emailPattern matches an email-shaped token inside affiliation text.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// SkipError marks one article fragment as structurally unusable. It is
// never fatal to the batch.
type SkipError struct {
	Reason string
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skipping article: %s", e.Reason)
}

// ExtractRecord normalizes one fetched article fragment into a PaperRecord,
// classifying every affiliation of every author along the way. A fragment
// without a PMID returns a *SkipError.
func ExtractRecord(article pubmed.Article, clf *classify.Classifier) (types.PaperRecord, error) {
	pmid := strings.TrimSpace(article.PMID)
	if pmid == "" {
		return types.PaperRecord{}, &SkipError{Reason: "missing PMID"}
	}

	rec := types.PaperRecord{
		PMID:    pmid,
		Title:   fieldOr(article.Title, missingField),
		PubDate: NormalizeDate(article.PubDate),
	}

	seenAuthor := make(map[string]bool)
	seenCompany := make(map[string]bool)

	for _, a := range article.Authors {
		author := types.Author{
			Name:         fieldOr(a.Name(), unknownAuthorName),
			Affiliations: a.Affiliations,
		}
		rec.Authors = append(rec.Authors, author)

		for _, aff := range a.Affiliations {
			if rec.CorrespondingEmail == "" {
				rec.CorrespondingEmail = FirstEmail(aff)
			}

			v := clf.Classify(aff)
			if !v.NonAcademic {
				continue
			}
			if !seenAuthor[author.Name] {
				seenAuthor[author.Name] = true
				rec.NonAcademicAuthors = append(rec.NonAcademicAuthors, author.Name)
			}
			if v.Company != "" && !seenCompany[v.Company] {
				seenCompany[v.Company] = true
				rec.Companies = append(rec.Companies, v.Company)
			}
		}
	}

	return rec, nil
}

// NormalizeDate renders a PubDate with an explicit fallback chain:
// year-month-day, then year-month, then year, then the verbatim
// MedlineDate, then "N/A". Each step degrades independently so a partial
// date never fails the record.
func NormalizeDate(d pubmed.PubDate) string {
	year := strings.TrimSpace(d.Year)
	if year == "" {
		if md := strings.TrimSpace(d.MedlineDate); md != "" {
			return md
		}
		return missingField
	}

	month, ok := monthNumber(d.Month)
	if !ok {
		return year
	}

	day := strings.TrimSpace(d.Day)
	if day == "" {
		return fmt.Sprintf("%s-%02d", year, month)
	}
	return fmt.Sprintf("%s-%02d-%s", year, month, pad2(day))
}

// FirstEmail returns the first email-shaped token in text, or "".
func FirstEmail(text string) string {
	return emailPattern.FindString(text)
}

// monthNumber converts a PubDate month, either "1".."12" or an English
// abbreviation like "Jan", to its number.
func monthNumber(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	months := map[string]int{
		"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
		"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
	}
	if n, ok := months[strings.ToLower(s)[:min(3, len(s))]]; ok {
		return n, true
	}

	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err == nil && n >= 1 && n <= 12 {
		return n, true
	}
	return 0, false
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

func fieldOr(value, placeholder string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return placeholder
}
