// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Author is one entry in an article's author list, in source order.
type Author struct {
	// Name is the author's display name ("ForeName LastName"), or a
	// collective name, or "Unknown" when the source carries neither.
	Name string `json:"name" yaml:"name"`

	// Affiliations lists the author's affiliation strings as given by the
	// source, in order. May be empty.
	Affiliations []string `json:"affiliations,omitempty" yaml:"affiliations,omitempty"`
}

// PaperRecord is the normalized per-article record produced by extraction.
// Records live for one pipeline run only; they are never persisted or
// updated across runs.
type PaperRecord struct {
	// PMID is the PubMed identifier, a string of digits. Immutable once set
	// and unique within one run's output.
	PMID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or "N/A" when absent.
	Title string `json:"title" yaml:"title"`

	// PubDate is the normalized publication date: "2023-01-05", "2023-01",
	// "2023", a verbatim MedlineDate, or "N/A".
	PubDate string `json:"publication_date" yaml:"publication_date"`

	// Authors is the full author list in source order.
	Authors []Author `json:"authors" yaml:"authors"`

	// NonAcademicAuthors lists the names of authors whose affiliation was
	// classified as non-academic, in first-seen order without duplicates.
	NonAcademicAuthors []string `json:"non_academic_authors,omitempty" yaml:"non_academic_authors,omitempty"`

	// Companies lists the distinct company names extracted from non-academic
	// affiliations, in first-seen order. Derived strictly from Authors at
	// extraction time.
	Companies []string `json:"company_affiliations,omitempty" yaml:"company_affiliations,omitempty"`

	// CorrespondingEmail is the first email-shaped token found in the
	// affiliation texts, or empty.
	CorrespondingEmail string `json:"corresponding_email,omitempty" yaml:"corresponding_email,omitempty"`
}

// HasNonAcademicAuthor reports whether the record carries at least one
// company affiliation. Only such records appear in final output.
func (r PaperRecord) HasNonAcademicAuthor() bool {
	return len(r.Companies) > 0
}
