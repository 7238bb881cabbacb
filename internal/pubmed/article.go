// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import "encoding/xml"

// efetch response XML structures. Only the fields the extractor consumes
// are mapped; the efetch document carries far more.

// ArticleSet is the parsed efetch document: one fragment per requested PMID.
type ArticleSet struct {
	XMLName  xml.Name  `xml:"PubmedArticleSet"`
	Articles []Article `xml:"PubmedArticle"`
}

// Article is one article fragment from the efetch document.
type Article struct {
	PMID    string   `xml:"MedlineCitation>PMID"`
	Title   string   `xml:"MedlineCitation>Article>ArticleTitle"`
	PubDate PubDate  `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	Authors []Author `xml:"MedlineCitation>Article>AuthorList>Author"`
}

// PubDate carries the journal issue date. Year/Month/Day may each be absent;
// older records carry only a free-form MedlineDate.
type PubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

// Author is one entry of the article's author list. CollectiveName is set
// for group authorship instead of ForeName/LastName.
type Author struct {
	LastName       string   `xml:"LastName"`
	ForeName       string   `xml:"ForeName"`
	CollectiveName string   `xml:"CollectiveName"`
	Affiliations   []string `xml:"AffiliationInfo>Affiliation"`
}

// Name returns "ForeName LastName", the collective name for group authors,
// or "" when the entry carries no name at all.
func (a Author) Name() string {
	if a.CollectiveName != "" {
		return a.CollectiveName
	}
	switch {
	case a.ForeName != "" && a.LastName != "":
		return a.ForeName + " " + a.LastName
	case a.LastName != "":
		return a.LastName
	default:
		return a.ForeName
	}
}
