// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether a free-text author affiliation denotes a
// commercial organization rather than an academic institution.
//
// The heuristic is deliberately conservative: any academic keyword marks the
// affiliation academic, even when a corporate suffix also appears, so that
// research hospitals and university spinoffs are not over-reported. An
// affiliation is non-academic only when no academic keyword is present and a
// commercial keyword or corporate email domain is.
package classify

import (
	"regexp"
	"strings"
)

// emailPattern matches an email-shaped token inside free text.
var emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Verdict is the classification outcome for one affiliation string.
type Verdict struct {
	// NonAcademic reports whether the affiliation denotes a commercial
	// organization.
	NonAcademic bool

	// Matched is the commercial keyword or email domain that triggered a
	// non-academic verdict. Empty for academic verdicts.
	Matched string

	// Company is the best-effort organization name: the affiliation text up
	// to the first comma or semicolon, trimmed. Empty for academic verdicts.
	Company string
}

// Classifier applies a fixed keyword configuration to affiliation strings.
// It performs no I/O and never fails on any input.
type Classifier struct {
	kw Keywords
}

// NewClassifier builds a Classifier from an explicit keyword set. Keyword
// entries are matched case-insensitively; entries of four characters or
// fewer match whole tokens only, so short legal suffixes like "inc" and
// "ag" cannot fire inside longer words.
func NewClassifier(kw Keywords) *Classifier {
	lowered := Keywords{
		Academic:        lowerAll(kw.Academic),
		Commercial:      lowerAll(kw.Commercial),
		AcademicDomains: lowerAll(kw.AcademicDomains),
		FreemailDomains: lowerAll(kw.FreemailDomains),
	}
	return &Classifier{kw: lowered}
}

// Classify returns the verdict for one affiliation string. Absence of signal
// defaults to academic; that default is a policy outcome, not an error.
func (c *Classifier) Classify(affiliation string) Verdict {
	trimmed := strings.TrimSpace(affiliation)
	if trimmed == "" {
		return Verdict{}
	}
	lower := strings.ToLower(trimmed)

	// Academic keywords always win.
	if firstMatch(c.kw.Academic, lower) != "" {
		return Verdict{}
	}

	if kw := firstMatch(c.kw.Commercial, lower); kw != "" {
		return Verdict{NonAcademic: true, Matched: kw, Company: companyName(trimmed)}
	}

	if dom := c.corporateDomain(lower); dom != "" {
		return Verdict{NonAcademic: true, Matched: dom, Company: companyName(trimmed)}
	}

	return Verdict{}
}

// corporateDomain returns the domain of an email found in text when that
// domain looks corporate: not academic, not a freemail provider.
func (c *Classifier) corporateDomain(text string) string {
	email := emailPattern.FindString(text)
	if email == "" {
		return ""
	}
	domain := email[strings.LastIndex(email, "@")+1:]

	for _, d := range c.kw.AcademicDomains {
		if strings.HasSuffix(domain, d) || strings.Contains(domain, d) {
			return ""
		}
	}
	for _, d := range c.kw.FreemailDomains {
		if domain == d {
			return ""
		}
	}
	return domain
}

// companyName extracts the organization name from an affiliation string:
// the text before the first comma or semicolon, or the whole string when no
// delimiter exists.
func companyName(affiliation string) string {
	if idx := strings.IndexAny(affiliation, ",;"); idx >= 0 {
		if name := strings.TrimSpace(affiliation[:idx]); name != "" {
			return name
		}
	}
	return strings.TrimSpace(affiliation)
}

// firstMatch returns the first keyword present in text, or "".
func firstMatch(keywords []string, text string) string {
	for _, kw := range keywords {
		if containsKeyword(text, kw) {
			return kw
		}
	}
	return ""
}

// containsKeyword reports whether kw occurs in text. Keywords longer than
// four characters (including all multi-word entries) match as substrings;
// shorter ones must match a standalone token.
func containsKeyword(text, kw string) bool {
	if len(kw) > 4 {
		return strings.Contains(text, kw)
	}
	for _, tok := range strings.FieldsFunc(text, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if tok == kw {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
