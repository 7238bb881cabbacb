// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Keywords holds the ordered keyword sets the classifier is built from.
// The lists are a configuration value, not load-bearing policy: callers can
// load a replacement set from YAML to tune the heuristic.
type Keywords struct {
	// Academic keywords mark an affiliation as academic. They take
	// precedence over everything else.
	Academic []string `yaml:"academic"`

	// Commercial keywords mark an affiliation as non-academic when no
	// academic keyword is present.
	Commercial []string `yaml:"commercial"`

	// AcademicDomains are email-domain fragments treated as academic
	// (e.g. ".edu", ".ac.", ".gov").
	AcademicDomains []string `yaml:"academic_domains"`

	// FreemailDomains are consumer mail domains that carry no
	// organizational signal either way.
	FreemailDomains []string `yaml:"freemail_domains"`
}

// DefaultKeywords returns the compiled-in keyword sets.
func DefaultKeywords() Keywords {
	return Keywords{
		Academic: []string{
			"university", "college", "institute", "academy",
			"school", "dept", "department", "faculty", "laboratory of",
			"hospital", "clinic", "medical center", "medical centre",
			"public health", "ministry of health",
			"nih", "cdc", "who", "fda", "ema",
		},
		Commercial: []string{
			"pharmaceutical", "pharma", "biotech", "biotechnology",
			"therapeutics", "diagnostics", "medicines", "drug discovery",
			"inc", "llc", "ltd", "corp", "corporation", "company", "gmbh", "ag",
			"pfizer", "novartis", "roche", "gilead", "amgen", "moderna",
			"biontech", "astrazeneca", "merck", "sanofi",
		},
		AcademicDomains: []string{".edu", ".ac.", ".gov"},
		FreemailDomains: []string{
			"gmail.com", "googlemail.com", "yahoo.com", "hotmail.com",
			"outlook.com", "163.com", "qq.com",
		},
	}
}

// LoadKeywords reads a Keywords set from a YAML file. Missing lists fall
// back to the defaults so a file can override just one of them.
func LoadKeywords(path string) (Keywords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Keywords{}, fmt.Errorf("reading keywords file: %w", err)
	}

	kw := DefaultKeywords()
	if err := yaml.Unmarshal(data, &kw); err != nil {
		return Keywords{}, fmt.Errorf("parsing keywords file %s: %w", path, err)
	}
	return kw, nil
}
