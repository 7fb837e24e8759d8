package analysis

import (
	"encoding/json"
	"fmt"
	"os"
)

// Lexicon holds the open enumerations the pipeline matches against. They
// are data, not code: a deployment can extend them via LEXICON_FILE without
// a rebuild.
type Lexicon struct {
	SectionNames       []string `json:"sectionNames"`
	ActionVerbs        []string `json:"actionVerbs"`
	BoilerplateMarkers []string `json:"boilerplateMarkers"`
}

// DefaultLexicon returns the compiled-in enumerations.
func DefaultLexicon() Lexicon {
	return Lexicon{
		SectionNames: []string{
			"contact", "summary", "experience", "education", "skills", "projects", "other",
		},
		ActionVerbs: []string{
			"led", "managed", "developed", "created", "implemented",
			"increased", "decreased", "improved", "designed", "built",
			"achieved", "delivered", "launched", "established", "generated",
			"reduced", "streamlined", "coordinated", "executed", "analyzed",
			"spearheaded", "orchestrated", "optimized", "collaborated",
			"drove", "facilitated", "mentored", "supervised", "oversaw",
			"authored", "crafted", "engineered", "architected", "pioneered",
			"transformed", "revamped", "modernized", "automated", "integrated",
			"negotiated", "secured", "acquired", "retained", "resolved",
			"responsible", "worked", "assisted", "helped", "supported",
		},
		BoilerplateMarkers: []string{
			"email", "phone", "@", "university", "degree", "bachelor", "master",
		},
	}
}

// LoadLexicon reads a JSON override file. An empty path yields the
// defaults; fields absent from the file keep their default values.
func LoadLexicon(path string) (Lexicon, error) {
	lex := DefaultLexicon()
	if path == "" {
		return lex, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Lexicon{}, fmt.Errorf("load lexicon %s: %w", path, err)
	}

	var override Lexicon
	if err := json.Unmarshal(data, &override); err != nil {
		return Lexicon{}, fmt.Errorf("load lexicon %s: %w", path, err)
	}
	if len(override.SectionNames) > 0 {
		lex.SectionNames = override.SectionNames
	}
	if len(override.ActionVerbs) > 0 {
		lex.ActionVerbs = override.ActionVerbs
	}
	if len(override.BoilerplateMarkers) > 0 {
		lex.BoilerplateMarkers = override.BoilerplateMarkers
	}
	return lex, nil
}
