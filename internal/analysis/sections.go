package analysis

import (
	"context"
	"strings"

	"resume-analyzer/internal/llm"
	"resume-analyzer/internal/shared/telemetry"
	"resume-analyzer/internal/textproc"
)

// FallbackSectionName labels the single catch-all section used when
// detection fails; downstream code always has at least one section.
const FallbackSectionName = "full_resume"

// SectionDetector classifies resume text into the taxonomy via the gateway.
type SectionDetector struct {
	Client   llm.Client
	Taxonomy []string
}

// Detect returns one Section per taxonomy key the model found content for,
// in taxonomy order. A JSON null and an omitted key are treated alike: the
// section is absent.
func (d *SectionDetector) Detect(ctx context.Context, text string) []Section {
	req := llm.Request{
		System:      llm.SectionDetectionPrompt,
		User:        textproc.Truncate(text, textproc.DefaultTruncateLimit),
		Temperature: llm.TempDeterministic,
	}

	var payload map[string]any
	if err := llm.CompleteJSON(ctx, d.Client, req, &payload); err != nil {
		telemetry.Warn("sections.fallback", map[string]any{"err": err.Error()})
		return []Section{{Name: FallbackSectionName, Content: text}}
	}

	var sections []Section
	for _, name := range d.Taxonomy {
		content, ok := payload[name].(string)
		if !ok || content == "" || content == "null" {
			continue
		}
		sections = append(sections, Section{Name: name, Content: content})
	}
	return sections
}

// sectionNamed finds a section by name, case-insensitively.
func sectionNamed(sections []Section, names ...string) (Section, bool) {
	for _, s := range sections {
		for _, name := range names {
			if strings.EqualFold(s.Name, name) {
				return s, true
			}
		}
	}
	return Section{}, false
}
