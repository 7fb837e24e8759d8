package textproc

import (
	"regexp"
	"strings"
)

// Line markers that indicate a discrete list item.
var bulletPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[•\-\*→►●○◦▪▸]\s*(.+)$`), // bullet glyphs
	regexp.MustCompile(`^\d+\.\s*(.+)$`),          // numbered lists
	regexp.MustCompile(`^[a-z]\)\s*(.+)$`),        // lettered lists
}

const (
	minBulletLen     = 20
	minActionLineLen = 25
)

// ExtractBullets scans text top to bottom for list items worth improving.
// Pass 1 matches explicit bullet, numbered, or lettered markers and keeps
// captured remainders longer than minBulletLen. If that yields nothing,
// pass 2 keeps lines longer than minActionLineLen whose first word is one
// of the given action verbs, compared case-insensitively both as written
// and with a trailing "ed" stripped. Order is preserved and the result
// never exceeds maxBullets.
func ExtractBullets(text string, maxBullets int, actionVerbs []string) []string {
	bullets := make([]string, 0, maxBullets)

	for _, line := range strings.Split(text, "\n") {
		if len(bullets) >= maxBullets {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, pattern := range bulletPatterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if item := strings.TrimSpace(m[1]); len(item) > minBulletLen {
				bullets = append(bullets, item)
			}
			break
		}
	}
	if len(bullets) > 0 {
		return bullets
	}

	verbs := make(map[string]struct{}, len(actionVerbs))
	for _, v := range actionVerbs {
		verbs[strings.ToLower(v)] = struct{}{}
	}

	for _, line := range strings.Split(text, "\n") {
		if len(bullets) >= maxBullets {
			break
		}
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		first := strings.ToLower(fields[0])
		stripped := strings.TrimSuffix(first, "ed")
		_, asIs := verbs[first]
		_, pastTense := verbs[stripped]
		if (asIs || pastTense) && len(line) > minActionLineLen {
			bullets = append(bullets, line)
		}
	}
	return bullets
}
