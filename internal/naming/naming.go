package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// DisplayName derives a collectible display name from its theme.
// Input themes arrive in mixed forms ("cosmic artifact", "Cosmic-Artifact");
// the output is the canonical space-separated title form.
func DisplayName(theme string) string {
	cleaned := normalize(theme)
	if cleaned == "" {
		return FallbackName
	}
	return titleCaser.String(cleaned)
}

// Slug converts a theme to its lowercase hyphenated key form, used for
// prompt construction and de-duplication.
func Slug(theme string) string {
	cleaned := normalize(theme)
	if cleaned == "" {
		return FallbackSlug
	}
	return strings.ReplaceAll(strings.ToLower(cleaned), " ", "-")
}

// StyleHint extracts the trailing word of a theme as a crude subject
// selector ("Cybernetic Dragon" -> "dragon").
func StyleHint(theme string) string {
	cleaned := normalize(theme)
	if cleaned == "" {
		return FallbackSlug
	}
	words := strings.Fields(cleaned)
	return strings.ToLower(words[len(words)-1])
}

func normalize(theme string) string {
	replaced := strings.NewReplacer("-", " ", "_", " ").Replace(theme)
	return strings.Join(strings.Fields(replaced), " ")
}
