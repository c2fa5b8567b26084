package content

import (
	"strings"
	"unicode/utf8"
)

// GeneralCategory stands in when an article has no categories.
const GeneralCategory = "GENERAL"

var categoryIcons = map[string]string{
	"FINANCE":     "$",
	"TECH":        "⌘",
	"CAREER":      "↗",
	"REGULATIONS": "§",
	"SKILLS":      "✦",
	"TAX":         "%",
	"ACCOUNTING":  "≡",
}

func PrimaryCategory(categories []string) string {
	if len(categories) == 0 || strings.TrimSpace(categories[0]) == "" {
		return GeneralCategory
	}
	return categories[0]
}

// CategoryIcon returns a one-cell glyph for a category tag.
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToUpper(strings.TrimSpace(category))]; ok {
		return icon
	}
	return "•"
}

// Initials builds the avatar fallback: first letter of up to two name parts.
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(r)
		if utf8.RuneCountInString(b.String()) == 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

// SplitCategories parses a comma separated list, trimming and dropping empties.
func SplitCategories(s string) []string {
	var out []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
