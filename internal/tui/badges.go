package tui

import (
	"strings"

	"github.com/matheuskafuri/blogdesk/internal/content"
)

// renderBadges shows the primary category with its icon, then the rest plain.
func renderBadges(categories []string) string {
	primary := content.PrimaryCategory(categories)
	parts := []string{badgePrimaryStyle.Render(content.CategoryIcon(primary) + " " + strings.ToUpper(primary))}
	if len(categories) > 1 {
		for _, c := range categories[1:] {
			if c = strings.TrimSpace(c); c != "" {
				parts = append(parts, badgeStyle.Render(strings.ToUpper(c)))
			}
		}
	}
	return strings.Join(parts, "")
}
