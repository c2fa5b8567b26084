package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var asciiLogo = []string{
	`╔╗ ╦  ╔═╗╔═╗╔╦╗╔═╗╔═╗╦╔═`,
	`╠╩╗║  ║ ║║ ╦ ║║║╣ ╚═╗╠╩╗`,
	`╚═╝╩═╝╚═╝╚═╝═╩╝╚═╝╚═╝╩ ╩`,
}

// renderPlaceholder fills the detail pane when no article is selected.
func renderPlaceholder(width, height int) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorAccent)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(colorText)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, "", hintStyle.Render("Select a blog to start reading."), "")

	lines = append(lines, keyStyle.Render("[enter]")+"  "+labelStyle.Render("Read the highlighted blog"))
	lines = append(lines, keyStyle.Render("[n]    ")+"  "+labelStyle.Render("Write a new blog"))
	lines = append(lines, keyStyle.Render("[?]    ")+"  "+labelStyle.Render("All shortcuts"))

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
