package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(left, right string, width int) string {
	left = " " + left
	right = " " + right + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

func statusHints(m mode, focus focusPane) string {
	switch m {
	case modeCompose:
		return "tab next  shift+tab prev  ctrl+s publish  esc cancel"
	case modeHelp:
		return "? close  q quit"
	}
	if focus == focusDetail {
		return "j/k scroll  o cover  s share  tab list  esc close  ? help"
	}
	return "j/k move  enter read  n new  r refresh  ? help  q quit"
}
