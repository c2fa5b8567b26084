package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/content"
	"github.com/matheuskafuri/blogdesk/internal/viewmodel"
)

const (
	msgListFailed = "Failed to load blogs."
	msgListEmpty  = "No blogs yet. Create your first blog from the right panel."
)

// Each item is 3 lines + 1 blank line.
const itemHeight = 4

func relativeTime(date string, now time.Time) string {
	s, err := content.FormatRelative(date, now)
	if err != nil {
		return ""
	}
	return s
}

func categoryTags(categories []string) string {
	if len(categories) == 0 {
		return content.GeneralCategory
	}
	return strings.ToUpper(strings.Join(categories, " · "))
}

func renderListItem(a blogs.Article, selected, active bool, width int, now time.Time) string {
	if width < 10 {
		width = 30
	}

	meta := itemCategoryStyle.Render(truncateStr(categoryTags(a.Category), width-16))
	if rel := relativeTime(a.Date, now); rel != "" {
		meta += itemTimeStyle.Render(" · " + rel)
	}

	marker := "  "
	style := itemTitleStyle
	switch {
	case selected:
		marker = "> "
		style = itemSelectedStyle
	case active:
		marker = "● "
		style = itemActiveStyle
	}
	title := style.Render(marker + truncateStr(a.Title, width-4))
	desc := itemDescStyle.Render("  " + truncateStr(a.Description, width-4))

	return "  " + meta + "\n" + title + "\n" + desc
}

// truncateStr shortens s to n terminal cells, marking the cut with "...".
func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= n {
		return s
	}
	if n <= 3 {
		return runewidth.Truncate(s, n, "")
	}
	return runewidth.Truncate(s, n, "...")
}

func renderSkeleton(rows, width int) string {
	if width < 10 {
		width = 30
	}
	bar := func(w int) string {
		return skeletonStyle.Render(strings.Repeat("░", max(1, w)))
	}
	items := make([]string, 0, rows)
	for i := 0; i < rows; i++ {
		items = append(items, "  "+bar(width/4)+"\n  "+bar(width*3/4)+"\n  "+bar(width/2))
	}
	return strings.Join(items, "\n\n")
}

func renderList(pane viewmodel.ListPane, cursor, height, width, skeletonRows int, now time.Time) string {
	switch pane.Status {
	case viewmodel.ListLoading:
		return renderSkeleton(skeletonRows, width)
	case viewmodel.ListError:
		msg := msgListFailed
		if pane.Err != nil {
			msg += " " + pane.Err.Error()
		}
		return errorBannerStyle.Width(max(10, width)).Render(wrapText(msg, width))
	case viewmodel.ListEmpty:
		return lipglossCenter(hintStyle.Render(wrapText(msgListEmpty, width)), width, height)
	}

	articles := pane.Articles
	visible := height / itemHeight
	if visible < 1 {
		visible = 1
	}

	// Calculate scroll offset
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(articles) {
		end = len(articles)
		start = end - visible
		if start < 0 {
			start = 0
		}
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		a := articles[i]
		b.WriteString(renderListItem(a, i == cursor, a.ID == pane.ActiveID, width, now))
		if i < end-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad < 0 || strings.Contains(s, "\n") {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
