package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/content"
	"github.com/matheuskafuri/blogdesk/internal/viewmodel"
)

const (
	msgDetailFailed  = "Unable to load this blog."
	msgDetailLoading = "Loading blog..."
)

func renderDetail(pane viewmodel.DetailPane, width, height, scroll int, spin string, now time.Time) string {
	switch pane.Status {
	case viewmodel.DetailPlaceholder:
		return renderPlaceholder(width, height)
	case viewmodel.DetailLoading:
		return lipglossCenter(spin+" "+hintStyle.Render(msgDetailLoading), width, height)
	case viewmodel.DetailError:
		msg := msgDetailFailed
		if pane.Err != nil {
			msg += " " + pane.Err.Error()
		}
		return errorBannerStyle.Width(max(10, width)).Render(wrapText(msg, width))
	}

	return scrollTo(renderArticle(pane.Article, width, now), height, scroll)
}

func renderArticle(a blogs.Article, width int, now time.Time) string {
	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	var parts []string
	if a.CoverImage != "" {
		parts = append(parts, detailCoverStyle.Render(truncateStr("▣ "+a.CoverImage, contentWidth)), "")
	}

	parts = append(parts,
		renderBadges(a.Category)+detailMetaStyle.Render(fmt.Sprintf(" · %d min read", a.ReadTime())),
		"",
		detailTitleStyle.Width(contentWidth).Render(a.Title),
		detailMetaStyle.Render(publishedLine(a.Date, now)),
	)
	if a.Description != "" {
		parts = append(parts, "", detailDescStyle.Width(contentWidth).Render(wrapText(a.Description, contentWidth)))
	}
	parts = append(parts, "", detailMetaStyle.Render(strings.Repeat("─", contentWidth)))

	for _, p := range a.Paragraphs() {
		parts = append(parts, "", renderParagraph(p, contentWidth))
	}

	if a.Author != nil && a.Author.Name != "" {
		parts = append(parts, "", detailMetaStyle.Render(strings.Repeat("─", contentWidth)), "", renderAuthor(*a.Author, contentWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func publishedLine(date string, now time.Time) string {
	t, err := content.ParseTimestamp(date)
	if err != nil {
		return "Published " + date
	}
	return fmt.Sprintf("Published %s · %s", t.UTC().Format(content.DateLayout), content.RelativeTime(t, now))
}

func renderParagraph(p content.Paragraph, width int) string {
	switch p.Kind {
	case content.Heading:
		return detailHeadingStyle.Render(wrapText(p.Text, width))
	case content.Quote:
		return detailQuoteStyle.Render(wrapText(p.Text, width-2))
	default:
		return detailBodyStyle.Render(wrapText(p.Text, width))
	}
}

func renderAuthor(author blogs.Author, width int) string {
	avatar := authorInitialsStyle.Render(content.Initials(author.Name))
	lines := []string{avatar + " " + authorNameStyle.Render(author.Name)}
	if author.Role != "" {
		lines = append(lines, detailMetaStyle.Render(strings.Repeat(" ", lipgloss.Width(avatar)+1)+author.Role))
	}
	if author.Avatar != "" {
		lines = append(lines, detailCoverStyle.Render(truncateStr("avatar: "+author.Avatar, width)))
	}
	return strings.Join(lines, "\n")
}

// scrollTo drops the first scroll lines and pads or cuts to height.
func scrollTo(s string, height, scroll int) string {
	lines := strings.Split(s, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if runewidth.StringWidth(line)+1+runewidth.StringWidth(w) > width {
				out = append(out, line)
				line = w
			} else {
				line += " " + w
			}
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
