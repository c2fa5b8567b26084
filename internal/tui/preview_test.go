package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/viewmodel"
)

func TestRenderDetailStates(t *testing.T) {
	tests := []struct {
		name string
		pane viewmodel.DetailPane
		want string
	}{
		{"placeholder", viewmodel.DetailPane{Status: viewmodel.DetailPlaceholder}, "Select a blog"},
		{"loading", viewmodel.DetailPane{Status: viewmodel.DetailLoading}, "Loading blog..."},
		{"error", viewmodel.DetailPane{Status: viewmodel.DetailError, Err: errors.New("Request failed (404)")}, "Unable to load this blog. Request failed (404)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderDetail(tt.pane, 80, 30, 0, "*", testNow)
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderDetail(%s) = %q, want it to contain %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRenderArticle(t *testing.T) {
	a := blogs.Article{
		ID:          "a",
		Title:       "Closing the books",
		Category:    []string{"ACCOUNTING", "TECH"},
		Description: "How we cut the close to three days.",
		CoverImage:  "https://example.com/cover.jpg",
		Content:     "\"This is a very long inspirational quotation exceeding fifty characters in length.\"\n\nA HEADING\n\nThis is a body paragraph with a period.",
		Date:        "2024-05-30T00:00:00Z",
		Author:      &blogs.Author{Name: "Priya Raman", Role: "Controller"},
	}
	got := renderArticle(a, 100, testNow)

	for _, want := range []string{
		"https://example.com/cover.jpg",
		"≡ ACCOUNTING",
		"TECH",
		"1 min read",
		"Closing the books",
		"Published May 30, 2024 · 2 days ago",
		"How we cut the close",
		"A HEADING",
		"This is a body paragraph with a period.",
		"PR",
		"Priya Raman",
		"Controller",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("renderArticle missing %q", want)
		}
	}
}

func TestRenderArticleWithoutAuthor(t *testing.T) {
	got := renderArticle(blogs.Article{Title: "Solo", Content: "text"}, 60, testNow)
	if !strings.Contains(got, "• GENERAL") {
		t.Errorf("expected fallback badge in %q", got)
	}
	if strings.Contains(got, "avatar:") {
		t.Errorf("unexpected author block in %q", got)
	}
}

func TestScrollTo(t *testing.T) {
	got := scrollTo("a\nb\nc\nd", 2, 1)
	if got != "b\nc" {
		t.Errorf("scrollTo = %q, want %q", got, "b\nc")
	}
	got = scrollTo("a", 3, 0)
	if got != "a\n\n" {
		t.Errorf("scrollTo pad = %q, want %q", got, "a\n\n")
	}
}
