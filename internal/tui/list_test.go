package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/viewmodel"
)

var testNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrWide(t *testing.T) {
	// Each CJK rune takes two cells.
	got := truncateStr("日本語テスト", 7)
	want := "日本..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 7) = %q, want %q", got, want)
	}
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2024-05-31T23:59:30Z", "Just now"},
		{"2024-05-31T23:00:00Z", "1 hour ago"},
		{"2024-05-30T00:00:00Z", "2 days ago"},
		{"2022-01-01T00:00:00Z", "Jan 1, 2022"},
		{"not a date", ""},
	}
	for _, tt := range tests {
		got := relativeTime(tt.date, testNow)
		if got != tt.want {
			t.Errorf("relativeTime(%q) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestCategoryTags(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, "GENERAL"},
		{[]string{"tech"}, "TECH"},
		{[]string{"Tax", "finance"}, "TAX · FINANCE"},
	}
	for _, tt := range tests {
		if got := categoryTags(tt.in); got != tt.want {
			t.Errorf("categoryTags(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderListStates(t *testing.T) {
	tests := []struct {
		name string
		pane viewmodel.ListPane
		want string
	}{
		{"loading", viewmodel.ListPane{Status: viewmodel.ListLoading}, "░"},
		{"error", viewmodel.ListPane{Status: viewmodel.ListError, Err: errors.New("Request failed (500)")}, "Failed to load blogs. Request failed (500)"},
		{"empty", viewmodel.ListPane{Status: viewmodel.ListEmpty}, "No blogs yet."},
		{"ready", viewmodel.ListPane{
			Status:   viewmodel.ListReady,
			Articles: []blogs.Article{{ID: "a", Title: "Quarterly taxes", Category: []string{"TAX"}, Date: "2024-05-30T00:00:00Z"}},
		}, "Quarterly taxes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderList(tt.pane, 0, 20, 80, 3, testNow)
			if !strings.Contains(got, tt.want) {
				t.Errorf("renderList(%s) = %q, want it to contain %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRenderListSkeletonRows(t *testing.T) {
	got := renderList(viewmodel.ListPane{Status: viewmodel.ListLoading}, 0, 20, 40, 3, testNow)
	if n := strings.Count(got, "\n\n"); n != 2 {
		t.Errorf("skeleton gaps = %d, want 2", n)
	}
}

func TestRenderListMarksSelectionAndActive(t *testing.T) {
	pane := viewmodel.ListPane{
		Status:   viewmodel.ListReady,
		ActiveID: "b",
		Articles: []blogs.Article{
			{ID: "a", Title: "First"},
			{ID: "b", Title: "Second"},
		},
	}
	got := renderList(pane, 0, 20, 60, 3, testNow)
	if !strings.Contains(got, "> First") {
		t.Errorf("cursor marker missing in %q", got)
	}
	if !strings.Contains(got, "● Second") {
		t.Errorf("active marker missing in %q", got)
	}
	if !strings.Contains(got, "GENERAL") {
		t.Errorf("fallback category missing in %q", got)
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := "one two\nthree\nfour"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}
