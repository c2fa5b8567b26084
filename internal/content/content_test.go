package content

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParagraphsClassification(t *testing.T) {
	body := "\"This is a very long inspirational quotation exceeding fifty characters in length.\"\n\nA HEADING\n\nThis is a body paragraph with a period."

	got := Paragraphs(body)
	want := []Kind{Quote, Heading, Body}
	if len(got) != len(want) {
		t.Fatalf("expected %d paragraphs, got %d: %+v", len(want), len(got), got)
	}
	for i, k := range want {
		if got[i].Kind != k {
			t.Errorf("paragraph %d (%q) = %v, want %v", i, got[i].Text, got[i].Kind, k)
		}
	}
}

func TestParagraphsSplitting(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"\n\n\n", nil},
		{"one", []string{"one"}},
		{"one\ntwo", []string{"one\ntwo"}},
		{"  one  \n\n\n\n  two ", []string{"one", "two"}},
		{"one\r\n\r\ntwo", []string{"one", "two"}},
		{"one\n\n   \n\ntwo", []string{"one", "two"}},
	}
	for _, tt := range tests {
		var got []string
		for _, p := range Paragraphs(tt.input) {
			got = append(got, p.Text)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Paragraphs(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	long := strings.Repeat("word ", 15)
	tests := []struct {
		input string
		want  Kind
	}{
		{`"Short quote."`, Body},
		{`"Short quote"`, Body},
		{`"` + strings.Repeat("a", 48) + `"`, Body},
		{`"` + strings.Repeat("a", 49) + `"`, Quote},
		{`"Open quote without a closing mark that runs on for quite a while longer`, Body},
		{"KEY TAKEAWAYS", Heading},
		{"Why Cash Flow Matters", Heading},
		{"Why cash flow matters for small firms today", Body},
		{"why it matters", Body},
		{"Ends with a period.", Body},
		{"1. NUMBERED", Body},
		{"2024 OUTLOOK", Heading},
		{strings.ToUpper(long), Heading},
		{strings.ToUpper(long + long), Body},
	}
	for _, tt := range tests {
		if got := Classify(tt.input); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	p := "The Road Ahead"
	first := Classify(p)
	for i := 0; i < 10; i++ {
		if got := Classify(p); got != first {
			t.Fatalf("Classify changed between calls: %v then %v", first, got)
		}
	}
	// Context does not matter: same paragraph, different neighbours.
	a := Paragraphs("intro text.\n\n" + p)
	b := Paragraphs(p + "\n\n\"" + strings.Repeat("q", 60) + "\"")
	if a[1].Kind != b[0].Kind {
		t.Errorf("classification depends on neighbours: %v vs %v", a[1].Kind, b[0].Kind)
	}
}

func TestReadTime(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"   \n\t ", 0},
		{"hi", 1},
		{strings.Repeat("w ", 200), 1},
		{strings.Repeat("w ", 201), 2},
		{strings.Repeat("w\n", 400), 2},
		{strings.Repeat("w ", 1001), 6},
	}
	for _, tt := range tests {
		if got := ReadTime(tt.input); got != tt.want {
			t.Errorf("ReadTime(%d words) = %d, want %d", WordCount(tt.input), got, tt.want)
		}
	}
}

func TestReadTimeMonotonic(t *testing.T) {
	body := ""
	prev := ReadTime(body)
	for i := 0; i < 650; i++ {
		body += " word"
		got := ReadTime(body)
		if got < prev {
			t.Fatalf("read time decreased from %d to %d after %d words", prev, got, i+1)
		}
		prev = got
	}
}

func TestRelativeTimeScenarios(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		iso  string
		want string
	}{
		{"2024-05-31T23:59:30Z", "Just now"},
		{"2024-05-31T23:00:00Z", "1 hour ago"},
		{"2024-05-30T00:00:00Z", "2 days ago"},
		{"2024-01-01T00:00:00Z", "5 months ago"},
		{"2022-01-01T00:00:00Z", "Jan 1, 2022"},
		{"2024-06-02T00:00:00Z", "Just now"},
		{"2024-05-31T23:59:00Z", "1 minute ago"},
		{"2024-05-31T23:15:00.000Z", "45 minutes ago"},
		{"2024-05-31T00:00:00Z", "1 day ago"},
		{"2024-05-25T00:00:00Z", "1 week ago"},
		{"2024-05-11T00:00:00Z", "3 weeks ago"},
		{"2024-04-01T00:00:00Z", "2 months ago"},
	}
	for _, tt := range tests {
		got, err := FormatRelative(tt.iso, now)
		if err != nil {
			t.Errorf("FormatRelative(%q): unexpected error: %v", tt.iso, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FormatRelative(%q) = %q, want %q", tt.iso, got, tt.want)
		}
	}
}

func TestFormatRelativeInvalid(t *testing.T) {
	if _, err := FormatRelative("yesterday", time.Now()); err == nil {
		t.Error("expected error for unparseable timestamp")
	}
}

func bucket(s string) int {
	switch {
	case s == "Just now":
		return 0
	case strings.Contains(s, "minute"):
		return 1
	case strings.Contains(s, "hour"):
		return 2
	case strings.Contains(s, "day"):
		return 3
	case strings.Contains(s, "week"):
		return 4
	case strings.Contains(s, "month"):
		return 5
	default:
		return 6
	}
}

func TestRelativeTimeMonotonic(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	prev := 0
	// Walk backwards from now; older instants never land in an earlier bucket.
	for d := time.Duration(0); d < 3*365*24*time.Hour; d += 37 * time.Minute {
		b := bucket(RelativeTime(now.Add(-d), now))
		if b < prev {
			t.Fatalf("bucket went from %d to %d at %v", prev, b, d)
		}
		prev = b
	}
}

func TestPrimaryCategory(t *testing.T) {
	tests := []struct {
		input []string
		want  string
	}{
		{nil, "GENERAL"},
		{[]string{}, "GENERAL"},
		{[]string{"FINANCE", "TECH"}, "FINANCE"},
		{[]string{" "}, "GENERAL"},
	}
	for _, tt := range tests {
		if got := PrimaryCategory(tt.input); got != tt.want {
			t.Errorf("PrimaryCategory(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCategoryIcon(t *testing.T) {
	if CategoryIcon("finance") != CategoryIcon("FINANCE") {
		t.Error("CategoryIcon should be case-insensitive")
	}
	if CategoryIcon("UNKNOWN") != "•" {
		t.Errorf("expected fallback glyph, got %q", CategoryIcon("UNKNOWN"))
	}
}

func TestInitials(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Arjun Mehta", "AM"},
		{"priya", "P"},
		{"ana maria de souza", "AM"},
		{"  ", ""},
		{"élodie durand", "ÉD"},
	}
	for _, tt := range tests {
		if got := Initials(tt.input); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplitCategories(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"FINANCE", []string{"FINANCE"}},
		{" FINANCE , TECH,,  ", []string{"FINANCE", "TECH"}},
		{",,,", nil},
	}
	for _, tt := range tests {
		if got := SplitCategories(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitCategories(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
