// Package content turns article text into what the reader renders: classified
// paragraphs, reading time and relative timestamps. Everything here is pure.
package content

import (
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Kind int

const (
	Body Kind = iota
	Quote
	Heading
)

func (k Kind) String() string {
	switch k {
	case Quote:
		return "quote"
	case Heading:
		return "heading"
	default:
		return "body"
	}
}

type Paragraph struct {
	Kind Kind
	Text string
}

// WordsPerMinute is the reading speed used by ReadTime.
const WordsPerMinute = 200

var paragraphBreak = regexp.MustCompile(`\n{2,}`)

// Paragraphs splits body on blank lines, trims each piece, drops empties and
// classifies what is left.
func Paragraphs(body string) []Paragraph {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	var out []Paragraph
	for _, p := range paragraphBreak.Split(body, -1) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, Paragraph{Kind: Classify(p), Text: p})
	}
	return out
}

// Classify looks only at the paragraph itself. Quote wins over Heading, which
// wins over Body.
func Classify(p string) Kind {
	if isQuote(p) {
		return Quote
	}
	if isHeading(p) {
		return Heading
	}
	return Body
}

func isQuote(p string) bool {
	return strings.HasPrefix(p, `"`) &&
		strings.HasSuffix(p, `"`) &&
		utf8.RuneCountInString(p) > 50
}

func isHeading(p string) bool {
	if utf8.RuneCountInString(p) >= 100 || strings.Contains(p, ".") {
		return false
	}
	if p == strings.ToUpper(p) {
		return true
	}
	first, _ := utf8.DecodeRuneInString(p)
	return len(strings.Fields(p)) <= 6 && unicode.IsUpper(first)
}

// WordCount counts maximal runs of non-whitespace.
func WordCount(body string) int {
	return len(strings.Fields(body))
}

// ReadTime estimates minutes to read body. Empty text is 0, anything else at least 1.
func ReadTime(body string) int {
	words := WordCount(body)
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / WordsPerMinute))
}
