package blogs

import (
	"fmt"
	"strings"

	"github.com/matheuskafuri/blogdesk/internal/content"
)

// ValidationError lists required compose fields that were left empty.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// ComposeForm holds the raw compose fields as typed by the writer.
type ComposeForm struct {
	Title        string
	Categories   string
	Description  string
	CoverImage   string
	Content      string
	AuthorName   string
	AuthorRole   string
	AuthorAvatar string
}

// Input validates the form and builds the create payload. Categories are split
// on commas; the author is dropped when no name is given.
func (f ComposeForm) Input() (CreateArticleInput, error) {
	var missing []string
	for _, field := range []struct {
		name, value string
	}{
		{"title", f.Title},
		{"description", f.Description},
		{"coverImage", f.CoverImage},
		{"content", f.Content},
	} {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return CreateArticleInput{}, &ValidationError{Fields: missing}
	}

	input := CreateArticleInput{
		Title:       f.Title,
		Category:    content.SplitCategories(f.Categories),
		Description: f.Description,
		CoverImage:  f.CoverImage,
		Content:     f.Content,
	}
	if input.Category == nil {
		input.Category = []string{}
	}
	if name := strings.TrimSpace(f.AuthorName); name != "" {
		input.Author = &Author{
			Name:   name,
			Role:   strings.TrimSpace(f.AuthorRole),
			Avatar: strings.TrimSpace(f.AuthorAvatar),
		}
	}
	return input, nil
}
