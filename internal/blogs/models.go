package blogs

import (
	"time"

	"github.com/matheuskafuri/blogdesk/internal/content"
)

type Author struct {
	Name   string `json:"name"`
	Role   string `json:"role,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

// Article is a published blog entry. ID is assigned by the remote service.
type Article struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Category    []string `json:"category"`
	Description string   `json:"description"`
	CoverImage  string   `json:"coverImage"`
	Content     string   `json:"content"`
	Date        string   `json:"date"`
	Author      *Author  `json:"author,omitempty"`
}

// CreateArticleInput is what a writer supplies; the client adds Date at submit time.
type CreateArticleInput struct {
	Title       string   `json:"title"`
	Category    []string `json:"category"`
	Description string   `json:"description"`
	CoverImage  string   `json:"coverImage"`
	Content     string   `json:"content"`
	Author      *Author  `json:"author,omitempty"`
}

type createPayload struct {
	CreateArticleInput
	Date string `json:"date"`
}

func (a Article) PrimaryCategory() string {
	return content.PrimaryCategory(a.Category)
}

// Published parses Date; the zero time is returned when it cannot be parsed.
func (a Article) Published() time.Time {
	t, err := content.ParseTimestamp(a.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (a Article) ReadTime() int {
	return content.ReadTime(a.Content)
}

func (a Article) Paragraphs() []content.Paragraph {
	return content.Paragraphs(a.Content)
}

// Path is the in-app route for the article.
func (a Article) Path() string {
	return "/blogs/" + a.ID
}
