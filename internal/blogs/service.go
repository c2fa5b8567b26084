// Package blogs is the article resource: its wire types, the three remote
// calls, and how those calls are keyed in the query cache.
package blogs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/matheuskafuri/blogdesk/internal/api"
)

// ErrMissingIdentifier is reported when a detail read runs without an id.
var ErrMissingIdentifier = errors.New("no blog id provided")

// TimestampLayout matches what browsers produce for Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type Service struct {
	client *api.Client
	now    func() time.Time
}

func NewService(client *api.Client) *Service {
	return &Service{client: client, now: time.Now}
}

// WithClock returns a copy of s that stamps new articles with now.
func (s *Service) WithClock(now func() time.Time) *Service {
	cp := *s
	cp.now = now
	return &cp
}

func (s *Service) List(ctx context.Context) ([]Article, error) {
	return api.Fetch[[]Article](ctx, s.client, api.Request{
		Method: http.MethodGet,
		Path:   "/blogs",
	})
}

func (s *Service) Get(ctx context.Context, id string) (Article, error) {
	if id == "" {
		return Article{}, ErrMissingIdentifier
	}
	return api.Fetch[Article](ctx, s.client, api.Request{
		Method: http.MethodGet,
		Path:   "/blogs/" + url.PathEscape(id),
	})
}

// Create posts input with the current time as its date and returns the
// article as echoed by the service, including its new id.
func (s *Service) Create(ctx context.Context, input CreateArticleInput) (Article, error) {
	if input.Category == nil {
		input.Category = []string{}
	}
	body, err := json.Marshal(createPayload{
		CreateArticleInput: input,
		Date:               s.now().UTC().Format(TimestampLayout),
	})
	if err != nil {
		return Article{}, fmt.Errorf("encoding article: %w", err)
	}
	return api.Fetch[Article](ctx, s.client, api.Request{
		Method: http.MethodPost,
		Path:   "/blogs",
		Body:   body,
	})
}
