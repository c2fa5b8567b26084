package blogs

import (
	"context"

	"github.com/matheuskafuri/blogdesk/internal/query"
)

const keyScope = "blogs"

// ListKey identifies the article list.
var ListKey = query.NewKey(keyScope)

func DetailKey(id string) query.Key {
	return query.NewKey(keyScope, id)
}

// emptyDetailKey backs a detail read that has no id yet. It is never enabled.
var emptyDetailKey = query.NewKey(keyScope, "detail", "empty")

func (s *Service) listFetcher() query.Fetcher {
	return func(ctx context.Context) (any, error) {
		return s.List(ctx)
	}
}

func (s *Service) detailFetcher(id string) query.Fetcher {
	return func(ctx context.Context) (any, error) {
		return s.Get(ctx, id)
	}
}

// SubscribeList subscribes to the article list.
func SubscribeList(c *query.Client, s *Service) *query.Subscription {
	return c.Subscribe(ListKey, s.listFetcher())
}

// SubscribeDetail subscribes to one article. An empty id yields a disabled
// subscription that stays idle.
func SubscribeDetail(c *query.Client, s *Service, id string) *query.Subscription {
	if id == "" {
		return c.Subscribe(emptyDetailKey, s.detailFetcher(id), query.Enabled(false))
	}
	return c.Subscribe(DetailKey(id), s.detailFetcher(id))
}

// Articles reads the list out of a snapshot.
func Articles(st query.State) []Article {
	list, _ := query.Data[[]Article](st)
	return list
}

// ArticleOf reads a single article out of a snapshot.
func ArticleOf(st query.State) (Article, bool) {
	return query.Data[Article](st)
}

// NewCreateMutation wires article creation into the cache: on success the
// list goes stale and the new article is primed under its detail key.
func NewCreateMutation(c *query.Client) *query.Mutation {
	return c.NewMutation(query.MutationOptions{
		Invalidate: func(any) []query.Predicate {
			return []query.Predicate{query.Exact(ListKey)}
		},
		Prime: func(res any) []query.Primed {
			created, ok := res.(Article)
			if !ok || created.ID == "" {
				return nil
			}
			return []query.Primed{{Key: DetailKey(created.ID), Value: created}}
		},
	})
}

// Create runs the create call through m.
func Create(ctx context.Context, m *query.Mutation, s *Service, input CreateArticleInput) (Article, error) {
	res, err := m.Mutate(ctx, func(ctx context.Context) (any, error) {
		return s.Create(ctx, input)
	})
	if err != nil {
		return Article{}, err
	}
	created, _ := res.(Article)
	return created, nil
}
