package mockapi

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
)

//go:embed seed.json
var seedJSON []byte

// Seed returns the articles the mock server starts with.
func Seed() ([]blogs.Article, error) {
	var articles []blogs.Article
	if err := json.Unmarshal(seedJSON, &articles); err != nil {
		return nil, fmt.Errorf("parsing seed data: %w", err)
	}
	return articles, nil
}

// Store keeps articles in insertion order.
type Store struct {
	mu       sync.RWMutex
	articles []blogs.Article
	newID    func() string
}

func NewStore(seed []blogs.Article) *Store {
	s := &Store{newID: uuid.NewString}
	s.articles = append(s.articles, seed...)
	return s
}

func (s *Store) List() []blogs.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]blogs.Article, len(s.articles))
	copy(out, s.articles)
	return out
}

func (s *Store) Get(id string) (blogs.Article, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.articles {
		if a.ID == id {
			return a, true
		}
	}
	return blogs.Article{}, false
}

// Add stores a and returns it with an id. A caller-supplied id is kept
// unless it collides with an existing one.
func (s *Store) Add(a blogs.Article) blogs.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" || s.hasLocked(a.ID) {
		a.ID = s.newID()
	}
	if a.Category == nil {
		a.Category = []string{}
	}
	s.articles = append(s.articles, a)
	return a
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles)
}

func (s *Store) hasLocked(id string) bool {
	for _, a := range s.articles {
		if a.ID == id {
			return true
		}
	}
	return false
}
