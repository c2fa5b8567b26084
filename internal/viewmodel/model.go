// Package viewmodel binds the current route to cache subscriptions and folds
// their snapshots into one state per pane.
package viewmodel

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/matheuskafuri/blogdesk/internal/blogs"
	"github.com/matheuskafuri/blogdesk/internal/logger"
	"github.com/matheuskafuri/blogdesk/internal/query"
)

// ErrSubmitPending is returned when a submission is already in flight.
var ErrSubmitPending = errors.New("a submission is already in progress")

type Model struct {
	cache  *query.Client
	svc    *blogs.Service
	create *query.Mutation
	log    *logger.Logger

	mu         sync.Mutex
	route      Route
	list       *query.Subscription
	detail     *query.Subscription
	formErr    error
	submitting bool
	closed     bool
	changes    chan struct{}
	done       chan struct{}
	forwarded  sync.WaitGroup
}

type Option func(*Model)

func WithLogger(l *logger.Logger) Option {
	return func(m *Model) { m.log = l }
}

// New subscribes to the list and positions the model at path.
func New(cache *query.Client, svc *blogs.Service, path string, opts ...Option) *Model {
	m := &Model{
		cache:   cache,
		svc:     svc,
		create:  blogs.NewCreateMutation(cache),
		log:     logger.Discard(),
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	m.mu.Lock()
	m.list = blogs.SubscribeList(cache, svc)
	m.forward(m.list)
	m.route = ParseRoute(path)
	m.detail = blogs.SubscribeDetail(cache, svc, m.route.ActiveID)
	m.forward(m.detail)
	m.mu.Unlock()

	m.forwarded.Add(1)
	go func() {
		defer m.forwarded.Done()
		for {
			select {
			case <-m.create.Updates():
				m.notify()
			case <-m.done:
				return
			}
		}
	}()
	return m
}

// forward relays a subscription's snapshots as change signals until it closes.
func (m *Model) forward(sub *query.Subscription) {
	m.forwarded.Add(1)
	go func() {
		defer m.forwarded.Done()
		for range sub.Updates() {
			m.notify()
		}
	}()
}

func (m *Model) notify() {
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

// Changes signals that Snapshot may return something new. Signals coalesce,
// so a reader only needs to call Snapshot once per receive.
func (m *Model) Changes() <-chan struct{} {
	return m.changes
}

// Done is closed by Close.
func (m *Model) Done() <-chan struct{} {
	return m.done
}

func (m *Model) Route() Route {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.route
}

// Navigate moves to path. The detail subscription follows the active id.
func (m *Model) Navigate(path string) Route {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return m.route
	}

	next := ParseRoute(path)
	prev := m.route
	m.route = next

	if next.ActiveID != prev.ActiveID {
		m.detail.Close()
		m.detail = blogs.SubscribeDetail(m.cache, m.svc, next.ActiveID)
		m.forward(m.detail)
	}
	if next.Mode == ModeCompose && prev.Mode != ModeCompose {
		m.formErr = nil
		if !m.create.State().Pending() {
			m.create.Reset()
		}
	}
	m.log.Debug("navigate", "from", prev.Path, "to", next.Path)
	m.notify()
	return next
}

// Submit validates form, creates the article and navigates to it. Validation
// failures never reach the network.
func (m *Model) Submit(ctx context.Context, form blogs.ComposeForm) (blogs.Article, error) {
	m.mu.Lock()
	if m.submitting {
		m.mu.Unlock()
		return blogs.Article{}, ErrSubmitPending
	}
	input, err := form.Input()
	m.formErr = err
	if err != nil {
		m.create.Reset()
		m.mu.Unlock()
		return blogs.Article{}, err
	}
	m.submitting = true
	m.mu.Unlock()

	created, err := blogs.Create(ctx, m.create, m.svc, input)

	m.mu.Lock()
	m.submitting = false
	m.mu.Unlock()
	if err != nil {
		return blogs.Article{}, err
	}
	m.Navigate(DetailPath(created.ID))
	return created, nil
}

// Refresh refetches the list and the open article in the background. It
// reports whether any fetch started.
func (m *Model) Refresh() bool {
	m.mu.Lock()
	id := m.route.ActiveID
	m.mu.Unlock()

	started := m.cache.Refetch(blogs.ListKey)
	if id != "" && m.cache.Refetch(blogs.DetailKey(id)) {
		started = true
	}
	return started
}

// Close drops every subscription. Cached entries stay in the query client.
func (m *Model) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.list.Close()
	m.detail.Close()
	close(m.done)
	m.mu.Unlock()

	m.forwarded.Wait()
}

type ListStatus int

const (
	ListLoading ListStatus = iota
	ListError
	ListEmpty
	ListReady
)

type ListPane struct {
	Status     ListStatus
	Articles   []blogs.Article
	ActiveID   string
	Err        error
	Refreshing bool
	UpdatedAt  time.Time
}

type DetailStatus int

const (
	DetailPlaceholder DetailStatus = iota
	DetailLoading
	DetailError
	DetailReady
)

type DetailPane struct {
	Status  DetailStatus
	Article blogs.Article
	Err     error
}

type ComposePane struct {
	Pending bool
	Err     error
}

// Snapshot is what the shell renders.
type Snapshot struct {
	Route   Route
	List    ListPane
	Detail  DetailPane
	Compose ComposePane
}

func (m *Model) Snapshot() Snapshot {
	m.mu.Lock()
	route := m.route
	listState := m.list.State()
	detailState := m.detail.State()
	formErr := m.formErr
	m.mu.Unlock()

	snap := Snapshot{
		Route: route,
		List:  listPane(listState, route.ActiveID),
	}
	if route.Mode == ModeDetail {
		snap.Detail = detailPane(detailState)
	}

	ms := m.create.State()
	snap.Compose = ComposePane{Pending: ms.Pending(), Err: formErr}
	if ms.Status == query.MutationError {
		snap.Compose.Err = ms.Err
	}
	return snap
}

func listPane(st query.State, activeID string) ListPane {
	p := ListPane{
		Articles:   blogs.Articles(st),
		ActiveID:   activeID,
		Err:        st.Err,
		Refreshing: st.Fetching && st.Data != nil,
		UpdatedAt:  st.UpdatedAt,
	}
	switch {
	case st.Status == query.Error:
		p.Status = ListError
	case st.Status != query.Success:
		p.Status = ListLoading
	case len(p.Articles) == 0:
		p.Status = ListEmpty
	default:
		p.Status = ListReady
	}
	return p
}

func detailPane(st query.State) DetailPane {
	p := DetailPane{Err: st.Err}
	p.Article, _ = blogs.ArticleOf(st)
	switch st.Status {
	case query.Error:
		p.Status = DetailError
	case query.Success:
		p.Status = DetailReady
	default:
		p.Status = DetailLoading
	}
	return p
}
