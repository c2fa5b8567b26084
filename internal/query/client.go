// Package query is an in-memory cache of remote reads and writes. Reads are
// keyed and deduplicated, results are published to subscribers as snapshots,
// and successful mutations invalidate or prime entries.
//
// Every state transition happens under one lock, so observers see the same
// sequence of snapshots a single event loop would produce. Fetches run on
// their own goroutines and are tagged with a per-key sequence number; a result
// whose sequence is no longer the latest is dropped before anyone sees it.
package query

import (
	"context"
	"sync"
	"time"

	"github.com/matheuskafuri/blogdesk/internal/logger"
)

type entry struct {
	state    State
	fetcher  Fetcher
	seq      uint64
	inflight bool
	cancel   context.CancelFunc
	subs     map[*Subscription]struct{}
}

// active counts enabled subscriptions, the ones that keep a key live.
func (e *entry) active() int {
	n := 0
	for s := range e.subs {
		if s.enabled {
			n++
		}
	}
	return n
}

// abortLocked cancels the fetch in flight, if any. Callers hold c.mu.
func (e *entry) abortLocked() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *entry) snapshot() State {
	st := e.state
	st.Subscribers = len(e.subs)
	return st
}

type Client struct {
	mu      sync.Mutex
	entries map[Key]*entry

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	now func() time.Time
	log *logger.Logger
}

type Option func(*Client)

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithClock overrides time.Now for UpdatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func New(opts ...Option) *Client {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Client{
		entries: make(map[Key]*entry),
		ctx:     ctx,
		cancel:  cancel,
		now:     time.Now,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close cancels the context handed to in-flight fetchers and waits for them.
func (c *Client) Close() {
	c.cancel()
	c.wg.Wait()
}

// Wait blocks until every fetch started so far has returned and been applied.
func (c *Client) Wait() {
	c.wg.Wait()
}

// Get returns the current snapshot for key without subscribing.
func (c *Client) Get(key Key) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return State{Key: key}, false
	}
	return e.snapshot(), true
}

// entryLocked returns the entry for key, creating an idle one. Callers hold c.mu.
func (c *Client) entryLocked(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{
			state: State{Key: key, Status: Idle},
			subs:  make(map[*Subscription]struct{}),
		}
		c.entries[key] = e
	}
	return e
}

// needsFetch reports whether a new demand for e should hit the network.
func needsFetch(e *entry) bool {
	if e.inflight || e.fetcher == nil {
		return false
	}
	switch e.state.Status {
	case Idle, Error:
		return true
	}
	return e.state.Stale
}

// startFetchLocked cancels any fetch still running for e, bumps the sequence,
// publishes the loading transition and runs the fetcher in the background.
// Callers hold c.mu.
func (c *Client) startFetchLocked(e *entry) {
	e.abortLocked()
	e.seq++
	seq := e.seq
	key := e.state.Key
	fetch := e.fetcher
	ctx, cancel := context.WithCancel(c.ctx)

	e.cancel = cancel
	e.inflight = true
	e.state.Fetching = true
	if e.state.Data == nil {
		e.state.Status = Loading
	}
	c.publishLocked(e)

	c.log.Debug("fetch started", "key", key.String(), "seq", seq)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()
		data, err := fetch(ctx)
		c.finish(key, seq, data, err)
	}()
}

func (c *Client) finish(key Key, seq uint64, data any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}
	if seq != e.seq {
		c.log.Debug("fetch result discarded", "key", key.String(), "seq", seq, "latest", e.seq)
		return
	}

	e.cancel = nil
	e.inflight = false
	e.state.Fetching = false
	if err != nil {
		// Keep the previous Data so readers can still show it.
		e.state.Status = Error
		e.state.Err = err
		c.log.Debug("fetch failed", "key", key.String(), "seq", seq, "error", err)
	} else {
		e.state.Status = Success
		e.state.Data = data
		e.state.Err = nil
		e.state.UpdatedAt = c.now()
		e.state.Stale = false
		c.log.Debug("fetch succeeded", "key", key.String(), "seq", seq)
	}
	c.publishLocked(e)
}

func (c *Client) publishLocked(e *entry) {
	st := e.snapshot()
	for s := range e.subs {
		s.push(st)
	}
}

// Invalidate marks every matching entry stale. Entries with an enabled
// subscriber refetch straight away; the rest refetch on next demand. It
// returns how many entries matched.
func (c *Client) Invalidate(match Predicate) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for key, e := range c.entries {
		if !match(key) {
			continue
		}
		n++
		e.state.Stale = true
		if e.active() > 0 && e.fetcher != nil {
			// A fetch already in flight is cancelled and superseded by this one.
			c.startFetchLocked(e)
			continue
		}
		c.publishLocked(e)
	}
	return n
}

// Prime stores value under key as a fresh successful read. A fetch still in
// flight for the key is cancelled and can no longer overwrite it.
func (c *Client) Prime(key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(key)
	e.abortLocked()
	e.seq++
	e.inflight = false
	e.state.Status = Success
	e.state.Data = value
	e.state.Err = nil
	e.state.UpdatedAt = c.now()
	e.state.Stale = false
	e.state.Fetching = false
	c.publishLocked(e)
}

// Refetch starts a background fetch for key unless one is already running or
// nothing has registered a fetcher. It reports whether a fetch started.
func (c *Client) Refetch(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.fetcher == nil || e.inflight {
		return false
	}
	c.startFetchLocked(e)
	return true
}
