package query

// Subscription is a live interest in one key. Closing it never touches the
// entry's data; the entry stays warm in the cache.
type Subscription struct {
	c       *Client
	e       *entry
	key     Key
	enabled bool
	closed  bool
	updates chan State
}

type subscribeConfig struct {
	enabled bool
}

type SubscribeOption func(*subscribeConfig)

// Enabled controls whether the subscription may fetch. Disabled subscriptions
// observe the entry but never trigger network traffic.
func Enabled(on bool) SubscribeOption {
	return func(cfg *subscribeConfig) { cfg.enabled = on }
}

// Subscribe registers interest in key. The first enabled subscriber of an
// idle, stale or failed entry triggers fetch; everyone else shares the result.
// fetch also becomes the entry's fetcher for later refetches.
func (c *Client) Subscribe(key Key, fetch Fetcher, opts ...SubscribeOption) *Subscription {
	cfg := subscribeConfig{enabled: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e := c.entryLocked(key)
	if fetch != nil {
		e.fetcher = fetch
	}

	s := &Subscription{
		c:       c,
		e:       e,
		key:     key,
		enabled: cfg.enabled,
		updates: make(chan State, 1),
	}
	e.subs[s] = struct{}{}

	if s.enabled && needsFetch(e) {
		c.startFetchLocked(e)
		return s
	}
	c.publishLocked(e)
	return s
}

func (s *Subscription) Key() Key {
	return s.key
}

// State pulls the current snapshot.
func (s *Subscription) State() State {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	return s.e.snapshot()
}

// Updates delivers snapshots in publication order. A snapshot the reader has
// not picked up yet is replaced by a newer one. The channel is closed by Close.
func (s *Subscription) Updates() <-chan State {
	return s.updates
}

// SetEnabled toggles fetching. Enabling a subscription whose entry has never
// loaded fetches as if it had just subscribed.
func (s *Subscription) SetEnabled(on bool) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if s.closed || s.enabled == on {
		return
	}
	s.enabled = on
	if on && needsFetch(s.e) {
		s.c.startFetchLocked(s.e)
	}
}

func (s *Subscription) Close() {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	delete(s.e.subs, s)
	close(s.updates)
	s.c.publishLocked(s.e)
}

// push replaces any unread snapshot with st. Only called under c.mu, so sends
// never race each other and never block.
func (s *Subscription) push(st State) {
	select {
	case <-s.updates:
	default:
	}
	s.updates <- st
}
