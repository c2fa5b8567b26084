package query

import (
	"context"
	"sync"
)

type MutationStatus int

const (
	MutationIdle MutationStatus = iota
	MutationPending
	MutationSuccess
	MutationError
)

func (s MutationStatus) String() string {
	switch s {
	case MutationPending:
		return "pending"
	case MutationSuccess:
		return "success"
	case MutationError:
		return "error"
	default:
		return "idle"
	}
}

type MutationState struct {
	Status MutationStatus
	Data   any
	Err    error
}

func (s MutationState) Pending() bool {
	return s.Status == MutationPending
}

// Primed is a value to store under a key after a successful mutation.
type Primed struct {
	Key   Key
	Value any
}

// MutationOptions holds the post-success hooks. Invalidations run first, then primes,
// and both finish before Mutate returns.
type MutationOptions struct {
	Invalidate func(result any) []Predicate
	Prime      func(result any) []Primed
}

// MutationFunc performs the write.
type MutationFunc func(ctx context.Context) (any, error)

// Mutation tracks one write entry point. It is not deduplicated: every call
// to Mutate runs its function once, with no retries.
type Mutation struct {
	c    *Client
	opts MutationOptions

	mu      sync.Mutex
	state   MutationState
	updates chan MutationState
}

func (c *Client) NewMutation(opts MutationOptions) *Mutation {
	return &Mutation{
		c:       c,
		opts:    opts,
		updates: make(chan MutationState, 1),
	}
}

// Mutate runs fn once through a throwaway Mutation.
func (c *Client) Mutate(ctx context.Context, fn MutationFunc, opts MutationOptions) (any, error) {
	return c.NewMutation(opts).Mutate(ctx, fn)
}

func (m *Mutation) Mutate(ctx context.Context, fn MutationFunc) (any, error) {
	m.set(MutationState{Status: MutationPending})

	result, err := fn(ctx)
	if err != nil {
		m.c.log.Warn("mutation failed", "error", err)
		m.set(MutationState{Status: MutationError, Err: err})
		return nil, err
	}

	if m.opts.Invalidate != nil {
		for _, pred := range m.opts.Invalidate(result) {
			m.c.Invalidate(pred)
		}
	}
	if m.opts.Prime != nil {
		for _, p := range m.opts.Prime(result) {
			m.c.Prime(p.Key, p.Value)
		}
	}

	m.set(MutationState{Status: MutationSuccess, Data: result})
	return result, nil
}

func (m *Mutation) State() MutationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Updates follows the same coalescing rule as Subscription.Updates.
func (m *Mutation) Updates() <-chan MutationState {
	return m.updates
}

// Reset returns the mutation to idle, e.g. when a form is reopened.
func (m *Mutation) Reset() {
	m.set(MutationState{})
}

func (m *Mutation) set(st MutationState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = st
	select {
	case <-m.updates:
	default:
	}
	m.updates <- st
}
