package query

import (
	"context"
	"time"
)

type Status int

const (
	Idle Status = iota
	Loading
	Success
	Error
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// State is an immutable snapshot of one cache entry.
type State struct {
	Key       Key
	Status    Status
	Data      any
	Err       error
	UpdatedAt time.Time
	// Stale entries refetch on next demand.
	Stale bool
	// Fetching is true while a request for the key is in flight, including
	// background refetches that keep Data visible.
	Fetching    bool
	Subscribers int
}

// Data returns the snapshot's data as T.
func Data[T any](s State) (T, bool) {
	v, ok := s.Data.(T)
	return v, ok
}

// Fetcher loads the value for a key.
type Fetcher func(ctx context.Context) (any, error)
