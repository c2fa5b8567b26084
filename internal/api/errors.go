package api

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// TransportFailure covers unreachable hosts, resets and aborted requests.
	TransportFailure Kind = iota
	// HTTPFailure is a response outside 2xx.
	HTTPFailure
)

func (k Kind) String() string {
	switch k {
	case TransportFailure:
		return "transport"
	case HTTPFailure:
		return "http"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is the failure value of every gateway call. Status is 0 when no
// response was received. Body holds the decoded JSON, the raw text, or nil.
type Error struct {
	Message string
	Status  int
	Body    any
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) Kind() Kind {
	if e.Status == 0 {
		return TransportFailure
	}
	return HTTPFailure
}

func transportError(err error) *Error {
	return &Error{
		Message: fmt.Sprintf("Network error: %v", err),
		Status:  0,
		cause:   err,
	}
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
