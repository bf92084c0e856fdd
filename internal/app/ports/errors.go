package ports

import (
	"errors"
	"fmt"
)

var (
	ErrTransport         = errors.New("transport failure")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedResponse = errors.New("malformed response")
	ErrRejected          = errors.New("rejected by backend")
)

// StatusError is a non-2xx reply. Message holds the backend's "error"
// field when the body carried one.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Message)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

// RejectedError is a well-formed reply with success=false.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	if e.Message == "" {
		return ErrRejected.Error()
	}
	return e.Message
}

func (e *RejectedError) Unwrap() error { return ErrRejected }

// ServerMessage extracts the text the backend supplied, if any.
func ServerMessage(err error) (string, bool) {
	var rejected *RejectedError
	if errors.As(err, &rejected) && rejected.Message != "" {
		return rejected.Message, true
	}
	var status *StatusError
	if errors.As(err, &status) && status.Message != "" {
		return status.Message, true
	}
	return "", false
}
