package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound reports an id the catalog provider does not know.
var ErrNotFound = errors.New("movie not found")

// RemoteError covers transport failures and non-2xx responses.
type RemoteError struct {
	StatusCode int // 0 for transport failures
	Status     string
	Err        error
}

func (e *RemoteError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed: %v", e.Err)
	}
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// DecodeError reports a response body that did not match the expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
