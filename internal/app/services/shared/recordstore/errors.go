package recordstore

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError reports a record store call that did not complete: the
// request could not be sent, the server answered with a non-2xx status, or
// the response body could not be decoded. StatusCode is zero when no
// response was received.
type TransportError struct {
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("%s: record store answered %d: %s", e.Operation, e.StatusCode, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: record store answered %d", e.Operation, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Operation, e.Message)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsStorageUnavailable reports whether err carries the record store's
// storage unavailable answer.
func IsStorageUnavailable(err error) bool {
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.StatusCode == http.StatusServiceUnavailable
	}
	return false
}
