package ledger

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Conn implementations when the ledger has no
// record for the queried entity (unknown account, unknown transaction).
var ErrNotFound = errors.New("not found on ledger")

// NoServerAvailableError is returned when every candidate endpoint for a
// network refused a connection.
type NoServerAvailableError struct {
	Network string
	Err     error // last dial error
}

func (e *NoServerAvailableError) Error() string {
	return fmt.Sprintf("failed to connect to any %s server: %v", e.Network, e.Err)
}

func (e *NoServerAvailableError) Unwrap() error {
	return e.Err
}

// ServerError is a request-level failure reported by a ledger endpoint.
type ServerError struct {
	Server string
	Err    error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("ledger error on %s: %v", e.Server, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
