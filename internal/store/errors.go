package store

import "fmt"

// UnavailableError indicates the backing store could not be reached or the
// operation timed out. The core never retries these; the current request
// fails outright and the caller decides what to do.
type UnavailableError struct {
	Op  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("store unavailable (%s): %v", e.Op, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

func unavailable(op string, err error) error {
	return &UnavailableError{Op: op, Err: err}
}
