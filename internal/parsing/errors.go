// Package parsing turns a hand-edited achievement document into raw achievement entries.
package parsing

import "fmt"

// ReadError represents a failure reading the source document.
// Malformed markdown is never an error; only I/O failures are.
type ReadError struct {
	Message string
	Cause   error
}

func (e *ReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("read error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("read error: %s", e.Message)
}

func (e *ReadError) Unwrap() error {
	return e.Cause
}
