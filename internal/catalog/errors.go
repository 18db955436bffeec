// Package catalog holds the immutable collection of blocks built from one achievement
// document and answers search, grouping and statistics queries over it.
package catalog

import "fmt"

// LoadError represents an error reading or importing an achievement document
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("catalog load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("catalog load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// InvalidArgumentError represents a malformed query argument supplied by a caller
type InvalidArgumentError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InvalidArgumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid argument %s: %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid argument %s: %s", e.Field, e.Message)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Cause
}
