// Package inference derives keywords, skills, role types, company types and a strength
// level for raw achievement entries. All inference is rule based and deterministic.
package inference

import "fmt"

// VocabularyError represents an error loading or decoding a vocabulary file
type VocabularyError struct {
	Message string
	Cause   error
}

func (e *VocabularyError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vocabulary error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("vocabulary error: %s", e.Message)
}

func (e *VocabularyError) Unwrap() error {
	return e.Cause
}
