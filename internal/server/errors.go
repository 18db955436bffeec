// Package server provides the HTTP REST API over the achievement block catalog.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/achievement-blocks/internal/catalog"
	"github.com/jonathan/achievement-blocks/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
	Cause   error
}

func (e *ErrValidation) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s - %s: %v", e.Field, e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

func (e *ErrValidation) Unwrap() error {
	return e.Cause
}

// ErrNotFound indicates the requested record does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrPersistenceDisabled indicates a request needed the database but none is configured
type ErrPersistenceDisabled struct{}

func (e *ErrPersistenceDisabled) Error() string {
	return "persistence is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		argumentErr   *catalog.InvalidArgumentError
		fieldErrs     validator.ValidationErrors
		loadErr       *catalog.LoadError
		schemaErr     *schemas.ValidationError
		persistErr    *ErrPersistenceDisabled
		notFound      *ErrNotFound
		tooLarge      *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validationErr), errors.As(err, &argumentErr), errors.As(err, &fieldErrs):
		return http.StatusBadRequest
	case errors.As(err, &loadErr), errors.As(err, &schemaErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &persistErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
