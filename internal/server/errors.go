package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/skillfit/internal/extraction"
	"github.com/jonathan/skillfit/internal/types"
)

// ErrDocumentNotFound indicates a stored document id that does not exist or
// whose session has expired.
type ErrDocumentNotFound struct {
	ID string
}

func (e *ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document not found or session expired: %s", e.ID)
}

// ErrNotConfigured indicates a dependency required by the endpoint is absent.
type ErrNotConfigured struct {
	What string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s is not configured", e.What)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound      *ErrDocumentNotFound
		notConfigured *ErrNotConfigured
		fieldErr      *types.FieldError
		inputErr      *extraction.InputError
		parseErr      *extraction.ParseError
		apiErr        *extraction.APICallError
		validatorErrs validator.ValidationErrors
	)

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &notConfigured):
		return http.StatusServiceUnavailable
	case errors.As(err, &fieldErr), errors.As(err, &inputErr), errors.As(err, &validatorErrs):
		return http.StatusBadRequest
	case errors.As(err, &parseErr), errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
