package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/finance-tracker/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrGeneral), errors.Is(err, models.ErrUnsupportedFormat), errors.Is(err, models.ErrExportFailure):
		return http.StatusInternalServerError
	}

	// Binding errors for URIs and query strings
	return http.StatusBadRequest
}

var (
	errFormatNotSet = fmt.Errorf("%w: the format query parameter must be set", models.ErrValidation)
	errTypeNotSet   = fmt.Errorf("%w: the type query parameter must be set", models.ErrValidation)
)
