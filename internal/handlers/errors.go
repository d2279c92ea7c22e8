package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/nbp_rates_app/internal/apperrors"
)

// statusForError maps a failed request or screen load to an HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnknownTable):
		// NBP answered with a table this client does not know
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrUpstream), errors.Is(err, apperrors.ErrNoTableData):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
