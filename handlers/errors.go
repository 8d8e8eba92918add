package handlers

import (
	"errors"
	"net/http"

	"tourvisto/models"
)

// statusForError maps the service error taxonomy to HTTP status codes:
// validation 400, not-found 404, wrong lifecycle state 409, everything else
// (provider and unexpected failures) 500.
func statusForError(err error) int {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound
	}
	var stateErr *models.InvalidStateError
	if errors.As(err, &stateErr) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
