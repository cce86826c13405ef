package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"farmstock/pkg/dosage"
)

// ValidationError: malformed input, rejected before any store call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError: the named entity does not exist for this user.
type NotFoundError struct {
	Entity string
	Name   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Name)
}

// InsufficientStockError: a schedule needs more of an item than remains.
type InsufficientStockError struct {
	Item      string
	Required  float64
	Remaining float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: need %.2f, have %.2f", e.Item, e.Required, e.Remaining)
}

// ConflictError: the entity changed under the caller (e.g. a completion
// toggle raced another one).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string { return e.Msg }

// HTTPStatus maps a service error to the response code. Anything unknown is a
// store failure.
func HTTPStatus(err error) int {
	var (
		verr *ValidationError
		derr *dosage.ValidationError
		nerr *NotFoundError
		serr *InsufficientStockError
		cerr *ConflictError
	)
	switch {
	case errors.As(err, &verr), errors.As(err, &derr):
		return http.StatusBadRequest
	case errors.As(err, &nerr):
		return http.StatusNotFound
	case errors.As(err, &serr), errors.As(err, &cerr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
