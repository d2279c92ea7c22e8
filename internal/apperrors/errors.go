package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUpstream indicates that the NBP API could not be reached, answered with a
// non-2xx status or returned a body that could not be decoded.
var ErrUpstream = errors.New("upstream request failed")

// ErrNoTableData indicates that the NBP API returned an empty list of tables.
var ErrNoTableData = errors.New("no table data received from NBP API")

// ErrUnknownTable is matched by every UnknownTableError via errors.Is.
var ErrUnknownTable = errors.New("unknown table type")

// UnknownTableError is returned when a rate table identifier is not one of A, B or C.
type UnknownTableError struct {
	Value string
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("Unknown table type: %s", e.Value)
}

// Is lets errors.Is(err, ErrUnknownTable) succeed.
func (e *UnknownTableError) Is(target error) bool {
	return target == ErrUnknownTable
}

// NewUnknownTableError builds an UnknownTableError for the given raw value.
func NewUnknownTableError(value string) error {
	return &UnknownTableError{Value: value}
}

// UpstreamStatusError carries the HTTP status of a non-2xx NBP response.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("NBP API returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("NBP API returned status %d: %s", e.StatusCode, e.Body)
}

func (e *UpstreamStatusError) Unwrap() error {
	return ErrUpstream
}

// Is lets a 404 from NBP (unknown code or no data in range) match ErrNotFound.
func (e *UpstreamStatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}
