package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodePatternLoad     = "PATTERN_LOAD_ERROR"
	CodeInvalidGeometry = "INVALID_GEOMETRY"
	CodeInternal        = "INTERNAL_SERVER_ERROR"
)

var (
	ErrEmptyLineID = New(
		CodeValidation,
		"Line id must not be empty",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		CodeValidation,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidGeometry = New(
		CodeInvalidGeometry,
		"Shape has no usable line geometry",
		http.StatusUnprocessableEntity,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// NotFound is returned when the remote transit API answers a lookup
// with a non-success status. The failing identifier travels with it.
func NotFound(resource, id string) *AppError {
	return New(
		CodeNotFound,
		fmt.Sprintf("%s %q not found", resource, id),
		http.StatusNotFound,
	).WithDetails(map[string]interface{}{
		"resource": resource,
		"id":       id,
	})
}

// PatternLoad aborts a whole pattern fan-out. patternID names the first
// pattern whose pattern-or-route fetch failed.
func PatternLoad(patternID string, cause error) *AppError {
	return New(
		CodePatternLoad,
		fmt.Sprintf("Failed to load pattern %q", patternID),
		http.StatusBadGateway,
	).WithDetails(map[string]interface{}{
		"pattern_id": patternID,
		"cause":      cause.Error(),
	})
}
