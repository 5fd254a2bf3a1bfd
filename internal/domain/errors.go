package domain

import "fmt"

// ValidationError covers malformed or out-of-range input: bad date order,
// hours outside bounds, missing required remarks. Never retried.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// InvalidTransitionError is returned when a request is asked to move from a
// terminal or incompatible status. The caller must refetch before retrying.
type InvalidTransitionError struct {
	From   RequestStatus
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a request in status %q", e.Action, e.From)
}

// ConflictError signals a lost race: a concurrent mutation won the
// status-guarded update, or a duplicate active request exists for the same
// employee/date/type.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

func NewNotFoundError(entity string) *NotFoundError {
	return &NotFoundError{Entity: entity}
}

// ForbiddenError is returned when the actor is not allowed to perform the
// operation, e.g. cancelling somebody else's request.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string {
	return e.Message
}

func NewForbiddenError(message string) *ForbiddenError {
	return &ForbiddenError{Message: message}
}
