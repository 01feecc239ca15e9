package service

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrResourceNotFound struct {
	error
}

func NewErrResourceNotFound(id uuid.UUID, resourceType string) *ErrResourceNotFound {
	return &ErrResourceNotFound{fmt.Errorf("%s %s not found", resourceType, id)}
}

func NewErrUserNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "user")
}

func NewErrCalculationNotFound(id uuid.UUID) *ErrResourceNotFound {
	return NewErrResourceNotFound(id, "calculation")
}

type ErrDuplicateUser struct {
	error
}

func NewErrDuplicateUser(username, email string) *ErrDuplicateUser {
	return &ErrDuplicateUser{fmt.Errorf("user with username %q or email %q already exists", username, email)}
}

// ErrInvalidCalculation wraps a rejection from the calculation core, such as
// an unknown type, too few inputs, or a division by zero.
type ErrInvalidCalculation struct {
	error
}

func NewErrInvalidCalculation(err error) *ErrInvalidCalculation {
	return &ErrInvalidCalculation{fmt.Errorf("invalid calculation: %w", err)}
}

func (e *ErrInvalidCalculation) Unwrap() error {
	return e.error
}
