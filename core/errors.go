package core

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("invalid input")
	ErrDuplicateID  = errors.New("employee with this ID already exists")
	ErrNotFound     = errors.New("employee not found")
	ErrNoRecords    = errors.New("no employees to display")
	ErrStorageRead  = errors.New("unable to read employee data file")
	ErrStorageWrite = errors.New("unable to write employee data file")
)

// FieldError describes a single rejected field value. It always wraps
// ErrValidation.
type FieldError struct {
	Field string // Employee field name, e.g. "Salary"
	Value string // Raw input as typed
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func newFieldError(field, value, reason string) *FieldError {
	return &FieldError{
		Field: field,
		Value: value,
		Err:   fmt.Errorf("%w: %s", ErrValidation, reason),
	}
}
