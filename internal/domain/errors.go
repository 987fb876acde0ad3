package domain

import (
	"errors"
	"fmt"
)

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ConflictError signals a unique-name collision (DUPLICATE_ENTITY on the wire).
type ConflictError struct {
	Resource string
	Msg      string
	Err      error
}

func (e ConflictError) Error() string {
	switch {
	case e.Msg != "" && e.Resource != "":
		return fmt.Sprintf("%s conflict: %s", e.Resource, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Resource != "":
		return fmt.Sprintf("%s conflict", e.Resource)
	default:
		return "conflict"
	}
}

func (e ConflictError) Unwrap() error { return e.Err }

// InUseError signals a delete blocked by references from another table
// (ALREADY_USED_ELSEWHERE on the wire).
type InUseError struct {
	Resource string
	Err      error
}

func (e InUseError) Error() string {
	if e.Resource == "" {
		return "still referenced elsewhere"
	}
	return fmt.Sprintf("%s is still referenced elsewhere", e.Resource)
}

func (e InUseError) Unwrap() error { return e.Err }

// NotMatchError signals a credential mismatch, e.g. wrong current password.
type NotMatchError struct {
	Field string
	Err   error
}

func (e NotMatchError) Error() string {
	if e.Field == "" {
		return "not match"
	}
	return fmt.Sprintf("%s does not match", e.Field)
}

func (e NotMatchError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsConflict(err error) bool {
	var target ConflictError
	return errors.As(err, &target)
}

func IsInUse(err error) bool {
	var target InUseError
	return errors.As(err, &target)
}

func IsNotMatch(err error) bool {
	var target NotMatchError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
