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

// UnauthorizedError covers missing sessions and role mismatches. The guard is
// the only producer; handlers behind it trust that it ran.
type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

// UpstreamError is a non-2xx answer from the core backend. The status code is
// carried through but not otherwise distinguished.
type UpstreamError struct {
	Status int
	Msg    string
}

func (e UpstreamError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("upstream %d: %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("upstream %d", e.Status)
}

// UnavailableError is a transport-level failure reaching the core backend.
type UnavailableError struct {
	Op  string
	Err error
}

func (e UnavailableError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("backend unavailable during %s", e.Op)
	}
	return "backend unavailable"
}

func (e UnavailableError) Unwrap() error { return e.Err }

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

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target UpstreamError
	return errors.As(err, &target)
}

// AsUpstream extracts the upstream error when present.
func AsUpstream(err error) (UpstreamError, bool) {
	var target UpstreamError
	ok := errors.As(err, &target)
	return target, ok
}

func IsUnavailable(err error) bool {
	var target UnavailableError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}
