// Package customerr holds the domain error taxonomy. Every failure a caller
// may want to branch on is one of these types; everything else is treated as
// a generic storage failure.
package customerr

import "errors"

// ValidationError is a rejected input caught before any store call.
type ValidationError struct {
	Err string
}

func (e *ValidationError) Error() string {
	return e.Err
}

// AccessError is an ownership check failure: the row exists (or would be
// written) under a different owner than the caller.
type AccessError struct {
	Err string
}

func (e *AccessError) Error() string {
	return e.Err
}

// NotFoundError covers both genuinely missing rows and rows hidden from the
// caller by ownership filtering. The two are indistinguishable on purpose.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// DuplicateError is a uniqueness violation, e.g. a second budget for the
// same (owner, category, month).
type DuplicateError struct {
	Err string
}

func (e *DuplicateError) Error() string {
	return e.Err
}

func IsValidation(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

func IsAccess(err error) bool {
	var e *AccessError
	return errors.As(err, &e)
}

func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

func IsDuplicate(err error) bool {
	var e *DuplicateError
	return errors.As(err, &e)
}
