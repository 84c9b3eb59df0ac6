package gorm

import (
	"errors"

	stdgorm "gorm.io/gorm"
)

// IsNotFound reports whether the given error is gorm's record-not-found
// sentinel. Absence of a row is a valid result for read repositories and
// must be distinguishable from real database failures.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, stdgorm.ErrRecordNotFound)
}

// IsFoundButHasErrors reports whether the error is a database failure other
// than record-not-found.
func IsFoundButHasErrors(err error) bool {
	return err != nil && !errors.Is(err, stdgorm.ErrRecordNotFound)
}

// HasDbIssues reports whether the error is any non-nil database error.
func HasDbIssues(err error) bool {
	return IsNotFound(err) || IsFoundButHasErrors(err)
}
