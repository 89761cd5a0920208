package domain

import "errors"

var (
	// ErrValidation indicates malformed input data: a response count that
	// does not match the question count, or chapter records with
	// non-positive minutes or inverted page ranges.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTimeline indicates a deadline that is not after the start
	// date, or an effective duration below the configured minimum.
	// Schedule computation must not proceed past this check.
	ErrInvalidTimeline = errors.New("invalid timeline")

	// ErrEmptySchedule indicates that neither phase produced any tasks.
	// This is an internal-consistency failure, not a user error.
	ErrEmptySchedule = errors.New("empty schedule")
)
