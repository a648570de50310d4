package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the analyzer core. Use errors.Is to test for them;
// concrete error types below carry the offending context for display.
var (
	// ErrInvalidPolicy indicates a WindowPolicy that fails validation.
	ErrInvalidPolicy = errors.New("invalid window policy")

	// ErrInvalidRequest indicates malformed caller input (dates, durations).
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMalformedSequence indicates a flight sequence that cannot be
	// paired into stays: an exit with no preceding entry, or a second
	// entry while a stay is already open.
	ErrMalformedSequence = errors.New("malformed flight sequence")

	// ErrNoConvergence indicates the future-availability search exhausted
	// its bound (one window length) without finding a compliant date.
	ErrNoConvergence = errors.New("no compliant date found within one window length")
)

// SequenceError describes a flight event that violates the alternating
// entry/exit structure. It wraps ErrMalformedSequence and carries enough
// context (date, flight) for the caller to display or correct the input.
type SequenceError struct {
	// Date is the calendar date of the offending flight
	Date time.Time

	// Flight is the offending event
	Flight FlightEvent

	// Reason describes the violation (e.g., "exit with no open entry")
	Reason string
}

// NewSequenceError creates a SequenceError for the given flight.
func NewSequenceError(flight FlightEvent, reason string) *SequenceError {
	return &SequenceError{
		Date:   flight.Date,
		Flight: flight,
		Reason: reason,
	}
}

// Error implements the error interface.
func (e *SequenceError) Error() string {
	return fmt.Sprintf("%v: %s on %s: %s",
		ErrMalformedSequence, e.Reason, e.Date.Format("2006-01-02"), e.Flight.Describe())
}

// Unwrap enables errors.Is(err, ErrMalformedSequence).
func (e *SequenceError) Unwrap() error {
	return ErrMalformedSequence
}

// ConvergenceError describes a future-availability search that exceeded
// its bound. It wraps ErrNoConvergence.
type ConvergenceError struct {
	// DesiredDays is the stay length that was searched for
	DesiredDays int

	// SearchFrom is the date the search started at
	SearchFrom time.Time

	// BoundDays is the number of candidate dates examined
	BoundDays int
}

// NewConvergenceError creates a ConvergenceError for the given search.
func NewConvergenceError(desiredDays int, searchFrom time.Time, boundDays int) *ConvergenceError {
	return &ConvergenceError{
		DesiredDays: desiredDays,
		SearchFrom:  searchFrom,
		BoundDays:   boundDays,
	}
}

// Error implements the error interface.
func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%v: %d-day stay unreachable within %d days of %s",
		ErrNoConvergence, e.DesiredDays, e.BoundDays, e.SearchFrom.Format("2006-01-02"))
}

// Unwrap enables errors.Is(err, ErrNoConvergence).
func (e *ConvergenceError) Unwrap() error {
	return ErrNoConvergence
}

// IsMalformedSequence reports whether err is a sequence pairing failure.
func IsMalformedSequence(err error) bool {
	return errors.Is(err, ErrMalformedSequence)
}

// IsNoConvergence reports whether err is a projection search that did not
// converge within its bound.
func IsNoConvergence(err error) bool {
	return errors.Is(err, ErrNoConvergence)
}

// IsInvalidPolicy reports whether err is a policy validation failure.
func IsInvalidPolicy(err error) bool {
	return errors.Is(err, ErrInvalidPolicy)
}
