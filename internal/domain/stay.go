package domain

import "time"

// StayEnd is a tagged variant describing how a stay terminates:
// Closed with a concrete exit date, or Ongoing (no exit seen yet).
// Encoding the two cases explicitly keeps the "clip to reference date"
// rule visible at every accounting site instead of hiding it behind a
// nullable date.
type StayEnd struct {
	closed bool
	date   time.Time
}

// ClosedEnd returns a StayEnd terminated on the given exit date.
func ClosedEnd(date time.Time) StayEnd {
	return StayEnd{closed: true, date: date}
}

// OngoingEnd returns a StayEnd for a stay with no matching exit.
// An ongoing stay is treated as lasting through the reference date
// of whatever query consumes it, never as "ongoing forever".
func OngoingEnd() StayEnd {
	return StayEnd{}
}

// IsOngoing reports whether the stay has no exit yet.
func (e StayEnd) IsOngoing() bool {
	return !e.closed
}

// Date returns the exit date and true when the stay is closed,
// or the zero time and false when ongoing.
func (e StayEnd) Date() (time.Time, bool) {
	return e.date, e.closed
}

// Resolve returns the date the stay ends for accounting purposes:
// the exit date when closed, otherwise the given reference date.
func (e StayEnd) Resolve(reference time.Time) time.Time {
	if e.closed {
		return e.date
	}
	return reference
}

// Stay represents one contiguous presence in the target region, bounded
// by a matched entry flight and (when closed) an exit flight. Stays are
// created once by the reconstructor and never mutated afterwards.
type Stay struct {
	// ID is a unique identifier for this stay (generated internally)
	ID string `json:"id"`

	// Entry is the calendar date the stay began
	Entry time.Time `json:"entry"`

	// End describes how the stay terminates (closed or ongoing)
	End StayEnd `json:"-"`

	// EntryFlight is the flight that opened the stay
	EntryFlight FlightEvent `json:"entryFlight"`

	// ExitFlight is the flight that closed the stay; nil while ongoing
	ExitFlight *FlightEvent `json:"exitFlight,omitempty"`
}

// Duration returns the stay's length in days as of the reference date,
// counting both boundary days. An entry and exit on the same date is a
// one-day stay. Returns 0 if the stay resolves to end before it begins
// (an ongoing stay queried with a reference before its entry).
func (s Stay) Duration(reference time.Time) int {
	end := s.End.Resolve(reference)
	if end.Before(s.Entry) {
		return 0
	}
	return int(end.Sub(s.Entry).Hours()/24) + 1
}
