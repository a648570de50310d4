// Package domain contains the core business entities and rules for the
// visa-stay analyzer. These entities are source-agnostic and form the
// foundation upon which all other components are built.
package domain

import (
	"strings"
	"time"
)

// FlightEvent represents a single flight segment that crosses (or may cross)
// the boundary of the target region. Events are immutable once created.
type FlightEvent struct {
	// ID is a unique identifier for this event (generated internally)
	ID string `json:"id"`

	// Date is the calendar date of the flight. Time-of-day carries no
	// significance for stay accounting; it is normalized to midnight UTC.
	Date time.Time `json:"date"`

	// Airline is the operating airline name or code (e.g., "Korean Air")
	Airline string `json:"airline"`

	// FlightNumber is the airline's flight number (e.g., "KE-123")
	FlightNumber string `json:"flightNumber"`

	// Origin is the IATA code of the departure airport (e.g., "NRT")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "ICN")
	Destination string `json:"destination"`
}

// Describe returns a short human-readable label for the event,
// e.g. "Korean Air KE-123 (NRT -> ICN)". Used in reports and error context.
func (f FlightEvent) Describe() string {
	var b strings.Builder
	if f.Airline != "" {
		b.WriteString(f.Airline)
		b.WriteString(" ")
	}
	b.WriteString(f.FlightNumber)
	b.WriteString(" (")
	b.WriteString(f.Origin)
	b.WriteString(" -> ")
	b.WriteString(f.Destination)
	b.WriteString(")")
	return b.String()
}

// Direction classifies a flight event relative to a target airport set.
type Direction int

const (
	// DirectionNone marks flights that do not cross the region boundary:
	// both endpoints inside the set (internal leg) or both outside.
	DirectionNone Direction = iota

	// DirectionEntry marks flights arriving into the region from outside.
	DirectionEntry

	// DirectionExit marks flights leaving the region to the outside.
	DirectionExit
)

// String returns the direction name for logging and display.
func (d Direction) String() string {
	switch d {
	case DirectionEntry:
		return "entry"
	case DirectionExit:
		return "exit"
	default:
		return "none"
	}
}

// AirportSet is the set of IATA codes that define a target region's boundary.
type AirportSet map[string]bool

// NewAirportSet builds an AirportSet from a list of IATA codes.
// Codes are upper-cased and trimmed; empty entries are dropped.
func NewAirportSet(codes ...string) AirportSet {
	set := make(AirportSet, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		set[code] = true
	}
	return set
}

// Contains reports whether the given airport code belongs to the region.
func (s AirportSet) Contains(code string) bool {
	return s[strings.ToUpper(strings.TrimSpace(code))]
}

// Codes returns the member codes in unspecified order.
func (s AirportSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	return codes
}

// Classify determines whether the event enters, exits, or does not cross
// the boundary defined by the airport set. A flight is an entry when its
// destination is in the set and its origin is not; an exit when the origin
// is in the set and the destination is not.
func (f FlightEvent) Classify(airports AirportSet) Direction {
	originInside := airports.Contains(f.Origin)
	destInside := airports.Contains(f.Destination)

	switch {
	case destInside && !originInside:
		return DirectionEntry
	case originInside && !destInside:
		return DirectionExit
	default:
		return DirectionNone
	}
}
