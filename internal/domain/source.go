package domain

import "context"

//go:generate mockgen -source=source.go -destination=source_mock.go -package=domain

// FlightSource supplies the ordered flight events for one analysis run.
// Implementations own all I/O (file reading, row mapping, filtering to
// the target airport set); the core never touches files itself.
type FlightSource interface {
	// Name returns a unique identifier for this source (e.g., "flighty").
	Name() string

	// Events returns flight events relevant to the target region,
	// sorted in chronological order.
	Events(ctx context.Context) ([]FlightEvent, error)
}
