package flighty

import (
	"fmt"
	"time"
)

// timestampLayouts are the datetime formats observed in Flighty exports,
// tried in order. Exports mix ISO timestamps (with and without zone),
// bare dates, and US-style dates depending on the column and app version.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// parseTimestamp parses a Flighty datetime string, trying each known
// layout. Empty strings are an error so callers can fall through to the
// next candidate column.
func parseTimestamp(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp %q", raw)
}
