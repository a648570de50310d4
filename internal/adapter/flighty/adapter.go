// Package flighty reads Flighty CSV exports and maps their rows to
// boundary-relevant flight events. It implements domain.FlightSource.
package flighty

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/logger"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/timeutil"
)

// SourceName is the unique identifier for the Flighty export source.
const SourceName = "flighty"

// Column names of the Flighty export schema this adapter consumes.
const (
	colDate          = "Date"
	colAirline       = "Airline"
	colFlight        = "Flight"
	colFrom          = "From"
	colTo            = "To"
	colCanceled      = "Canceled"
	colGateDeparture = "Gate Departure (Actual)"
	colTakeOff       = "Take off (Actual)"
	colGateArrival   = "Gate Arrival (Actual)"
	colLanding       = "Landing (Actual)"
)

// Adapter loads a Flighty CSV export, filters it to flights that cross
// the target region boundary, and returns them in chronological order.
type Adapter struct {
	path     string
	airports domain.AirportSet
	log      *logger.Logger
}

// NewAdapter creates a Flighty adapter for the given export file and
// target airport set. A nil logger defaults to nop.
func NewAdapter(path string, airports domain.AirportSet, log *logger.Logger) *Adapter {
	if log == nil {
		log = logger.Nop()
	}
	return &Adapter{
		path:     path,
		airports: airports,
		log:      log.WithSource(SourceName),
	}
}

// Name implements domain.FlightSource.Name.
func (a *Adapter) Name() string {
	return SourceName
}

// Events implements domain.FlightSource.Events. It skips canceled rows
// and rows that do not cross the region boundary, resolves each event's
// date from actual gate times with scheduled-date fallback, and sorts
// the result chronologically.
func (a *Adapter) Events(ctx context.Context) ([]domain.FlightEvent, error) {
	f, err := os.Open(a.path)
	if err != nil {
		return nil, fmt.Errorf("open flighty export: %w", err)
	}
	defer f.Close()

	return a.parse(ctx, f)
}

// sortableEvent pairs an event with the full timestamp used for ordering.
// Two boundary crossings can share a calendar date (a short visa run),
// so ordering must use time-of-day when the export provides it.
type sortableEvent struct {
	event  domain.FlightEvent
	sortAt time.Time
}

func (a *Adapter) parse(ctx context.Context, r io.Reader) ([]domain.FlightEvent, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read flighty header: %w", err)
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var collected []sortableEvent
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read flighty row %d: %w", line+1, err)
		}
		line++

		row := cols.row(record)
		if strings.EqualFold(row[colCanceled], "true") {
			continue
		}

		event := domain.FlightEvent{
			ID:           uuid.NewString(),
			Airline:      row[colAirline],
			FlightNumber: row[colFlight],
			Origin:       strings.ToUpper(strings.TrimSpace(row[colFrom])),
			Destination:  strings.ToUpper(strings.TrimSpace(row[colTo])),
		}

		direction := event.Classify(a.airports)
		if direction == domain.DirectionNone {
			continue
		}

		at, ok := a.resolveTime(row, direction)
		if !ok {
			a.log.Warn().
				Int("row", line).
				Str("flight", event.Describe()).
				Msg("Skipping row with no parseable date")
			continue
		}

		event.Date = timeutil.DateOnly(at)
		collected = append(collected, sortableEvent{event: event, sortAt: at})
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].sortAt.Before(collected[j].sortAt)
	})

	events := make([]domain.FlightEvent, len(collected))
	for i, ce := range collected {
		events[i] = ce.event
	}
	return events, nil
}

// resolveTime picks the timestamp that anchors the event on the calendar:
// for an entry the actual gate arrival (falling back to landing), for an
// exit the actual gate departure (falling back to take-off). Rows with no
// actual times fall back to the scheduled date column.
func (a *Adapter) resolveTime(row map[string]string, direction domain.Direction) (time.Time, bool) {
	var candidates []string
	if direction == domain.DirectionEntry {
		candidates = []string{row[colGateArrival], row[colLanding], row[colDate]}
	} else {
		candidates = []string{row[colGateDeparture], row[colTakeOff], row[colDate]}
	}

	for _, raw := range candidates {
		if t, err := parseTimestamp(raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// columnIndex maps column names to their positions in the header row.
type columnIndex map[string]int

// requiredColumns must be present in every Flighty export.
var requiredColumns = []string{colDate, colAirline, colFlight, colFrom, colTo}

// indexColumns validates the header and builds the name-to-position map.
func indexColumns(header []string) (columnIndex, error) {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("flighty export missing required column %q", name)
		}
	}
	return cols, nil
}

// row extracts the named columns from a record, tolerating short rows.
func (c columnIndex) row(record []string) map[string]string {
	row := make(map[string]string, len(c))
	for name, i := range c {
		if i < len(record) {
			row[name] = strings.TrimSpace(record[i])
		}
	}
	return row
}

// Ensure the interface is implemented.
var _ domain.FlightSource = (*Adapter)(nil)
