// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
)

// MustParseDate parses a date string in YYYY-MM-DD format as midnight UTC.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed.UTC()
}

// Entry creates an entry flight event into ICN on the given date.
func Entry(t *testing.T, id, date string) domain.FlightEvent {
	t.Helper()
	return domain.FlightEvent{
		ID:           id,
		Date:         MustParseDate(t, date),
		Airline:      "Korean Air",
		FlightNumber: "KE-" + id,
		Origin:       "NRT",
		Destination:  "ICN",
	}
}

// Exit creates an exit flight event out of ICN on the given date.
func Exit(t *testing.T, id, date string) domain.FlightEvent {
	t.Helper()
	return domain.FlightEvent{
		ID:           id,
		Date:         MustParseDate(t, date),
		Airline:      "Korean Air",
		FlightNumber: "KE-" + id,
		Origin:       "ICN",
		Destination:  "NRT",
	}
}

// ClosedStay creates a closed stay between the given dates.
func ClosedStay(t *testing.T, entry, exit string) domain.Stay {
	t.Helper()
	entryDate := MustParseDate(t, entry)
	exitDate := MustParseDate(t, exit)
	exitFlight := Exit(t, "exit-"+exit, exit)
	return domain.Stay{
		ID:          "stay-" + entry,
		Entry:       entryDate,
		End:         domain.ClosedEnd(exitDate),
		EntryFlight: Entry(t, "entry-"+entry, entry),
		ExitFlight:  &exitFlight,
	}
}

// OngoingStay creates a stay with no exit, entered on the given date.
func OngoingStay(t *testing.T, entry string) domain.Stay {
	t.Helper()
	return domain.Stay{
		ID:          "stay-" + entry,
		Entry:       MustParseDate(t, entry),
		End:         domain.OngoingEnd(),
		EntryFlight: Entry(t, "entry-"+entry, entry),
	}
}

// TestPolicy returns a 180/90/60 policy over a small Korean airport set,
// matching the South Korea visa-free rule.
func TestPolicy() domain.WindowPolicy {
	return domain.WindowPolicy{
		Region:             "South Korea",
		Airports:           domain.NewAirportSet("ICN", "GMP", "CJU", "PUS"),
		WindowDays:         180,
		MaxDays:            90,
		MaxConsecutiveDays: 60,
	}
}

// LoadTestCSV returns the path of a CSV fixture in test/testdata.
// It fails the test if the fixture does not exist.
func LoadTestCSV(t *testing.T, filename string) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	projectRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")
	path := filepath.Join(projectRoot, "test", "testdata", filename)

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Test fixture %s not found: %v", filename, err)
	}
	return path
}
