package usecase

import (
	"testing"
	"time"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
)

// benchStays builds a decade of short monthly stays.
func benchStays() []domain.Stay {
	stays := make([]domain.Stay, 0, 120)
	entry := time.Date(2015, 1, 5, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		stays = append(stays, domain.Stay{
			ID:    "bench",
			Entry: entry,
			End:   domain.ClosedEnd(entry.AddDate(0, 0, 10)),
		})
		entry = entry.AddDate(0, 1, 0)
	}
	return stays
}

func benchPolicy() domain.WindowPolicy {
	return domain.WindowPolicy{
		Region:             "bench",
		Airports:           domain.NewAirportSet("ICN"),
		WindowDays:         180,
		MaxDays:            90,
		MaxConsecutiveDays: 60,
	}
}

// BenchmarkDaysInWindow measures one window evaluation over a long history.
func BenchmarkDaysInWindow(b *testing.B) {
	stays := benchStays()
	policy := benchPolicy()
	reference := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DaysInWindow(stays, policy, reference)
	}
}

// BenchmarkEarliestDateForStay measures the forward date search, which
// evaluates the window once per candidate date.
func BenchmarkEarliestDateForStay(b *testing.B) {
	stays := benchStays()
	policy := benchPolicy()
	searchFrom := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := EarliestDateForStay(stays, policy, 60, searchFrom); err != nil {
			b.Fatal(err)
		}
	}
}
