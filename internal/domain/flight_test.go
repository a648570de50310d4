package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testEvent(origin, destination string) FlightEvent {
	return FlightEvent{
		ID:           "ev-1",
		Date:         time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
		Airline:      "Korean Air",
		FlightNumber: "KE-706",
		Origin:       origin,
		Destination:  destination,
	}
}

func TestNewAirportSet(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
		want  []string
	}{
		{
			name:  "upper-cases and trims codes",
			codes: []string{" icn ", "gmp"},
			want:  []string{"ICN", "GMP"},
		},
		{
			name:  "drops empty entries",
			codes: []string{"ICN", "", "  "},
			want:  []string{"ICN"},
		},
		{
			name:  "deduplicates",
			codes: []string{"ICN", "icn", "ICN"},
			want:  []string{"ICN"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewAirportSet(tt.codes...)
			assert.ElementsMatch(t, tt.want, set.Codes())
		})
	}
}

func TestAirportSet_Contains(t *testing.T) {
	set := NewAirportSet("ICN", "GMP")

	assert.True(t, set.Contains("ICN"))
	assert.True(t, set.Contains("icn"))
	assert.True(t, set.Contains(" gmp "))
	assert.False(t, set.Contains("NRT"))
	assert.False(t, set.Contains(""))
}

func TestFlightEvent_Classify(t *testing.T) {
	airports := NewAirportSet("ICN", "GMP", "CJU")

	tests := []struct {
		name        string
		origin      string
		destination string
		want        Direction
	}{
		{
			name:        "arrival from outside is an entry",
			origin:      "NRT",
			destination: "ICN",
			want:        DirectionEntry,
		},
		{
			name:        "departure to outside is an exit",
			origin:      "ICN",
			destination: "NRT",
			want:        DirectionExit,
		},
		{
			name:        "domestic leg is ignored",
			origin:      "GMP",
			destination: "CJU",
			want:        DirectionNone,
		},
		{
			name:        "unrelated leg is ignored",
			origin:      "NRT",
			destination: "LAX",
			want:        DirectionNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, testEvent(tt.origin, tt.destination).Classify(airports))
		})
	}
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "entry", DirectionEntry.String())
	assert.Equal(t, "exit", DirectionExit.String())
	assert.Equal(t, "none", DirectionNone.String())
}

func TestFlightEvent_Describe(t *testing.T) {
	assert.Equal(t, "Korean Air KE-706 (NRT -> ICN)", testEvent("NRT", "ICN").Describe())

	noAirline := testEvent("NRT", "ICN")
	noAirline.Airline = ""
	assert.Equal(t, "KE-706 (NRT -> ICN)", noAirline.Describe())
}
