package domain

import "fmt"

// WindowPolicy defines the visa-free stay rule for one target region:
// a trailing rolling window of WindowDays, at most MaxDays of presence
// inside that window, and optionally at most MaxConsecutiveDays for any
// single stay. A policy is fixed for the duration of one analysis run.
type WindowPolicy struct {
	// Region is the display name of the target region (e.g., "South Korea")
	Region string `json:"region"`

	// Airports is the set of IATA codes defining the region boundary
	Airports AirportSet `json:"airports"`

	// WindowDays is the size of the trailing lookback window in days
	WindowDays int `json:"windowDays"`

	// MaxDays is the maximum days of presence allowed inside the window
	MaxDays int `json:"maxDays"`

	// MaxConsecutiveDays caps the length of a single uninterrupted stay.
	// Zero means no consecutive cap applies.
	MaxConsecutiveDays int `json:"maxConsecutiveDays,omitempty"`
}

// HasConsecutiveCap reports whether a per-stay consecutive limit applies.
func (p WindowPolicy) HasConsecutiveCap() bool {
	return p.MaxConsecutiveDays > 0
}

// Validate checks the policy for internal consistency.
// Returns a wrapped ErrInvalidPolicy error if validation fails.
func (p WindowPolicy) Validate() error {
	if p.WindowDays < 1 {
		return fmt.Errorf("%w: window length must be at least 1 day, got %d", ErrInvalidPolicy, p.WindowDays)
	}
	if p.MaxDays < 1 {
		return fmt.Errorf("%w: max days must be at least 1, got %d", ErrInvalidPolicy, p.MaxDays)
	}
	if p.MaxDays > p.WindowDays {
		return fmt.Errorf("%w: max days (%d) cannot exceed window length (%d)", ErrInvalidPolicy, p.MaxDays, p.WindowDays)
	}
	if p.MaxConsecutiveDays < 0 {
		return fmt.Errorf("%w: max consecutive days cannot be negative, got %d", ErrInvalidPolicy, p.MaxConsecutiveDays)
	}
	if p.MaxConsecutiveDays > p.MaxDays {
		return fmt.Errorf("%w: max consecutive days (%d) cannot exceed max days (%d)", ErrInvalidPolicy, p.MaxConsecutiveDays, p.MaxDays)
	}
	if len(p.Airports) == 0 {
		return fmt.Errorf("%w: at least one airport code is required", ErrInvalidPolicy)
	}
	return nil
}

// SouthKoreaPolicy returns the visa-free stay rule for South Korea:
// 90 days within any 180-day window, at most 60 days per single stay.
func SouthKoreaPolicy() WindowPolicy {
	return WindowPolicy{
		Region: "South Korea",
		Airports: NewAirportSet(
			"ICN", // Incheon
			"GMP", // Gimpo
			"CJU", // Jeju
			"PUS", // Gimhae (Busan)
			"KWJ", // Gwangju
			"TAE", // Daegu
			"RSU", // Yeosu
			"USN", // Ulsan
			"KUV", // Gunsan
			"KPO", // Pohang
			"WJU", // Wonju
			"HIN", // Sacheon
			"MWX", // Muan
			"KAG", // Gangneung
		),
		WindowDays:         180,
		MaxDays:            90,
		MaxConsecutiveDays: 60,
	}
}

// SchengenPolicy returns the visa-free stay rule for the Schengen area:
// 90 days within any 180-day window, no consecutive cap. The airport set
// covers major Schengen hubs; callers needing full coverage should extend
// Airports before use.
func SchengenPolicy() WindowPolicy {
	return WindowPolicy{
		Region: "Schengen",
		Airports: NewAirportSet(
			"CDG", "ORY", // Paris
			"AMS",        // Amsterdam
			"FRA", "MUC", // Frankfurt, Munich
			"FCO", "MXP", // Rome, Milan
			"MAD", "BCN", // Madrid, Barcelona
			"LIS", // Lisbon
			"VIE", // Vienna
			"ZRH", "GVA", // Zurich, Geneva
			"CPH", "ARN", "OSL", "HEL", // Nordics
			"BRU", // Brussels
			"PRG", // Prague
			"WAW", // Warsaw
			"BUD", // Budapest
			"ATH", // Athens
		),
		WindowDays: 180,
		MaxDays:    90,
	}
}

// PresetPolicies maps preset names accepted by the CLI to their policies.
func PresetPolicies() map[string]WindowPolicy {
	return map[string]WindowPolicy{
		"korea":    SouthKoreaPolicy(),
		"schengen": SchengenPolicy(),
	}
}
