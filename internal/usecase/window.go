package usecase

import (
	"time"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/timeutil"
)

// DaysInWindow computes rolling-window usage for a stay list as of a
// reference date. The window is the trailing interval
// [reference - WindowDays + 1, reference], both ends inclusive.
//
// Every stay is clipped to the window:
//
//	effectiveStart = max(stay entry, window start)
//	effectiveEnd   = min(stay exit or reference, reference)
//	daysCounted    = max(0, effectiveEnd - effectiveStart + 1)
//
// An ongoing stay resolves its end to the reference date. Stays entirely
// outside the window contribute 0 days and remain listed for display.
// TotalUsed is never clamped to MaxDays; a value above it signals an
// overstay. The function is pure: identical inputs always produce
// identical output, and the input slice is never mutated.
func DaysInWindow(stays []domain.Stay, policy domain.WindowPolicy, reference time.Time) domain.WindowResult {
	ref := timeutil.DateOnly(reference)
	windowStart := timeutil.AddDays(ref, -(policy.WindowDays - 1))

	result := domain.WindowResult{
		Reference:          ref,
		WindowStart:        windowStart,
		Stays:              make([]domain.StayWindowDays, 0, len(stays)),
		MaxDays:            policy.MaxDays,
		MaxConsecutiveDays: policy.MaxConsecutiveDays,
	}

	for _, stay := range stays {
		entry := timeutil.DateOnly(stay.Entry)
		end := timeutil.DateOnly(stay.End.Resolve(ref))

		from := timeutil.Later(entry, windowStart)
		to := timeutil.Earlier(end, ref)

		counted := domain.StayWindowDays{Stay: stay}
		if days := timeutil.DaysBetween(from, to); days > 0 {
			counted.DaysCounted = days
			counted.CountedFrom = from
			counted.CountedTo = to
			counted.Clipped = days < stay.Duration(ref)
			result.TotalUsed += days
		}
		result.Stays = append(result.Stays, counted)
	}

	remaining := policy.MaxDays - result.TotalUsed
	if remaining < 0 {
		remaining = 0
	}
	result.Remaining = remaining

	return result
}
