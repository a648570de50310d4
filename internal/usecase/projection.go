package usecase

import (
	"fmt"
	"time"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/timeutil"
)

// EarliestDateForStay finds the earliest date, stepping forward one day at
// a time from searchFrom, on which a compliant stay of desiredDays can
// begin. The stay list is fixed during the search: the window slides
// forward so old days progressively fall out, but no hypothetical stay is
// added while testing candidates.
//
// A candidate is accepted once min(MaxDays - usedOnThatDate,
// consecutive cap) >= desiredDays. If the desired length never becomes
// reachable, the result instead carries the best achievable duration and
// the first date it peaks, with Reachable false.
//
// The search is bounded to one window length beyond searchFrom. For a
// fixed stay list with no availability at all inside that bound (for
// example an ongoing stay that keeps the window saturated), a
// ConvergenceError is returned rather than looping further.
func EarliestDateForStay(stays []domain.Stay, policy domain.WindowPolicy, desiredDays int, searchFrom time.Time) (domain.ProjectionResult, error) {
	if desiredDays < 1 {
		return domain.ProjectionResult{}, fmt.Errorf("%w: desired stay must be at least 1 day, got %d", domain.ErrInvalidRequest, desiredDays)
	}

	start := timeutil.DateOnly(searchFrom)

	var best domain.ProjectionResult
	for offset := 0; offset <= policy.WindowDays; offset++ {
		date := timeutil.AddDays(start, offset)
		window := DaysInWindow(stays, policy, date)

		achievable := window.Remaining
		if policy.HasConsecutiveCap() && achievable > policy.MaxConsecutiveDays {
			achievable = policy.MaxConsecutiveDays
		}

		if achievable >= desiredDays {
			return domain.ProjectionResult{
				DesiredDays:    desiredDays,
				Date:           date,
				DaysFromStart:  offset,
				UsedOnDate:     window.TotalUsed,
				AchievableDays: achievable,
				Reachable:      true,
			}, nil
		}

		// Strict improvement keeps the first date the eventual peak occurs.
		if achievable > best.AchievableDays {
			best = domain.ProjectionResult{
				DesiredDays:    desiredDays,
				Date:           date,
				DaysFromStart:  offset,
				UsedOnDate:     window.TotalUsed,
				AchievableDays: achievable,
			}
		}
	}

	if best.AchievableDays > 0 {
		return best, nil
	}
	return domain.ProjectionResult{}, domain.NewConvergenceError(desiredDays, start, policy.WindowDays)
}

// AvailabilityEntry is one row of the future-availability table. Rows are
// independent: a duration whose search fails carries its error without
// affecting the others.
type AvailabilityEntry struct {
	// DesiredDays is the stay length this row was computed for
	DesiredDays int

	// Projection holds the search outcome; nil when Err is set
	Projection *domain.ProjectionResult

	// Err reports a failed search (ErrNoConvergence or ErrInvalidRequest)
	Err error
}

// AvailabilityTable runs EarliestDateForStay for each desired duration
// and collects the rows in input order.
func AvailabilityTable(stays []domain.Stay, policy domain.WindowPolicy, reference time.Time, desiredDays []int) []AvailabilityEntry {
	entries := make([]AvailabilityEntry, 0, len(desiredDays))
	for _, desired := range desiredDays {
		entry := AvailabilityEntry{DesiredDays: desired}
		result, err := EarliestDateForStay(stays, policy, desired, reference)
		if err != nil {
			entry.Err = err
		} else {
			entry.Projection = &result
		}
		entries = append(entries, entry)
	}
	return entries
}

// DefaultDesiredStays returns the stay durations worth projecting for a
// policy: the common 30/60/90-day requests, dropping any the policy can
// never allow (longer than the consecutive cap or the window maximum).
func DefaultDesiredStays(policy domain.WindowPolicy) []int {
	candidates := []int{30, 60, 90}
	limit := policy.MaxDays
	if policy.HasConsecutiveCap() && policy.MaxConsecutiveDays < limit {
		limit = policy.MaxConsecutiveDays
	}

	var desired []int
	for _, d := range candidates {
		if d <= limit {
			desired = append(desired, d)
		}
	}
	return desired
}
