package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
	"github.com/visastay/visa-stay-analyzer/test/testutil"
)

// projectionStays is the 62/90 usage scenario: 15 + 47 days inside the
// window as of 2025-10-15.
func projectionStays(t *testing.T) []domain.Stay {
	t.Helper()
	return []domain.Stay{
		testutil.ClosedStay(t, "2025-05-01", "2025-05-15"),
		testutil.ClosedStay(t, "2025-08-01", "2025-09-16"),
	}
}

func TestEarliestDateForStay_AlreadyAvailable(t *testing.T) {
	policy := testutil.TestPolicy()
	searchFrom := testutil.MustParseDate(t, "2025-10-15")

	result, err := EarliestDateForStay(nil, policy, 30, searchFrom)

	require.NoError(t, err)
	assert.True(t, result.Reachable)
	assert.Equal(t, 0, result.DaysFromStart)
	assert.Equal(t, searchFrom, result.Date)
	assert.Equal(t, 0, result.UsedOnDate)
	assert.Equal(t, 60, result.AchievableDays) // capped per stay
}

func TestEarliestDateForStay_WaitsForDaysToExpire(t *testing.T) {
	// With 62/90 used, a 30-day stay needs usage to drop to 60. The first
	// stay's days start falling out of the window once its start slides
	// past 2025-05-01; usage reaches 60 on 2025-10-29.
	stays := projectionStays(t)
	policy := testutil.TestPolicy()
	searchFrom := testutil.MustParseDate(t, "2025-10-15")

	result, err := EarliestDateForStay(stays, policy, 30, searchFrom)

	require.NoError(t, err)
	assert.True(t, result.Reachable)
	assert.Equal(t, testutil.MustParseDate(t, "2025-10-29"), result.Date)
	assert.Equal(t, 14, result.DaysFromStart)
	assert.Equal(t, 60, result.UsedOnDate)
	assert.Equal(t, 30, result.AchievableDays)
}

func TestEarliestDateForStay_MatchesDirectRecomputation(t *testing.T) {
	// The accepted date must agree with computing the window directly on
	// that date, and the day before must not have been compliant.
	stays := projectionStays(t)
	policy := testutil.TestPolicy()
	searchFrom := testutil.MustParseDate(t, "2025-10-15")

	result, err := EarliestDateForStay(stays, policy, 30, searchFrom)
	require.NoError(t, err)

	onDate := DaysInWindow(stays, policy, result.Date)
	assert.Equal(t, onDate.TotalUsed, result.UsedOnDate)
	assert.GreaterOrEqual(t, policy.MaxDays-onDate.TotalUsed, 30)

	dayBefore := DaysInWindow(stays, policy, result.Date.AddDate(0, 0, -1))
	assert.Less(t, policy.MaxDays-dayBefore.TotalUsed, 30)
}

func TestEarliestDateForStay_LongerStayWaitsLonger(t *testing.T) {
	// A 60-day stay needs usage down to 30: the second stay must shed 17
	// days, which happens 2026-02-13.
	stays := projectionStays(t)
	policy := testutil.TestPolicy()
	searchFrom := testutil.MustParseDate(t, "2025-10-15")

	result, err := EarliestDateForStay(stays, policy, 60, searchFrom)

	require.NoError(t, err)
	assert.True(t, result.Reachable)
	assert.Equal(t, testutil.MustParseDate(t, "2026-02-13"), result.Date)
	assert.Equal(t, 121, result.DaysFromStart)
	assert.Equal(t, 30, result.UsedOnDate)
	assert.Equal(t, 60, result.AchievableDays)
}

func TestEarliestDateForStay_DesiredAboveCap(t *testing.T) {
	// 90 days can never fit under a 60-day consecutive cap: the search
	// reports the best achievable duration and the first date it peaks.
	policy := testutil.TestPolicy()
	searchFrom := testutil.MustParseDate(t, "2025-10-15")

	result, err := EarliestDateForStay(nil, policy, 90, searchFrom)

	require.NoError(t, err)
	assert.False(t, result.Reachable)
	assert.Equal(t, 60, result.AchievableDays)
	assert.Equal(t, 0, result.DaysFromStart) // peaks immediately with no history
}

func TestEarliestDateForStay_OngoingStaySaturatesWindow(t *testing.T) {
	// An ongoing stay keeps accruing as the window slides: availability
	// never appears within one window length.
	stays := []domain.Stay{
		testutil.OngoingStay(t, "2025-01-01"),
	}
	policy := testutil.TestPolicy()
	searchFrom := testutil.MustParseDate(t, "2025-10-15")

	_, err := EarliestDateForStay(stays, policy, 30, searchFrom)

	require.Error(t, err)
	assert.True(t, domain.IsNoConvergence(err))

	var convErr *domain.ConvergenceError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, 30, convErr.DesiredDays)
	assert.Equal(t, policy.WindowDays, convErr.BoundDays)
}

func TestEarliestDateForStay_InvalidDesiredDays(t *testing.T) {
	policy := testutil.TestPolicy()
	searchFrom := testutil.MustParseDate(t, "2025-10-15")

	for _, desired := range []int{0, -5} {
		_, err := EarliestDateForStay(nil, policy, desired, searchFrom)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	}
}

func TestEarliestDateForStay_Idempotent(t *testing.T) {
	stays := projectionStays(t)
	policy := testutil.TestPolicy()
	searchFrom := testutil.MustParseDate(t, "2025-10-15")

	first, err := EarliestDateForStay(stays, policy, 30, searchFrom)
	require.NoError(t, err)
	second, err := EarliestDateForStay(stays, policy, 30, searchFrom)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAvailabilityTable(t *testing.T) {
	stays := []domain.Stay{
		testutil.OngoingStay(t, "2025-01-01"),
	}
	policy := testutil.TestPolicy()
	reference := testutil.MustParseDate(t, "2025-10-15")

	entries := AvailabilityTable(stays, policy, reference, []int{30, 60})

	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Nil(t, entry.Projection)
		assert.True(t, domain.IsNoConvergence(entry.Err))
	}
}

func TestAvailabilityTable_MixedOutcomes(t *testing.T) {
	policy := testutil.TestPolicy()
	reference := testutil.MustParseDate(t, "2025-10-15")

	entries := AvailabilityTable(nil, policy, reference, []int{30, 90})

	require.Len(t, entries, 2)

	require.NotNil(t, entries[0].Projection)
	assert.True(t, entries[0].Projection.Reachable)

	// 90 exceeds the consecutive cap: best achievable, not an error.
	require.NotNil(t, entries[1].Projection)
	assert.False(t, entries[1].Projection.Reachable)
	assert.Equal(t, 60, entries[1].Projection.AchievableDays)
}

func TestDefaultDesiredStays(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.WindowPolicy)
		want   []int
	}{
		{
			name:   "cap at 60 drops the 90-day projection",
			mutate: func(p *domain.WindowPolicy) {},
			want:   []int{30, 60},
		},
		{
			name:   "no cap projects up to the window maximum",
			mutate: func(p *domain.WindowPolicy) { p.MaxConsecutiveDays = 0 },
			want:   []int{30, 60, 90},
		},
		{
			name: "tight cap keeps only the shortest",
			mutate: func(p *domain.WindowPolicy) {
				p.MaxConsecutiveDays = 30
			},
			want: []int{30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := testutil.TestPolicy()
			tt.mutate(&policy)
			assert.Equal(t, tt.want, DefaultDesiredStays(policy))
		})
	}
}
