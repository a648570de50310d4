package domain

import "time"

// StayWindowDays pairs a stay with the number of days it contributes to
// a particular rolling window. Stays entirely outside the window carry
// DaysCounted 0 and are kept for display.
type StayWindowDays struct {
	// Stay is the stay being counted
	Stay Stay `json:"stay"`

	// DaysCounted is the stay's contribution inside the window
	DaysCounted int `json:"daysCounted"`

	// CountedFrom and CountedTo bound the clipped range actually counted.
	// Both are zero when DaysCounted is 0.
	CountedFrom time.Time `json:"countedFrom,omitempty"`
	CountedTo   time.Time `json:"countedTo,omitempty"`

	// Clipped is true when the counted range is shorter than the stay
	// itself (the stay straddles the window start).
	Clipped bool `json:"clipped,omitempty"`
}

// WindowResult is the outcome of evaluating a stay list against a rolling
// window ending at a reference date. It is pure output: recomputed from
// the stays, the policy, and the reference date on every query and never
// persisted.
type WindowResult struct {
	// Reference is the date the window ends on (inclusive)
	Reference time.Time `json:"reference"`

	// WindowStart is the first day of the window (inclusive)
	WindowStart time.Time `json:"windowStart"`

	// Stays lists every stay with its contribution inside the window
	Stays []StayWindowDays `json:"stays"`

	// TotalUsed is the sum of all contributions. It is never clamped:
	// a value above MaxDays signals an overstay.
	TotalUsed int `json:"totalUsed"`

	// MaxDays echoes the policy limit for display
	MaxDays int `json:"maxDays"`

	// Remaining is max(0, MaxDays - TotalUsed)
	Remaining int `json:"remaining"`

	// MaxConsecutiveDays echoes the per-stay cap for display; 0 if none
	MaxConsecutiveDays int `json:"maxConsecutiveDays,omitempty"`
}

// Overstayed reports whether more days were used than the policy allows.
func (r WindowResult) Overstayed() bool {
	return r.TotalUsed > r.MaxDays
}

// BindingRule identifies which policy constraint limited an assessment.
type BindingRule string

const (
	// BindingRuleWindow means the rolling-window total was the limit.
	BindingRuleWindow BindingRule = "window"

	// BindingRuleConsecutive means the per-stay consecutive cap was the limit.
	BindingRuleConsecutive BindingRule = "consecutive"
)

// ArrivalAssessment answers "if I arrive on the reference date, how long
// can I stay compliantly?" along with which rule produced the limit.
type ArrivalAssessment struct {
	// Arrival is the hypothetical arrival date assessed
	Arrival time.Time `json:"arrival"`

	// MaxStayDays is the longest compliant stay starting on Arrival
	MaxStayDays int `json:"maxStayDays"`

	// Binding names the constraint that produced MaxStayDays
	Binding BindingRule `json:"binding"`

	// Window is the usage the assessment was computed from
	Window WindowResult `json:"window"`
}

// ProjectionResult is one row of the future-availability table: for a
// desired stay length, the earliest date a compliant stay of that length
// (or the best achievable length) can begin.
type ProjectionResult struct {
	// DesiredDays is the stay length that was requested
	DesiredDays int `json:"desiredDays"`

	// Date is the earliest candidate date found
	Date time.Time `json:"date"`

	// DaysFromStart is how many days after the search origin Date falls
	DaysFromStart int `json:"daysFromStart"`

	// UsedOnDate is the rolling-window usage as of Date
	UsedOnDate int `json:"usedOnDate"`

	// AchievableDays is the longest compliant stay starting on Date.
	// Equals or exceeds DesiredDays when Reachable is true; otherwise it
	// is the best the fixed stay history ever allows.
	AchievableDays int `json:"achievableDays"`

	// Reachable is true when a stay of DesiredDays is possible on Date
	Reachable bool `json:"reachable"`
}
