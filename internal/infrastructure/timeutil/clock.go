// Package timeutil provides time-related utilities for testability and
// calendar-date arithmetic. Stay accounting works in whole calendar days,
// so everything here normalizes to midnight UTC.
package timeutil

import (
	"time"
)

// Clock provides an abstraction over time.Now() for testability.
// Use RealClock in production and MockClock in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Today returns the current calendar date at midnight UTC.
	Today() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today returns the current system date at midnight UTC.
func (RealClock) Today() time.Time {
	return DateOnly(time.Now())
}

// MockClock returns a controllable time for testing.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock creates a mock clock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// NewMockClockFromDate creates a mock clock from a YYYY-MM-DD date string.
// Panics if the string is invalid (for use in tests only).
func NewMockClockFromDate(dateStr string) *MockClock {
	t, err := ParseDate(dateStr)
	if err != nil {
		panic("invalid date string: " + err.Error())
	}
	return &MockClock{fixedTime: t}
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Today returns the fixed time's calendar date at midnight UTC.
func (m *MockClock) Today() time.Time {
	return DateOnly(m.fixedTime)
}

// Set sets the mock clock to a specific time.
func (m *MockClock) Set(t time.Time) {
	m.fixedTime = t
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.fixedTime = m.fixedTime.Add(d)
}

// AdvanceDays moves the mock clock forward by the given number of days.
func (m *MockClock) AdvanceDays(days int) {
	m.fixedTime = m.fixedTime.AddDate(0, 0, days)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
