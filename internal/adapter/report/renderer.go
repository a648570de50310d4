// Package report renders an analysis into the human-readable plain-text
// report printed by the CLI. It consumes the core's output records only
// and performs no computation of its own.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/timeutil"
	"github.com/visastay/visa-stay-analyzer/internal/usecase"
)

const separator = "======================================================================"

// Render writes the full report for an analysis: per-stay breakdown,
// compliance summary, and the future-availability table.
func Render(w io.Writer, analysis *usecase.Analysis) error {
	sections := []func(io.Writer, *usecase.Analysis) error{
		renderHeader,
		renderStays,
		renderSummary,
		renderAvailability,
	}
	for _, section := range sections {
		if err := section(w, analysis); err != nil {
			return err
		}
	}
	return nil
}

func renderHeader(w io.Writer, a *usecase.Analysis) error {
	_, err := fmt.Fprintf(w, "Visa-free stay analysis: %s\n%s\nReference date: %s\n%d-day window: %s to %s\n\n",
		a.Policy.Region,
		separator,
		timeutil.FormatDate(a.Reference),
		a.Policy.WindowDays,
		timeutil.FormatDate(a.Window.WindowStart),
		timeutil.FormatDate(a.Reference),
	)
	return err
}

func renderStays(w io.Writer, a *usecase.Analysis) error {
	if len(a.Stays) == 0 {
		_, err := fmt.Fprintf(w, "No stays found in %s\n\n", a.Policy.Region)
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "All %s stays:\n%s\n", a.Policy.Region, separator)

	for i, counted := range a.Window.Stays {
		stay := counted.Stay
		fmt.Fprintf(&b, "\nStay #%d:\n", i+1)
		fmt.Fprintf(&b, "  Entry:  %s - %s\n", timeutil.FormatDate(stay.Entry), stay.EntryFlight.Describe())

		if exitDate, closed := stay.End.Date(); closed {
			fmt.Fprintf(&b, "  Exit:   %s - %s\n", timeutil.FormatDate(exitDate), stay.ExitFlight.Describe())
			fmt.Fprintf(&b, "  Total stay: %d days\n", stay.Duration(a.Reference))
		} else {
			fmt.Fprintf(&b, "  Exit:   (ongoing, counted through %s)\n", timeutil.FormatDate(a.Reference))
			fmt.Fprintf(&b, "  Total stay: %d days so far\n", stay.Duration(a.Reference))
		}

		switch {
		case counted.DaysCounted == 0:
			b.WriteString("  Days in window: 0 days (outside window)\n")
		case counted.Clipped:
			fmt.Fprintf(&b, "  Days in window: %d days (from %s to %s)\n",
				counted.DaysCounted,
				timeutil.FormatDate(counted.CountedFrom),
				timeutil.FormatDate(counted.CountedTo))
		default:
			fmt.Fprintf(&b, "  Days in window: %d days\n", counted.DaysCounted)
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderSummary(w io.Writer, a *usecase.Analysis) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Summary:\n%s\n", separator)
	fmt.Fprintf(&b, "Total days in %s within rolling window: %d days\n", a.Policy.Region, a.Window.TotalUsed)
	fmt.Fprintf(&b, "Maximum allowed days: %d days\n", a.Window.MaxDays)
	fmt.Fprintf(&b, "Days remaining: %d days\n", a.Window.Remaining)

	if a.Policy.HasConsecutiveCap() {
		fmt.Fprintf(&b, "Note: a single stay cannot exceed %d consecutive days\n", a.Policy.MaxConsecutiveDays)
	}

	if a.Window.Overstayed() {
		fmt.Fprintf(&b, "\nOVERSTAY: you have exceeded the %d-day limit within the window.\n", a.Window.MaxDays)
	}

	if a.Arrival.MaxStayDays > 0 {
		fmt.Fprintf(&b, "\nIf you fly to %s today (%s):\n", a.Policy.Region, timeutil.FormatDate(a.Arrival.Arrival))
		fmt.Fprintf(&b, "  You can stay for up to %d days\n", a.Arrival.MaxStayDays)
		fmt.Fprintf(&b, "  (Limited by: %s)\n", bindingLabel(a.Arrival.Binding, a.Policy))
	} else {
		fmt.Fprintf(&b, "\nYou have exhausted your %d-day limit within the window.\n", a.Window.MaxDays)
		fmt.Fprintf(&b, "You cannot enter %s until some days expire from the window.\n", a.Policy.Region)
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderAvailability(w io.Writer, a *usecase.Analysis) error {
	if len(a.Availability) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Future availability:\n%s\n", separator)

	for _, entry := range a.Availability {
		switch {
		case entry.Err != nil:
			fmt.Fprintf(&b, "\nCannot find a date for a %d-day stay within one window length.\n", entry.DesiredDays)

		case entry.Projection.Reachable && entry.Projection.DaysFromStart == 0:
			fmt.Fprintf(&b, "\nYou can already stay %d days today.\n", entry.DesiredDays)

		case entry.Projection.Reachable:
			p := entry.Projection
			fmt.Fprintf(&b, "\nTo stay %d days:\n", p.DesiredDays)
			fmt.Fprintf(&b, "  Wait until: %s (%d days from today)\n", timeutil.FormatDate(p.Date), p.DaysFromStart)
			fmt.Fprintf(&b, "  On that date you will have used %d days in the window\n", p.UsedOnDate)
			fmt.Fprintf(&b, "  Available for stay: %d days\n", p.AchievableDays)

		default:
			p := entry.Projection
			fmt.Fprintf(&b, "\nA %d-day stay is never possible with this history.\n", p.DesiredDays)
			fmt.Fprintf(&b, "  Best achievable: %d days, starting %s (%d days from today)\n",
				p.AchievableDays, timeutil.FormatDate(p.Date), p.DaysFromStart)
		}
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// bindingLabel turns a binding rule into the wording used in the report.
func bindingLabel(rule domain.BindingRule, policy domain.WindowPolicy) string {
	if rule == domain.BindingRuleConsecutive {
		return fmt.Sprintf("%d-day consecutive stay rule", policy.MaxConsecutiveDays)
	}
	return "remaining days in window"
}
