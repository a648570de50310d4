package usecase

import (
	"time"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
)

// MaxStayIfArrivingToday answers the hypothetical "if I arrive on the
// reference date, how long can I stay compliantly?".
//
// Usage is computed as of the reference date, without adding the
// hypothetical stay itself. The window rule allows
// max(0, MaxDays - TotalUsed) days; when a consecutive cap exists the
// result is the smaller of the two, and the assessment reports which rule
// was binding. Ties go to the consecutive cap, matching how the limit is
// explained to a traveler ("you could stay longer by the window, but a
// single visit may not exceed the cap").
func MaxStayIfArrivingToday(stays []domain.Stay, policy domain.WindowPolicy, reference time.Time) domain.ArrivalAssessment {
	window := DaysInWindow(stays, policy, reference)

	maxStay := window.Remaining
	binding := domain.BindingRuleWindow
	if policy.HasConsecutiveCap() && policy.MaxConsecutiveDays <= maxStay {
		maxStay = policy.MaxConsecutiveDays
		binding = domain.BindingRuleConsecutive
	}

	return domain.ArrivalAssessment{
		Arrival:     window.Reference,
		MaxStayDays: maxStay,
		Binding:     binding,
		Window:      window,
	}
}
