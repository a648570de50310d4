package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/logger"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/timeutil"
)

// StayAnalyzer runs the full analysis pipeline: load events from a
// source, reconstruct stays, account for them against the policy, and
// project future availability.
type StayAnalyzer interface {
	// Analyze evaluates the source's flight events against the request's
	// policy as of the request's reference date.
	Analyze(ctx context.Context, source domain.FlightSource, req AnalysisRequest) (*Analysis, error)
}

// AnalysisRequest carries the parameters for one analysis run.
type AnalysisRequest struct {
	// Policy is the rolling-window rule to evaluate against
	Policy domain.WindowPolicy

	// Reference is the date the trailing window ends on
	Reference time.Time

	// DesiredStays lists durations for the future-availability table.
	// When empty, DefaultDesiredStays(Policy) is used.
	DesiredStays []int
}

// Analysis is the complete result of one run: the inputs that produced it
// and every derived record the report renderer needs.
type Analysis struct {
	Policy    domain.WindowPolicy
	Reference time.Time
	Source    string

	// Events are the boundary-relevant flight events, in scan order
	Events []domain.FlightEvent

	// Stays are the reconstructed stays, ordered by entry date
	Stays []domain.Stay

	// Window is the rolling-window usage as of Reference
	Window domain.WindowResult

	// Arrival is the arrive-today compliance verdict
	Arrival domain.ArrivalAssessment

	// Availability is the future-availability table
	Availability []AvailabilityEntry
}

// stayAnalyzer implements StayAnalyzer.
type stayAnalyzer struct {
	reconstructor StayReconstructor
	log           *logger.Logger
}

// NewStayAnalyzer creates a StayAnalyzer using the given reconstructor.
// A nil logger defaults to nop.
func NewStayAnalyzer(reconstructor StayReconstructor, log *logger.Logger) StayAnalyzer {
	if log == nil {
		log = logger.Nop()
	}
	return &stayAnalyzer{
		reconstructor: reconstructor,
		log:           log,
	}
}

// Analyze implements StayAnalyzer.Analyze.
func (a *stayAnalyzer) Analyze(ctx context.Context, source domain.FlightSource, req AnalysisRequest) (*Analysis, error) {
	if err := req.Policy.Validate(); err != nil {
		return nil, err
	}

	reference := timeutil.DateOnly(req.Reference)
	log := a.log.WithSource(source.Name()).WithRegion(req.Policy.Region)

	events, err := source.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("load flight events from %s: %w", source.Name(), err)
	}
	log.Debug().Int("events", len(events)).Msg("Loaded flight events")

	stays, err := a.reconstructor.Reconstruct(events, req.Policy.Airports)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("stays", len(stays)).Msg("Reconstructed stays")

	desired := req.DesiredStays
	if len(desired) == 0 {
		desired = DefaultDesiredStays(req.Policy)
	}

	return &Analysis{
		Policy:       req.Policy,
		Reference:    reference,
		Source:       source.Name(),
		Events:       events,
		Stays:        stays,
		Window:       DaysInWindow(stays, req.Policy, reference),
		Arrival:      MaxStayIfArrivingToday(stays, req.Policy, reference),
		Availability: AvailabilityTable(stays, req.Policy, reference, desired),
	}, nil
}
