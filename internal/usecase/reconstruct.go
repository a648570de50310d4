// Package usecase provides the business logic for visa-stay analysis:
// pairing flight events into stays and accounting for them against a
// rolling-window policy.
package usecase

import (
	"github.com/google/uuid"

	"github.com/visastay/visa-stay-analyzer/internal/domain"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/logger"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/timeutil"
)

// StayReconstructor pairs chronologically ordered flight events into
// non-overlapping stays.
type StayReconstructor interface {
	// Reconstruct scans events in order and returns the stays they form,
	// ordered by entry date. A trailing unmatched entry yields an ongoing
	// stay. Behavior on malformed sequences depends on configuration:
	// lenient mode skips the offending event and keeps the first entry
	// authoritative; strict mode fails fast with a SequenceError.
	Reconstruct(events []domain.FlightEvent, airports domain.AirportSet) ([]domain.Stay, error)
}

// ReconstructorConfig contains configuration options for the reconstructor.
type ReconstructorConfig struct {
	// Strict makes malformed sequences (duplicate entry, dangling exit)
	// fail fast instead of being skipped with a warning.
	Strict bool

	// Logger receives warnings about skipped events in lenient mode.
	// Defaults to a nop logger.
	Logger *logger.Logger
}

// stayReconstructor implements StayReconstructor with a single-pass scan
// over an "open entry" state machine: no stay open -> open on entry ->
// closed on exit, with a trailing open entry emitted as ongoing.
type stayReconstructor struct {
	strict bool
	log    *logger.Logger
}

// NewStayReconstructor creates a StayReconstructor with the given
// configuration. If config is nil, lenient mode with no logging is used.
func NewStayReconstructor(config *ReconstructorConfig) StayReconstructor {
	cfg := ReconstructorConfig{Logger: logger.Nop()}
	if config != nil {
		cfg.Strict = config.Strict
		if config.Logger != nil {
			cfg.Logger = config.Logger
		}
	}
	return &stayReconstructor{
		strict: cfg.Strict,
		log:    cfg.Logger,
	}
}

// Reconstruct implements StayReconstructor.Reconstruct.
func (r *stayReconstructor) Reconstruct(events []domain.FlightEvent, airports domain.AirportSet) ([]domain.Stay, error) {
	var stays []domain.Stay
	var open *domain.FlightEvent

	for _, ev := range events {
		switch ev.Classify(airports) {
		case domain.DirectionEntry:
			if open != nil {
				// The first entry is authoritative; a second entry while
				// a stay is open cannot be paired without inventing an
				// exit date, which the reconstructor never does.
				if err := r.reject(ev, "entry while a stay is already open"); err != nil {
					return nil, err
				}
				continue
			}
			entry := ev
			open = &entry

		case domain.DirectionExit:
			if open == nil {
				if err := r.reject(ev, "exit with no open entry"); err != nil {
					return nil, err
				}
				continue
			}
			if ev.Date.Before(open.Date) {
				if err := r.reject(ev, "exit dated before its entry"); err != nil {
					return nil, err
				}
				continue
			}
			exit := ev
			stays = append(stays, domain.Stay{
				ID:          uuid.NewString(),
				Entry:       timeutil.DateOnly(open.Date),
				End:         domain.ClosedEnd(timeutil.DateOnly(exit.Date)),
				EntryFlight: *open,
				ExitFlight:  &exit,
			})
			open = nil

		default:
			// Internal or unrelated legs carry no boundary information.
			continue
		}
	}

	if open != nil {
		stays = append(stays, domain.Stay{
			ID:          uuid.NewString(),
			Entry:       timeutil.DateOnly(open.Date),
			End:         domain.OngoingEnd(),
			EntryFlight: *open,
		})
	}

	return stays, nil
}

// reject handles a malformed event: error in strict mode, warn-and-skip
// otherwise.
func (r *stayReconstructor) reject(ev domain.FlightEvent, reason string) error {
	if r.strict {
		return domain.NewSequenceError(ev, reason)
	}
	r.log.Warn().
		Str("flight", ev.Describe()).
		Str("date", timeutil.FormatDate(ev.Date)).
		Str("reason", reason).
		Msg("Skipping malformed flight event")
	return nil
}
