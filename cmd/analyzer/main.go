// Package main is the entry point for the visa-stay analyzer CLI.
//
// It reads a Flighty CSV export, reconstructs stays in a target region,
// and reports rolling-window compliance plus future availability:
//
//	analyzer -file flights.csv -preset korea
//	analyzer -file flights.csv -airports CDG,AMS,FCO -region Schengen -window 180 -max-days 90
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/visastay/visa-stay-analyzer/internal/adapter/flighty"
	"github.com/visastay/visa-stay-analyzer/internal/adapter/report"
	"github.com/visastay/visa-stay-analyzer/internal/config"
	"github.com/visastay/visa-stay-analyzer/internal/domain"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/logger"
	"github.com/visastay/visa-stay-analyzer/internal/infrastructure/timeutil"
	"github.com/visastay/visa-stay-analyzer/internal/usecase"
)

// options are the CLI flags, layered over environment configuration.
type options struct {
	file           string
	preset         string
	airports       string
	region         string
	windowDays     int
	maxDays        int
	maxConsecutive int
	date           string
	desired        string
	strict         bool
}

func main() {
	cfg := config.MustLoad()

	opts := parseFlags(cfg)

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "visa-stay-analyzer",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, log); err != nil {
		log.Error().Err(err).Msg("Analysis failed")
		os.Exit(1)
	}
}

// parseFlags reads CLI flags with environment-supplied defaults.
func parseFlags(cfg *config.Config) options {
	var opts options
	flag.StringVar(&opts.file, "file", cfg.Analysis.File, "Path to Flighty CSV export file")
	flag.StringVar(&opts.preset, "preset", cfg.Analysis.Preset, "Named policy preset (korea, schengen)")
	flag.StringVar(&opts.airports, "airports", "", "Comma-separated IATA codes of the target region (custom policy)")
	flag.StringVar(&opts.region, "region", "", "Region name for display (custom policy)")
	flag.IntVar(&opts.windowDays, "window", 0, "Rolling window size in days (custom policy)")
	flag.IntVar(&opts.maxDays, "max-days", 0, "Maximum days allowed in window (custom policy)")
	flag.IntVar(&opts.maxConsecutive, "max-consecutive", 0, "Maximum consecutive days per stay (0 = no cap)")
	flag.StringVar(&opts.date, "date", "", "Reference date YYYY-MM-DD (default: today)")
	flag.StringVar(&opts.desired, "desired", "", "Comma-separated stay durations to project (default: 30,60,90 within policy limits)")
	flag.BoolVar(&opts.strict, "strict", cfg.Analysis.Strict, "Fail on malformed flight sequences instead of skipping them")
	flag.Parse()
	return opts
}

func run(ctx context.Context, opts options, log *logger.Logger) error {
	if opts.file == "" {
		return fmt.Errorf("no export file given: set -file or FLIGHTY_EXPORT")
	}

	policy, err := resolvePolicy(opts)
	if err != nil {
		return err
	}

	reference, err := resolveReference(opts.date, timeutil.NewRealClock())
	if err != nil {
		return err
	}

	desired, err := parseDesired(opts.desired)
	if err != nil {
		return err
	}

	log.Info().
		Str("region", policy.Region).
		Str("file", opts.file).
		Str("reference", timeutil.FormatDate(reference)).
		Msg("Starting analysis")

	source := flighty.NewAdapter(opts.file, policy.Airports, log)
	reconstructor := usecase.NewStayReconstructor(&usecase.ReconstructorConfig{
		Strict: opts.strict,
		Logger: log,
	})
	analyzer := usecase.NewStayAnalyzer(reconstructor, log)

	analysis, err := analyzer.Analyze(ctx, source, usecase.AnalysisRequest{
		Policy:       policy,
		Reference:    reference,
		DesiredStays: desired,
	})
	if err != nil {
		return err
	}

	return report.Render(os.Stdout, analysis)
}

// resolvePolicy builds the WindowPolicy from a preset or custom flags.
// Custom flags override the corresponding preset fields when both are set.
func resolvePolicy(opts options) (domain.WindowPolicy, error) {
	var policy domain.WindowPolicy

	if opts.preset != "" {
		preset, ok := domain.PresetPolicies()[opts.preset]
		if !ok {
			return domain.WindowPolicy{}, fmt.Errorf("unknown preset %q (known: korea, schengen)", opts.preset)
		}
		policy = preset
	}

	if opts.airports != "" {
		policy.Airports = domain.NewAirportSet(strings.Split(opts.airports, ",")...)
	}
	if opts.region != "" {
		policy.Region = opts.region
	}
	if opts.windowDays > 0 {
		policy.WindowDays = opts.windowDays
	}
	if opts.maxDays > 0 {
		policy.MaxDays = opts.maxDays
	}
	if opts.maxConsecutive > 0 {
		policy.MaxConsecutiveDays = opts.maxConsecutive
	}

	if opts.preset == "" && policy.Region == "" {
		return domain.WindowPolicy{}, fmt.Errorf("no policy given: set -preset, or -airports/-region/-window/-max-days")
	}

	return policy, policy.Validate()
}

// resolveReference parses the -date flag or falls back to today.
func resolveReference(date string, clock timeutil.Clock) (time.Time, error) {
	if date == "" {
		return clock.Today(), nil
	}
	return timeutil.ParseDate(date)
}

// parseDesired parses the -desired flag into stay durations.
func parseDesired(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}
	var desired []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		days, err := strconv.Atoi(part)
		if err != nil || days < 1 {
			return nil, fmt.Errorf("invalid desired stay duration %q", part)
		}
		desired = append(desired, days)
	}
	return desired, nil
}
