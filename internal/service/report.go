package service

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xolan/tlreport/internal/config"
	"github.com/xolan/tlreport/internal/entry"
	"github.com/xolan/tlreport/internal/stats"
	"github.com/xolan/tlreport/internal/storage"
	"github.com/xolan/tlreport/internal/timeutil"
)

// ReportService runs the read, annotate and aggregate pipeline
type ReportService struct {
	config config.Config
	logger *log.Entry
}

// NewReportService creates a new ReportService
func NewReportService(cfg config.Config, logger *log.Entry) *ReportService {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &ReportService{
		config: cfg,
		logger: logger,
	}
}

// Config returns the configuration the service runs with
func (s *ReportService) Config() config.Config {
	return s.config
}

// Generate reads path and builds its report
func (s *ReportService) Generate(path string) (*stats.Report, error) {
	raws, err := s.read(path)
	if err != nil {
		return nil, err
	}
	return s.Build(raws)
}

// Build annotates raws and aggregates them at the configured hourly rate.
// Warnings from annotation are attached to the report.
func (s *ReportService) Build(raws []entry.RawEntry) (*stats.Report, error) {
	result, err := s.annotate(raws)
	if err != nil {
		return nil, err
	}

	report, err := stats.Aggregate(result.Entries, stats.Options{HourlyRate: s.config.HourlyRate})
	if err != nil {
		return nil, err
	}
	report.Warnings = result.Warnings

	s.logger.WithFields(log.Fields{
		"entries": report.EntryCount,
		"hours":   report.TotalHours,
		"cost":    report.TotalCost,
	}).Debug("Report aggregated")

	return &report, nil
}

// Entries reads path and returns its annotated entries without aggregating
func (s *ReportService) Entries(path string) (*EntriesResult, error) {
	raws, err := s.read(path)
	if err != nil {
		return nil, err
	}

	result, err := s.annotate(raws)
	if err != nil {
		return nil, err
	}

	return &EntriesResult{
		Entries:  result.Entries,
		Warnings: result.Warnings,
	}, nil
}

// Topics returns the unique topics of path in first-occurrence order
func (s *ReportService) Topics(path string) ([]string, error) {
	result, err := s.Entries(path)
	if err != nil {
		return nil, err
	}
	return stats.UniqueTopics(result.Entries), nil
}

// Validate runs the whole pipeline on path and records the first fatal
// problem instead of returning it. Only I/O errors are returned.
func (s *ReportService) Validate(path string) (*ValidationResult, error) {
	raws, err := s.read(path)
	if err != nil {
		return nil, err
	}

	vr := &ValidationResult{Path: path, EntryCount: len(raws)}

	result, err := s.annotate(raws)
	if err != nil {
		vr.Err = err
		return vr, nil
	}
	vr.Warnings = result.Warnings

	if _, err := stats.Aggregate(result.Entries, stats.Options{HourlyRate: s.config.HourlyRate}); err != nil {
		vr.Err = err
	}

	return vr, nil
}

func (s *ReportService) read(path string) ([]entry.RawEntry, error) {
	raws, err := storage.ReadRawEntries(path)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("path", path).Debugf("Read %d entries", len(raws))
	return raws, nil
}

func (s *ReportService) annotate(raws []entry.RawEntry) (entry.AnnotateResult, error) {
	parser, err := s.timeParser()
	if err != nil {
		return entry.AnnotateResult{}, err
	}

	result, err := entry.Annotate(raws, parser.Parse)
	if err != nil {
		return entry.AnnotateResult{}, err
	}

	for _, w := range result.Warnings {
		s.logger.WithFields(log.Fields{
			"index": w.Index,
			"note":  w.Note,
			"kind":  w.Kind,
		}).Warn(w.Message)
	}

	return result, nil
}

func (s *ReportService) timeParser() (*timeutil.Parser, error) {
	loc, err := s.config.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve timezone: %w", err)
	}
	return timeutil.NewParser(loc, s.config.DateLayout), nil
}

// Location returns the timezone used for parsing and display
func (s *ReportService) Location() *time.Location {
	loc, err := s.config.Location()
	if err != nil {
		return time.Local
	}
	return loc
}
