package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/xolan/tlreport/internal/entry"
)

var (
	// ErrEmptyReport is returned when there are no entries to aggregate.
	ErrEmptyReport = errors.New("no entries to report on")
	// ErrInvalidRate is returned for a negative or non-finite hourly rate.
	ErrInvalidRate = errors.New("invalid hourly rate")
	// ErrNonFiniteMetric is returned when a per-entry value is NaN or infinite.
	ErrNonFiniteMetric = errors.New("non-finite metric")
)

// RateError carries the rejected hourly rate.
type RateError struct {
	Rate float64
}

func (e *RateError) Error() string {
	return fmt.Sprintf("%s: %v (must be a finite number >= 0)", ErrInvalidRate, e.Rate)
}

func (e *RateError) Unwrap() error { return ErrInvalidRate }

// MetricError names the entry and field holding a non-finite value.
type MetricError struct {
	Index int
	Field string
	Value float64
}

func (e *MetricError) Error() string {
	return fmt.Sprintf("entry %d: %s %s = %v", e.Index, ErrNonFiniteMetric, e.Field, e.Value)
}

func (e *MetricError) Unwrap() error { return ErrNonFiniteMetric }

// Options configures a single aggregation run.
type Options struct {
	HourlyRate float64
}

// Report contains aggregated statistics for a sequence of annotated entries.
// WindowStart and WindowEnd are milliseconds since the Unix epoch.
type Report struct {
	EntryCount int `json:"entry_count"`

	AverageCoefficient float64 `json:"average_coefficient"`
	MinCoefficient     float64 `json:"min_coefficient"`
	MaxCoefficient     float64 `json:"max_coefficient"`

	TotalHours      float64 `json:"total_hours"`
	TotalCost       float64 `json:"total_cost"`
	MinSessionHours float64 `json:"min_session_hours"`
	MaxSessionHours float64 `json:"max_session_hours"`
	AvgSessionHours float64 `json:"avg_session_hours"`

	WindowStart float64 `json:"window_start"`
	WindowEnd   float64 `json:"window_end"`

	UniqueTopics []string `json:"unique_topics"`

	HourlyRate float64         `json:"hourly_rate"`
	Entries    []entry.Entry   `json:"entries"`
	Warnings   []entry.Warning `json:"warnings,omitempty"`
}

// ValidateRate checks that an hourly rate can be used for costing.
func ValidateRate(rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return &RateError{Rate: rate}
	}
	return nil
}

// Aggregate computes a Report over the annotated entries. The input slice is
// not modified; Report.Entries holds costed copies in input order.
func Aggregate(entries []entry.Entry, opts Options) (Report, error) {
	if len(entries) == 0 {
		return Report{}, ErrEmptyReport
	}
	if err := ValidateRate(opts.HourlyRate); err != nil {
		return Report{}, err
	}

	costed := make([]entry.Entry, len(entries))
	for i, e := range entries {
		if !isFinite(e.Coefficient.Value) {
			return Report{}, &MetricError{Index: i, Field: "coefficient", Value: e.Coefficient.Value}
		}
		if !isFinite(e.DurationHours) {
			return Report{}, &MetricError{Index: i, Field: "durationHours", Value: e.DurationHours}
		}
		e.Cost = e.DurationHours * e.Coefficient.Value * opts.HourlyRate
		if !isFinite(e.Cost) {
			return Report{}, &MetricError{Index: i, Field: "cost", Value: e.Cost}
		}
		costed[i] = e
	}

	first := costed[0]
	r := Report{
		EntryCount:      len(costed),
		MinCoefficient:  first.Coefficient.Value,
		MaxCoefficient:  first.Coefficient.Value,
		MinSessionHours: first.DurationHours,
		MaxSessionHours: first.DurationHours,
		WindowStart:     first.Start,
		WindowEnd:       first.End,
		HourlyRate:      opts.HourlyRate,
		Entries:         costed,
	}

	var coeffSum float64
	for i, e := range costed {
		coeffSum += e.Coefficient.Value
		r.TotalHours += e.DurationHours
		r.TotalCost += e.Cost

		// Finite terms can still overflow their running sums
		if !isFinite(coeffSum) {
			return Report{}, &MetricError{Index: i, Field: "averageCoefficient", Value: coeffSum}
		}
		if !isFinite(r.TotalHours) {
			return Report{}, &MetricError{Index: i, Field: "totalHours", Value: r.TotalHours}
		}
		if !isFinite(r.TotalCost) {
			return Report{}, &MetricError{Index: i, Field: "totalCost", Value: r.TotalCost}
		}

		r.MinCoefficient = math.Min(r.MinCoefficient, e.Coefficient.Value)
		r.MaxCoefficient = math.Max(r.MaxCoefficient, e.Coefficient.Value)
		r.MinSessionHours = math.Min(r.MinSessionHours, e.DurationHours)
		r.MaxSessionHours = math.Max(r.MaxSessionHours, e.DurationHours)
		r.WindowStart = math.Min(r.WindowStart, e.Start)
		r.WindowEnd = math.Max(r.WindowEnd, e.End)
	}

	n := float64(len(costed))
	r.AverageCoefficient = coeffSum / n
	r.AvgSessionHours = r.TotalHours / n
	r.UniqueTopics = UniqueTopics(costed)

	return r, nil
}

// UniqueTopics returns entry topics with exact duplicates removed, in order
// of first occurrence.
func UniqueTopics(entries []entry.Entry) []string {
	seen := make(map[string]bool, len(entries))
	topics := make([]string, 0, len(entries))
	for _, e := range entries {
		if seen[e.Topic] {
			continue
		}
		seen[e.Topic] = true
		topics = append(topics, e.Topic)
	}
	return topics
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
