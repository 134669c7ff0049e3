package entry

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// CarryMarker at the end of a token reuses the previous entry's topic.
	CarryMarker = "^"
	// MultiplierSuffix is the cosmetic "x" in tokens such as "0.5x".
	MultiplierSuffix = "x"

	msPerHour = 1000 * 60 * 60
)

// decimalPattern matches a plain decimal number: no exponent, no thousands
// separators, optional sign.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// TimeParser turns an input timestamp string into an instant.
type TimeParser func(string) (time.Time, error)

// SplitNote splits a note at its first space into the coefficient token and
// the remaining text. Runs of spaces after the first one are kept in rest.
func SplitNote(note string) (token, rest string) {
	token, rest, _ = strings.Cut(note, " ")
	return token, rest
}

// ParseCoefficient decodes a coefficient token.
// Supported forms: "1", "0.2", "1x", "0.2x", and any of these followed by the
// carry marker, e.g. "0.5^" or "0.5x^".
func ParseCoefficient(token string) (Coefficient, error) {
	c := Coefficient{RawToken: token}

	num := token
	if strings.HasSuffix(num, CarryMarker) {
		c.CarriesFromPrevious = true
		num = strings.TrimSuffix(num, CarryMarker)
	}
	num = strings.TrimSuffix(num, MultiplierSuffix)

	if !decimalPattern.MatchString(num) {
		return Coefficient{}, fmt.Errorf("%w: %q", ErrMalformedCoefficient, token)
	}

	// Overflowing digit strings come back as ±Inf with ErrRange; keep the
	// value so aggregation can report it as a non-finite metric.
	v, err := strconv.ParseFloat(num, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Coefficient{}, fmt.Errorf("%w: %q", ErrMalformedCoefficient, token)
	}
	c.Value = v

	return c, nil
}

// Annotate decodes the coefficient of every entry and resolves carry markers.
// Entries are processed once, in input order: entry i reads the topic that
// entry i-1 already resolved. The first malformed coefficient aborts the run.
func Annotate(raw []RawEntry, parseTime TimeParser) (AnnotateResult, error) {
	if parseTime == nil {
		parseTime = func(s string) (time.Time, error) { return time.Parse(time.RFC3339Nano, s) }
	}

	result := AnnotateResult{
		Entries:  make([]Entry, 0, len(raw)),
		Warnings: []Warning{},
	}

	for i, r := range raw {
		token, rest := SplitNote(r.Note)
		coeff, err := ParseCoefficient(token)
		if err != nil {
			return AnnotateResult{}, &CoefficientError{Index: i, Note: r.Note, Token: token}
		}

		e := Entry{
			Start:        toMillis(parseTime, r.Start),
			End:          toMillis(parseTime, r.End),
			Coefficient:  coeff,
			Note:         r.Note,
			ResolvedNote: r.Note,
			Topic:        rest,
		}
		e.DurationHours = (e.End - e.Start) / msPerHour

		if coeff.CarriesFromPrevious {
			if i == 0 {
				result.Warnings = append(result.Warnings, Warning{
					Index:   i,
					Kind:    WarnFirstEntryCarry,
					Note:    r.Note,
					Message: "cannot take previous note from first entry",
				})
				e.ResolvedNote = rest
			} else {
				prev := result.Entries[i-1]
				e.ResolvedNote = strings.TrimSuffix(token, CarryMarker) + " " + prev.Topic
				_, e.Topic = SplitNote(e.ResolvedNote)
				e.TopicCarried = true
			}
		}

		result.Entries = append(result.Entries, e)
	}

	return result, nil
}

func toMillis(parseTime TimeParser, s string) float64 {
	t, err := parseTime(s)
	if err != nil {
		return math.NaN()
	}
	return float64(t.UnixMilli())
}
