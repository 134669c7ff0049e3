package entry

import (
	"errors"
	"fmt"
)

// ErrMalformedCoefficient is returned when a note's leading token is not a
// decimal number once its suffixes are stripped.
var ErrMalformedCoefficient = errors.New("malformed coefficient")

// CoefficientError identifies the entry whose coefficient could not be parsed.
type CoefficientError struct {
	Index int
	Note  string
	Token string
}

func (e *CoefficientError) Error() string {
	return fmt.Sprintf("entry %d: %s %q in note %q", e.Index, ErrMalformedCoefficient, e.Token, e.Note)
}

func (e *CoefficientError) Unwrap() error {
	return ErrMalformedCoefficient
}
