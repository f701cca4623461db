package vuln

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedYear means the year segment of an identifier isn't a number.
	ErrMalformedYear = errors.New("malformed year")

	// ErrYearOutOfRange means the year segment is a number outside of
	// [YearMin, YearMax].
	ErrYearOutOfRange = errors.New("out-of-range year")

	// ErrIncompleteID means the identifier is missing its numeric suffix.
	ErrIncompleteID = errors.New("incomplete advisory ID")

	// ErrMalformedID means the numeric suffix isn't a number, or the identifier
	// has more segments than its scheme allows.
	ErrMalformedID = errors.New("malformed advisory ID")
)

// ParseError describes why an advisory identifier could not be parsed. Use
// errors.Is with the Err* sentinels to check the reason.
type ParseError struct {
	// ID is the text that failed to parse.
	ID string

	// Err is one of the Err* sentinels in this package.
	Err error
}

func (e *ParseError) Error() string {
	switch e.Err {
	case ErrMalformedYear, ErrYearOutOfRange:
		return fmt.Sprintf("%s in advisory ID: %s", e.Err, e.ID)
	default:
		return fmt.Sprintf("%s: %s", e.Err, e.ID)
	}
}

// Unwrap returns the underlying sentinel error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(id string, err error) error {
	return &ParseError{ID: id, Err: err}
}
