package vuln

import (
	"strconv"
	"strings"
)

// Placeholder is the RustSec advisory ID used before a real ID has been
// assigned. It always parses successfully.
const Placeholder = "RUSTSEC-0000-0000"

const (
	// YearMin is the earliest year accepted in a year-bearing advisory ID.
	YearMin = 2000

	// YearMax is the latest year accepted in a year-bearing advisory ID.
	YearMax = YearMin + 100
)

// separator delimits the segments of an advisory ID.
const separator = "-"

// ID is a parsed advisory identifier, such as "CVE-2017-1000168" or
// "GHSA-4mmc-49vf-jmcp".
//
// An ID is immutable. Its kind and year are derived from the raw text, so two
// IDs are equal (including with ==) exactly when their text is equal.
//
// The zero ID, which ParseID returns alongside an error, has no kind, year,
// numerical part, or URL.
type ID struct {
	kind    Kind
	year    uint32
	hasYear bool
	raw     string
}

// DefaultID returns the placeholder ID.
func DefaultID() ID {
	return ID{
		kind: KindRustSec,
		raw:  Placeholder,
	}
}

// ParseID parses and validates the given advisory identifier.
//
// RUSTSEC, CVE, and TALOS IDs must have exactly three segments, where the
// second is a year between YearMin and YearMax and the third is a number. GHSA
// IDs and IDs of unrecognized schemes are accepted as-is. The returned error is
// always a *ParseError.
func ParseID(s string) (ID, error) {
	if s == Placeholder {
		return DefaultID(), nil
	}

	id := ID{
		kind: DetectKind(s),
		raw:  s,
	}

	if id.kind.HasYear() {
		year, err := parseYear(s)
		if err != nil {
			return ID{}, err
		}
		id.year = year
		id.hasYear = true
	}

	return id, nil
}

// MustParseID is like ParseID but panics if the ID is invalid.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// parseYear validates a year-bearing ID and returns its year.
func parseYear(s string) (uint32, error) {
	// The first segment is the scheme prefix, which has already been detected.
	parts := strings.Split(s, separator)[1:]

	year, err := parseNumber(parts[0])
	if err != nil {
		return 0, parseError(s, ErrMalformedYear)
	}
	if year < YearMin || year > YearMax {
		return 0, parseError(s, ErrYearOutOfRange)
	}

	if len(parts) < 2 {
		return 0, parseError(s, ErrIncompleteID)
	}
	if _, err := parseNumber(parts[1]); err != nil {
		return 0, parseError(s, ErrMalformedID)
	}

	if len(parts) > 2 {
		return 0, parseError(s, ErrMalformedID)
	}

	return year, nil
}

// parseNumber parses an unsigned decimal, allowing a single leading "+".
func parseNumber(s string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// String returns the ID exactly as it was parsed.
func (id ID) String() string {
	return id.raw
}

// Kind returns the scheme of the ID.
func (id ID) Kind() Kind {
	return id.kind
}

// Year returns the year encoded in the ID, if its scheme has one. The
// placeholder ID has no year.
func (id ID) Year() (uint32, bool) {
	return id.year, id.hasYear
}

// NumericalPart returns the number after the last "-" in the ID, if that text
// is a number. The placeholder ID has no numerical part.
func (id ID) NumericalPart() (uint32, bool) {
	if id.kind == kindUnknown || id.IsPlaceholder() {
		return 0, false
	}

	last := id.raw
	if i := strings.LastIndex(last, separator); i >= 0 {
		last = last[i+len(separator):]
	}

	n, err := parseNumber(last)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Equal reports whether id and other have the same text.
func (id ID) Equal(other ID) bool {
	return id.raw == other.raw
}

// IsPlaceholder reports whether the ID is the RUSTSEC-0000-0000 placeholder.
func (id ID) IsPlaceholder() bool {
	return id.raw == Placeholder
}

func (id ID) IsRustSec() bool { return id.kind == KindRustSec }

func (id ID) IsCVE() bool { return id.kind == KindCVE }

func (id ID) IsGHSA() bool { return id.kind == KindGHSA }

func (id ID) IsTalos() bool { return id.kind == KindTalos }

// IsOther reports whether the ID's scheme is unrecognized.
func (id ID) IsOther() bool { return id.kind == KindOther }
