// Package dateutil formats and parses the dates shown on posts.
//
// Two format dialects are understood:
//   - the scaffold dialect (YYYY-MM-DD, [literal]) used for "auto" values
//     written by the new command
//   - the date-fns dialect (LLLL d, yyyy, 'literal') used to display dates
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for date operations.
var (
	// ErrInvalidDateFormat indicates an invalid date format string.
	ErrInvalidDateFormat = errors.New("invalid date format")

	// ErrInvalidDate indicates a date value that cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

const (
	// DefaultDateFormat is used when "auto" is specified without a format.
	DefaultDateFormat = "YYYY-MM-DD"

	// DefaultPattern renders "March 1, 2024".
	DefaultPattern = "LLLL d, yyyy"
)

// DatePresets provides named shortcuts for common scaffold formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// isoLayouts are the accepted shapes of a front matter date.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// reservedLiterals are substrings Go's time package reads as layout elements.
var reservedLiterals = []string{"Jan", "Mon", "MST", "PM", "pm"}

type token struct {
	token string
	goFmt string
}

// dialect describes one token vocabulary. Tokens are ordered by length
// descending for greedy matching.
type dialect struct {
	tokens  []token
	open    byte
	close   byte
	strict  bool // reject unknown letters, digits and reserved literals
	doubled bool // open+open is an escaped delimiter
}

var scaffoldDialect = dialect{
	tokens: []token{
		{"YYYY", "2006"},
		{"MMMM", "January"},
		{"MMM", "Jan"},
		{"YY", "06"},
		{"MM", "01"},
		{"DD", "02"},
		{"M", "1"},
		{"D", "2"},
	},
	open:  '[',
	close: ']',
}

var patternDialect = dialect{
	tokens: []token{
		{"yyyy", "2006"},
		{"LLLL", "January"},
		{"MMMM", "January"},
		{"EEEE", "Monday"},
		{"LLL", "Jan"},
		{"MMM", "Jan"},
		{"EEE", "Mon"},
		{"yy", "06"},
		{"LL", "01"},
		{"MM", "01"},
		{"dd", "02"},
		{"HH", "15"},
		{"hh", "03"},
		{"mm", "04"},
		{"ss", "05"},
		{"L", "1"},
		{"M", "1"},
		{"d", "2"},
		{"h", "3"},
		{"a", "PM"},
	},
	open:    '\'',
	close:   '\'',
	strict:  true,
	doubled: true,
}

// ParseDateFormat converts a scaffold format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
func ParseDateFormat(format string) (string, error) {
	return scaffoldDialect.convert(format)
}

// ParsePattern converts a date-fns style pattern to Go's time format.
// Tokens: yyyy, yy, LLLL/MMMM, LLL/MMM, LL/MM, L/M, dd, d, EEEE, EEE, HH, hh, h, mm, ss, a
// Single quotes escape literal text: 'on' d LLLL. A doubled quote is a literal quote.
// Unknown letters and digits are rejected: Go would read them as layout elements.
func ParsePattern(pattern string) (string, error) {
	return patternDialect.convert(pattern)
}

func (d dialect) convert(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		c := format[i]

		if c == d.open {
			if d.doubled && i+1 < len(format) && format[i+1] == d.open {
				result.WriteByte(d.open)
				i += 2
				continue
			}
			end := strings.IndexByte(format[i+1:], d.close)
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed %q at position %d", ErrInvalidDateFormat, d.open, i)
			}
			literal := format[i+1 : i+1+end]
			if d.strict {
				if err := checkLiteral(literal); err != nil {
					return "", err
				}
			}
			result.WriteString(literal)
			i += end + 2
			continue
		}

		if goFmt, n := d.match(format[i:]); n > 0 {
			result.WriteString(goFmt)
			i += n
			continue
		}

		if d.strict && (isASCIILetter(c) || isDigit(c)) {
			return "", fmt.Errorf("%w: unsupported token %q at position %d", ErrInvalidDateFormat, c, i)
		}
		result.WriteByte(c)
		i++
	}

	return result.String(), nil
}

// match returns the Go layout for the longest token prefixing s.
func (d dialect) match(s string) (string, int) {
	for _, t := range d.tokens {
		if strings.HasPrefix(s, t.token) {
			return t.goFmt, len(t.token)
		}
	}
	return "", 0
}

func checkLiteral(literal string) error {
	for i := 0; i < len(literal); i++ {
		if isDigit(literal[i]) {
			return fmt.Errorf("%w: digits are not allowed in literal %q", ErrInvalidDateFormat, literal)
		}
	}
	for _, reserved := range reservedLiterals {
		if strings.Contains(literal, reserved) {
			return fmt.Errorf("%w: literal %q contains reserved text %q", ErrInvalidDateFormat, literal, reserved)
		}
	}
	return nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// ResolveDate handles "auto" and "auto:FORMAT" syntax for date values.
//   - "auto" → current date in YYYY-MM-DD format
//   - "auto:FORMAT" → current date in a scaffold format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset" → current date using a named preset (iso, european, us, long)
//   - any other value → returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	format := DefaultDateFormat
	switch {
	case lower == "auto":
	case strings.HasPrefix(lower, "auto:"):
		// keep original case: tokens are case sensitive
		format = value[len("auto:"):]
		if format == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(format)]; ok {
			format = preset
		}
	default:
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	}

	goFmt, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}

// ParseISO parses a front matter date: a full RFC 3339 timestamp, a local
// date-time, or a plain YYYY-MM-DD date.
func ParseISO(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not an ISO 8601 date", ErrInvalidDate, value)
}

// FormatISO parses an ISO date and formats it with a date-fns pattern.
// An empty pattern uses DefaultPattern.
func FormatISO(value, pattern string) (string, error) {
	t, err := ParseISO(value)
	if err != nil {
		return "", err
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	goFmt, err := ParsePattern(pattern)
	if err != nil {
		return "", err
	}
	return t.Format(goFmt), nil
}
