// Package dateformat translates editor-style date format strings
// (YYYY-MM-DD HH:mm:ss) into Go reference layouts.
//
// The token vocabulary follows the format strings commonly used by blogging
// and editor tooling. Text wrapped in square brackets is emitted literally.
package dateformat

import (
	"strconv"
	"strings"
	"time"

	"github.com/jthorne/matter/internal/errors"
)

// tokens maps format tokens to Go reference layout fragments.
// Longer tokens must be matched before their prefixes (YYYY before YY).
var tokens = []struct {
	token  string
	layout string
}{
	{"YYYY", "2006"},
	{"YY", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"DD", "02"},
	{"D", "2"},
	{"dddd", "Monday"},
	{"ddd", "Mon"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"A", "PM"},
	{"a", "pm"},
	{"ZZ", "-0700"},
	{"Z", "-07:00"},
}

// Layout translates a token format string into a Go reference layout.
// Returns ErrInvalidDateFormat (wrapped with the offending token) when the
// format contains an unrecognized letter sequence.
func Layout(format string) (string, error) {
	var b strings.Builder

	for i := 0; i < len(format); {
		c := format[i]

		// Bracketed literals pass through untranslated.
		if c == '[' {
			end := strings.IndexByte(format[i:], ']')
			if end < 0 {
				return "", errors.Wrapf(errors.ErrInvalidDateFormat, "unclosed literal at %q", format[i:])
			}
			b.WriteString(format[i+1 : i+end])
			i += end + 1
			continue
		}

		if !isLetter(c) {
			b.WriteByte(c)
			i++
			continue
		}

		matched := false
		for _, t := range tokens {
			if strings.HasPrefix(format[i:], t.token) {
				b.WriteString(t.layout)
				i += len(t.token)
				matched = true
				break
			}
		}
		if !matched {
			run := letterRun(format[i:])
			return "", errors.Wrapf(errors.ErrInvalidDateFormat, "unknown token %q in %q", run, format)
		}
	}

	return b.String(), nil
}

// Format renders t using the given token format string.
// An empty format is the caller's responsibility (native timestamps);
// Format returns an error in that case to make misuse visible.
func Format(t time.Time, format string) (string, error) {
	if format == "" {
		return "", errors.Wrap(errors.ErrInvalidDateFormat, "empty format")
	}

	// Unix seconds has no layout equivalent.
	if format == "X" {
		return strconv.FormatInt(t.Unix(), 10), nil
	}

	layout, err := Layout(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}

// Valid reports whether format is a translatable format string.
// The empty format is valid; it selects native timestamps.
func Valid(format string) bool {
	if format == "" || format == "X" {
		return true
	}
	_, err := Layout(format)
	return err == nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func letterRun(s string) string {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return s[:i]
		}
	}
	return s
}
