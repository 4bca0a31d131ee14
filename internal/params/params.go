// Package params parses shorthand model sizes such as "7B" or "65M" into a
// parameter count.
package params

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Unit is a supported magnitude suffix.
type Unit struct {
	Suffix     string
	Multiplier float64
}

var units = []Unit{
	{Suffix: "B", Multiplier: 1e9},
	{Suffix: "M", Multiplier: 1e6},
}

// Units returns the supported suffixes, largest first.
func Units() []Unit { return append([]Unit(nil), units...) }

// The whole input must match; "7Bxyz" is rejected.
var pattern = regexp.MustCompile(`^([0-9.]+)([A-Z]+)$`)

// Parse converts s (case-insensitive, surrounding whitespace ignored) into a
// parameter count, rounded to the nearest integer.
func Parse(s string) (int64, error) {
	m := pattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(s)))
	if m == nil {
		return 0, parseError{input: s}
	}
	numStr, suffix := m[1], m[2]
	mult := 0.0
	for _, u := range units {
		if u.Suffix == suffix {
			mult = u.Multiplier
			break
		}
	}
	if mult == 0 {
		return 0, parseError{input: s, reason: fmt.Sprintf("unexpected unit '%s'", suffix)}
	}
	v, err := strconv.ParseFloat(numStr, 64)
	if err != nil {
		return 0, parseError{input: s, reason: fmt.Sprintf("invalid number '%s'", numStr)}
	}
	n := math.Round(v * mult)
	if n >= math.MaxInt64 {
		return 0, parseError{input: s, reason: "value out of range"}
	}
	return int64(n), nil
}

// parseError reports a parameter string that does not match <number><unit>.
type parseError struct {
	input  string
	reason string
}

func (e parseError) Error() string {
	msg := fmt.Sprintf("cannot parse number of parameters from '%s'", e.input)
	if e.reason != "" {
		msg += ": " + e.reason
	}
	return msg
}

// IsParseError reports whether err (or anything it wraps) is a parse failure.
func IsParseError(err error) bool {
	var pe parseError
	return errors.As(err, &pe)
}
