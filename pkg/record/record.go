// Package record adapts loader output (one map of field name to value per
// row) to the extractor contract, converting field values with spf13/cast.
package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/Sumatoshi-tech/seqstat/pkg/alg/seq"
)

// Extraction errors.
var (
	// ErrMissingField is returned when a record has no value for the requested field.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidClock is returned for a colon-separated time that is not
	// [-]m:ss or [-]h:mm:ss.
	ErrInvalidClock = errors.New("invalid clock value")
)

const (
	clockBase     = 60
	clockDigits   = 2
	minClockParts = 2
	maxClockParts = 3
)

// Record is a single loaded row keyed by field name.
type Record map[string]any

// Float extracts field as a float64. Numeric strings such as "22" are accepted.
func Float(field string) seq.Extractor[Record, float64] {
	return convert(field, cast.ToFloat64E)
}

// Int extracts field as an int64.
func Int(field string) seq.Extractor[Record, int64] {
	return convert(field, cast.ToInt64E)
}

// String extracts field as a string, for ordering-only operations.
func String(field string) seq.Extractor[Record, string] {
	return convert(field, cast.ToStringE)
}

// Duration extracts field as seconds. Values may be time.Duration, numbers of
// nanoseconds, Go duration strings ("30m42s") or clock strings ("30:42",
// "1:02:03"). Any string holding a colon must be a well-formed clock; a
// leading sign applies to the whole value.
func Duration(field string) seq.Extractor[Record, float64] {
	return func(r Record) (float64, error) {
		raw, err := lookup(r, field)
		if err != nil {
			return 0, err
		}

		if s, ok := raw.(string); ok && strings.Contains(s, ":") {
			secs, clockErr := clockSeconds(s)
			if clockErr != nil {
				return 0, fmt.Errorf("field %q: %w", field, clockErr)
			}

			return secs, nil
		}

		d, err := cast.ToDurationE(raw)
		if err != nil {
			return 0, fmt.Errorf("field %q: %w", field, err)
		}

		return d.Seconds(), nil
	}
}

func convert[V any](field string, to func(any) (V, error)) seq.Extractor[Record, V] {
	return func(r Record) (V, error) {
		raw, err := lookup(r, field)
		if err != nil {
			var zero V

			return zero, err
		}

		v, err := to(raw)
		if err != nil {
			var zero V

			return zero, fmt.Errorf("field %q: %w", field, err)
		}

		return v, nil
	}
}

func lookup(r Record, field string) (any, error) {
	raw, ok := r[field]
	if !ok || raw == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingField, field)
	}

	return raw, nil
}

// clockSeconds parses "m:ss" and "h:mm:ss" with an optional leading sign.
// Every component after the first is exactly two digits below 60.
func clockSeconds(s string) (float64, error) {
	body := strings.TrimSpace(s)
	sign := 1.0

	switch {
	case strings.HasPrefix(body, "-"):
		sign, body = -1, body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	parts := strings.Split(body, ":")
	if len(parts) < minClockParts || len(parts) > maxClockParts {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	total := 0

	for i, part := range parts {
		if part == "" || (i > 0 && len(part) != clockDigits) || strings.Trim(part, "0123456789") != "" {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}

		n, err := strconv.Atoi(part)
		if err != nil || (i > 0 && n >= clockBase) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
		}

		total = total*clockBase + n
	}

	return sign * (time.Duration(total) * time.Second).Seconds(), nil
}
