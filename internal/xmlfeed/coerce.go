package xmlfeed

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Text trims surrounding whitespace. Absent and blank values are both null.
func Text(raw *string) *string {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}
	return &s
}

// Integer parses a base-10 integer. Null input yields null; any other text
// that is not an integer is a *CoercionError.
func Integer(raw *string) (*int, error) {
	s := Text(raw)
	if s == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*s)
	if err != nil {
		return nil, &CoercionError{Index: -1, Value: *s, Err: err}
	}
	return &n, nil
}

// Decimal parses a finite floating point number. NaN and infinities are
// rejected.
func Decimal(raw *string) (*float64, error) {
	s := Text(raw)
	if s == nil {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil, &CoercionError{Index: -1, Value: *s, Err: err}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &CoercionError{Index: -1, Value: *s, Err: ErrNonFiniteDecimal}
	}
	return &f, nil
}

// Boolean maps the feed's truthy and falsy tokens, ignoring case.
func Boolean(raw *string) (*bool, error) {
	s := Text(raw)
	if s == nil {
		return nil, nil
	}
	var b bool
	switch strings.ToLower(*s) {
	case "1", "true", "y", "yes":
		b = true
	case "0", "false", "n", "no":
		b = false
	default:
		return nil, &CoercionError{Index: -1, Value: *s, Err: ErrInvalidBoolean}
	}
	return &b, nil
}

// ParseDate parses a calendar date against layout.
func ParseDate(raw *string, layout string) (*Date, error) {
	s := Text(raw)
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(layout, *s)
	if err != nil {
		return nil, &CoercionError{Index: -1, Value: *s, Pattern: layout, Err: err}
	}
	d := DateOf(t)
	return &d, nil
}

// ParseTimeOfDay parses a wall clock time against layout.
func ParseTimeOfDay(raw *string, layout string) (*TimeOfDay, error) {
	s := Text(raw)
	if s == nil {
		return nil, nil
	}
	t, err := time.Parse(layout, *s)
	if err != nil {
		return nil, &CoercionError{Index: -1, Value: *s, Pattern: layout, Err: err}
	}
	return &TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}
