// Package validation collects field-level input problems before anything
// touches the database.
package validation

import (
	"errors"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Err returns nil when there is nothing to report.
func (v Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return &Error{Violations: v}
}

// Error is returned by handlers as a 400.
type Error struct {
	Violations Violations
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for field := range e.Violations {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e.Violations[field])
	}
	return "invalid input: " + strings.Join(parts, ", ")
}

func IsValidation(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// Basic validators
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func Email(field, value string, v Violations) {
	if !strings.Contains(value, "@") {
		v[field] = "invalid_email"
	}
}

func MinLength(field, value string, n int, v Violations) {
	if len(value) < n {
		v[field] = "too_short"
	}
}

func Date(field, value string, v Violations) {
	if _, err := time.Parse(dateLayout, value); err != nil {
		v[field] = "invalid_date"
	}
}

// OptionalDate checks the value only when one was supplied.
func OptionalDate(field string, value *string, v Violations) {
	if value != nil && *value != "" {
		Date(field, *value, v)
	}
}

func PositiveInt(field string, val int, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func NonNegative(field string, val int64, v Violations) {
	if val < 0 {
		v[field] = "must_not_be_negative"
	}
}

func RangeInt(field string, val, minVal, maxVal int, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

func RangeFloat(field string, val, minVal, maxVal float64, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

// ParseDate reads a calendar date in the API's YYYY-MM-DD form.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
