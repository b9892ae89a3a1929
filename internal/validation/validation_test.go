package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViolations(t *testing.T) {
	v := Violations{}
	Required("name", "  ", v)
	Email("email", "nobody", v)
	MinLength("password", "short", 8, v)
	Date("start_date", "01/02/2026", v)
	OptionalDate("birth_date", nil, v)
	PositiveInt("duration_months", 0, v)
	NonNegative("charges", -1, v)
	RangeInt("period_month", 13, 1, 12, v)
	RangeFloat("share_percentage", 120, 0, 100, v)

	assert.Equal(t, Violations{
		"name":             "required",
		"email":            "invalid_email",
		"password":         "too_short",
		"start_date":       "invalid_date",
		"duration_months":  "must_be_positive",
		"charges":          "must_not_be_negative",
		"period_month":     "out_of_range",
		"share_percentage": "out_of_range",
	}, v)
}

func TestViolations_Clean(t *testing.T) {
	v := Violations{}
	Required("name", "Alice", v)
	Email("email", "a@b.fr", v)
	Date("start_date", "2026-01-31", v)
	OptionalDate("birth_date", ptr("1990-05-04"), v)
	RangeInt("period_month", 12, 1, 12, v)

	assert.True(t, v.Empty())
	assert.NoError(t, v.Err())
}

func TestError_Message(t *testing.T) {
	err := Violations{"b": "required", "a": "invalid_date"}.Err()

	assert.EqualError(t, err, "invalid input: a: invalid_date, b: required")
	assert.True(t, IsValidation(fmt.Errorf("create lease: %w", err)))
	assert.False(t, IsValidation(errors.New("other")))
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-28", FormatDate(d.AddDate(0, 1, 0)))
}

func ptr(s string) *string { return &s }
