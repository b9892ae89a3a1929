package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in cents. On the wire it is a decimal number of euros,
// which is what the rent API has always exchanged.
type Money int64

// MaxMoney bounds any single amount, so that adding two of them stays
// within int64 cents.
const MaxMoney Money = 1e15

// Euros builds a Money value from a decimal amount, rounding to the nearest cent.
func Euros(amount float64) Money {
	return Money(math.Round(amount * 100))
}

func (m Money) Cents() int64 { return int64(m) }

func (m Money) Float64() float64 { return float64(m) / 100 }

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (m Money) MarshalJSON() ([]byte, error) {
	if m%100 == 0 {
		return strconv.AppendInt(nil, int64(m)/100, 10), nil
	}
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts plain numbers as well as quoted decimals, since some
// backends serialise arbitrary-precision amounts as strings.
func (m *Money) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > MaxMoney.Float64() {
		return fmt.Errorf("amount %q out of range", s)
	}
	*m = Euros(f)
	return nil
}
