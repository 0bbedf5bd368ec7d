package model

import (
	"database/sql/driver"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Decimal is a fixed-precision money column with two decimal places,
// stored internally as hundredths. It accepts both quoted strings and
// numeric literals in JSON and renders as a string ("18.20") either way,
// so the two input forms are indistinguishable once stored.
type Decimal struct {
	hundredths int64
}

// maxDecimal caps values at 5 significant digits (999.99), matching the
// decimal(5,2) column type.
const maxDecimal = 99999

// ParseDecimal parses a decimal string such as "18.2" or "7".
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("empty decimal value")
	}
	if strings.HasPrefix(s, "-") {
		return Decimal{}, fmt.Errorf("decimal value %q must not be negative", s)
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > 2 {
		return Decimal{}, fmt.Errorf("decimal value %q has more than two decimal places", s)
	}
	// ParseInt tolerates a leading sign, so both parts must be digit-only
	for _, part := range []string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return Decimal{}, fmt.Errorf("invalid decimal value %q", s)
			}
		}
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal value %q", s)
	}
	cents, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal value %q", s)
	}

	d := Decimal{hundredths: units*100 + cents}
	if d.hundredths > maxDecimal {
		return Decimal{}, fmt.Errorf("decimal value %q exceeds 5 digits", s)
	}
	return d, nil
}

// NewDecimal builds a Decimal from whole hundredths, e.g. NewDecimal(1820)
// is 18.20.
func NewDecimal(hundredths int64) Decimal {
	return Decimal{hundredths: hundredths}
}

func (d Decimal) String() string {
	return fmt.Sprintf("%d.%02d", d.hundredths/100, d.hundredths%100)
}

// Equal reports whether two decimals hold the same value.
func (d Decimal) Equal(other Decimal) bool {
	return d.hundredths == other.hundredths
}

// MarshalJSON renders the value as a quoted fixed-point string.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}

// UnmarshalJSON accepts both `"18.20"` and `18.20`.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid decimal %s", s)
		}
		s = unquoted
	}
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. Numeric-affinity databases may hand back
// floats or ints for a decimal column, so all three shapes are accepted.
func (d *Decimal) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Decimal{}
		return nil
	case []byte:
		parsed, err := ParseDecimal(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDecimal(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case float64:
		*d = Decimal{hundredths: int64(math.Round(v * 100))}
		return nil
	case int64:
		*d = Decimal{hundredths: v * 100}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Decimal", value)
	}
}
