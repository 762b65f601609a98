package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency = "USD"
	minorUnitExp    = 2
)

var minorUnitScale = decimal.New(1, minorUnitExp)

// Money is a fixed-point amount held as integer minor units (cents).
type Money struct {
	minor    int64
	currency string
}

func ZeroMoney() Money {
	return Money{currency: DefaultCurrency}
}

func MoneyFromMinor(minor int64) Money {
	return Money{minor: minor, currency: DefaultCurrency}
}

// MoneyOf parses a decimal string such as "100", "100.5" or "100.50".
// More than two fractional digits is rejected rather than rounded.
func MoneyOf(raw string) (Money, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Money{}, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not numeric", ErrInvalidAmount, raw)
	}

	return MoneyFromDecimal(d)
}

// NonNegativeMoneyOf is MoneyOf for contexts that forbid negative values,
// such as initial balances and transaction magnitudes.
func NonNegativeMoneyOf(raw string) (Money, error) {
	m, err := MoneyOf(raw)
	if err != nil {
		return Money{}, err
	}
	if m.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s cannot be negative", ErrInvalidAmount, strings.TrimSpace(raw))
	}

	return m, nil
}

func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	scaled := d.Mul(minorUnitScale)
	if !scaled.Equal(scaled.Truncate(0)) {
		return Money{}, fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, d.String(), minorUnitExp)
	}
	if scaled.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || scaled.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return Money{}, fmt.Errorf("%w: %s is out of range", ErrInvalidAmount, d.String())
	}

	return Money{minor: scaled.IntPart(), currency: DefaultCurrency}, nil
}

// MoneyFromFloat converts a wire number. The float is rounded to cents once,
// at the boundary, and never used for arithmetic afterwards.
func MoneyFromFloat(f float64) (Money, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, fmt.Errorf("%w: amount must be finite", ErrInvalidAmount)
	}

	return MoneyFromDecimal(decimal.NewFromFloat(f).Round(minorUnitExp))
}

func (m Money) Minor() int64 { return m.minor }

func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// Add does not check for overflow; balance updates go through AddChecked.
func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor, currency: m.Currency()}
}

func (m Money) Sub(other Money) Money {
	return Money{minor: m.minor - other.minor, currency: m.Currency()}
}

// AddChecked is Add that fails with ErrInvalidAmount instead of wrapping
// past the int64 range.
func (m Money) AddChecked(other Money) (Money, error) {
	sum := m.minor + other.minor
	if (other.minor > 0 && sum < m.minor) || (other.minor < 0 && sum > m.minor) {
		return Money{}, fmt.Errorf("%w: %s + %s is out of range", ErrInvalidAmount, m, other)
	}
	return Money{minor: sum, currency: m.Currency()}, nil
}

func (m Money) SubChecked(other Money) (Money, error) {
	if other.minor == math.MinInt64 {
		return Money{}, fmt.Errorf("%w: %s - %s is out of range", ErrInvalidAmount, m, other)
	}
	return m.AddChecked(other.Neg())
}

func (m Money) Neg() Money {
	return Money{minor: -m.minor, currency: m.Currency()}
}

// Cmp returns -1, 0 or +1.
func (m Money) Cmp(other Money) int {
	switch {
	case m.minor < other.minor:
		return -1
	case m.minor > other.minor:
		return 1
	default:
		return 0
	}
}

func (m Money) Equal(other Money) bool { return m.minor == other.minor }
func (m Money) IsZero() bool          { return m.minor == 0 }
func (m Money) IsNegative() bool      { return m.minor < 0 }
func (m Money) IsPositive() bool      { return m.minor > 0 }

func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.minor, -minorUnitExp)
}

// String renders two decimals without a currency symbol, e.g. "800.00".
func (m Money) String() string {
	return m.Decimal().StringFixed(minorUnitExp)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a numeric string. Numbers
// are snapped to cents since remote services send balances as binary floats;
// strings follow MoneyOf and reject more than two decimals.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*m = ZeroMoney()
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := MoneyOf(s)
		if err != nil {
			return err
		}
		*m = parsed
		return nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("%w: %s is not numeric", ErrInvalidAmount, raw)
	}

	parsed, err := MoneyFromDecimal(d.Round(minorUnitExp))
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
