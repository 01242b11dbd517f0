package hasilbumi

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency amounts are displayed in when none is configured.
const DefaultCurrency = "IDR"

// Money is an amount in the ledger currency. The ledger holds a single
// currency, so the amount does not carry its own: it is only needed to
// format the value.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string like "115000".
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

// String returns the plain decimal representation of the amount.
func (m Money) String() string { return m.value.String() }

// Format returns the amount formatted in the given currency, e.g. "Rp115.000,00".
// Unknown currency codes are formatted with two decimals followed by the code.
func (m Money) Format(currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return m.value.StringFixed(2) + " " + currency
	}
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(amount Money) bool      { return m.value.LessThan(amount.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value)} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }

// floatTolerance is the relative error left by a float64 multiplication,
// with headroom for a few chained operations.
var floatTolerance = decimal.New(1, -12)

// Near reports whether m and n differ by no more than float64 rounding
// noise relative to n, such as 3.3000000000000003 against 3.3.
func (m Money) Near(n Money) bool {
	if m.value.Equal(n.value) {
		return true
	}
	diff := m.value.Sub(n.value).Abs()
	return diff.LessThanOrEqual(n.value.Abs().Mul(floatTolerance))
}

// Decimal returns the underlying value.
func (m Money) Decimal() decimal.Decimal { return m.value }

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}
func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
