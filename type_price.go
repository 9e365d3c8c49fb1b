package optfolio

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// Price is an exact per-contract price. A zero Price is a valid literal price
// (assignment-at-strike rows report a price of zero), not a missing value.
type Price struct {
	value decimal.Decimal
}

func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value)}
}

func (p Price) Equal(q Price) bool       { return p.value.Equal(q.value) }
func (p Price) LessThan(q Price) bool    { return p.value.LessThan(q.value) }
func (p Price) GreaterThan(q Price) bool { return p.value.GreaterThan(q.value) }
func (p Price) Add(q Price) Price        { return Price{value: p.value.Add(q.value)} }
func (p Price) Sub(q Price) Price        { return Price{value: p.value.Sub(q.value)} }
func (p Price) IsZero() bool             { return p.value.IsZero() }
func (p Price) IsNegative() bool         { return p.value.IsNegative() }
func (p Price) String() string           { return p.value.String() }

// Decimal returns the underlying exact value.
func (p Price) Decimal() decimal.Decimal { return p.value }

// MarshalJSON implements the json.Marshaler interface for Price.
func (p Price) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Price) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
