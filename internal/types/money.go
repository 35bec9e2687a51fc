// README: Common money value object used across modules; amounts are cents.
package types

import (
	"fmt"
	"math"
)

type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// EUR builds a Money from an amount in cents.
func EUR(cents int64) Money {
	return Money{Amount: cents, Currency: "EUR"}
}

// FromEuros converts a decimal euro amount to cents, rounding half away from zero.
func FromEuros(v float64) Money {
	return EUR(int64(math.Round(v * 100)))
}

func (m Money) Euros() float64 {
	return float64(m.Amount) / 100
}

func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}
}

// MulRound multiplies by an arbitrary factor and rounds back to the cent.
// Amounts are rounded after every multiplicative step so the intermediate
// values shown to operators always sum to what is actually charged.
func (m Money) MulRound(f float64) Money {
	return Money{Amount: int64(math.Round(float64(m.Amount) * f)), Currency: m.Currency}
}

// MulInt multiplies by an integer count.
func (m Money) MulInt(n int64) Money {
	return Money{Amount: m.Amount * n, Currency: m.Currency}
}

func (m Money) IsZero() bool {
	return m.Amount == 0
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Euros(), m.Currency)
}
