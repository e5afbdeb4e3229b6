package kernel

import (
	"fmt"
	"math"

	"tailoring/internal/pkg/errs"
)

// Money is an amount in whole currency units (rupees). It is never negative.
// The zero value is a valid amount of 0.
type Money struct {
	amount int64
}

// NewMoney rejects negative amounts.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
	}
	return Money{amount: amount}, nil
}

// MustMoney is NewMoney for compile-time constants such as catalog prices.
func MustMoney(amount int64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns an amount of 0.
func Zero() Money {
	return Money{}
}

func (m Money) Int64() int64 {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

func (m Money) IsPositive() bool {
	return m.amount > 0
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Mul returns the amount multiplied by a non-negative factor. Negative factors yield zero.
func (m Money) Mul(factor int64) Money {
	if factor <= 0 {
		return Money{}
	}
	return Money{amount: m.amount * factor}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}
