// Package ether переводит суммы между строковым представлением в эфирах и целыми гвеями.
package ether

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// GweiPerEther количество гвеев в одном эфире
const GweiPerEther = 1_000_000_000

var (
	ErrPrecision = errors.New("amount has more than 9 decimal places")
	ErrNegative  = errors.New("amount is negative")
	ErrOverflow  = errors.New("amount is too large")

	gwei     = decimal.New(1, 9)
	maxValue = decimal.NewFromInt(math.MaxInt64)
)

// Parse переводит строку вида "0.01" в гвеи
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}

	g := d.Mul(gwei)
	if !g.Equal(g.Truncate(0)) {
		return 0, ErrPrecision
	}
	if g.IsNegative() {
		return 0, ErrNegative
	}
	if g.GreaterThan(maxValue) {
		return 0, ErrOverflow
	}

	return g.IntPart(), nil
}

// MustParse как Parse, но паникует. Только для констант
func MustParse(s string) int64 {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Format переводит гвеи в строку в эфирах без лишних нулей
func Format(amount int64) string {
	return decimal.New(amount, -9).String()
}
