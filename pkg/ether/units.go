// Package ether converts between human readable ether amounts and wei.
package ether

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Decimals is the number of wei digits in one ether.
const Decimals = 18

var (
	ErrInvalidAmount error = errors.New("invalid amount")
	ErrTooPrecise    error = errors.New("amount has more than 18 fractional digits")
	ErrNotPositive   error = errors.New("amount must be greater than zero")
)

var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// ParseEther converts a plain decimal ether string ("0.5", "12") to wei.
// Exponents, signs and inputs finer than one wei are rejected, never rounded.
func ParseEther(amount string) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if !amountPattern.MatchString(amount) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, amount, err)
	}

	wei := d.Shift(Decimals)
	if !wei.IsInteger() {
		return nil, fmt.Errorf("%w: %q", ErrTooPrecise, amount)
	}

	return wei.BigInt(), nil
}

// ParsePositiveEther is ParseEther that also rejects zero.
func ParsePositiveEther(amount string) (*big.Int, error) {
	wei, err := ParseEther(amount)
	if err != nil {
		return nil, err
	}
	if wei.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotPositive, amount)
	}
	return wei, nil
}

// FormatEther renders wei as an exact ether decimal without trailing zeros.
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	return decimal.NewFromBigInt(wei, -Decimals).String()
}
