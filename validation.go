package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file is the input-validation boundary: raw, untyped input (CLI flags,
// imported files) is coerced into domain values here, before any mutation
// runs. A rejection at this layer never touches the Store.

// ParseQuantity parses a strictly positive integer quantity.
func ParseQuantity(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("quantity must be positive, got %d", n)
	}
	return n, nil
}

// ParseStock parses a non-negative integer stock count.
func ParseStock(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid stock %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("stock must not be negative, got %d", n)
	}
	return n, nil
}

// ParsePrice parses a non-negative decimal price.
func ParsePrice(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if d.IsNegative() {
		return Money{}, fmt.Errorf("price must not be negative, got %s", d)
	}
	return M(d), nil
}

// RequireText trims the value and rejects it when empty.
func RequireText(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", fmt.Errorf("%s is missing", field)
	}
	return v, nil
}
