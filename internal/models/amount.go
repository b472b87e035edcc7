package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmptyInput reports that there was nothing to calculate
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidInput reports text that is not a decimal amount
	ErrInvalidInput = errors.New("invalid amount")
)

// IsAmountRune reports whether r may be typed into the amount field
func IsAmountRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.' || r == ','
}

// ParseAmount parses an amount written the Brazilian way: '.' groups
// thousands and is ignored, ',' separates the decimals. A leading "R$" and
// spaces are dropped, so displayed values such as "R$ 2.200,00" parse back.
func ParseAmount(text string) (float64, error) {
	s := strings.TrimSpace(text)
	s = strings.TrimPrefix(s, currencyPrefix)
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, ErrEmptyInput
	}

	for _, r := range s {
		if !IsAmountRune(r) {
			return 0, fmt.Errorf("%w: unexpected character %q", ErrInvalidInput, r)
		}
	}

	normalized := strings.ReplaceAll(strings.ReplaceAll(s, ".", ""), ",", ".")
	switch {
	case normalized == ".":
		// a lone decimal comma is nothing typed yet
		return 0, ErrEmptyInput
	case strings.Count(normalized, ".") > 1:
		return 0, fmt.Errorf("%w: repeated decimal comma in %q", ErrInvalidInput, s)
	case strings.Trim(normalized, ".") == "":
		return 0, fmt.Errorf("%w: no digits in %q", ErrInvalidInput, s)
	}

	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return value, nil
}

const currencyPrefix = "R$"
