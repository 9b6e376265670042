// Package core provides the expense list aggregate and amount parsing.
//
// This file contains the parser for amounts typed on the command line.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseAmount converts a whole-unit amount string to an int64.
//
// Surrounding spaces and a leading '+' or '-' are accepted; anything else that
// is not a decimal digit is rejected with ErrInvalidAmount. The sign is kept so
// that ExpenseList.Append stays the one place where negative amounts are refused.
//
// Examples:
//
//	ParseAmount("12")   -> 12, nil
//	ParseAmount(" 7 ")  -> 7, nil
//	ParseAmount("-3")   -> -3, nil
//	ParseAmount("1.50") -> 0, ErrInvalidAmount
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimLeft(s, "+-")
	if digits == "" || len(s)-len(digits) > 1 {
		return 0, ErrInvalidAmount
	}
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// overflow
		return 0, ErrInvalidAmount
	}
	return v, nil
}
