// Package domain defines the core entities and business rules for the
// accounts API: the Account aggregate, account number masking, and the
// sentinel errors the HTTP boundary maps to status codes.
package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Account represents a single financial account owned by a customer.
//
// Invariants:
// - ID is unique across the store at all times.
// - Number is never exposed unmasked outside internal storage.
// - Balance is always paired with Currency in any outward-facing shape.
type Account struct {
	ID          string
	CustomerID  string
	Number      string
	Type        string
	Currency    string
	Balance     decimal.Decimal
	Status      string
	OpeningDate string
}

// maskRune is the redaction marker used by MaskNumber.
const maskRune = 'X'

// MaskNumber redacts an account number, preserving only the last four
// characters verbatim. The output always has the same length as the input;
// numbers of four characters or fewer have nothing to redact and are
// returned unchanged.
func MaskNumber(number string) string {
	runes := []rune(number)
	if len(runes) <= 4 {
		return number
	}
	var b strings.Builder
	b.Grow(len(runes))
	for range runes[:len(runes)-4] {
		b.WriteRune(maskRune)
	}
	b.WriteString(string(runes[len(runes)-4:]))
	return b.String()
}
