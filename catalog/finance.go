package catalog

import (
	"math"
	"strings"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/engine"
)

// CreditCard accepts a credit card number, including the Luhn checksum.
func CreditCard() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,credit_card"), veriform.WithName("credit_card"))
}

// BIC accepts an ISO 9362 business identifier code.
func BIC() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,bic"), veriform.WithName("bic"))
}

// Currency accepts an ISO 4217 currency code.
func Currency() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,iso4217"), veriform.WithName("currency"))
}

// IBAN accepts an international bank account number, verified with the
// ISO 13616 mod-97 checksum.
func IBAN() *veriform.Schema[string] {
	t := engine.Refine(
		engine.TrimmedString("required"),
		"iban",
		"a valid international bank account number",
		"invalid_iban",
		func(v any) bool { return validIBAN(v.(string)) },
	)
	return veriform.New[string](t, veriform.WithName("iban"))
}

func validIBAN(s string) bool {
	s = strings.ToUpper(strings.ReplaceAll(s, " ", ""))
	if len(s) < 15 || len(s) > 34 {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	if s[0] < 'A' || s[0] > 'Z' || s[1] < 'A' || s[1] > 'Z' {
		return false
	}
	// Move the country code and check digits to the end, then compute the
	// checksum digit by digit so no big-integer support is needed.
	rearranged := s[4:] + s[:4]
	rem := 0
	for _, r := range rearranged {
		if r >= '0' && r <= '9' {
			rem = (rem*10 + int(r-'0')) % 97
		} else {
			n := int(r-'A') + 10
			rem = (rem*100 + n) % 97
		}
	}
	return rem == 1
}

// Price accepts a non-negative amount with at most two decimal places.
func Price() *veriform.Schema[float64] {
	t := engine.Refine(
		engine.Number("min=0"),
		"price",
		"an amount with at most two decimal places",
		"invalid_price",
		func(v any) bool {
			n := v.(float64)
			cents := n * 100
			return math.Abs(cents-math.Round(cents)) < 1e-9
		},
	)
	return veriform.New[float64](t, veriform.WithName("price"))
}
