// Package i18n turns issue codes into human-readable messages. Message text
// is deliberately not part of the core Issue shape; adapters look it up here
// (or through their own Translator) keyed by code.
package i18n

import (
	"fmt"
	"strings"
)

// Translator retrieves localized messages for issue codes. params provides
// optional constraint metadata to embed in the message (for example "min" or
// "expected").
type Translator interface {
	Message(code string, params map[string]any) string
}

// dictTranslator is the built-in template-dictionary Translator. Templates
// reference params as {name}; unknown codes render as the code itself.
type dictTranslator struct {
	messages map[string]string
}

func (t dictTranslator) Message(code string, params map[string]any) string {
	tmpl, ok := t.messages[code]
	if !ok {
		return code
	}
	out := tmpl
	for k, v := range params {
		out = strings.ReplaceAll(out, "{"+k+"}", fmt.Sprintf("%v", v))
	}
	return out
}

var defaultMessages = map[string]string{
	"invalid_type":   "invalid type, expected {expected}",
	"required":       "this field is required",
	"unexpected_key": "unexpected key",

	"string_min":     "must be at least {min} characters",
	"string_max":     "must be at most {max} characters",
	"string_length":  "must be exactly {expected} characters",
	"string_pattern": "has an invalid format",
	"invalid_email":  "must be a valid email address",
	"invalid_url":    "must be a valid URL",
	"invalid_uuid":   "must be a valid UUID",
	"invalid_date":   "must be a valid date",
	"invalid_json":   "must be valid JSON",
	"invalid_base64": "must be a valid base64 string",
	"invalid_hex":    "must be a valid hex string",
	"invalid_format": "has an invalid format",

	"number_min":      "must be at least {min}",
	"number_max":      "must be at most {max}",
	"number_range":    "is out of range",
	"not_integer":     "must be an integer",
	"not_positive":    "must be a positive number",
	"not_negative":    "must be a negative number",
	"invalid_divisor": "must be divisible by {expected}",

	"array_min":    "must contain at least {min} items",
	"array_max":    "must contain at most {max} items",
	"array_length": "must contain exactly {expected} items",
	"array_empty":  "must not be empty",

	"object_empty": "must not be empty",

	"invalid_password":      "does not meet the password requirements",
	"password_too_short":    "password must be at least {min} characters",
	"password_no_uppercase": "password must contain an uppercase letter",
	"password_no_lowercase": "password must contain a lowercase letter",
	"password_no_number":    "password must contain a number",
	"password_no_special":   "password must contain a special character",
	"passwords_dont_match":  "passwords do not match",

	"invalid_credit_card": "must be a valid credit card number",
	"invalid_iban":        "must be a valid IBAN",
	"invalid_bic":         "must be a valid BIC",
	"invalid_currency":    "must be a valid currency code",
	"invalid_price":       "must be a valid price",

	"invalid_ip":       "must be a valid IP address",
	"invalid_ipv4":     "must be a valid IPv4 address",
	"invalid_ipv6":     "must be a valid IPv6 address",
	"invalid_hostname": "must be a valid hostname",
	"invalid_port":     "must be a valid port number",
	"invalid_mac":      "must be a valid MAC address",

	"invalid_phone":       "must be a valid phone number",
	"invalid_ssn":         "must be a valid social security number",
	"invalid_postal_code": "must be a valid postal code",

	"custom":    "is invalid",
	"predicate": "is invalid",
	"narrow":    "is invalid",
}

var currentTranslator Translator = dictTranslator{messages: defaultMessages}

// SetTranslator replaces the Translator implementation. Passing nil restores
// the built-in English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{messages: defaultMessages}
		return
	}
	currentTranslator = tr
}

// Default returns the built-in English dictionary Translator, independent of
// SetTranslator.
func Default() Translator {
	return dictTranslator{messages: defaultMessages}
}

// T fetches a message for the given code using the current Translator.
func T(code string, params map[string]any) string {
	return currentTranslator.Message(code, params)
}
