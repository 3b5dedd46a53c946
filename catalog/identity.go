package catalog

import (
	"fmt"
	"regexp"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/engine"
)

// Phone accepts an E.164 international phone number (+14155552671).
func Phone() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,e164"), veriform.WithName("phone"))
}

// SSN accepts a US social security number.
func SSN() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,ssn"), veriform.WithName("ssn"))
}

var countryRe = regexp.MustCompile(`^[A-Z]{2}$`)

// PostalCode accepts a postal code for the given ISO 3166-1 alpha-2 country.
// An unknown country format is a configuration mistake and is reported here,
// not at validation time.
func PostalCode(country string) (*veriform.Schema[string], error) {
	if !countryRe.MatchString(country) {
		return nil, fmt.Errorf("catalog: postal code country %q must be an ISO 3166-1 alpha-2 code", country)
	}
	tag := "required,postcode_iso3166_alpha2=" + country
	return veriform.New[string](engine.TrimmedString(tag), veriform.WithName("postal_code")), nil
}

// MustPostalCode is PostalCode that panics on configuration errors.
func MustPostalCode(country string) *veriform.Schema[string] {
	s, err := PostalCode(country)
	if err != nil {
		panic(err)
	}
	return s
}
