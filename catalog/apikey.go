package catalog

import (
	"fmt"
	"regexp"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/engine"
)

var apiKeyPrefixRe = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// APIKey accepts keys of the form <prefix>_<32 alphanumerics>. The prefix is
// interpolated into a pattern, so anything beyond alphanumerics is rejected
// here as a configuration error rather than silently changing the pattern's
// meaning at validation time.
func APIKey(prefix string) (*veriform.Schema[string], error) {
	if !apiKeyPrefixRe.MatchString(prefix) {
		return nil, fmt.Errorf("catalog: api key prefix %q must be alphanumeric", prefix)
	}
	re := regexp.MustCompile(`^` + prefix + `_[A-Za-z0-9]{32}$`)
	return veriform.New[string](engine.Pattern(re), veriform.WithName("api_key")), nil
}

// MustAPIKey is APIKey that panics on configuration errors.
func MustAPIKey(prefix string) *veriform.Schema[string] {
	s, err := APIKey(prefix)
	if err != nil {
		panic(err)
	}
	return s
}
