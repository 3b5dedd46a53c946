// Package catalog provides prebuilt schemas for common formats, composed
// from engine primitives and custom predicates. Everything here is
// configuration over the engine; the normalization logic lives in the root
// package.
package catalog

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	veriform "github.com/veriform/veriform"
	"github.com/veriform/veriform/engine"
)

// Email accepts a syntactically valid email address. Surrounding whitespace
// is trimmed before validation.
func Email() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,email"), veriform.WithName("email"))
}

// URL accepts an absolute URL.
func URL() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,url"), veriform.WithName("url"))
}

// SafeURL is URL restricted to publicly routable hosts: loopback, private,
// link-local and unspecified addresses are rejected, as is the literal
// "localhost". Intended for user-supplied URLs that a server will fetch.
func SafeURL() *veriform.Schema[string] {
	t := engine.Refine(
		engine.TrimmedString("required,url"),
		"safe_url",
		"a publicly routable url",
		"invalid_url",
		func(v any) bool { return publiclyRoutable(v.(string)) },
	)
	return veriform.New[string](t, veriform.WithName("safe_url"))
}

func publiclyRoutable(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "" || strings.EqualFold(host, "localhost") {
		return false
	}
	ip := net.ParseIP(host)
	if ip == nil {
		// Hostname, not an address; DNS-level checks are out of scope here.
		return true
	}
	return !(ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() || ip.IsUnspecified())
}

// UUID accepts a version-4 UUID.
func UUID() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,uuid4"), veriform.WithName("uuid"))
}

// DateISO accepts a calendar date in ISO 8601 form (2006-01-02).
func DateISO() *veriform.Schema[string] {
	return veriform.New[string](engine.TrimmedString("required,datetime=2006-01-02"), veriform.WithName("date"))
}

// JSONString accepts a string holding well-formed JSON.
func JSONString() *veriform.Schema[string] {
	return veriform.New[string](engine.String("required,json"), veriform.WithName("json"))
}

// Base64 accepts a base64-encoded string.
func Base64() *veriform.Schema[string] {
	return veriform.New[string](engine.String("required,base64"), veriform.WithName("base64"))
}

// Hex accepts a hexadecimal string.
func Hex() *veriform.Schema[string] {
	return veriform.New[string](engine.String("required,hexadecimal"), veriform.WithName("hex"))
}

// BoundedString accepts a string of min..max characters; max <= 0 leaves the
// upper bound open.
func BoundedString(min, max int) *veriform.Schema[string] {
	tag := fmt.Sprintf("min=%d", min)
	if max > 0 {
		tag = fmt.Sprintf("min=%d,max=%d", min, max)
	}
	return veriform.New[string](engine.String(tag), veriform.WithName("string"))
}

// NonEmptyArray accepts an array of elem with at least one element.
func NonEmptyArray(elem engine.Type) *veriform.Schema[[]any] {
	return veriform.New[[]any](engine.BoundedArray(elem, 1, 0), veriform.WithName("non_empty_array"))
}
