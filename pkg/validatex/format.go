package validatex

import (
	"net/url"
	"regexp"
	"slices"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Accepted URL schemes.
var (
	StrictURLSchemes = []string{"http", "https"}
	LooseURLSchemes  = []string{"http", "https", "ftp", "ftps"}
)

// IsEmail reports whether s looks like user@domain.tld. It is a simplified
// check, not full RFC 5322.
func IsEmail(s string) bool {
	return s != "" && emailPattern.MatchString(s)
}

// IsURL reports whether s parses as an absolute URL with a host and one
// of schemes. StrictURLSchemes applies when none are given.
func IsURL(s string, schemes ...string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return false
	}
	if len(schemes) == 0 {
		schemes = StrictURLSchemes
	}
	return slices.Contains(schemes, u.Scheme)
}

// IsPhone reports whether s holds a 10-digit landline or 11-digit mobile
// number, ignoring formatting.
func IsPhone(s string) bool {
	n := len(DigitsOnly(s))
	return n == 10 || n == 11
}
