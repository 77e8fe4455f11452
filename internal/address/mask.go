package address

import "strings"

const (
	maskVisible = 2
	maskMarker  = "***@"
)

// Split returns the login and domain parts of an already validated address.
// ok is false when the address does not contain exactly one "@".
func Split(address string) (login, domain string, ok bool) {
	parts := strings.Split(address, "@")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Mask keeps the first two characters of login and hides the rest:
// ("default", "study.com") -> "de***@study.com".
func Mask(login, domain string) string {
	runes := []rune(login)
	if len(runes) > maskVisible {
		runes = runes[:maskVisible]
	}
	return string(runes) + maskMarker + domain
}
