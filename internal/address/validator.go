package address

import "regexp"

// Only com, ru and net top-level labels are accepted.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.(com|ru|net)$`)

// IsValid reports whether the normalized form of address matches the accepted grammar.
func IsValid(address string) bool {
	return emailRe.MatchString(Normalize(address))
}

// FilterValid returns the addresses whose normalized form is valid.
// Order and the original, non-normalized strings are preserved.
func FilterValid(addresses []string) []string {
	var valid []string
	for _, a := range addresses {
		if IsValid(a) {
			valid = append(valid, a)
		}
	}
	return valid
}
