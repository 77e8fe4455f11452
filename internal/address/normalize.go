package address

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize trims surrounding whitespace and lower-cases the whole address.
func Normalize(address string) string {
	// Caser keeps state between calls, so one per call.
	return cases.Lower(language.Und).String(strings.TrimSpace(address))
}

// NormalizeAll normalizes every address, preserving order.
func NormalizeAll(addresses []string) []string {
	normalized := make([]string, 0, len(addresses))
	for _, a := range addresses {
		normalized = append(normalized, Normalize(a))
	}
	return normalized
}
