package mailtext

import (
	"regexp"
	"strings"
)

var breakRunRe = regexp.MustCompile(`[\n\t]+`)

// Clean replaces every run of tabs and newlines with a single space.
// Runs of plain spaces are kept as they are.
func Clean(text string) string {
	return breakRunRe.ReplaceAllString(text, " ")
}

// CheckEmptyFields reports whether subject and body are empty or whitespace only.
func CheckEmptyFields(subject, body string) (subjectEmpty, bodyEmpty bool) {
	return isBlank(subject), isBlank(body)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
