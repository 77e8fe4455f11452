package mailtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "tab", input: "Hello!\tFriend", want: "Hello! Friend"},
		{name: "mixed run", input: "a\n\n\tb", want: "a b"},
		{name: "spaces untouched", input: "друг!   Как", want: "друг!   Как"},
		{name: "cyrillic body", input: "Привет,\nдруг!   Как дела?", want: "Привет, друг!   Как дела?"},
		{name: "leading and trailing", input: "\tx\n", want: " x "},
		{name: "carriage return kept", input: "a\r\nb", want: "a\r b"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Clean(tt.input))
		})
	}
}

func TestCheckEmptyFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		subject      string
		body         string
		subjectEmpty bool
		bodyEmpty    bool
	}{
		{name: "both filled", subject: "Hi", body: "text", subjectEmpty: false, bodyEmpty: false},
		{name: "empty subject", subject: "", body: "text", subjectEmpty: true, bodyEmpty: false},
		{name: "whitespace body", subject: "Hi", body: " \t\n", subjectEmpty: false, bodyEmpty: true},
		{name: "both blank", subject: "   ", body: "", subjectEmpty: true, bodyEmpty: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			subjectEmpty, bodyEmpty := CheckEmptyFields(tt.subject, tt.body)
			assert.Equal(t, tt.subjectEmpty, subjectEmpty)
			assert.Equal(t, tt.bodyEmpty, bodyEmpty)
		})
	}
}
