package pystring_test

import (
	"testing"

	"github.com/quotefmt/quotefmt/pkg/pystring"
)

func TestReprPreferDouble(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain", value: "hello", want: `"hello"`},
		{name: "empty", value: "", want: `""`},
		{name: "single quote inside stays double", value: "don't", want: `"don't"`},
		{name: "double quote inside switches to single", value: `say "hi"`, want: `'say "hi"'`},
		{name: "both quotes escape the double", value: `a'b"c`, want: `"a'b\"c"`},
		{name: "backslash escaped", value: `a\b`, want: `"a\\b"`},
		{name: "tab escaped", value: "a\tb", want: `"a\tb"`},
		{name: "newline escaped", value: "a\nb", want: `"a\nb"`},
		{name: "nul escaped", value: "\x00", want: `"\x00"`},
		{name: "printable unicode kept", value: "héllo", want: `"héllo"`},
		{name: "line separator escaped", value: "\u2028", want: `"\u2028"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pystring.Repr(tt.value, pystring.PreferDouble); got != tt.want {
				t.Errorf("Repr(%q, PreferDouble) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestReprPreferSingle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain char", value: "a", want: `'a'`},
		{name: "double quote char", value: `"`, want: `'"'`},
		{name: "single quote char switches", value: "'", want: `"'"`},
		{name: "newline char", value: "\n", want: `'\n'`},
		{name: "tab char", value: "\t", want: `'\t'`},
		{name: "backslash char", value: `\`, want: `'\\'`},
		{name: "astral char kept", value: "\U0001F600", want: "'\U0001F600'"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pystring.Repr(tt.value, pystring.PreferSingle); got != tt.want {
				t.Errorf("Repr(%q, PreferSingle) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

// Repr output must decode back to the original value.
func TestReprRoundTrip(t *testing.T) {
	t.Parallel()

	values := []string{
		"", "a", "hello", "don't", `say "hi"`, `a'b"c`,
		"line\nbreak", "tab\there", `back\slash`, "\x00\x01", "héllo", "\u2028",
	}

	for _, value := range values {
		for _, pref := range []pystring.QuotePreference{pystring.PreferSingle, pystring.PreferDouble} {
			text := pystring.Repr(value, pref)
			sp, ok := pystring.ParseSpelling(text)
			if !ok {
				t.Fatalf("ParseSpelling(%s) not ok", text)
			}
			got, err := sp.Decode()
			if err != nil {
				t.Fatalf("Decode(%s) error = %v", text, err)
			}
			if got != value {
				t.Errorf("round trip %q -> %s -> %q", value, text, got)
			}
		}
	}
}
