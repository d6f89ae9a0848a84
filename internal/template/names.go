package template

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// Underscore converts a kebab-case, snake_case, CamelCase or space separated
// name into lower snake case: "My Plugin" and "MyPlugin" become "my_plugin".
func Underscore(name string) string {
	runes := []rune(strings.TrimSpace(name))

	var b strings.Builder
	pendingSep := false

	for i, r := range runes {
		if isSeparator(r) {
			pendingSep = b.Len() > 0
			continue
		}

		if unicode.IsUpper(r) && i > 0 && b.Len() > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsLower(prev) || unicode.IsDigit(prev):
				pendingSep = true
			case unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// end of an acronym: "HTTPServer" -> "http_server"
				pendingSep = true
			}
		}

		if pendingSep {
			b.WriteByte('_')
			pendingSep = false
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// CamelCase upper-cases the first letter of every word of s and joins them.
// Words are separated by underscores, hyphens or spaces; the remaining letters
// keep their case.
func CamelCase(s string) string {
	caser := cases.Title(language.Und, cases.NoLower)

	var b strings.Builder
	for _, word := range strings.FieldsFunc(s, isSeparator) {
		b.WriteString(caser.String(word))
	}

	return b.String()
}
