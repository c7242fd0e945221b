package formatx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const ellipsis = "..."

// Truncate shortens text to at most max runes, ending in "..." when cut.
func Truncate(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	if max <= len(ellipsis) {
		if max < 0 {
			max = 0
		}
		return string(r[:max])
	}
	return string(r[:max-len(ellipsis)]) + ellipsis
}

// Capitalize upper-cases the first letter of every word and lower-cases
// the rest.
func Capitalize(text string) string {
	return cases.Title(language.Und).String(text)
}

// Slugify turns text into a lower-case, hyphen-separated ASCII slug:
// "Olá Mundo!" becomes "ola-mundo".
func Slugify(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	dash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
			continue
		}
		dash = true
	}
	return b.String()
}

// FieldLabel turns a field key into a label for messages:
// "passwordConfirm" and "password_confirm" both become "Password confirm".
func FieldLabel(name string) string {
	words := strcase.ToDelimited(strings.TrimSpace(name), ' ')
	r, size := utf8.DecodeRuneInString(words)
	if r == utf8.RuneError {
		return words
	}
	return string(unicode.ToUpper(r)) + words[size:]
}
