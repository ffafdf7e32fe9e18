// Package alphabet lists the traceable alphabets and normalizes letter ids.
package alphabet

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Supported alphabet codes.
const (
	Hebrew  = "he"
	English = "en"
	Russian = "ru"
	Digits  = "digits"
)

var letters = map[string][]string{
	Hebrew:  split("אבגדהוזחטיכלמנסעפצקרשת"),
	English: split("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
	Russian: split("АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ"),
	Digits:  split("0123456789"),
}

// Languages returns the supported alphabet codes in display order.
func Languages() []string {
	return []string{Hebrew, English, Russian, Digits}
}

// Letters returns the ordered letter ids of an alphabet.
func Letters(lang string) ([]string, error) {
	list, ok := letters[strings.ToLower(strings.TrimSpace(lang))]
	if !ok {
		return nil, fmt.Errorf("unknown alphabet %q (available: %s)", lang, strings.Join(Languages(), ", "))
	}
	return append([]string(nil), list...), nil
}

// Normalize returns the canonical form of a letter id: trimmed, NFC-composed
// and upper-cased. Hebrew has no case and passes through unchanged.
func Normalize(id string) string {
	id = norm.NFC.String(strings.TrimSpace(id))
	return cases.Upper(language.Und).String(id)
}

// LangOf reports which alphabet a letter id belongs to, or "" when none does.
func LangOf(id string) string {
	id = Normalize(id)
	if id == "" {
		return ""
	}
	r := []rune(id)[0]
	switch {
	case unicode.Is(unicode.Hebrew, r):
		return Hebrew
	case unicode.Is(unicode.Cyrillic, r):
		return Russian
	case unicode.IsDigit(r):
		return Digits
	case unicode.Is(unicode.Latin, r):
		return English
	default:
		return ""
	}
}

// IsRTL reports whether the alphabet is written right to left.
func IsRTL(lang string) bool {
	return lang == Hebrew
}

func split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
