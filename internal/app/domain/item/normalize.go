package item

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize prepares a raw name for storage and comparison: leading and
// trailing whitespace is trimmed and each whitespace-delimited word is title
// cased (first rune uppercased, the rest lowercased). Internal whitespace
// runs collapse to a single space. Pure function.
func Normalize(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	for i, field := range fields {
		fields[i] = titleWord(field)
	}
	return strings.Join(fields, " ")
}

// Key returns the case-insensitive lookup key for a normalized name.
func Key(name string) string {
	return strings.ToLower(name)
}

func titleWord(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	if first == utf8.RuneError && size <= 1 {
		return word
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(word[size:])
}
