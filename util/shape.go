package util

import (
	"strings"
	"unicode"
)

// IsPunctuation checks whether a token consists entirely of punctuation or
// symbol characters.
func IsPunctuation(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

// HasDigit reports whether the token contains a decimal digit.
func HasDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}

// HasUpper reports whether the token contains an upper-case letter.
func HasUpper(s string) bool {
	return strings.ContainsFunc(s, unicode.IsUpper)
}

// HasHyphen reports whether the token contains a hyphen.
func HasHyphen(s string) bool {
	return strings.ContainsRune(s, '-')
}
