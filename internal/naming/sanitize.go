package naming

import (
	"regexp"
	"strings"
)

// reservedWords are Apex keywords a generated constant must not collide with.
var reservedWords = map[string]struct{}{
	"final":      {},
	"static":     {},
	"instanceof": {},
	"super":      {},
	"this":       {},
	"transient":  {},
	"with":       {},
	"without":    {},
	"sharing":    {},
	"inherited":  {},
	"public":     {},
	"private":    {},
	"protected":  {},
	"class":      {},
	"new":        {},
}

// reservedPrefix is prepended to identifiers that would otherwise be invalid.
const reservedPrefix = "a_"

var nonWordRun = regexp.MustCompile(`\W+`)

// IsReserved reports whether s is a reserved word, ignoring case.
func IsReserved(s string) bool {
	_, ok := reservedWords[strings.ToLower(s)]

	return ok
}

// Sanitize normalizes a raw metadata value into a valid identifier.
// The pipeline:
// 1. Replace every run of non-word characters with a single underscore.
// 2. Strip one trailing underscore.
// 3. Prefix with "a_" when the result does not start with a letter or is reserved.
//
// Examples:
//   - "Won't Do" -> "Won_t_Do"
//   - "3 Stars" -> "a_3_Stars"
//   - "New" -> "a_New"
func Sanitize(raw string) string {
	result := nonWordRun.ReplaceAllString(raw, "_")
	result = strings.TrimSuffix(result, "_")

	if !startsWithLetter(result) || IsReserved(result) {
		return reservedPrefix + result
	}

	return result
}

// ConstantName returns the uppercased sanitized identifier used for a
// generated constant.
func ConstantName(raw string) string {
	return strings.ToUpper(Sanitize(raw))
}

func startsWithLetter(s string) bool {
	if s == "" {
		return false
	}

	c := s[0]

	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
