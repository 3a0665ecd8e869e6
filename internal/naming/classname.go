package naming

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// MaxClassNameLen is the platform's hard limit on Apex class names.
const MaxClassNameLen = 40

// DefaultInfix separates the object and field segments of custom field class names.
const DefaultInfix = "_"

// conflictValueSetNames are standard value sets whose names clash with
// built-in Apex types; their class names get a trailing underscore.
var conflictValueSetNames = []string{"LeadStatus"}

// markers are the custom object/field and custom metadata type suffixes, plus
// underscores, removed from names before they become class name segments.
var markers = regexp.MustCompile(`__c|__mdt|_`)

var identifier = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Budget returns the number of characters left for the base segment once
// prefix and suffix are accounted for. A negative budget is clamped to zero.
func Budget(prefix, suffix string, maxLen int) int {
	available := maxLen - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(suffix)
	if available < 0 {
		return 0
	}

	return available
}

// BuildClassName truncates base to the available budget and wraps it with
// prefix and suffix. Truncation is a plain left-anchored cut.
func BuildClassName(base, prefix, suffix string, maxLen int) string {
	budget := Budget(prefix, suffix, maxLen)

	return prefix + truncate(base, budget) + suffix
}

// Overflows reports whether prefix and suffix alone leave no room for a base.
func Overflows(prefix, suffix string, maxLen int) bool {
	return utf8.RuneCountInString(prefix)+utf8.RuneCountInString(suffix) >= maxLen
}

// TrimMarkers removes "__c", "__mdt" and underscores from a metadata name.
//
// Examples:
//   - "Account__c" -> "Account"
//   - "Order_Line__c" -> "OrderLine"
//   - "Setting__mdt" -> "Setting"
func TrimMarkers(name string) string {
	return markers.ReplaceAllString(name, "")
}

// CustomFieldBase builds the class name base for a custom field value set.
func CustomFieldBase(objectName, infix, fieldName string) string {
	return TrimMarkers(objectName) + infix + TrimMarkers(fieldName)
}

// ValueSetBase builds the class name base for a standard value set,
// disambiguating names that collide with built-in types.
func ValueSetBase(name string) string {
	if slices.Contains(conflictValueSetNames, name) {
		return name + "_"
	}

	return name
}

// RecordTypeProperty returns the constant name for a record type, e.g.
// ("Case", "Support") -> "CASE_SUPPORT". The object name loses its markers
// like a class name base does; no length limit applies.
func RecordTypeProperty(objectName, developerName string) string {
	return strings.ToUpper(TrimMarkers(objectName) + "_" + developerName)
}

// RecordTypeIDProperty returns the identifier accessor name for a record type
// property.
func RecordTypeIDProperty(property string) string {
	return property + "_ID"
}

// IsIdentifier reports whether s is a single identifier token.
func IsIdentifier(s string) bool {
	return identifier.MatchString(s)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)

	return string(runes[:n])
}
