// Package suggest finds the closest known metadata name to a mistyped one.
//
// Names are compared after normalization, so "account.status__c" and
// "Account.Status__c" are identical and "Acount" is one edit away from
// "Account".
package suggest

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultThreshold is the minimum similarity for a name to be suggested.
const DefaultThreshold = 0.6

// Normalize folds case and removes custom object markers and separators.
//
// Examples:
//   - "Account.Status__c" -> "account.status"
//   - "Order_Line__c" -> "orderline"
//   - "Setting__mdt" -> "setting"
func Normalize(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "__c", "")
	name = strings.ReplaceAll(name, "__mdt", "")

	return strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || r == ' ' {
			return -1
		}

		return r
	}, name)
}

// Distance is the Levenshtein edit distance between a and b, counted in runes.
func Distance(a, b string) int {
	return fuzzy.LevenshteinDistance(a, b)
}

// Similarity scores normalized names from 0 (unrelated) to 1 (identical).
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)

	longest := max(utf8.RuneCountInString(na), utf8.RuneCountInString(nb))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(na, nb))/float64(longest)
}

// Closest returns the candidate most similar to name, if any scores at least
// threshold. Ties go to the lexically smallest candidate.
func Closest(name string, candidates []string, threshold float64) (string, bool) {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestScore := "", threshold

	for _, c := range sorted {
		if score := Similarity(name, c); score > bestScore || (score == bestScore && best == "") {
			best, bestScore = c, score
		}
	}

	return best, best != ""
}
