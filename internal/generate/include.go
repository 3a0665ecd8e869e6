package generate

import (
	"fmt"
	"strings"

	"sourcegen/internal/diagnostic"
	"sourcegen/internal/logger"
	"sourcegen/internal/suggest"
)

// allow reports whether any of names is on the include list. An empty list
// allows everything. Salesforce names are case-insensitive. Every name is
// remembered so unmatched entries can be reported with a suggestion.
func (r *Report) allow(include []string, names ...string) bool {
	r.seen = append(r.seen, names...)

	if len(include) == 0 {
		return true
	}

	allowed := false

	for _, entry := range include {
		for _, name := range names {
			if strings.EqualFold(entry, name) {
				r.markMatched(entry)
				allowed = true
			}
		}
	}

	return allowed
}

func (r *Report) markMatched(entry string) {
	if r.matched == nil {
		r.matched = make(map[string]bool)
	}

	r.matched[strings.ToLower(entry)] = true
}

// checkInclude warns about include entries that matched no metadata.
func (r *Report) checkInclude(include []string) {
	reported := make(map[string]bool, len(include))

	for _, entry := range include {
		key := strings.ToLower(entry)
		if r.matched[key] || reported[key] {
			continue
		}

		reported[key] = true
		msg := fmt.Sprintf("include entry %q matched nothing", entry)

		if closest, ok := suggest.Closest(entry, r.seen, suggest.DefaultThreshold); ok {
			msg += fmt.Sprintf("; did you mean %q?", closest)
		}

		logger.Warnw("Unmatched include entry", "entry", entry)
		r.Diagnostics.AddWarning(diagnostic.CodeUnmatchedInclude, msg, entry, "")
	}
}
