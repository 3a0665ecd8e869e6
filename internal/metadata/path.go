package metadata

import (
	"regexp"
	"strings"
)

var objectNamePattern = regexp.MustCompile(`^(?:.*/)?objects/([^/]+)/`)

// toSlash converts Windows separators so path patterns work on any OS.
func toSlash(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// ObjectNameFromPath extracts the object name from a path inside an objects
// directory, e.g. "force-app/main/default/objects/Account/fields/X.field-meta.xml"
// yields "Account". The last "objects" segment wins.
func ObjectNameFromPath(path string) (string, bool) {
	m := objectNamePattern.FindStringSubmatch(toSlash(path))
	if m == nil {
		return "", false
	}

	return m[1], true
}

// ValueSetNameFromPath extracts a standard or global value set name from its
// file path, e.g. ".../standardValueSets/LeadStatus.standardValueSet-meta.xml"
// yields "LeadStatus".
func ValueSetNameFromPath(path string, kind Kind) (string, bool) {
	if kind.Dir() == "" || kind.Suffix() == "" {
		return "", false
	}

	p := toSlash(path)
	if !strings.HasSuffix(p, kind.Suffix()) {
		return "", false
	}

	p = strings.TrimSuffix(p, kind.Suffix())

	dir, name, ok := cutLast(p, "/")
	if !ok || name == "" {
		return "", false
	}

	if dir != kind.Dir() && !strings.HasSuffix(dir, "/"+kind.Dir()) {
		return "", false
	}

	return name, true
}

func cutLast(s, sep string) (before, after string, found bool) {
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return "", s, false
	}

	return s[:i], s[i+len(sep):], true
}
