package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeEmptyValueSet     = "empty-value-set"
	CodeDuplicateConstant = "duplicate-constant"
	CodeNameBudget        = "name-budget"
	CodeTruncatedName     = "truncated-name"
	CodeGlobalReference   = "global-reference"
	CodeUnmatchedInclude  = "unmatched-include"
)

// Diagnostics holds the notices of one generation run.
type Diagnostics struct {
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Source identifies the metadata the notice relates to, e.g. "Account.Status__c".
	Source string
	// Class is the generated class name, if any.
	Class string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source, class string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Source:   source,
		Class:    class,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source, class string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Source:   source,
		Class:    class,
	})
}

// HasWarnings returns true if there are any warnings.
func (d *Diagnostics) HasWarnings() bool {
	return len(d.Warnings) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// ByCode returns every diagnostic, warnings first, with the given code.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, group := range [][]Diagnostic{d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				out = append(out, diag)
			}
		}
	}

	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Source != "" {
		prefix = append(prefix, "["+d.Source+"]")
	}

	if d.Class != "" {
		prefix = append(prefix, d.Class)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
