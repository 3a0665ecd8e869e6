package gen

import (
	"bytes"
	"strings"

	"sourcegen/internal/errors"
	"sourcegen/internal/naming"
)

// Constant is one generated String constant.
type Constant struct {
	// Name is the uppercased sanitized identifier.
	Name string
	// Value is the raw value, escaped for an Apex string literal.
	Value string
	// Raw is the unescaped source value.
	Raw string
}

// Duplicate records a value dropped because an earlier value in the same
// set produced the same constant name.
type Duplicate struct {
	Name    string
	Kept    string
	Dropped string
}

type valueSetData struct {
	Notice    string
	Header    string
	ClassName string
	Constants []Constant
}

var apexStringEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// EscapeApexString escapes backslashes and single quotes for use inside an
// Apex string literal.
func EscapeApexString(s string) string {
	return apexStringEscaper.Replace(s)
}

// ValueConstants converts raw values into constants in source order. Empty
// values are dropped. When two values produce the same constant name the
// first one wins and the later one is reported as a Duplicate.
func ValueConstants(values []string) ([]Constant, []Duplicate) {
	constants := make([]Constant, 0, len(values))
	seen := make(map[string]string, len(values))

	var dups []Duplicate

	for _, raw := range values {
		if raw == "" {
			continue
		}

		name := naming.ConstantName(raw)
		if kept, ok := seen[name]; ok {
			dups = append(dups, Duplicate{Name: name, Kept: kept, Dropped: raw})

			continue
		}

		seen[name] = raw
		constants = append(constants, Constant{
			Name:  name,
			Value: EscapeApexString(raw),
			Raw:   raw,
		})
	}

	return constants, dups
}

// RenderConstants renders a value set class. It returns false when there are
// no constants, meaning no file should be written.
func RenderConstants(constants []Constant, header, className string) (string, bool, error) {
	if len(constants) == 0 {
		return "", false, nil
	}

	var buf bytes.Buffer

	err := valueSetTemplate.Execute(&buf, valueSetData{
		Notice:    Notice,
		Header:    header,
		ClassName: className,
		Constants: constants,
	})
	if err != nil {
		return "", false, errors.Wrapf(err, "executing value set template for %s", className)
	}

	return buf.String(), true, nil
}

// RenderValueSet renders a value set class from raw values. It returns false
// when no value has a name.
func RenderValueSet(values []string, header, className string) (string, bool, error) {
	constants, _ := ValueConstants(values)

	return RenderConstants(constants, header, className)
}
