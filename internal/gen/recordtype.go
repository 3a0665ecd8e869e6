package gen

import (
	"bytes"

	"sourcegen/internal/errors"
	"sourcegen/internal/metadata"
	"sourcegen/internal/naming"
)

// TestClassSuffix is appended to the record types class name for its test class.
const TestClassSuffix = "Test"

// RecordTypeProperty is the accessor pair generated for one record type.
type RecordTypeProperty struct {
	ObjectName    string
	DeveloperName string
	// Property is the RecordTypeInfo accessor, e.g. CASE_SUPPORT.
	Property string
	// IDProperty is the Id accessor, e.g. CASE_SUPPORT_ID.
	IDProperty string
}

type recordTypesData struct {
	Notice        string
	ClassName     string
	TestClassName string
	Properties    []RecordTypeProperty
}

// RecordTypeProperties filters inactive records when activeOnly is set and
// builds one accessor pair per remaining record, in input order. A record
// without a developer name, or with one that is not a single identifier
// token, fails the whole call.
func RecordTypeProperties(records []metadata.RecordTypeRecord, activeOnly bool) ([]RecordTypeProperty, error) {
	props := make([]RecordTypeProperty, 0, len(records))

	for _, rt := range records {
		if activeOnly && !rt.Active {
			continue
		}

		if rt.DeveloperName == "" {
			return nil, errors.MissingFieldf("record type without full name on object %s", rt.ObjectName)
		}

		if !naming.IsIdentifier(rt.DeveloperName) {
			return nil, errors.InvalidNamef("record type %s: developer name %q is not a single identifier",
				rt.Source(), rt.DeveloperName)
		}

		property := naming.RecordTypeProperty(rt.ObjectName, rt.DeveloperName)
		props = append(props, RecordTypeProperty{
			ObjectName:    rt.ObjectName,
			DeveloperName: rt.DeveloperName,
			Property:      property,
			IDProperty:    naming.RecordTypeIDProperty(property),
		})
	}

	return props, nil
}

// TestClassName returns the test class name for a record types class.
func TestClassName(className string) string {
	return naming.BuildClassName(className, "", TestClassSuffix, naming.MaxClassNameLen)
}

// RenderRecordTypes renders the aggregate record types class.
func RenderRecordTypes(records []metadata.RecordTypeRecord, activeOnly bool, className string) (string, error) {
	props, err := RecordTypeProperties(records, activeOnly)
	if err != nil {
		return "", err
	}

	return RenderRecordTypeProperties(props, className)
}

// RenderRecordTypesTest renders the companion test class.
func RenderRecordTypesTest(records []metadata.RecordTypeRecord, activeOnly bool, className string) (string, error) {
	props, err := RecordTypeProperties(records, activeOnly)
	if err != nil {
		return "", err
	}

	return RenderRecordTypePropertiesTest(props, className)
}

// RenderRecordTypeProperties renders the record types class from prepared properties.
func RenderRecordTypeProperties(props []RecordTypeProperty, className string) (string, error) {
	var buf bytes.Buffer

	err := recordTypesTemplate.Execute(&buf, recordTypesData{
		Notice:     Notice,
		ClassName:  className,
		Properties: props,
	})
	if err != nil {
		return "", errors.Wrapf(err, "executing record types template for %s", className)
	}

	return buf.String(), nil
}

// RenderRecordTypePropertiesTest renders the test class from prepared properties.
func RenderRecordTypePropertiesTest(props []RecordTypeProperty, className string) (string, error) {
	var buf bytes.Buffer

	err := recordTypesTestTemplate.Execute(&buf, recordTypesData{
		Notice:        Notice,
		ClassName:     className,
		TestClassName: TestClassName(className),
		Properties:    props,
	})
	if err != nil {
		return "", errors.Wrapf(err, "executing record types test template for %s", className)
	}

	return buf.String(), nil
}
