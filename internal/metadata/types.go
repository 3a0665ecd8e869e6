package metadata

import (
	"encoding/xml"
	"slices"
)

// CustomField is the subset of a CustomField document the generator reads.
type CustomField struct {
	XMLName  xml.Name  `xml:"CustomField"`
	FullName string    `xml:"fullName"`
	Label    string    `xml:"label"`
	Type     string    `xml:"type"`
	ValueSet *ValueSet `xml:"valueSet"`
}

// ValueSet is a field's value set: either inline values or a reference to a
// global value set by name.
type ValueSet struct {
	ValueSetName string              `xml:"valueSetName"`
	Definition   *ValueSetDefinition `xml:"valueSetDefinition"`
}

// ValueSetDefinition holds inline picklist values.
type ValueSetDefinition struct {
	Sorted bool          `xml:"sorted"`
	Values []CustomValue `xml:"value"`
}

// CustomValue is one picklist entry. StandardValue entries share the shape.
type CustomValue struct {
	FullName string `xml:"fullName"`
	Label    string `xml:"label"`
	Default  bool   `xml:"default"`
}

// StandardValueSet is a standard value set document.
type StandardValueSet struct {
	XMLName xml.Name      `xml:"StandardValueSet"`
	Sorted  bool          `xml:"sorted"`
	Values  []CustomValue `xml:"standardValue"`
}

// GlobalValueSet is a global value set document.
type GlobalValueSet struct {
	XMLName     xml.Name      `xml:"GlobalValueSet"`
	MasterLabel string        `xml:"masterLabel"`
	Sorted      bool          `xml:"sorted"`
	Values      []CustomValue `xml:"customValue"`
}

// RecordType is a record type document.
type RecordType struct {
	XMLName  xml.Name `xml:"RecordType"`
	FullName string   `xml:"fullName"`
	Label    string   `xml:"label"`
	Active   bool     `xml:"active"`
}

// File is a decoded document together with the path it was read from.
type File[T any] struct {
	Path string
	Doc  T
}

// picklistTypes are the custom field types that carry a value set.
var picklistTypes = []string{"Picklist", "MultiselectPicklist"}

// HasValueSet reports whether the field is a picklist type.
func (f CustomField) HasValueSet() bool {
	return slices.Contains(picklistTypes, f.Type)
}

// InlineValues returns the field's inline values, or nil when the value set
// is missing or references a global value set.
func (f CustomField) InlineValues() []CustomValue {
	if f.ValueSet == nil || f.ValueSet.Definition == nil {
		return nil
	}

	return f.ValueSet.Definition.Values
}

// ValueSetRecord is one source value set: a custom field's inline values, a
// standard value set or a global value set. Values keep source order and are
// not deduplicated.
type ValueSetRecord struct {
	Kind Kind
	// OwnerName is the object name for custom fields, the set name otherwise.
	OwnerName string
	// MemberName is the field name; only set for custom fields.
	MemberName string
	Values     []string
}

// Source returns a readable reference to the record, e.g. "Account.Status__c".
func (r ValueSetRecord) Source() string {
	if r.MemberName == "" {
		return r.OwnerName
	}

	return r.OwnerName + "." + r.MemberName
}

// RecordTypeRecord is one record type definition.
type RecordTypeRecord struct {
	ObjectName    string
	DeveloperName string
	Active        bool
}

// Source returns a readable reference to the record, e.g. "Case.Support".
func (r RecordTypeRecord) Source() string {
	return r.ObjectName + "." + r.DeveloperName
}

// ValueNames returns the full names of values, dropping entries without one.
func ValueNames(values []CustomValue) []string {
	names := make([]string, 0, len(values))

	for _, v := range values {
		if v.FullName == "" {
			continue
		}

		names = append(names, v.FullName)
	}

	return names
}
