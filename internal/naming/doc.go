// Package naming turns metadata names and picklist values into Apex
// identifiers and class names.
//
// Key functions:
//   - Sanitize: normalizes an arbitrary value into a valid, non-reserved identifier
//   - ConstantName: the uppercased form used for generated constants
//   - BuildClassName: applies prefix/suffix under the 40 character class name limit
//   - CustomFieldBase, ValueSetBase, RecordTypeProperty: per-pipeline base names
package naming
