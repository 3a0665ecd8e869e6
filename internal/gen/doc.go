// Package gen renders Apex source from metadata records.
//
// Generation uses text/template for deterministic output: the same input
// always produces byte-identical class text.
//
// Class shapes:
//   - Value set class: one String constant per picklist value
//   - Record type class: a memoized RecordTypeInfo accessor and an Id accessor per record type
//   - Record type test class: a non-null assertion per Id accessor
//   - Class metadata stamp: the companion .cls-meta.xml file
package gen
