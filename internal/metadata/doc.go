// Package metadata discovers and decodes Salesforce source-format metadata.
//
// It finds metadata files by kind under a project root, decodes the XML
// documents this generator needs (custom fields, standard and global value
// sets, record types), and derives object and value set names from file
// paths.
//
// Key types:
//   - Kind: the metadata category, with its directory and file suffix
//   - File: a decoded document together with the path it was read from
//   - ValueSetRecord, RecordTypeRecord: the records the generators consume
package metadata
