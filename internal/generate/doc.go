// Package generate runs the generation pipelines.
//
// Each pipeline takes decoded metadata, derives class and constant names,
// renders Apex classes and writes each one next to its metadata stamp. The
// three value set pipelines are independent and run concurrently; the record
// type pipeline produces a single aggregate class and an optional test class.
//
// A Report carries what was written, what was skipped and any diagnostics.
// Errors from naming or rendering are fatal for the pipeline that raised them.
package generate
