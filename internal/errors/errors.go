// Package errors provides error handling for sourcegen.
//
// It re-exports github.com/cockroachdb/errors so that every package wraps,
// marks and inspects errors the same way:
//
//	if err := writer.WriteFile(path, content); err != nil {
//	    return errors.Wrapf(err, "writing %s", path)
//	}
//
// Failures are classified with the sentinels below and checked with Is.
// Only content emptiness degrades to a skip; every classified error here
// stops the run.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
	Mark        = crdb.Mark
)

// User-facing hints
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	WithDetailf   = crdb.WithDetailf
	GetAllDetails = crdb.GetAllDetails
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Sentinel errors for the generator's failure classes.
var (
	// ErrConfig indicates an unsupported project layout or missing configuration.
	ErrConfig = New("configuration error")

	// ErrUnparseableName indicates an object or value set name could not be
	// derived from a metadata file path.
	ErrUnparseableName = New("unparseable metadata name")

	// ErrMissingField indicates a metadata record lacks a required field.
	ErrMissingField = New("missing required field")

	// ErrInvalidName indicates a record type developer name that is not a
	// single identifier token.
	ErrInvalidName = New("invalid developer name")
)

// Configf returns a new configuration error marked with ErrConfig.
func Configf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrConfig)
}

// WrapConfigf wraps err with context and marks it with ErrConfig.
func WrapConfigf(err error, format string, args ...interface{}) error {
	return Mark(Wrapf(err, format, args...), ErrConfig)
}

// UnparseableNamef returns a new error marked with ErrUnparseableName.
func UnparseableNamef(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrUnparseableName)
}

// MissingFieldf returns a new error marked with ErrMissingField.
func MissingFieldf(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrMissingField)
}

// InvalidNamef returns a new error marked with ErrInvalidName.
func InvalidNamef(format string, args ...interface{}) error {
	return Mark(Newf(format, args...), ErrInvalidName)
}

// IsFatal reports whether err belongs to one of the classified failures that
// abort a generation run.
func IsFatal(err error) bool {
	return err != nil && IsAny(err, ErrConfig, ErrUnparseableName, ErrMissingField, ErrInvalidName)
}
