package generate

import (
	"context"

	"sourcegen/internal/metadata"
)

// Source yields decoded metadata files in discovery order.
type Source interface {
	CustomFields(ctx context.Context) ([]metadata.File[metadata.CustomField], error)
	StandardValueSets(ctx context.Context) ([]metadata.File[metadata.StandardValueSet], error)
	GlobalValueSets(ctx context.Context) ([]metadata.File[metadata.GlobalValueSet], error)
	RecordTypes(ctx context.Context) ([]metadata.File[metadata.RecordType], error)
}

// ProjectSource discovers metadata files under a project root.
type ProjectSource struct {
	Root string
}

// CustomFields implements Source.
func (s ProjectSource) CustomFields(ctx context.Context) ([]metadata.File[metadata.CustomField], error) {
	return metadata.FindAndLoad[metadata.CustomField](ctx, s.Root, metadata.KindCustomField)
}

// StandardValueSets implements Source.
func (s ProjectSource) StandardValueSets(ctx context.Context) ([]metadata.File[metadata.StandardValueSet], error) {
	return metadata.FindAndLoad[metadata.StandardValueSet](ctx, s.Root, metadata.KindStandardValueSet)
}

// GlobalValueSets implements Source.
func (s ProjectSource) GlobalValueSets(ctx context.Context) ([]metadata.File[metadata.GlobalValueSet], error) {
	return metadata.FindAndLoad[metadata.GlobalValueSet](ctx, s.Root, metadata.KindGlobalValueSet)
}

// RecordTypes implements Source.
func (s ProjectSource) RecordTypes(ctx context.Context) ([]metadata.File[metadata.RecordType], error) {
	return metadata.FindAndLoad[metadata.RecordType](ctx, s.Root, metadata.KindRecordType)
}
