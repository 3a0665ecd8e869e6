package generate

import (
	"fmt"

	"sourcegen/internal/diagnostic"
	"sourcegen/internal/errors"
	"sourcegen/internal/gen"
	"sourcegen/internal/logger"
	"sourcegen/internal/metadata"
	"sourcegen/internal/naming"
)

// Report is the outcome of one pipeline run.
type Report struct {
	Manifest    gen.Manifest
	Diagnostics diagnostic.Diagnostics
	Files       []gen.GeneratedFile

	// seen holds every name offered to the include filter.
	seen []string
	// matched holds the lowercased include entries that matched a name.
	matched map[string]bool
}

// Merge appends the contents of other.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}

	r.Manifest.Merge(other.Manifest)
	r.Diagnostics.Merge(other.Diagnostics)
	r.Files = append(r.Files, other.Files...)
	r.seen = append(r.seen, other.seen...)

	for entry := range other.matched {
		r.markMatched(entry)
	}
}

// Generator turns decoded metadata into Apex classes written through a Writer.
type Generator struct {
	writer gen.Writer
}

// New returns a Generator writing through w.
func New(w gen.Writer) *Generator {
	return &Generator{writer: w}
}

// CustomFields generates one class per picklist field with inline values.
// Fields of other types are ignored. A field whose object name cannot be
// derived from its path fails the run.
func (g *Generator) CustomFields(files []metadata.File[metadata.CustomField], opts ValueSetOptions) (*Report, error) {
	logger.Infow("Building constant classes from custom fields", "count", len(files))

	report := &Report{}
	checkBudget(report, metadata.KindCustomField, opts)

	for _, f := range files {
		field := f.Doc
		if field.FullName == "" || !field.HasValueSet() {
			continue
		}

		objectName, ok := metadata.ObjectNameFromPath(f.Path)
		if !ok {
			return nil, errors.UnparseableNamef("couldn't parse object name from path %s", f.Path)
		}

		if !report.allow(opts.Include, objectName, objectName+"."+field.FullName) {
			continue
		}

		record := metadata.ValueSetRecord{
			Kind:       metadata.KindCustomField,
			OwnerName:  objectName,
			MemberName: field.FullName,
			Values:     metadata.ValueNames(field.InlineValues()),
		}

		if field.ValueSet != nil && field.ValueSet.ValueSetName != "" {
			report.Diagnostics.AddInfo(diagnostic.CodeGlobalReference,
				fmt.Sprintf("Values come from global value set %s", field.ValueSet.ValueSetName),
				record.Source(), "")
		}

		base := naming.CustomFieldBase(objectName, opts.Infix, field.FullName)
		if err := g.emitValueSet(report, record, base, opts); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// StandardValueSets generates one class per standard value set.
func (g *Generator) StandardValueSets(files []metadata.File[metadata.StandardValueSet], opts ValueSetOptions) (*Report, error) {
	logger.Infow("Building constant classes from standard value sets", "count", len(files))

	report := &Report{}
	checkBudget(report, metadata.KindStandardValueSet, opts)

	for _, f := range files {
		name, ok := metadata.ValueSetNameFromPath(f.Path, metadata.KindStandardValueSet)
		if !ok {
			return nil, errors.UnparseableNamef("couldn't parse standard value set name from path %s", f.Path)
		}

		if !report.allow(opts.Include, name) {
			continue
		}

		record := metadata.ValueSetRecord{
			Kind:      metadata.KindStandardValueSet,
			OwnerName: name,
			Values:    metadata.ValueNames(f.Doc.Values),
		}

		if err := g.emitValueSet(report, record, naming.ValueSetBase(name), opts); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// GlobalValueSets generates one class per global value set.
func (g *Generator) GlobalValueSets(files []metadata.File[metadata.GlobalValueSet], opts ValueSetOptions) (*Report, error) {
	logger.Infow("Building constant classes from global value sets", "count", len(files))

	report := &Report{}
	checkBudget(report, metadata.KindGlobalValueSet, opts)

	for _, f := range files {
		name, ok := metadata.ValueSetNameFromPath(f.Path, metadata.KindGlobalValueSet)
		if !ok {
			return nil, errors.UnparseableNamef("couldn't parse global value set name from path %s", f.Path)
		}

		if !report.allow(opts.Include, name) {
			continue
		}

		record := metadata.ValueSetRecord{
			Kind:      metadata.KindGlobalValueSet,
			OwnerName: name,
			Values:    metadata.ValueNames(f.Doc.Values),
		}

		if err := g.emitValueSet(report, record, name, opts); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func checkBudget(report *Report, kind metadata.Kind, opts ValueSetOptions) {
	if !naming.Overflows(opts.Prefix, opts.Suffix, naming.MaxClassNameLen) {
		return
	}

	msg := fmt.Sprintf("prefix %q and suffix %q leave no room for a %s name", opts.Prefix, opts.Suffix, kind.Describe())
	logger.Warnw("Class name budget exhausted", "kind", kind.String(), "prefix", opts.Prefix, "suffix", opts.Suffix)
	report.Diagnostics.AddWarning(diagnostic.CodeNameBudget, msg, kind.String(), "")
}

// emitValueSet renders one value set class and writes it with its metadata
// stamp. A set without values is skipped.
func (g *Generator) emitValueSet(report *Report, record metadata.ValueSetRecord, base string, opts ValueSetOptions) error {
	className := naming.BuildClassName(base, opts.Prefix, opts.Suffix, naming.MaxClassNameLen)
	source := record.Source()

	if len([]rune(base)) > naming.Budget(opts.Prefix, opts.Suffix, naming.MaxClassNameLen) {
		report.Diagnostics.AddInfo(diagnostic.CodeTruncatedName,
			fmt.Sprintf("Class name base %s truncated", base), source, className)
	}

	constants, dups := gen.ValueConstants(record.Values)
	for _, dup := range dups {
		logger.Warnw("Duplicate constant dropped",
			"source", source, "constant", dup.Name, "kept", dup.Kept, "dropped", dup.Dropped)
		report.Diagnostics.AddWarning(diagnostic.CodeDuplicateConstant,
			fmt.Sprintf("%q and %q both map to %s; keeping %q", dup.Kept, dup.Dropped, dup.Name, dup.Kept),
			source, className)
	}

	header := fmt.Sprintf("%s %s.", source, record.Kind.Describe())

	body, ok, err := gen.RenderConstants(constants, header, className)
	if err != nil {
		return err
	}

	if !ok {
		logger.Infow("No values, skipping: "+source, "kind", record.Kind.String())
		report.Diagnostics.AddInfo(diagnostic.CodeEmptyValueSet, "No values, skipping", source, className)
		report.Manifest.Skipped = append(report.Manifest.Skipped, source)

		return nil
	}

	class := gen.GeneratedClass{ClassName: className, Body: body, APIVersion: opts.APIVersion}

	files, err := g.write(class, opts.OutputDir)
	if err != nil {
		return err
	}

	report.Files = append(report.Files, files...)
	report.Manifest.Generated = append(report.Manifest.Generated, gen.ManifestEntry{
		Kind:      record.Kind.String(),
		Source:    source,
		Class:     className,
		Path:      files[0].Path,
		Constants: len(constants),
	})

	return nil
}

// RecordTypes generates the aggregate record types class and, unless
// disabled, its test class. Both are rendered before anything is written, so
// an invalid record leaves the output directory untouched.
func (g *Generator) RecordTypes(files []metadata.File[metadata.RecordType], opts RecordTypeOptions) (*Report, error) {
	logger.Infow("Building record types class", "count", len(files), "class", opts.ClassName)

	report := &Report{}
	activeOnly := !opts.IncludeInactive
	records := make([]metadata.RecordTypeRecord, 0, len(files))

	for _, f := range files {
		if activeOnly && !f.Doc.Active {
			continue
		}

		objectName, ok := metadata.ObjectNameFromPath(f.Path)
		if !ok {
			return nil, errors.UnparseableNamef("couldn't parse object name from path %s", f.Path)
		}

		if !report.allow(opts.Include, objectName, objectName+"."+f.Doc.FullName) {
			continue
		}

		records = append(records, metadata.RecordTypeRecord{
			ObjectName:    objectName,
			DeveloperName: f.Doc.FullName,
			Active:        f.Doc.Active,
		})
	}

	props, err := gen.RecordTypeProperties(records, activeOnly)
	if err != nil {
		return nil, err
	}

	classes := make([]gen.GeneratedClass, 0, 2)

	body, err := gen.RenderRecordTypeProperties(props, opts.ClassName)
	if err != nil {
		return nil, err
	}

	classes = append(classes, gen.GeneratedClass{ClassName: opts.ClassName, Body: body, APIVersion: opts.APIVersion})

	if !opts.IgnoreTestClass {
		testBody, err := gen.RenderRecordTypePropertiesTest(props, opts.ClassName)
		if err != nil {
			return nil, err
		}

		classes = append(classes, gen.GeneratedClass{
			ClassName:  gen.TestClassName(opts.ClassName),
			Body:       testBody,
			APIVersion: opts.APIVersion,
		})
	}

	for _, class := range classes {
		written, err := g.write(class, opts.OutputDir)
		if err != nil {
			return nil, err
		}

		logger.Infow("Wrote record types class", "path", written[0].Path, "recordTypes", len(props))

		report.Files = append(report.Files, written...)
		report.Manifest.Generated = append(report.Manifest.Generated, gen.ManifestEntry{
			Kind:      metadata.KindRecordType.String(),
			Source:    class.ClassName,
			Class:     class.ClassName,
			Path:      written[0].Path,
			Constants: len(props),
		})
	}

	return report, nil
}

func (g *Generator) write(class gen.GeneratedClass, outputDir string) ([]gen.GeneratedFile, error) {
	files, err := class.Files(outputDir)
	if err != nil {
		return nil, err
	}

	if err := gen.WriteFiles(g.writer, files); err != nil {
		return nil, err
	}

	logger.Debugw("Wrote class", "class", class.ClassName, "dir", outputDir)

	return files, nil
}
