package generate

import (
	"path/filepath"

	"sourcegen/internal/config"
	"sourcegen/internal/project"
)

// Target is where a pipeline writes and which API version it stamps.
type Target struct {
	OutputDir  string
	APIVersion string
}

// ValueSetOptions configures one value set pipeline.
type ValueSetOptions struct {
	Target
	Prefix string
	Suffix string
	// Infix is only used for custom fields.
	Infix string
	// Include restricts processing; empty means everything.
	Include []string
}

// PicklistOptions configures the three value set pipelines.
type PicklistOptions struct {
	IgnoreCustomFields      bool
	IgnoreStandardValueSets bool
	IgnoreGlobalValueSets   bool

	CustomFields      ValueSetOptions
	StandardValueSets ValueSetOptions
	GlobalValueSets   ValueSetOptions
}

// include returns the include entries of every enabled pipeline.
func (o PicklistOptions) include() []string {
	var entries []string

	if !o.IgnoreCustomFields {
		entries = append(entries, o.CustomFields.Include...)
	}

	if !o.IgnoreStandardValueSets {
		entries = append(entries, o.StandardValueSets.Include...)
	}

	if !o.IgnoreGlobalValueSets {
		entries = append(entries, o.GlobalValueSets.Include...)
	}

	return entries
}

// RecordTypeOptions configures the record type pipeline.
type RecordTypeOptions struct {
	Target
	ClassName       string
	IncludeInactive bool
	IgnoreTestClass bool
	Include         []string
}

// ResolveTarget fills output directory and API version defaults from the
// project. Relative output directories are taken relative to the project.
func ResolveTarget(proj *project.Project, out config.Output) (Target, error) {
	target := Target{OutputDir: out.OutputDir, APIVersion: out.SourceAPIVersion}

	if target.OutputDir == "" {
		dir, err := proj.DefaultOutputDir()
		if err != nil {
			return Target{}, err
		}

		target.OutputDir = dir
	} else if !filepath.IsAbs(target.OutputDir) {
		target.OutputDir = proj.Join(target.OutputDir)
	}

	if target.APIVersion == "" {
		version, err := proj.SourceAPIVersion()
		if err != nil {
			return Target{}, err
		}

		target.APIVersion = version
	}

	return target, nil
}

// PicklistOptionsFromConfig builds value set options, resolving defaults
// from the project.
func PicklistOptionsFromConfig(proj *project.Project, cfg *config.Config) (PicklistOptions, error) {
	target, err := ResolveTarget(proj, cfg.PicklistsOutput())
	if err != nil {
		return PicklistOptions{}, err
	}

	p := cfg.Picklists

	return PicklistOptions{
		IgnoreCustomFields:      p.IgnorePicklists,
		IgnoreStandardValueSets: p.IgnoreStandardValueSets,
		IgnoreGlobalValueSets:   p.IgnoreGlobalValueSets,
		CustomFields: ValueSetOptions{
			Target:  target,
			Prefix:  p.PicklistPrefix,
			Suffix:  p.PicklistSuffix,
			Infix:   p.PicklistInfix,
			Include: p.Include,
		},
		StandardValueSets: ValueSetOptions{
			Target:  target,
			Prefix:  p.StandardValueSetPrefix,
			Suffix:  p.StandardValueSetSuffix,
			Include: p.Include,
		},
		GlobalValueSets: ValueSetOptions{
			Target:  target,
			Prefix:  p.GlobalValueSetPrefix,
			Suffix:  p.GlobalValueSetSuffix,
			Include: p.Include,
		},
	}, nil
}

// RecordTypeOptionsFromConfig builds record type options, resolving defaults
// from the project.
func RecordTypeOptionsFromConfig(proj *project.Project, cfg *config.Config) (RecordTypeOptions, error) {
	target, err := ResolveTarget(proj, cfg.RecordTypesOutput())
	if err != nil {
		return RecordTypeOptions{}, err
	}

	r := cfg.RecordTypes

	return RecordTypeOptions{
		Target:          target,
		ClassName:       r.OutputClassName,
		IncludeInactive: r.IncludeInactive,
		IgnoreTestClass: r.IgnoreTestClass,
		Include:         r.Include,
	}, nil
}
