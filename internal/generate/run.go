package generate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sourcegen/internal/config"
	"sourcegen/internal/gen"
	"sourcegen/internal/project"
)

// Pipeline selects which generators a run executes.
type Pipeline int

const (
	PipelinePicklists Pipeline = 1 << iota
	PipelineRecordTypes

	PipelineAll = PipelinePicklists | PipelineRecordTypes
)

// Picklists runs the custom field, standard value set and global value set
// pipelines concurrently. Reports are merged in that fixed order.
func Picklists(ctx context.Context, src Source, g *Generator, opts PicklistOptions) (*Report, error) {
	var reports [3]*Report

	eg, ctx := errgroup.WithContext(ctx)

	if !opts.IgnoreCustomFields {
		eg.Go(func() error {
			files, err := src.CustomFields(ctx)
			if err != nil {
				return err
			}

			reports[0], err = g.CustomFields(files, opts.CustomFields)

			return err
		})
	}

	if !opts.IgnoreStandardValueSets {
		eg.Go(func() error {
			files, err := src.StandardValueSets(ctx)
			if err != nil {
				return err
			}

			reports[1], err = g.StandardValueSets(files, opts.StandardValueSets)

			return err
		})
	}

	if !opts.IgnoreGlobalValueSets {
		eg.Go(func() error {
			files, err := src.GlobalValueSets(ctx)
			if err != nil {
				return err
			}

			reports[2], err = g.GlobalValueSets(files, opts.GlobalValueSets)

			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	for _, r := range reports {
		report.Merge(r)
	}

	report.checkInclude(opts.include())

	return report, nil
}

// RecordTypes loads record types from src and runs the record type pipeline.
func RecordTypes(ctx context.Context, src Source, g *Generator, opts RecordTypeOptions) (*Report, error) {
	files, err := src.RecordTypes(ctx)
	if err != nil {
		return nil, err
	}

	report, err := g.RecordTypes(files, opts)
	if err != nil {
		return nil, err
	}

	report.checkInclude(opts.Include)

	return report, nil
}

// Run resolves the project from cfg and executes the selected pipelines,
// writing through w. The project must be a DX project.
func Run(ctx context.Context, cfg *config.Config, w gen.Writer, which Pipeline) (*Report, error) {
	proj, err := project.Load(cfg.ProjectDir)
	if err != nil {
		return nil, err
	}

	if err := proj.RequireDX(); err != nil {
		return nil, err
	}

	src := ProjectSource{Root: proj.Path}
	g := New(w)
	report := &Report{}

	if which&PipelinePicklists != 0 {
		opts, err := PicklistOptionsFromConfig(proj, cfg)
		if err != nil {
			return nil, err
		}

		r, err := Picklists(ctx, src, g, opts)
		if err != nil {
			return nil, err
		}

		report.Merge(r)
	}

	if which&PipelineRecordTypes != 0 {
		opts, err := RecordTypeOptionsFromConfig(proj, cfg)
		if err != nil {
			return nil, err
		}

		r, err := RecordTypes(ctx, src, g, opts)
		if err != nil {
			return nil, err
		}

		report.Merge(r)
	}

	return report, nil
}
