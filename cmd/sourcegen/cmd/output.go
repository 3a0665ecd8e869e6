package cmd

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"sourcegen/internal/gen"
	"sourcegen/internal/generate"
)

// generate runs the selected pipelines. A dry run writes nothing and prints
// the manifest instead.
func (a *app) generate(cmd *cobra.Command, which generate.Pipeline, dryRun bool) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	var w gen.Writer = gen.FileWriter{}
	if dryRun {
		w = &gen.MemoryWriter{}
	}

	report, err := generate.Run(cmd.Context(), cfg, w, which)
	if err != nil {
		return err
	}

	printWarnings(cmd.ErrOrStderr(), report)

	if dryRun {
		report.Manifest.Sort()

		out, err := report.Manifest.Marshal()
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(out)

		return err
	}

	printSummary(cmd.OutOrStdout(), report)

	return nil
}

func printWarnings(w io.Writer, report *generate.Report) {
	if !report.Diagnostics.HasWarnings() {
		return
	}

	for _, d := range report.Diagnostics.Warnings {
		fmt.Fprintf(w, "%s %s\n", pterm.Yellow("warning:"), d.String())
	}
}

func printSummary(w io.Writer, report *generate.Report) {
	for _, entry := range report.Manifest.Generated {
		fmt.Fprintf(w, "  %s %s\n", pterm.LightGreen("✓"), entry.Path)
	}

	fmt.Fprintf(w, "Generated %s classes", pterm.Green(fmt.Sprintf("%d", len(report.Manifest.Generated))))

	if skipped := len(report.Manifest.Skipped); skipped > 0 {
		fmt.Fprintf(w, ", skipped %s empty value sets", pterm.Yellow(fmt.Sprintf("%d", skipped)))
	}

	fmt.Fprintln(w)
}
