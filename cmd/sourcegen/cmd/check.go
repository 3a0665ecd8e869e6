package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"sourcegen/internal/errors"
	"sourcegen/internal/gen"
	"sourcegen/internal/generate"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that generated classes are up to date",
		Long: `Regenerate every class in memory and compare it with the files on disk.
Nothing is written.

Exit codes:
  0 - Generated classes are up to date
  1 - Classes are missing or differ, or generation failed

Examples:
  sourcegen check
  sourcegen check --config sourcegen.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			report, err := generate.Run(cmd.Context(), cfg, &gen.MemoryWriter{}, generate.PipelineAll)
			if err != nil {
				return err
			}

			drifts, err := generate.Diff(report.Files)
			if err != nil {
				return err
			}

			printWarnings(cmd.ErrOrStderr(), report)

			out := cmd.OutOrStdout()

			if len(drifts) == 0 {
				fmt.Fprintf(out, "%s Generated classes are up to date (%d files)\n",
					pterm.Green("✓"), len(report.Files))

				return nil
			}

			fmt.Fprintf(out, "%s Generated classes are out of date:\n", pterm.Red("✗"))

			for _, d := range drifts {
				fmt.Fprintf(out, "  - %s %s\n", d.Path, pterm.Gray("("+string(d.Reason)+")"))
			}

			return errors.WithHint(
				errors.Newf("%d generated files are out of date", len(drifts)),
				"run 'sourcegen picklists' and 'sourcegen record-types' to update",
			)
		},
	}
}
