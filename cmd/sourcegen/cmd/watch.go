package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sourcegen/internal/errors"
	"sourcegen/internal/gen"
	"sourcegen/internal/generate"
	"sourcegen/internal/logger"
	"sourcegen/internal/project"
	"sourcegen/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate classes when metadata changes",
		Long: `Run every pipeline once, then watch the project's package directories and
regenerate after field, value set or record type files change. Bursts of
changes are coalesced.

Examples:
  sourcegen watch
  sourcegen watch --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			proj, err := project.Load(cfg.ProjectDir)
			if err != nil {
				return err
			}

			dirs, err := proj.PackageDirectories()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			run := func(ctx context.Context) error {
				report, err := generate.Run(ctx, cfg, gen.FileWriter{}, generate.PipelineAll)
				if err != nil {
					return err
				}

				printWarnings(cmd.ErrOrStderr(), report)
				printSummary(cmd.OutOrStdout(), report)

				return nil
			}

			if err := run(ctx); err != nil {
				return err
			}

			w, err := watch.New(dirs, keepGoing(run, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			logger.Infow("Watching for metadata changes", "dirs", dirs)

			return w.Run(ctx)
		},
	}
}

// keepGoing reports classified failures, such as an invalid metadata file,
// to w and lets the watch continue. Other failures are returned.
func keepGoing(run watch.Callback, w io.Writer) watch.Callback {
	return func(ctx context.Context) error {
		err := run(ctx)
		if errors.IsFatal(err) {
			PrintError(w, err)

			return nil
		}

		return err
	}
}
