package cmd

import (
	"github.com/spf13/cobra"

	"sourcegen/internal/generate"
)

func newRecordTypesCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "record-types",
		Short: "Generate the record types accessor class",
		Long: `Generate a single Apex class exposing every record type as a cached
RecordTypeInfo property plus an Id property, and a test class touching each Id.

Only active record types are included unless --include-inactive is set.

Examples:
  sourcegen record-types
  sourcegen record-types --output-class-name RecordTypeIds --ignore-test-class
  sourcegen record-types --include Case --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, generate.PipelineRecordTypes, dryRun)
		},
	}

	flags := cmd.Flags()
	flags.String("output-class-name", "RecordTypes", "Name of the generated class")
	flags.Bool("include-inactive", false, "Include inactive record types")
	flags.Bool("ignore-test-class", false, "Do not generate the test class")
	flags.StringSlice("include", nil, "Only process record types of these objects")
	flags.BoolVar(&dryRun, "dry-run", false, "Print a YAML manifest instead of writing files")

	a.bind(cmd, "recordTypes.outputClassName", "output-class-name")
	a.bind(cmd, "recordTypes.includeInactive", "include-inactive")
	a.bind(cmd, "recordTypes.ignoreTestClass", "ignore-test-class")
	a.bind(cmd, "recordTypes.include", "include")

	return cmd
}
