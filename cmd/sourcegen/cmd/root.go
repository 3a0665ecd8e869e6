// Package cmd implements the sourcegen command line.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sourcegen/internal/config"
	"sourcegen/internal/errors"
	"sourcegen/internal/logger"
)

// app carries state shared by all commands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string
	jsonLogs   bool
	verbose    bool
}

// NewRootCmd builds the command tree with a fresh configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "sourcegen",
		Short: "Generate Apex constant classes from Salesforce metadata",
		Long: `Generate Apex constant classes from Salesforce DX project metadata.

Value sets (picklist fields, standard value sets, global value sets) become
one class per set with a String constant per value. Record types become a
single class with a cached RecordTypeInfo and Id accessor per record type,
plus a test class.

Options are read from flags, SOURCEGEN_* environment variables, the file
given with --config, or the "sourceGen" section of the project's package.json.

Examples:
  sourcegen picklists                          # All value sets into the default package
  sourcegen picklists --picklist-infix ""      # Account_Status becomes AccountStatus
  sourcegen record-types --include-inactive    # Include inactive record types
  sourcegen check                              # Fail when generated classes are stale
  sourcegen watch                              # Regenerate on metadata changes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logger.Initialize(a.jsonLogs, a.verbose); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Cleanup()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "Config file (yaml, json or toml); default: package.json sourceGen section")
	flags.BoolVar(&a.jsonLogs, "json", false, "Log as JSON")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.String("project-dir", ".", "DX project root")
	flags.String("output-dir", "", "Output directory (default: <default package>/main/default/classes)")
	flags.String("source-api-version", "", "API version for class metadata (default: sfdx-project.json sourceApiVersion)")

	a.bind(root, "projectDir", "project-dir")
	a.bind(root, "outputDir", "output-dir")
	a.bind(root, "sourceApiVersion", "source-api-version")

	root.AddCommand(
		newPicklistsCmd(a),
		newRecordTypesCmd(a),
		newCheckCmd(a),
		newWatchCmd(a),
	)

	return root
}

// bind maps a flag onto a config key. Persistent flags are looked up first.
func (a *app) bind(cmd *cobra.Command, key, flag string) {
	f := cmd.PersistentFlags().Lookup(flag)
	if f == nil {
		f = cmd.Flags().Lookup(flag)
	}

	if err := a.v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", flag, err))
	}
}

// loadConfig merges the config file, or package.json when none is given,
// and returns the validated configuration.
func (a *app) loadConfig() (*config.Config, error) {
	if a.configFile != "" {
		if err := config.ReadFile(a.v, a.configFile); err != nil {
			return nil, err
		}
	} else if err := config.MergePackageJSON(a.v, a.v.GetString("projectDir")); err != nil {
		return nil, err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return nil, err
	}

	logger.Debugw("Configuration loaded", "projectDir", cfg.ProjectDir, "config", a.configFile)

	return cfg, nil
}

// PrintError writes err and its hints the way the CLI reports failures.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		PrintError(os.Stderr, err)

		return 1
	}

	return 0
}
