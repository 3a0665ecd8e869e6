package cmd

import (
	"github.com/spf13/cobra"

	"sourcegen/internal/generate"
	"sourcegen/internal/naming"
)

func newPicklistsCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "picklists",
		Short: "Generate constant classes for picklist fields and value sets",
		Long: `Generate one Apex class per value set with a String constant per value.

Sources:
  - Picklist and multi-select picklist custom fields (objects/*/fields)
  - Standard value sets (standardValueSets)
  - Global value sets (globalValueSets)

Class names are limited to 40 characters; the base name is truncated to
leave room for the configured prefix and suffix.

Examples:
  sourcegen picklists
  sourcegen picklists --ignore-standard-value-sets --ignore-global-value-sets
  sourcegen picklists --picklist-prefix PL_ --include Account
  sourcegen picklists --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, generate.PipelinePicklists, dryRun)
		},
	}

	flags := cmd.Flags()
	flags.Bool("ignore-picklists", false, "Skip custom field picklists")
	flags.Bool("ignore-standard-value-sets", false, "Skip standard value sets")
	flags.Bool("ignore-global-value-sets", false, "Skip global value sets")
	flags.String("picklist-prefix", "", "Class name prefix for custom field picklists")
	flags.String("picklist-suffix", "", "Class name suffix for custom field picklists")
	flags.String("picklist-infix", naming.DefaultInfix, "Separator between object and field names")
	flags.String("standard-value-set-prefix", "", "Class name prefix for standard value sets")
	flags.String("standard-value-set-suffix", "", "Class name suffix for standard value sets")
	flags.String("global-value-set-prefix", "", "Class name prefix for global value sets")
	flags.String("global-value-set-suffix", "", "Class name suffix for global value sets")
	flags.StringSlice("include", nil, "Only process these objects, Object.Field names or value sets")
	flags.BoolVar(&dryRun, "dry-run", false, "Print a YAML manifest instead of writing files")

	for key, flag := range map[string]string{
		"picklists.ignorePicklists":         "ignore-picklists",
		"picklists.ignoreStandardValueSets": "ignore-standard-value-sets",
		"picklists.ignoreGlobalValueSets":   "ignore-global-value-sets",
		"picklists.picklistPrefix":          "picklist-prefix",
		"picklists.picklistSuffix":          "picklist-suffix",
		"picklists.picklistInfix":           "picklist-infix",
		"picklists.standardValueSetPrefix":  "standard-value-set-prefix",
		"picklists.standardValueSetSuffix":  "standard-value-set-suffix",
		"picklists.globalValueSetPrefix":    "global-value-set-prefix",
		"picklists.globalValueSetSuffix":    "global-value-set-suffix",
		"picklists.include":                 "include",
	} {
		a.bind(cmd, key, flag)
	}

	return cmd
}
