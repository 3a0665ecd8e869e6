// Package config loads generator options with Viper.
//
// Precedence, highest first: command-line flags, SOURCEGEN_* environment
// variables, the --config file (or the "sourceGen" section of the project's
// package.json), defaults.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"sourcegen/internal/errors"
	"sourcegen/internal/naming"
)

// EnvPrefix prefixes environment variable overrides, e.g.
// SOURCEGEN_PICKLISTS_PICKLISTPREFIX.
const EnvPrefix = "SOURCEGEN"

// PackageJSONSection is the package.json key holding generator options.
const PackageJSONSection = "sourceGen"

// Config is the full option set.
type Config struct {
	// ProjectDir is the DX project root. Default: current working directory.
	ProjectDir string `mapstructure:"projectDir"`
	// OutputDir overrides the default package classes directory.
	OutputDir string `mapstructure:"outputDir"`
	// SourceAPIVersion overrides sourceApiVersion from sfdx-project.json.
	SourceAPIVersion string `mapstructure:"sourceApiVersion"`

	Picklists   Picklists   `mapstructure:"picklists"`
	RecordTypes RecordTypes `mapstructure:"recordTypes"`
}

// Output holds per-pipeline overrides of the shared output settings.
type Output struct {
	OutputDir        string `mapstructure:"outputDir"`
	SourceAPIVersion string `mapstructure:"sourceApiVersion"`
}

// Picklists configures the value set pipelines.
type Picklists struct {
	Output `mapstructure:",squash"`

	IgnorePicklists         bool `mapstructure:"ignorePicklists"`
	IgnoreStandardValueSets bool `mapstructure:"ignoreStandardValueSets"`
	IgnoreGlobalValueSets   bool `mapstructure:"ignoreGlobalValueSets"`

	PicklistPrefix string `mapstructure:"picklistPrefix"`
	PicklistSuffix string `mapstructure:"picklistSuffix"`
	// PicklistInfix separates object and field names. Default: "_".
	PicklistInfix string `mapstructure:"picklistInfix"`

	StandardValueSetPrefix string `mapstructure:"standardValueSetPrefix"`
	StandardValueSetSuffix string `mapstructure:"standardValueSetSuffix"`

	GlobalValueSetPrefix string `mapstructure:"globalValueSetPrefix"`
	GlobalValueSetSuffix string `mapstructure:"globalValueSetSuffix"`

	// Include restricts processing to these objects, fields ("Object.Field")
	// or value set names. Empty means everything.
	Include []string `mapstructure:"include"`
}

// RecordTypes configures the record type pipeline.
type RecordTypes struct {
	Output `mapstructure:",squash"`

	// OutputClassName is the aggregate class name. Default: "RecordTypes".
	OutputClassName string   `mapstructure:"outputClassName"`
	IncludeInactive bool     `mapstructure:"includeInactive"`
	IgnoreTestClass bool     `mapstructure:"ignoreTestClass"`
	Include         []string `mapstructure:"include"`
}

// NewViper returns a Viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	return v
}

// SetDefaults configures default values for all options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("projectDir", ".")
	v.SetDefault("outputDir", "")
	v.SetDefault("sourceApiVersion", "")

	v.SetDefault("picklists.outputDir", "")
	v.SetDefault("picklists.sourceApiVersion", "")
	v.SetDefault("picklists.ignorePicklists", false)
	v.SetDefault("picklists.ignoreStandardValueSets", false)
	v.SetDefault("picklists.ignoreGlobalValueSets", false)
	v.SetDefault("picklists.picklistPrefix", "")
	v.SetDefault("picklists.picklistSuffix", "")
	v.SetDefault("picklists.picklistInfix", naming.DefaultInfix)
	v.SetDefault("picklists.standardValueSetPrefix", "")
	v.SetDefault("picklists.standardValueSetSuffix", "")
	v.SetDefault("picklists.globalValueSetPrefix", "")
	v.SetDefault("picklists.globalValueSetSuffix", "")
	v.SetDefault("picklists.include", []string{})

	v.SetDefault("recordTypes.outputDir", "")
	v.SetDefault("recordTypes.sourceApiVersion", "")
	v.SetDefault("recordTypes.outputClassName", "RecordTypes")
	v.SetDefault("recordTypes.includeInactive", false)
	v.SetDefault("recordTypes.ignoreTestClass", false)
	v.SetDefault("recordTypes.include", []string{})
}

// ReadFile merges an explicit config file. The format follows the extension
// (yaml, json, toml).
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return errors.WrapConfigf(err, "failed to read config file %s", path)
	}

	return nil
}

// MergePackageJSON merges the "sourceGen" section of <projectDir>/package.json
// when the file exists and has one.
func MergePackageJSON(v *viper.Viper, projectDir string) error {
	path := filepath.Join(projectDir, "package.json")
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	pkg := viper.New()
	pkg.SetConfigFile(path)
	pkg.SetConfigType("json")

	if err := pkg.ReadInConfig(); err != nil {
		return errors.WrapConfigf(err, "failed to parse %s", path)
	}

	if !pkg.IsSet(PackageJSONSection) {
		return nil
	}

	if err := v.MergeConfigMap(pkg.GetStringMap(PackageJSONSection)); err != nil {
		return errors.Wrapf(err, "merging %s section of %s", PackageJSONSection, path)
	}

	return nil
}

// Load unmarshals and validates the configuration.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapConfigf(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks options that would otherwise produce invalid classes.
func (c *Config) Validate() error {
	name := c.RecordTypes.OutputClassName
	if !naming.IsIdentifier(name) {
		return errors.Configf("record types output class name %q is not a valid class name", name)
	}

	if len(name) > naming.MaxClassNameLen {
		return errors.Configf("record types output class name %q exceeds %d characters", name, naming.MaxClassNameLen)
	}

	return nil
}

// PicklistsOutput resolves the output settings for the value set pipelines.
func (c *Config) PicklistsOutput() Output {
	return c.resolve(c.Picklists.Output)
}

// RecordTypesOutput resolves the output settings for the record type pipeline.
func (c *Config) RecordTypesOutput() Output {
	return c.resolve(c.RecordTypes.Output)
}

func (c *Config) resolve(section Output) Output {
	out := Output{OutputDir: c.OutputDir, SourceAPIVersion: c.SourceAPIVersion}

	if section.OutputDir != "" {
		out.OutputDir = section.OutputDir
	}

	if section.SourceAPIVersion != "" {
		out.SourceAPIVersion = section.SourceAPIVersion
	}

	return out
}
