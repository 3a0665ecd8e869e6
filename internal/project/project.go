// Package project locates a Salesforce DX project and reads the settings the
// generator needs from its sfdx-project.json.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"sourcegen/internal/errors"
)

// ConfigFile is the DX project descriptor file name.
const ConfigFile = "sfdx-project.json"

// Config is the subset of sfdx-project.json the generator reads.
type Config struct {
	PackageDirectories []PackageDirectory `json:"packageDirectories"`
	SourceAPIVersion   string             `json:"sourceApiVersion"`
}

// PackageDirectory is one entry of packageDirectories.
type PackageDirectory struct {
	Path    string `json:"path"`
	Default bool   `json:"default"`
}

// Project is a project directory on disk.
type Project struct {
	Path string
}

// Load returns the project rooted at dir. An empty dir means the current
// working directory.
func Load(dir string) (*Project, error) {
	if dir == "" {
		dir = "."
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving project directory %s", dir)
	}

	return &Project{Path: abs}, nil
}

// Join joins path elements onto the project root.
func (p *Project) Join(elem ...string) string {
	return filepath.Join(append([]string{p.Path}, elem...)...)
}

// ConfigPath returns the location of sfdx-project.json.
func (p *Project) ConfigPath() string {
	return p.Join(ConfigFile)
}

// Exists reports whether the project directory exists.
func (p *Project) Exists() bool {
	return exists(p.Path)
}

// IsDX reports whether the directory is a DX project.
func (p *Project) IsDX() bool {
	return exists(p.ConfigPath())
}

// RequireDX fails with a configuration error unless the project directory
// exists and is a DX project.
func (p *Project) RequireDX() error {
	if !p.Exists() {
		return errors.WithHint(
			errors.Configf("project directory does not exist: %s", p.Path),
			"pass an existing directory with --project-dir",
		)
	}

	if !p.IsDX() {
		return errors.WithHint(
			errors.Configf("only DX projects are supported: %s", p.Path),
			"run from a directory containing "+ConfigFile+" or pass --project-dir",
		)
	}

	return nil
}

// Config reads and parses sfdx-project.json.
func (p *Project) Config() (*Config, error) {
	if err := p.RequireDX(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.ConfigPath())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read project config %s", p.ConfigPath())
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WithDetailf(
			errors.Configf("failed to parse project config: %s", p.ConfigPath()),
			"%v", err,
		)
	}

	return &cfg, nil
}

// SourceAPIVersion returns the configured sourceApiVersion.
func (p *Project) SourceAPIVersion() (string, error) {
	cfg, err := p.Config()
	if err != nil {
		return "", err
	}

	if cfg.SourceAPIVersion == "" {
		return "", errors.Configf("source API version not found: %s", p.ConfigPath())
	}

	return cfg.SourceAPIVersion, nil
}

// DefaultPackageDirectory returns the only package directory, or the one
// marked default when there are several.
func (p *Project) DefaultPackageDirectory() (string, error) {
	cfg, err := p.Config()
	if err != nil {
		return "", err
	}

	if len(cfg.PackageDirectories) == 1 && cfg.PackageDirectories[0].Path != "" {
		return cfg.PackageDirectories[0].Path, nil
	}

	for _, dir := range cfg.PackageDirectories {
		if dir.Default && dir.Path != "" {
			return dir.Path, nil
		}
	}

	return "", errors.Configf("no default package directory found: %s", p.ConfigPath())
}

// PackageDirectories returns the absolute paths of all package directories.
func (p *Project) PackageDirectories() ([]string, error) {
	cfg, err := p.Config()
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(cfg.PackageDirectories))
	for _, dir := range cfg.PackageDirectories {
		if dir.Path != "" {
			dirs = append(dirs, p.Join(dir.Path))
		}
	}

	return dirs, nil
}

// DefaultOutputDir returns <project>/<default package>/main/default/classes.
func (p *Project) DefaultOutputDir() (string, error) {
	pkgDir, err := p.DefaultPackageDirectory()
	if err != nil {
		return "", err
	}

	return p.Join(pkgDir, "main", "default", "classes"), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
