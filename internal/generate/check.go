package generate

import (
	"bytes"
	"io/fs"
	"os"

	"sourcegen/internal/errors"
	"sourcegen/internal/gen"
)

// DriftReason says why a file on disk does not match a fresh run.
type DriftReason string

const (
	DriftMissing  DriftReason = "missing"
	DriftModified DriftReason = "modified"
)

// Drift is one generated file that is out of date on disk.
type Drift struct {
	Path   string
	Reason DriftReason
}

// Diff compares freshly generated files against what is on disk.
func Diff(files []gen.GeneratedFile) ([]Drift, error) {
	var drifts []Drift

	for _, f := range files {
		existing, err := os.ReadFile(f.Path)
		if errors.Is(err, fs.ErrNotExist) {
			drifts = append(drifts, Drift{Path: f.Path, Reason: DriftMissing})

			continue
		}

		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", f.Path)
		}

		if !bytes.Equal(existing, f.Content) {
			drifts = append(drifts, Drift{Path: f.Path, Reason: DriftModified})
		}
	}

	return drifts, nil
}
