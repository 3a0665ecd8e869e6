package metadata

import (
	"io/fs"
	"path/filepath"
	"strings"

	"sourcegen/internal/errors"
)

// skippedDirs are never descended into during discovery.
var skippedDirs = map[string]bool{
	"node_modules": true,
}

// Find returns the paths of all files of the given kind under root, in
// lexical walk order. Hidden directories and node_modules are skipped.
func Find(root string, kind Kind) ([]string, error) {
	suffix := kind.Suffix()
	if suffix == "" {
		return nil, errors.Newf("unknown metadata kind %s", kind)
	}

	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), ".") || skippedDirs[d.Name()]) {
				return filepath.SkipDir
			}

			return nil
		}

		// Files outside the expected directory are still returned so that
		// name parsing fails loudly on them.
		if strings.HasSuffix(d.Name(), suffix) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "finding %s files under %s", kind, root)
	}

	return paths, nil
}
