package metadata

import (
	"context"
	"encoding/xml"
	"os"

	"golang.org/x/sync/errgroup"

	"sourcegen/internal/errors"
)

// DefaultReadConcurrency bounds the number of files read at once.
const DefaultReadConcurrency = 8

// Decode parses a metadata XML document.
func Decode[T any](data []byte) (T, error) {
	var doc T

	if err := xml.Unmarshal(data, &doc); err != nil {
		return doc, errors.Wrap(err, "failed to parse metadata XML")
	}

	return doc, nil
}

// ReadFile reads and parses the metadata XML document at path.
func ReadFile[T any](path string) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero T

		return zero, errors.Wrapf(err, "failed to read metadata file %s", path)
	}

	doc, err := Decode[T](data)
	if err != nil {
		return doc, errors.Wrapf(err, "%s", path)
	}

	return doc, nil
}

// Load reads every path concurrently. The result keeps the order of paths
// regardless of completion order. The first failure cancels the rest.
func Load[T any](ctx context.Context, paths []string, concurrency int) ([]File[T], error) {
	if concurrency <= 0 {
		concurrency = DefaultReadConcurrency
	}

	files := make([]File[T], len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := ReadFile[T](path)
			if err != nil {
				return err
			}

			files[i] = File[T]{Path: path, Doc: doc}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return files, nil
}

// FindAndLoad discovers files of the given kind under root and loads them.
func FindAndLoad[T any](ctx context.Context, root string, kind Kind) ([]File[T], error) {
	paths, err := Find(root, kind)
	if err != nil {
		return nil, err
	}

	return Load[T](ctx, paths, DefaultReadConcurrency)
}
