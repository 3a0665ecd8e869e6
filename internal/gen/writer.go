package gen

import (
	"os"
	"path/filepath"
	"sync"

	"sourcegen/internal/errors"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer accepts generated files.
type Writer interface {
	WriteFile(path string, content []byte) error
}

// FileWriter writes to disk, creating parent directories as needed.
type FileWriter struct{}

// WriteFile implements Writer.
func (FileWriter) WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return errors.Wrapf(err, "creating output directory for %s", path)
	}

	if err := os.WriteFile(path, content, filePerm); err != nil {
		return errors.Wrapf(err, "writing file %s", path)
	}

	return nil
}

// MemoryWriter keeps written files in memory, in write order. It is safe for
// concurrent use.
type MemoryWriter struct {
	mu    sync.Mutex
	files []GeneratedFile
}

// WriteFile implements Writer. A second write to the same path replaces the
// first in place.
func (w *MemoryWriter) WriteFile(path string, content []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	data := append([]byte(nil), content...)

	for i := range w.files {
		if w.files[i].Path == path {
			w.files[i].Content = data

			return nil
		}
	}

	w.files = append(w.files, GeneratedFile{Path: path, Content: data})

	return nil
}

// Files returns a copy of the written files.
func (w *MemoryWriter) Files() []GeneratedFile {
	w.mu.Lock()
	defer w.mu.Unlock()

	return append([]GeneratedFile(nil), w.files...)
}

// Get returns the content written to path.
func (w *MemoryWriter) Get(path string) ([]byte, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, f := range w.files {
		if f.Path == path {
			return f.Content, true
		}
	}

	return nil, false
}

// WriteFiles writes all files through w, stopping at the first failure.
func WriteFiles(w Writer, files []GeneratedFile) error {
	for _, file := range files {
		if err := w.WriteFile(file.Path, file.Content); err != nil {
			return err
		}
	}

	return nil
}
