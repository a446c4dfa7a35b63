package fstree

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

var logger *log.Entry = log.WithFields(log.Fields{
	"package": "fstree",
})

// DefaultIgnoreDirs is the fixed set of directory names excluded from the
// walk: build artifacts, VCS metadata, dependency caches, virtualenvs and
// IDE folders. There is no mutation path; callers receive a copy.
var DefaultIgnoreDirs = map[string]bool{
	".git":         true,
	".venv":        true,
	"venv":         true,
	"node_modules": true,
	".terraform":   true,
	".idea":        true,
	".vscode":      true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
}

// File is a single regular file discovered beneath the scanned root.
type File struct {
	// RelPath is the slash-separated path relative to the root.
	RelPath string
	// Name is the bare filename.
	Name string
	// AbsPath is the full filesystem path, used for reads.
	AbsPath string
}

// Index is an immutable snapshot of the regular files beneath a root
// directory, taken once per run. All checkers evaluate against the same
// snapshot, so a concurrently modified filesystem cannot produce a
// mixed view.
type Index struct {
	root       string
	files      []File
	ignoreDirs map[string]bool
}

// NewIndex walks root once and records every regular file whose path
// contains no ignored segment. It is the only place a run can fail: a
// missing or non-directory root returns an *fs.PathError. Every other
// walk error just drops the affected entry.
func NewIndex(root string, ignoreDirs map[string]bool) (*Index, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to index %s: %w", root, &fs.PathError{
			Op:   "index",
			Path: root,
			Err:  fmt.Errorf("not a directory"),
		})
	}

	if ignoreDirs == nil {
		ignoreDirs = DefaultIgnoreDirs
	}

	idx := &Index{
		root:       root,
		ignoreDirs: ignoreDirs,
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			logger.WithError(walkErr).WithField("path", path).Debug("skipping unreadable entry")
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && ignoreDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		idx.files = append(idx.files, File{
			RelPath: rel,
			Name:    d.Name(),
			AbsPath: path,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	// Walk order is filesystem-dependent; sort so consumers iterate the
	// snapshot deterministically.
	sort.Slice(idx.files, func(i, j int) bool {
		return idx.files[i].RelPath < idx.files[j].RelPath
	})

	logger.WithFields(log.Fields{"root": root, "files": len(idx.files)}).Debug("indexed file tree")
	return idx, nil
}

// Root returns the indexed root directory.
func (idx *Index) Root() string {
	return idx.root
}

// Files returns the snapshot in relative-path order. Callers must not
// modify the returned slice.
func (idx *Index) Files() []File {
	return idx.files
}

// Len returns the number of indexed files.
func (idx *Index) Len() int {
	return len(idx.files)
}

// ReadText reads a file as best-effort UTF-8 text. Unreadable or binary
// content degrades to the empty string, never to an error: a malformed
// file anywhere in the tree must cost one finding its evidence, not
// abort the run.
func (idx *Index) ReadText(f File) string {
	data, err := os.ReadFile(f.AbsPath)
	if err != nil {
		logger.WithError(err).WithField("path", f.RelPath).Debug("treating unreadable file as empty")
		return ""
	}
	return strings.ToValidUTF8(string(data), "")
}
