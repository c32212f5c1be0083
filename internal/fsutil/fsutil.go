// Package fsutil holds the small filesystem helpers shared by the pipeline.
package fsutil

import (
	"os"
	"path/filepath"
)

// EnsureDir creates path and any missing parents. An existing directory is
// not an error.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Exists reports whether anything is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// BaseNameNoExt returns the last path element without its extension.
func BaseNameNoExt(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// OutputDir maps an input file to its job directory, outRoot/<basename>,
// as an absolute path. Inputs sharing a basename map to the same directory.
func OutputDir(inputPath, outRoot string) string {
	dir := filepath.Join(outRoot, BaseNameNoExt(inputPath))
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return filepath.Clean(dir)
}
