package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// TestDir creates a temporary directory for testing, and returns a path to
// it with symlinks resolved. The directory is removed when the test finishes.
func TestDir(c Cleanuper) string {
	dir, err := os.MkdirTemp("", "bracken-test")
	if err != nil {
		panic(fmt.Sprintf("create temp dir: %v", err))
	}
	c.Cleanup(func() { os.RemoveAll(dir) })
	// The temporary directory may be a symlink on some platforms (like
	// /tmp on macOS). Resolve it so that tests comparing paths see the
	// same string the OS reports.
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		panic(fmt.Sprintf("resolve symlinks: %v", err))
	}
	return resolved
}

// Chdir changes into a directory, and restores the original working directory
// when the test finishes.
func Chdir(c Cleanuper, dir string) {
	old, err := os.Getwd()
	if err != nil {
		panic(fmt.Sprintf("get working directory: %v", err))
	}
	if err := os.Chdir(dir); err != nil {
		panic(fmt.Sprintf("chdir to %v: %v", dir, err))
	}
	c.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			panic(fmt.Sprintf("chdir back to %v: %v", old, err))
		}
	})
}

// InTempDir is like TestDir, but also changes into the directory. The
// original working directory is restored when the test finishes.
func InTempDir(c Cleanuper) string {
	dir := TestDir(c)
	Chdir(c, dir)
	return dir
}
