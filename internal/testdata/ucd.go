// Package testdata locates the UCD test files used by the conformance
// tests. The files are not part of the repository; run
//
//	go run download.go
//
// in this directory to fetch them for the Unicode version in use.
package testdata

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// NormalizationTest is the name of the UAX#15 conformance test file.
const NormalizationTest = "NormalizationTest.txt"

// Files lists the UCD files download.go fetches.
var Files = []string{NormalizationTest}

// Dir returns the directory holding downloaded UCD files.
func Dir() string {
	_, srcfile, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(srcfile), "ucd")
}

// UCDPath returns the path of a downloaded UCD file.
func UCDPath(file string) string {
	return filepath.Join(Dir(), file)
}

// Available checks if file has been downloaded. The error mentions how to
// fetch it otherwise.
func Available(file string) error {
	if _, err := os.Stat(UCDPath(file)); err != nil {
		return fmt.Errorf("%s not present, run 'go run download.go' in %s: %w", file, filepath.Dir(Dir()), err)
	}
	return nil
}
