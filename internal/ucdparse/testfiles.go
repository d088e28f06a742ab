package ucdparse

import (
	"os"
	"testing"
)

// TestFile is a UCD test file, opened for scanning data lines.
type TestFile struct {
	in *os.File
	sc *scanner
}

// OpenTestFile opens a UCD test file. If the file cannot be opened, the
// test t is skipped: the UCD test files are not part of the repository and
// have to be downloaded first (see package testdata).
func OpenTestFile(filename string, t testing.TB) *TestFile {
	t.Helper()
	f, err := os.Open(filename)
	if err != nil {
		t.Skipf("cannot load %s: %v", filename, err)
		return nil
	}
	tf := &TestFile{in: f}
	tf.sc, _ = New(f)
	return tf
}

// Scan advances to the next data line.
func (tf *TestFile) Scan() bool {
	return tf.sc.Next()
}

// Token returns the most recent data line.
func (tf *TestFile) Token() *Token {
	return tf.sc.Token
}

// Err returns the first error encountered while scanning.
func (tf *TestFile) Err() error {
	return tf.sc.LastError
}

// Close closes the underlying file.
func (tf *TestFile) Close() {
	tf.in.Close()
}
