//go:build ignore
// +build ignore

// Download fetches the UCD test files needed by the conformance tests:
//
//	go run download.go
//
// Files are taken from the Unicode version of the character data in use
// (see package ucd) and stored in sub-directory 'ucd'.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/npillmayer/uax15/internal/testdata"
	"github.com/npillmayer/uax15/ucd"
)

func main() {
	for _, name := range testdata.Files {
		url := fmt.Sprintf("https://www.unicode.org/Public/%s/ucd/%s", ucd.Version, name)
		if err := fetch(url, filepath.Join("ucd", name)); err != nil {
			fmt.Fprintf(os.Stderr, "download of %s failed: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("%s -> ucd/%s\n", url, name)
	}
}

func fetch(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, resp.Body); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
