// Package fileutil provides file and path helpers shared by the converter and
// the CLI.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sentinel errors for file utility operations.
var (
	ErrExtensionEmpty         = errors.New("extension cannot be empty")
	ErrExtensionPathTraversal = errors.New("extension contains path separator or null byte")
)

// MarkdownExtensions are the extensions picked up when walking a directory.
var MarkdownExtensions = []string{".md", ".markdown"}

// ReadText reads a text file as UTF-8. A UTF-8, UTF-16LE or UTF-16BE byte
// order mark selects the decoding and is removed; without one the content
// is taken as UTF-8, with invalid sequences replaced by U+FFFD.
func ReadText(path string) (string, error) {
	f, err := os.Open(path) // #nosec G304 -- path is user-provided input
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(f, decoder))
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return string(data), nil
}

// WriteFile writes data to path through a temp file in the same directory
// and a rename, so readers never observe a partially written file.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// WriteTempFile creates a temporary file with the given content and extension.
// Returns the file path and a cleanup function to remove the file.
func WriteTempFile(content, extension string) (path string, cleanup func(), err error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	tmpFile, err := os.CreateTemp("", "md2kb-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = tmpFile.Name()
	cleanup = func() { _ = os.Remove(path) }

	if _, err := tmpFile.WriteString(content); err != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}
	return path, cleanup, nil
}

// ValidateExtension checks that the extension is safe for use in temp file names.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionPathTraversal
	}
	return nil
}

// ReplaceExt replaces the extension of path with ext, or appends ext when
// path has none. "notes.md" with ".html" gives "notes.html".
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// IsMarkdown reports whether path has one of MarkdownExtensions, ignoring
// case.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, md := range MarkdownExtensions {
		if ext == md {
			return true
		}
	}
	return false
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a
// name: it contains a path separator.
//
//	"knowledge-base"  -> false
//	"./custom.css"    -> true
//	`C:\styles\x.css` -> true
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// IsCSS returns true if the string looks like raw CSS rather than a name or
// path.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}
