package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeAsset creates base/dir/file with content.
func writeAsset(t *testing.T, base, dir, file, content string) {
	t.Helper()
	full := filepath.Join(base, dir)
	if err := os.MkdirAll(full, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(full, file), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", file, err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		if _, err := NewFilesystemLoader(t.TempDir()); err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()

		if _, err := NewFilesystemLoader(""); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing")
		if _, err := NewFilesystemLoader(missing); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeAsset(t, dir, ".", "file.txt", "x")
		if _, err := NewFilesystemLoader(filepath.Join(dir, "file.txt")); !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_Load(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeAsset(t, base, "styles", "wiki.css", "body { color: red; }")
	writeAsset(t, base, "templates", "page.html", "<html>{{.Body}}</html>")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	tests := []struct {
		name    string
		load    func(string) (string, error)
		asset   string
		want    string
		wantErr error
	}{
		{name: "style found", load: loader.LoadStyle, asset: "wiki", want: "body { color: red; }"},
		{name: "template found", load: loader.LoadTemplate, asset: "page", want: "<html>{{.Body}}</html>"},
		{name: "style missing", load: loader.LoadStyle, asset: "other", wantErr: ErrStyleNotFound},
		{name: "template missing", load: loader.LoadTemplate, asset: "other", wantErr: ErrTemplateNotFound},
		{name: "invalid name", load: loader.LoadStyle, asset: "../wiki", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.load(tt.asset)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilesystemLoader_PathContainment(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatalf("failed to create styles dir: %v", err)
	}

	outside := t.TempDir()
	writeAsset(t, outside, ".", "secret.css", "secret")

	if err := os.Symlink(filepath.Join(outside, "secret.css"), filepath.Join(base, "styles", "evil.css")); err != nil {
		t.Skipf("symlink creation not supported: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	if _, err := loader.LoadStyle("evil"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle() through escaping symlink error = %v, want ErrPathTraversal", err)
	}
}
