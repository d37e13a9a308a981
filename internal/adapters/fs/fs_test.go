package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func TestReadOnlyFileSystem(t *testing.T) {
	fsys := NewReadOnlyFileSystem(fstest.MapFS{
		"index.html":        {Data: []byte("<html></html>")},
		"public/robots.txt": {Data: []byte("User-agent: *")},
	})

	data, err := fsys.ReadFile("/index.html")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("Unexpected content %q", data)
	}

	if !fsys.FileExists("public/robots.txt") {
		t.Error("Expected robots.txt to exist")
	}
	if fsys.FileExists("public") {
		t.Error("Directories should not count as files")
	}

	entries, err := fsys.ReadDir("/")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(entries))
	}

	if err := fsys.WriteFile("x", nil, 0644); !errors.Is(err, ErrReadOnly) {
		t.Errorf("Expected ErrReadOnly, got %v", err)
	}
}

func TestOSFileSystemCopyDir(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	if err := os.MkdirAll(filepath.Join(src, "img"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "favicon.ico"), []byte("ico"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "img", "logo.svg"), []byte("<svg/>"), 0644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()
	copied, err := fsys.CopyDir(src, dst)
	if err != nil {
		t.Fatalf("CopyDir failed: %v", err)
	}
	if len(copied) != 2 {
		t.Errorf("Expected 2 copied files, got %v", copied)
	}

	data, err := os.ReadFile(filepath.Join(dst, "img", "logo.svg"))
	if err != nil {
		t.Fatalf("Expected copied file: %v", err)
	}
	if string(data) != "<svg/>" {
		t.Errorf("Unexpected copied content %q", data)
	}
}
