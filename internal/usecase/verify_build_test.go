package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xilo-pro/xilo/internal/adapters/fs"
	"github.com/xilo-pro/xilo/internal/core"
)

func TestVerifyBuildClean(t *testing.T) {
	outDir := buildInto(t, map[string]string{"robots.txt": "User-agent: *"})

	out, _ := testOutput()
	result := NewVerifyService(fs.NewOSFileSystem(), out).VerifyBuild(testContext(t), VerifyInput{OutDir: outDir})

	if result.Error != nil {
		t.Fatalf("Expected clean build, got %v (%v)", result.Error, result.Problems)
	}
	if len(result.Manifest.Assets) != 4 {
		t.Errorf("Expected 4 assets, got %v", result.Manifest.Assets)
	}
}

func TestVerifyBuildDetectsTampering(t *testing.T) {
	tests := []struct {
		name   string
		tamper func(t *testing.T, outDir string)
	}{
		{
			name: "modified stylesheet",
			tamper: func(t *testing.T, outDir string) {
				if err := os.WriteFile(filepath.Join(outDir, "globals.css"), []byte("body{}"), 0644); err != nil {
					t.Fatal(err)
				}
			},
		},
		{
			name: "deleted page",
			tamper: func(t *testing.T, outDir string) {
				if err := os.Remove(filepath.Join(outDir, "404.html")); err != nil {
					t.Fatal(err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outDir := buildInto(t, nil)
			tt.tamper(t, outDir)

			out, _ := testOutput()
			result := NewVerifyService(fs.NewOSFileSystem(), out).VerifyBuild(testContext(t), VerifyInput{OutDir: outDir})

			if !errors.Is(result.Error, ErrBuildCorrupt) {
				t.Errorf("Expected ErrBuildCorrupt, got %v", result.Error)
			}
			if len(result.Problems) != 1 {
				t.Errorf("Expected one problem, got %v", result.Problems)
			}
		})
	}
}

func TestVerifyBuildWithoutManifest(t *testing.T) {
	out, _ := testOutput()
	result := NewVerifyService(fs.NewOSFileSystem(), out).VerifyBuild(testContext(t), VerifyInput{OutDir: t.TempDir()})

	if !errors.Is(result.Error, core.ErrManifestMissing) {
		t.Errorf("Expected ErrManifestMissing, got %v", result.Error)
	}
}
