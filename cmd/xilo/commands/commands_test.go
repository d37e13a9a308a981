package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xilo-pro/xilo/internal/adapters/cli"
	"github.com/xilo-pro/xilo/internal/usecase"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	out = cli.NewOutputTo(&buf, &buf, false)

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&buf)
	root.SetErr(&buf)
	err := root.ExecuteContext(testContext(t))
	return buf.String(), err
}

func TestBuildThenDoctor(t *testing.T) {
	testChdir(t, t.TempDir())

	output, err := run(t, "build", "--out", "site")
	if err != nil {
		t.Fatalf("build failed: %v\n%s", err, output)
	}
	if _, err := os.Stat(filepath.Join("site", "index.html")); err != nil {
		t.Fatalf("Expected site/index.html: %v", err)
	}

	output, err = run(t, "doctor", "--out", "site")
	if err != nil {
		t.Fatalf("doctor failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "files verified") {
		t.Errorf("Unexpected doctor output %q", output)
	}
}

func TestBuildUsesConfigOutDir(t *testing.T) {
	testChdir(t, t.TempDir())
	if err := os.WriteFile("custom.yaml", []byte("server:\n  out_dir: dist\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if output, err := run(t, "--config", "custom.yaml", "build"); err != nil {
		t.Fatalf("build failed: %v\n%s", err, output)
	}
	if _, err := os.Stat(filepath.Join("dist", "manifest.json")); err != nil {
		t.Errorf("Expected dist/manifest.json: %v", err)
	}
}

func TestLintCommand(t *testing.T) {
	testChdir(t, t.TempDir())

	if output, err := run(t, "lint"); err != nil {
		t.Fatalf("lint failed: %v\n%s", err, output)
	}

	if err := os.WriteFile("broken.css", []byte(":root { --foreground-rgb: 0, 0, 0; }"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := run(t, "lint", "broken.css")
	if !errors.Is(err, usecase.ErrLintFailed) {
		t.Errorf("Expected ErrLintFailed, got %v", err)
	}
}

func TestDoctorWithoutBuild(t *testing.T) {
	testChdir(t, t.TempDir())

	if _, err := run(t, "doctor"); err == nil {
		t.Error("Expected doctor to fail without a build")
	}
}

func TestInitThenBuild(t *testing.T) {
	testChdir(t, t.TempDir())

	if output, err := run(t, "init", "--title", "Xilo Pro", "--message", "Xilo Pro - soon..."); err != nil {
		t.Fatalf("init failed: %v\n%s", err, output)
	}
	if output, err := run(t, "build"); err != nil {
		t.Fatalf("build failed: %v\n%s", err, output)
	}

	index, err := os.ReadFile(filepath.Join(".xilo", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(index), "Xilo Pro - soon...") {
		t.Errorf("Expected message in built page, got %s", index)
	}
	if _, err := os.Stat(filepath.Join(".xilo", "public", "robots.txt")); err != nil {
		t.Errorf("Expected scaffolded robots.txt in build: %v", err)
	}
}

func TestLogFormatFlag(t *testing.T) {
	testChdir(t, t.TempDir())

	if output, err := run(t, "--log-format", "json", "--no-color", "lint"); err != nil {
		t.Fatalf("lint failed: %v\n%s", err, output)
	}

	_, err := run(t, "--log-format", "xml", "lint")
	if err == nil || !strings.Contains(err.Error(), "log-format") {
		t.Errorf("Expected invalid log format error, got %v", err)
	}
}
