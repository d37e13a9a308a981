package usecase

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/xilo-pro/xilo/internal/adapters/cli"
	"github.com/xilo-pro/xilo/internal/adapters/fs"
	"github.com/xilo-pro/xilo/internal/config"
)

func testOutput() (*cli.Output, *bytes.Buffer) {
	var buf bytes.Buffer
	return cli.NewOutputTo(&buf, &buf, false), &buf
}

func defaultSource() config.StaticSource {
	return config.StaticSource{Config: config.Default()}
}

// buildInto builds the default site into a fresh temp dir and returns the
// output directory.
func buildInto(t *testing.T, public map[string]string) string {
	t.Helper()

	root := t.TempDir()
	publicDir := filepath.Join(root, "public")
	for name, content := range public {
		target := filepath.Join(publicDir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(target, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	out, _ := testOutput()
	outDir := filepath.Join(root, ".xilo")
	result := NewBuildService(defaultSource(), fs.NewOSFileSystem(), out).BuildProject(testContext(t), BuildInput{
		OutDir:    outDir,
		PublicDir: publicDir,
	})
	if result.Error != nil {
		t.Fatalf("BuildProject failed: %v", result.Error)
	}
	return outDir
}
