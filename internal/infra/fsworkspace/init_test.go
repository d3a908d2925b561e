package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/skyfare/internal/domain"
)

func TestInitializer_Init_CreatesWorkspaceFiles(t *testing.T) {
	tmp := t.TempDir()

	i := NewInitializer()
	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertExists(t, filepath.Join(tmp, "skyfare.yaml"))
	assertExists(t, filepath.Join(tmp, "batches", "demo.yaml"))
	assertExists(t, filepath.Join(tmp, "quotes"))
	assertExists(t, filepath.Join(tmp, ".skyfare", "logs"))
	assertExists(t, filepath.Join(tmp, ".gitignore"))

	b, err := os.ReadFile(filepath.Join(tmp, "batches", "demo.yaml"))
	if err != nil {
		t.Fatalf("read demo batch: %v", err)
	}
	if !strings.Contains(string(b), "Sherman T. Socketwrench") {
		t.Fatalf("expected demo passengers in template, got:\n%s", b)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "skyfare.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing skyfare.yaml: %v", err)
	}

	i := NewInitializer()

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, false); err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read skyfare.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected skyfare.yaml preserved, got %q", string(b))
	}

	if err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read skyfare.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "cents_per_mile") {
		t.Fatalf("expected skyfare.yaml overwritten with template, got %q", string(b))
	}
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s, stat err=%v", path, err)
	}
}
