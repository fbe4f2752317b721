package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const defaultsYAML = `
backend:
  interpreter: python
  module: uvicorn
  app: app.main:app
  host: 127.0.0.1
  port: 8000
  dir: ../backend

window:
  title: Lazy Learn
  width: 1280
  height: 800
  min_width: 800
  min_height: 600

frontend:
  url: http://localhost:5173
`

func TestLoadFromBytesDefaults(t *testing.T) {
	c, err := LoadFromBytes([]byte(defaultsYAML))
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	if c.Backend.Interpreter != "python" || c.Backend.Port != 8000 {
		t.Errorf("unexpected backend config: %+v", c.Backend)
	}
	if c.Backend.Dir != "../backend" {
		t.Errorf("Dir = %q, want ../backend", c.Backend.Dir)
	}
	if c.Window.Title != "Lazy Learn" {
		t.Errorf("Title = %q, want Lazy Learn", c.Window.Title)
	}
	if c.Frontend.URL != "http://localhost:5173" {
		t.Errorf("Frontend.URL = %q", c.Frontend.URL)
	}
}

func TestBackendArgsMatchesLaunchCommand(t *testing.T) {
	c, err := LoadFromBytes([]byte(defaultsYAML))
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	want := []string{"-m", "uvicorn", "app.main:app", "--port", "8000", "--host", "127.0.0.1"}
	if got := c.Backend.Args(); !reflect.DeepEqual(got, want) {
		t.Errorf("Args() = %v, want %v", got, want)
	}
}

func TestLoadFromBytesEnvExpansion(t *testing.T) {
	t.Setenv("LAZYLEARN_TEST_PORT", "9000")
	c, err := LoadFromBytes([]byte("backend:\n  port: ${LAZYLEARN_TEST_PORT}\n"))
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}
	if c.Backend.Port != 9000 {
		t.Errorf("Port = %d, want 9000 from env expansion", c.Backend.Port)
	}
}

func TestLoadFileOverlaysBase(t *testing.T) {
	base, err := LoadFromBytes([]byte(defaultsYAML))
	if err != nil {
		t.Fatalf("LoadFromBytes failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "override.yaml")
	override := "backend:\n  port: 8100\nwindow:\n  title: Lazy Learn (dev)\n"
	if err := os.WriteFile(path, []byte(override), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(base, path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if c.Backend.Port != 8100 {
		t.Errorf("Port = %d, want 8100 from override", c.Backend.Port)
	}
	if c.Window.Title != "Lazy Learn (dev)" {
		t.Errorf("Title = %q, want override", c.Window.Title)
	}
	// Fields not in the override keep base values
	if c.Backend.Interpreter != "python" || c.Frontend.URL != "http://localhost:5173" {
		t.Errorf("base values lost in overlay: %+v", c)
	}
}

func TestLoadFileMissing(t *testing.T) {
	base, _ := LoadFromBytes([]byte(defaultsYAML))
	if _, err := LoadFile(base, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
