// internal/config/loader_test.go
//
// Loader tests: YAML values land, and VELTA_ environment overrides win
// over the file layer.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testYAML = `
http:
  listen_addr: ":8080"

database:
  dsn: "velta:%s@tcp(127.0.0.1:3306)/velta?parseTime=true"
  password: "devpass"

site:
  name: "Velta Digital"
  base_url: "https://velta.example"
  tagline: "Web, Search, Automation"
`

// writeTestRoot lays out <tmp>/conf/global.yaml and points VELTA_ROOT at
// it so rootDir() resolves without climbing the real cwd.
func writeTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	confDir := filepath.Join(root, "conf")
	if err := os.MkdirAll(confDir, 0o755); err != nil {
		t.Fatalf("mkdir conf: %v", err)
	}
	if err := os.WriteFile(filepath.Join(confDir, "global.yaml"), []byte(testYAML), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	t.Setenv("VELTA_ROOT", root)
	return root
}

func TestLoadReadsYAML(t *testing.T) {
	root := writeTestRoot(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Site.Name != "Velta Digital" {
		t.Errorf("site.name = %q", cfg.Site.Name)
	}
	if cfg.HTTP.ListenAddr != ":8080" {
		t.Errorf("http.listen_addr = %q", cfg.HTTP.ListenAddr)
	}
	if cfg.Paths.Root != root {
		t.Errorf("paths.root = %q, want %q", cfg.Paths.Root, root)
	}
	if cfg.Fetch.Timeout != DefaultFetchTimeout {
		t.Errorf("fetch.timeout default = %v", cfg.Fetch.Timeout)
	}
}

func TestLoadEnvOverrideWins(t *testing.T) {
	writeTestRoot(t)
	t.Setenv("VELTA_HTTP__LISTEN_ADDR", ":9999")
	t.Setenv("VELTA_SITE__NAME", "Velta Staging")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.ListenAddr != ":9999" {
		t.Errorf("env override ignored: http.listen_addr = %q, want :9999",
			cfg.HTTP.ListenAddr)
	}
	if cfg.Site.Name != "Velta Staging" {
		t.Errorf("env override ignored: site.name = %q, want Velta Staging",
			cfg.Site.Name)
	}
	// Untouched keys keep their YAML values.
	if cfg.Site.BaseURL != "https://velta.example" {
		t.Errorf("yaml value lost: site.base_url = %q", cfg.Site.BaseURL)
	}
}
