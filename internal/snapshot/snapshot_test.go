package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fracture-viewer/internal/config"
	"fracture-viewer/internal/deformity"
	"fracture-viewer/internal/preset"
)

func TestFileName(t *testing.T) {
	cases := []struct{ in, want string }{
		{"midshaft varus", "midshaft-varus.webp"},
		{"  Distal / Shortening  ", "distal-shortening.webp"},
		{"", "case.webp"},
	}
	for _, c := range cases {
		if got := fileName(c.in); got != c.want {
			t.Errorf("fileName(%q) = %q, expected %q", c.in, got, c.want)
		}
	}
}

func TestRunRendersAllCases(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{OutputDir: dir}
	cfg.Resolve(config.Flags{Workers: 2, Size: 64})
	cfg.Supersample = 1
	cfg.Segments = 8

	lib := preset.Default()
	results := Run(cfg, lib.Cases)

	if len(results) != len(lib.Cases) {
		t.Fatalf("result count %d, expected %d", len(results), len(lib.Cases))
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("case %q failed: %s", r.Name, r.Error)
		}
		if _, err := os.Stat(r.Path); err != nil {
			t.Fatalf("case %q output missing: %v", r.Name, err)
		}
	}
}

func TestRunDegenerateCase(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{OutputDir: dir}
	cfg.Resolve(config.Flags{Workers: 1, Size: 32})
	cfg.Supersample = 1
	cfg.Segments = 6

	// Fracture position beyond the bone length renders without error.
	results := Run(cfg, []preset.Case{{
		Name:         "inverted",
		Measurements: deformity.Measurements{FractureLength: 300, FracturePosition: 350},
	}})
	if !results[0].Success {
		t.Fatalf("degenerate case failed: %s", results[0].Error)
	}
}

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.json")
	lib := preset.Default()

	if err := WriteManifest(path, lib.Cases); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []ManifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if len(entries) != len(lib.Cases) {
		t.Fatalf("entry count %d, expected %d", len(entries), len(lib.Cases))
	}
	if entries[0].Image == "" {
		t.Fatal("entry missing image path")
	}
}
