package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fracture-viewer/internal/deformity"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yaml")
	body := `cases:
  - name: spiral tibia
    measurements:
      fracture_length: 380
      fracture_position: 240
      valgus_angulation: -12
      rotational_angulation: 30
      proximal_displacement: 15
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Library{Cases: []Case{{
		Name: "spiral tibia",
		Measurements: deformity.Measurements{
			FractureLength:       380,
			FracturePosition:     240,
			ValgusAngulation:     -12,
			RotationalAngulation: 30,
			ProximalDisplacement: 15,
		},
	}}}
	if diff := cmp.Diff(want, lib); diff != "" {
		t.Fatalf("library mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("cases: [{name: x, measurements: {fracture_length: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Fatal("expected error for malformed YAML")
	}

	unnamed := filepath.Join(t.TempDir(), "unnamed.yaml")
	if err := os.WriteFile(unnamed, []byte("cases:\n  - measurements: {fracture_length: 300}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(unnamed); err == nil {
		t.Fatal("expected error for unnamed case")
	}
}

func TestDefaultLibrary(t *testing.T) {
	lib := Default()
	if len(lib.Cases) == 0 {
		t.Fatal("no built-in cases")
	}
	for _, c := range lib.Cases {
		if c.Name == "" {
			t.Fatal("built-in case without a name")
		}
		if c.Measurements.FractureLength <= 0 {
			t.Fatalf("case %q has no bone length", c.Name)
		}
	}

	if _, ok := lib.ByName("anatomical"); !ok {
		t.Fatal("anatomical case missing")
	}
	if _, ok := lib.ByName("nope"); ok {
		t.Fatal("ByName matched a nonexistent case")
	}
}
