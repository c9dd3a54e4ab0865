package sceneview

import (
	"testing"

	"fracture-viewer/internal/deformity"
)

func base() deformity.Measurements {
	return deformity.Measurements{FractureLength: 300, FracturePosition: 150}
}

func TestInstances(t *testing.T) {
	b := New(base(), deformity.DefaultBaseRadius, 16, nil)
	inst := b.Instances()
	if len(inst) != 4 {
		t.Fatalf("instance count %d, expected 4", len(inst))
	}
	for i, in := range inst {
		if in.Mesh == nil || len(in.Mesh.Tris) == 0 {
			t.Fatalf("instance %d has no geometry", i)
		}
	}
}

func TestPlacementEditReusesMeshes(t *testing.T) {
	b := New(base(), deformity.DefaultBaseRadius, 16, nil)
	before := b.proximalMesh

	m := base()
	m.ValgusAngulation = 25
	m.MedialDisplacement = 10
	b.Update(m)

	if b.proximalMesh != before {
		t.Fatal("angulation-only edit retessellated the solids")
	}
}

func TestGeometryEditRebuildsMeshes(t *testing.T) {
	b := New(base(), deformity.DefaultBaseRadius, 16, nil)
	before := b.distalMesh

	m := base()
	m.FracturePosition = 200
	b.Update(m)

	if b.distalMesh == before {
		t.Fatal("fracture-position edit did not retessellate")
	}
	if b.bones.DistalDim.Length != 100 {
		t.Fatalf("distal dim not rebuilt: %+v", b.bones.DistalDim)
	}
}

func TestDistalInstanceFollowsPose(t *testing.T) {
	m := base()
	m.MedialDisplacement = 10
	b := New(m, deformity.DefaultBaseRadius, 16, nil)

	want := deformity.ComputePose(m).Distal.Position
	got := b.Instances()[3].World.Translation()
	if d := got.Sub(want).Len(); d > 1e-9 {
		t.Fatalf("distal instance at %v, expected %v", got, want)
	}
}

func TestSpanGrowsWithDisplacement(t *testing.T) {
	b := New(base(), deformity.DefaultBaseRadius, 16, nil)
	plain := b.Span()

	m := base()
	m.AnteriorDisplacement = -80
	b.Update(m)
	if b.Span() <= plain {
		t.Fatalf("span did not grow: %v vs %v", b.Span(), plain)
	}
}
