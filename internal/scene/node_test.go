package scene

import (
	"math"
	"testing"

	"fracture-viewer/internal/mathutil"
)

func assertNear(t *testing.T, got, want mathutil.Vec3, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Len(); d > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

func TestWorldChaining(t *testing.T) {
	root := NewNode()
	child := NewNode()
	Attach(root, child)

	root.SetLocalPosition(mathutil.Vec3{10, 0, 0})
	child.SetLocalPosition(mathutil.Vec3{0, 5, 0})
	assertNear(t, child.WorldPosition(), mathutil.Vec3{10, 5, 0}, 1e-12)

	// Rotating the parent carries the child around it:
	// (10,0,0) + Rz(90°)·(0,5,0) = (5,0,0).
	root.SetLocalRotation(mathutil.RotZ(math.Pi / 2))
	assertNear(t, child.WorldPosition(), mathutil.Vec3{5, 0, 0}, 1e-9)
}

func TestAttachPreservesWorldTransform(t *testing.T) {
	const epsilon = 1e-9

	parent := NewNode()
	parent.SetLocalPosition(mathutil.Vec3{3, -7, 2})
	parent.SetLocalRotation(mathutil.Mat3Mul(mathutil.RotX(0.4), mathutil.RotY(-1.2)))

	child := NewNode()
	child.SetLocalPosition(mathutil.Vec3{-1, 8, 5})
	child.SetLocalRotation(mathutil.RotZ(0.9))

	before := child.World()
	Attach(parent, child)
	after := child.World()

	for i := range before {
		if math.Abs(before[i]-after[i]) > epsilon {
			t.Fatalf("world transform moved on attach at %d: %v vs %v", i, before[i], after[i])
		}
	}
	if child.Parent() != parent {
		t.Fatal("child not linked to parent")
	}
}

func TestDetachPreservesWorldTransform(t *testing.T) {
	const epsilon = 1e-9

	parent := NewNode()
	parent.SetLocalPosition(mathutil.Vec3{0, -150, 0})
	parent.SetLocalRotation(mathutil.RotZ(0.3))

	child := NewNode()
	child.SetLocalPosition(mathutil.Vec3{0, -75, 0})
	Attach(parent, child)

	before := child.World()
	child.Detach()
	after := child.World()

	for i := range before {
		if math.Abs(before[i]-after[i]) > epsilon {
			t.Fatalf("world transform moved on detach at %d: %v vs %v", i, before[i], after[i])
		}
	}
	if child.Parent() != nil {
		t.Fatal("child still has a parent after detach")
	}
}

func TestRemoveUnlinks(t *testing.T) {
	parent := NewNode()
	child := NewNode()
	Attach(parent, child)

	child.Remove()
	if len(parent.Children()) != 0 {
		t.Fatalf("parent still has %d children", len(parent.Children()))
	}
}

func TestAttachMovesBetweenParents(t *testing.T) {
	a := NewNode()
	a.SetLocalPosition(mathutil.Vec3{100, 0, 0})
	b := NewNode()
	b.SetLocalPosition(mathutil.Vec3{0, 100, 0})

	child := NewNode()
	Attach(a, child)
	Attach(b, child)

	if len(a.Children()) != 0 {
		t.Fatal("child left behind in old parent")
	}
	assertNear(t, child.WorldPosition(), mathutil.Vec3{}, 1e-9)
	assertNear(t, child.LocalPosition(), mathutil.Vec3{0, -100, 0}, 1e-9)
}
