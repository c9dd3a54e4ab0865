// Package scene provides a minimal hierarchical scene graph: nodes carry a
// local position and rotation, and world transforms are computed by chaining
// up the parent links. Reparenting preserves world transforms, which is what
// lets a caller borrow a different center of rotation via a temporary node.
package scene

import (
	"fracture-viewer/internal/mathutil"
)

// Node is one frame in the hierarchy. The zero value is not usable; create
// nodes with NewNode.
type Node struct {
	parent   *Node
	children []*Node

	localPos mathutil.Vec3
	localRot mathutil.Mat3
}

// NewNode returns a detached node with identity local transform.
func NewNode() *Node {
	return &Node{localRot: mathutil.Mat3Identity()}
}

func (n *Node) SetLocalPosition(p mathutil.Vec3) { n.localPos = p }
func (n *Node) LocalPosition() mathutil.Vec3     { return n.localPos }

func (n *Node) SetLocalRotation(r mathutil.Mat3) { n.localRot = r }
func (n *Node) LocalRotation() mathutil.Mat3     { return n.localRot }

func (n *Node) Parent() *Node { return n.parent }

// Local returns the node's local transform as a 4×4 affine matrix.
func (n *Node) Local() mathutil.Mat4 {
	return mathutil.FromMat3Translation(n.localRot, n.localPos)
}

// World returns the node's world transform by chaining local transforms up
// to the root.
func (n *Node) World() mathutil.Mat4 {
	w := n.Local()
	for p := n.parent; p != nil; p = p.parent {
		w = mathutil.Mat4Mul(p.Local(), w)
	}
	return w
}

// WorldPosition returns the translation component of the world transform.
func (n *Node) WorldPosition() mathutil.Vec3 {
	return n.World().Translation()
}

// WorldRotation returns the rotation component of the world transform.
func (n *Node) WorldRotation() mathutil.Mat3 {
	return n.World().Rotation()
}

// Attach reparents child under parent while preserving the child's world
// transform: the new local transform solves
//
//	local = inv(parentWorld) · world
//
// so the child does not move, only the frame its transform is expressed in
// changes.
func Attach(parent, child *Node) {
	world := child.World()
	child.unlink()
	local := mathutil.Mat4Mul(parent.World().AffineInverse(), world)
	child.parent = parent
	parent.children = append(parent.children, child)
	child.localPos = local.Translation()
	child.localRot = local.Rotation()
}

// Detach removes the node from its parent while preserving its world
// transform, leaving it a root node.
func (n *Node) Detach() {
	if n.parent == nil {
		return
	}
	world := n.World()
	n.unlink()
	n.localPos = world.Translation()
	n.localRot = world.Rotation()
}

// Remove unlinks the node from its parent without preserving anything.
// Children of the removed node go with it.
func (n *Node) Remove() {
	n.unlink()
}

// Children returns the node's direct children.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) unlink() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, c := range siblings {
		if c == n {
			n.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}
