package octree

import (
	"fmt"

	"github.com/HexExecute/sparse-voxel-octree/voxel"
)

/*
Nodes are the structural unit of the octree. A node is either a leaf, holding
an optional voxel that stands for every unit cell within the leaf's extent, or
a branch with exactly eight children, one per octant.

Children are indexed by three bits: bit 0 is set for the upper half of X, bit 1
for the upper half of Y, and bit 2 for the upper half of Z. The children of a
branch tile its cube exactly.

Nodes do not know their own size. The size of the cube a node represents is
supplied by the caller on every descent, starting from the side length of the
whole tree at the root.
*/

////////////////////////////////////////////////////////////////////////////////

// NodeType is the type of a node.
type NodeType int

const (
	// Leaf is a node with an optional payload and no children.
	Leaf NodeType = iota + 1
	// Branch is a node with eight children.
	Branch
)

func (n NodeType) String() string {
	switch n {
	case Leaf:
		return "leaf"
	case Branch:
		return "branch"
	default:
		return "unknown"
	}
}

// Node is an interface to which leaf and branch nodes adhere.
type Node interface {
	// Type returns the type of the node
	Type() NodeType

	// String returns a bracketed rendering of the subtree.
	String() string
}

// LeafNode is a node representing a uniform region. An empty leaf holds no
// voxel.
type LeafNode struct {
	voxel    voxel.Voxel
	occupied bool
}

// NewLeaf returns a leaf holding v.
func NewLeaf(v voxel.Voxel) *LeafNode {
	return &LeafNode{voxel: v, occupied: true}
}

// NewEmptyLeaf returns a leaf holding nothing.
func NewEmptyLeaf() *LeafNode {
	return &LeafNode{}
}

// Voxel returns the leaf's voxel and whether the leaf is occupied.
func (n *LeafNode) Voxel() (voxel.Voxel, bool) {
	return n.voxel, n.occupied
}

// Type returns Leaf.
func (n *LeafNode) Type() NodeType {
	return Leaf
}

func (n *LeafNode) String() string {
	if !n.occupied {
		return "[leaf -]"
	}
	return fmt.Sprintf("[leaf %d]", n.voxel.Index)
}

// view returns a pointer to the leaf's payload, or nil if the leaf is empty.
func (n *LeafNode) view() *voxel.Voxel {
	if !n.occupied {
		return nil
	}
	return &n.voxel
}

// Subdivide returns a branch whose eight children are leaves carrying copies
// of this leaf's content.
func (n *LeafNode) Subdivide() *BranchNode {
	b := &BranchNode{}
	for i := range b.Children {
		b.Children[i] = &LeafNode{voxel: n.voxel, occupied: n.occupied}
	}
	instrumentSubdivide()
	return b
}

// BranchNode is an interior node with one child per octant.
type BranchNode struct {
	Children [8]Node
}

// Type returns Branch.
func (n *BranchNode) Type() NodeType {
	return Branch
}

func (n *BranchNode) String() string {
	return Print(n)
}

// Build constructs a fully expanded subtree of the given depth. Every unit
// cell receives a voxel freshly minted from counter, in child index order.
func Build(counter *voxel.Counter, depth uint8) Node {
	if depth == 0 {
		return NewLeaf(counter.Next())
	}
	b := &BranchNode{}
	for i := range b.Children {
		b.Children[i] = Build(counter, depth-1)
	}
	return b
}

// ChildIndex returns the octant of a branch with half-side half containing
// (x, y, z).
func ChildIndex(x, y, z, half uint32) int {
	index := 0
	if x >= half {
		index |= 1
	}
	if y >= half {
		index |= 2
	}
	if z >= half {
		index |= 4
	}
	return index
}

// Lookup returns the voxel covering (x, y, z) in a node of side size, or nil
// if the covering leaf is empty. The result points into the tree. Coordinates
// are expected in [0, size); larger values are reduced modulo the half-side at
// each level.
//
// A branch reached at a side below 2 holds structure finer than a unit cell.
// Such a cell is answered from octant 0.
func Lookup(n Node, x, y, z, size uint32) *voxel.Voxel {
	for {
		switch node := n.(type) {
		case *LeafNode:
			return node.view()
		case *BranchNode:
			if size < 2 {
				n = node.Children[0]
				continue
			}
			size /= 2
			n = node.Children[ChildIndex(x, y, z, size)]
			x %= size
			y %= size
			z %= size
		default:
			return nil
		}
	}
}

// lookupRecursive is the recursive form of Lookup. It answers every query the
// same way, including the octant 0 rule below a unit cell, and is kept as the
// reference the loop is checked against.
func lookupRecursive(n Node, x, y, z, size uint32) *voxel.Voxel {
	switch node := n.(type) {
	case *LeafNode:
		return node.view()
	case *BranchNode:
		if size < 2 {
			return lookupRecursive(node.Children[0], x, y, z, size)
		}
		half := size / 2
		child := node.Children[ChildIndex(x, y, z, half)]
		return lookupRecursive(child, x%half, y%half, z%half, half)
	default:
		return nil
	}
}

// Insert writes node into the subtree rooted at *slot, depth levels below it,
// at the position covering (x, y, z). size is the side of *slot. At depth zero
// the slot is replaced wholesale, discarding any structure beneath it. Leaves
// met on the way down are subdivided, so that every other sub-cell keeps the
// leaf's previous content. node is stored as given, not copied.
func Insert(slot *Node, x, y, z uint32, node Node, size uint32, depth uint8) error {
	if isNil(node) {
		return ErrNilNode
	}
	if depth >= 32 || size>>depth == 0 {
		return BelowUnitCellError{Size: size, Depth: depth}
	}
	for ; depth > 0; depth-- {
		if leaf, ok := (*slot).(*LeafNode); ok {
			*slot = leaf.Subdivide()
		}
		branch, ok := (*slot).(*BranchNode)
		if !ok {
			return NewUnexpectedNodeError(Branch, *slot)
		}
		size /= 2
		slot = &branch.Children[ChildIndex(x, y, z, size)]
		x %= size
		y %= size
		z %= size
	}
	*slot = node
	instrumentInsert()
	return nil
}

// Height returns the number of levels below n. A leaf has height zero.
func Height(n Node) uint8 {
	return Stats(n).Height
}
