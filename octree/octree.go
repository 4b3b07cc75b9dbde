package octree

import (
	"github.com/HexExecute/sparse-voxel-octree/voxel"
)

/*
The Octree owns a single root node and the tree's maximum depth, which fixes
the side length of the indexed cube at 2^depth. Queries against the tree are
translated into root-relative calls with the full side length.

The maximum depth only grows. When an insert asks for a depth beyond the
current one, the root is wrapped as octant 0 of a larger branch, once per added
level, so that the declared side length always matches the structural depth of
the root. The seven new octants at each level are built fully expanded, the
same way the tree is built at construction.

An Octree is not safe for concurrent use.
*/

////////////////////////////////////////////////////////////////////////////////

// MaxDepth is the largest supported depth. The side length 2^MaxDepth is the
// largest power of two representable in a uint32 coordinate.
const MaxDepth uint8 = 31

// Octree is a sparse voxel octree.
type Octree struct {
	root     Node
	maxDepth uint8
	counter  *voxel.Counter
	policy   CoordinatePolicy
}

// New constructs an octree of the given depth, fully expanded to unit cells.
// Each unit cell holds a freshly minted voxel.
func New(depth uint8, opts ...Option) (*Octree, error) {
	if depth > MaxDepth {
		return nil, DepthOverflowError{Depth: depth, Limit: MaxDepth}
	}
	options := Options{
		Counter: voxel.Default,
		Policy:  Reject,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Octree{
		root:     Build(options.Counter, depth),
		maxDepth: depth,
		counter:  options.Counter,
		policy:   options.Policy,
	}, nil
}

// MaxDepth returns the current depth of the tree.
func (t *Octree) MaxDepth() uint8 {
	return t.maxDepth
}

// Side returns the side length of the indexed cube.
func (t *Octree) Side() uint32 {
	return 1 << t.maxDepth
}

// Root returns the root node.
func (t *Octree) Root() Node {
	return t.root
}

// Policy returns the tree's coordinate policy.
func (t *Octree) Policy() CoordinatePolicy {
	return t.policy
}

// Get returns the voxel at (x, y, z), or nil if the cell is empty. The result
// points into the tree and is invalidated by a later insert over the same
// cell.
func (t *Octree) Get(x, y, z uint32) (*voxel.Voxel, error) {
	x, y, z, err := t.resolve(x, y, z, t.maxDepth)
	if err != nil {
		return nil, err
	}
	return Lookup(t.root, x, y, z, t.Side()), nil
}

// Insert writes a copy of node at (x, y, z), depth levels below the root. The
// copy replaces whatever previously covered the cube of side
// 2^(maxDepth-depth) containing the point, so the caller's node never becomes
// part of the tree and may be inserted again elsewhere. If depth exceeds the
// current depth of the tree, the tree is grown first. A failed insert leaves
// the tree unchanged.
func (t *Octree) Insert(x, y, z uint32, node Node, depth uint8) error {
	if isNil(node) {
		return ErrNilNode
	}
	room, err := t.Room(depth)
	if err != nil {
		return err
	}
	target := max(depth, t.maxDepth)
	x, y, z, err = t.resolve(x, y, z, target)
	if err != nil {
		return err
	}
	if height := Height(node); height > room {
		return TooDeepError{Height: height, Room: room}
	}
	node, err = Clone(node)
	if err != nil {
		return err
	}
	if err := t.Grow(target); err != nil {
		return err
	}
	return Insert(&t.root, x, y, z, node, t.Side(), depth)
}

// Room returns the largest height of a subtree that fits depth levels below
// the root, counting the growth an insert at that depth would trigger.
func (t *Octree) Room(depth uint8) (uint8, error) {
	if depth > MaxDepth {
		return 0, DepthOverflowError{Depth: depth, Limit: MaxDepth}
	}
	return max(depth, t.maxDepth) - depth, nil
}

// Grow raises the depth of the tree. Each added level wraps the current root
// as octant 0 of a new branch whose other seven octants are fully expanded.
// Existing cells keep their coordinates. Growing to a depth at or below the
// current one is a no-op.
func (t *Octree) Grow(depth uint8) error {
	if depth > MaxDepth {
		return DepthOverflowError{Depth: depth, Limit: MaxDepth}
	}
	for t.maxDepth < depth {
		root := &BranchNode{}
		root.Children[0] = t.root
		for i := 1; i < len(root.Children); i++ {
			root.Children[i] = Build(t.counter, t.maxDepth)
		}
		t.root = root
		t.maxDepth++
		instrumentGrow()
	}
	return nil
}

// Stats returns structural statistics for the tree.
func (t *Octree) Stats() NodeStats {
	return Stats(t.root)
}

// String returns a bracketed rendering of the tree.
func (t *Octree) String() string {
	return Print(t.root)
}

// resolve applies the coordinate policy against a tree of the given depth.
func (t *Octree) resolve(x, y, z uint32, depth uint8) (uint32, uint32, uint32, error) {
	side := uint64(1) << depth
	if t.policy == Wrap {
		mask := uint32(side - 1)
		return x & mask, y & mask, z & mask, nil
	}
	for _, c := range []struct {
		axis  string
		value uint32
	}{{"x", x}, {"y", y}, {"z", z}} {
		if uint64(c.value) >= side {
			return 0, 0, 0, OutOfBoundsError{Axis: c.axis, Value: c.value, Side: side}
		}
	}
	return x, y, z, nil
}
