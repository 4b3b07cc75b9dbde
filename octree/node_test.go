package octree_test

import (
	"testing"

	"github.com/HexExecute/sparse-voxel-octree/octree"
	"github.com/HexExecute/sparse-voxel-octree/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildIndex(t *testing.T) {
	cases := []struct {
		assertion string
		x, y, z   uint32
		expected  int
	}{
		{"origin", 0, 0, 0, 0},
		{"upper x", 1, 0, 0, 1},
		{"upper y", 0, 1, 0, 2},
		{"upper xy", 1, 1, 0, 3},
		{"upper z", 0, 0, 1, 4},
		{"upper xz", 1, 0, 1, 5},
		{"upper yz", 0, 1, 1, 6},
		{"upper xyz", 1, 1, 1, 7},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			assert.Equal(t, c.expected, octree.ChildIndex(c.x, c.y, c.z, 1))
		})
	}
}

func TestBuild(t *testing.T) {
	cases := []struct {
		assertion string
		depth     uint8
		repr      string
	}{
		{
			"depth zero is a leaf",
			0,
			"[leaf 0]",
		},
		{
			"depth one is a branch of eight leaves",
			1,
			"[branch [leaf 0] [leaf 1] [leaf 2] [leaf 3] [leaf 4] [leaf 5] [leaf 6] [leaf 7]]",
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			node := octree.Build(voxel.NewCounter(0), c.depth)
			assert.Equal(t, c.repr, octree.Print(node))
		})
	}
}

func TestSubdivide(t *testing.T) {
	t.Run("occupied leaf", func(t *testing.T) {
		leaf := octree.NewLeaf(voxel.New(5))
		branch := leaf.Subdivide()
		for _, child := range branch.Children {
			v, ok := child.(*octree.LeafNode).Voxel()
			require.True(t, ok)
			assert.Equal(t, voxel.New(5), v)
		}
	})
	t.Run("empty leaf", func(t *testing.T) {
		branch := octree.NewEmptyLeaf().Subdivide()
		for _, child := range branch.Children {
			_, ok := child.(*octree.LeafNode).Voxel()
			assert.False(t, ok)
		}
	})
	t.Run("children are distinct copies", func(t *testing.T) {
		branch := octree.NewLeaf(voxel.New(5)).Subdivide()
		v := octree.Lookup(branch, 0, 0, 0, 2)
		require.NotNil(t, v)
		v.Index = 6
		other := octree.Lookup(branch, 1, 1, 1, 2)
		require.NotNil(t, other)
		assert.Equal(t, uint64(5), other.Index)
	})
}

func TestLookup(t *testing.T) {
	node := octree.Build(voxel.NewCounter(0), 2)
	cases := []struct {
		assertion string
		x, y, z   uint32
		expected  uint64
	}{
		{"origin", 0, 0, 0, 0},
		{"second cell of first octant", 1, 0, 0, 1},
		{"first cell of second octant", 2, 0, 0, 8},
		{"far corner", 3, 3, 3, 63},
		{"upper z octant", 0, 0, 2, 32},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			v := octree.Lookup(node, c.x, c.y, c.z, 4)
			require.NotNil(t, v)
			assert.Equal(t, c.expected, v.Index)
		})
	}
	t.Run("empty leaf", func(t *testing.T) {
		assert.Nil(t, octree.Lookup(octree.NewEmptyLeaf(), 0, 0, 0, 1))
	})
	t.Run("leaf answers for its whole extent", func(t *testing.T) {
		leaf := octree.NewLeaf(voxel.New(3))
		for x := uint32(0); x < 8; x++ {
			v := octree.Lookup(leaf, x, 7-x, x, 8)
			require.NotNil(t, v)
			assert.Equal(t, uint64(3), v.Index)
		}
	})
}

func TestInsert(t *testing.T) {
	cases := []struct {
		assertion string
		root      func() octree.Node
		x, y, z   uint32
		node      octree.Node
		size      uint32
		depth     uint8
		repr      string
	}{
		{
			"replace root",
			func() octree.Node { return octree.NewLeaf(voxel.New(1)) },
			0, 0, 0,
			octree.NewLeaf(voxel.New(2)),
			2,
			0,
			"[leaf 2]",
		},
		{
			"subdivide leaf",
			func() octree.Node { return octree.NewLeaf(voxel.New(1)) },
			1, 1, 0,
			octree.NewLeaf(voxel.New(2)),
			2,
			1,
			"[branch [leaf 1] [leaf 1] [leaf 1] [leaf 2] [leaf 1] [leaf 1] [leaf 1] [leaf 1]]",
		},
		{
			"subdivide empty leaf twice",
			func() octree.Node { return octree.NewEmptyLeaf() },
			3, 0, 0,
			octree.NewLeaf(voxel.New(2)),
			4,
			2,
			"[branch [leaf -] [branch [leaf -] [leaf 2] [leaf -] [leaf -] [leaf -] [leaf -] [leaf -] [leaf -]]" +
				" [leaf -] [leaf -] [leaf -] [leaf -] [leaf -] [leaf -]]",
		},
		{
			"descend existing branch",
			func() octree.Node { return octree.Build(voxel.NewCounter(0), 1) },
			0, 0, 1,
			octree.NewEmptyLeaf(),
			2,
			1,
			"[branch [leaf 0] [leaf 1] [leaf 2] [leaf 3] [leaf -] [leaf 5] [leaf 6] [leaf 7]]",
		},
		{
			"replace branch with leaf discards structure",
			func() octree.Node { return octree.Build(voxel.NewCounter(0), 2) },
			0, 0, 0,
			octree.NewLeaf(voxel.New(9)),
			4,
			0,
			"[leaf 9]",
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			root := c.root()
			require.NoError(t, octree.Insert(&root, c.x, c.y, c.z, c.node, c.size, c.depth))
			assert.Equal(t, c.repr, octree.Print(root))
		})
	}
}

func TestInsertErrors(t *testing.T) {
	t.Run("nil node", func(t *testing.T) {
		root := octree.Node(octree.NewEmptyLeaf())
		err := octree.Insert(&root, 0, 0, 0, nil, 2, 1)
		require.ErrorIs(t, err, octree.ErrNilNode)
	})
	t.Run("below unit cell", func(t *testing.T) {
		root := octree.Node(octree.NewEmptyLeaf())
		err := octree.Insert(&root, 0, 0, 0, octree.NewEmptyLeaf(), 2, 2)
		require.ErrorIs(t, err, octree.BelowUnitCellError{})
		assert.Equal(t, "[leaf -]", octree.Print(root))
	})
}

func TestHeight(t *testing.T) {
	counter := voxel.NewCounter(0)
	assert.Equal(t, uint8(0), octree.Height(octree.NewEmptyLeaf()))
	assert.Equal(t, uint8(3), octree.Height(octree.Build(counter, 3)))

	root := octree.Node(octree.NewEmptyLeaf())
	require.NoError(t, octree.Insert(&root, 7, 7, 7, octree.NewEmptyLeaf(), 8, 3))
	assert.Equal(t, uint8(3), octree.Height(root))
}

func TestStats(t *testing.T) {
	root := octree.Build(voxel.NewCounter(0), 2)
	require.NoError(t, octree.Insert(&root, 0, 0, 0, octree.NewEmptyLeaf(), 4, 1))
	assert.Equal(t, octree.NodeStats{
		Branches:    8,
		Leaves:      57,
		EmptyLeaves: 1,
		Height:      2,
	}, octree.Stats(root))
	assert.Equal(t, 65, octree.Stats(root).Nodes())
}
