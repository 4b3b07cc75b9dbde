package voxel

import (
	"fmt"
	"sync/atomic"
)

/*
Voxels are the payloads stored in the octree. A voxel carries a numeric
identity, minted from a Counter when the tree materializes a unit cell. The
identity exists for distinguishability only; voxels are addressed by their
position in the tree, never by index.
*/

////////////////////////////////////////////////////////////////////////////////

// Voxel is a single payload. Voxels are values and are copied wherever the
// tree needs to fill a region with the same content.
type Voxel struct {
	Index uint64 `json:"index"`
}

// New returns a voxel with an explicit index.
func New(index uint64) Voxel {
	return Voxel{Index: index}
}

// String returns a string representation of the voxel.
func (v Voxel) String() string {
	return fmt.Sprintf("voxel(%d)", v.Index)
}

// Counter mints voxels with monotonically increasing indexes. It is safe for
// concurrent use.
type Counter struct {
	next atomic.Uint64
}

// Default is the process-wide counter used when a tree is not given one. It is
// never reset.
var Default = NewCounter(0) // nolint:gochecknoglobals

// NewCounter returns a counter whose first minted voxel has index seed.
func NewCounter(seed uint64) *Counter {
	c := &Counter{}
	c.next.Store(seed)
	return c
}

// Next mints a new voxel.
func (c *Counter) Next() Voxel {
	index := c.next.Add(1) - 1
	instrumentMint()
	return Voxel{Index: index}
}

// Peek returns the index the next call to Next will mint.
func (c *Counter) Peek() uint64 {
	return c.next.Load()
}
