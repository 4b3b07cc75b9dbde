package octree

import "github.com/HexExecute/sparse-voxel-octree/voxel"

// CoordinatePolicy determines how a tree treats coordinates outside its
// extent.
type CoordinatePolicy int

const (
	// Reject fails lookups and inserts outside [0, side) with an
	// OutOfBoundsError.
	Reject CoordinatePolicy = iota
	// Wrap reduces coordinates modulo the side length, tiling the tree
	// infinitely in every positive direction.
	Wrap
)

func (p CoordinatePolicy) String() string {
	switch p {
	case Reject:
		return "reject"
	case Wrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// Option is a functional option for an octree.
type Option func(*Options)

// Options contains options for an octree.
type Options struct {
	Counter *voxel.Counter
	Policy  CoordinatePolicy
}

// WithCounter sets the counter voxels are minted from. By default the
// process-wide voxel.Default counter is used.
func WithCounter(counter *voxel.Counter) Option {
	return func(opts *Options) {
		opts.Counter = counter
	}
}

// WithCoordinatePolicy sets the out-of-range coordinate policy.
func WithCoordinatePolicy(policy CoordinatePolicy) Option {
	return func(opts *Options) {
		opts.Policy = policy
	}
}
