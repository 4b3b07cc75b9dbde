package executor

import (
	"github.com/HexExecute/sparse-voxel-octree/octree"
	"github.com/HexExecute/sparse-voxel-octree/voxel"
	"github.com/prometheus/client_golang/prometheus"
)

// Option is a functional option for the executor.
type Option func(*Options)

// Options contains options for the executor.
type Options struct {
	Tree      *octree.Octree
	Counter   *voxel.Counter
	Policy    octree.CoordinatePolicy
	JSON      bool
	TermWidth int
	Gatherer  prometheus.Gatherer
}

// WithTree starts the executor on an existing tree.
func WithTree(tree *octree.Octree) Option {
	return func(opts *Options) {
		opts.Tree = tree
	}
}

// WithCounter sets the counter for trees and subtrees built by statements.
func WithCounter(counter *voxel.Counter) Option {
	return func(opts *Options) {
		opts.Counter = counter
	}
}

// WithCoordinatePolicy sets the coordinate policy of created trees.
func WithCoordinatePolicy(policy octree.CoordinatePolicy) Option {
	return func(opts *Options) {
		opts.Policy = policy
	}
}

// WithJSON writes results as JSON documents instead of tables.
func WithJSON(enabled bool) Option {
	return func(opts *Options) {
		opts.JSON = enabled
	}
}

// WithTermWidth fixes the width tables are fitted to. By default the width of
// the terminal is used.
func WithTermWidth(width int) Option {
	return func(opts *Options) {
		opts.TermWidth = width
	}
}

// WithGatherer sets the registry the metrics statement reads from.
func WithGatherer(gatherer prometheus.Gatherer) Option {
	return func(opts *Options) {
		opts.Gatherer = gatherer
	}
}
