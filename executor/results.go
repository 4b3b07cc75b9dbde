package executor

import (
	"github.com/HexExecute/sparse-voxel-octree/octree"
	"github.com/HexExecute/sparse-voxel-octree/voxel"
)

const metricPrefix = "svo_"

type lookupResult struct {
	X     uint32       `json:"x"`
	Y     uint32       `json:"y"`
	Z     uint32       `json:"z"`
	Voxel *voxel.Voxel `json:"voxel"`
}

type treeStats struct {
	Depth uint8  `json:"depth"`
	Side  uint32 `json:"side"`
	octree.NodeStats
}
