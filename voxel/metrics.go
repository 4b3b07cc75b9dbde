package voxel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	voxelsMintedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "svo_voxels_minted_total",
		Help: "The total number of voxels minted by counters.",
	})
)

func instrumentMint() {
	voxelsMintedTotal.Inc()
}

// MintedTotal returns the collector counting minted voxels.
func MintedTotal() prometheus.Counter {
	return voxelsMintedTotal
}
