package octree

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	subdivisionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "svo_subdivisions_total",
		Help: "The total number of leaves subdivided into branches.",
	})

	insertsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "svo_inserts_total",
		Help: "The total number of nodes inserted.",
	})

	growsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "svo_grows_total",
		Help: "The total number of levels added above a root.",
	})
)

func instrumentSubdivide() {
	subdivisionsTotal.Inc()
}

func instrumentInsert() {
	insertsTotal.Inc()
}

func instrumentGrow() {
	growsTotal.Inc()
}

// Collectors returns the octree's metric collectors.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{subdivisionsTotal, insertsTotal, growsTotal}
}
