// Copyright (c) 2025 Alexey Mayshev and contributors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package prometheus exposes seqlist statistics as Prometheus metrics.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/maypok86/seqlist/stats"
)

// StatsProvider provides list statistics.
//
// *stats.Counter implements StatsProvider.
type StatsProvider interface {
	Snapshot() stats.Stats
}

// Collector collects statistics from a stats provider and exposes them to Prometheus.
type Collector struct {
	provider           StatsProvider
	insertsDesc        *prometheus.Desc
	removesDesc        *prometheus.Desc
	movesDesc          *prometheus.Desc
	growthsDesc        *prometheus.Desc
	recentersDesc      *prometheus.Desc
	frontShiftsDesc    *prometheus.Desc
	allocatedCellsDesc *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates a new collector for the given statistics provider.
// Metric names are prefixed with the given namespace and subsystem,
// i.e "{namespace}_{subsystem}_{metric}".
// Supported metrics:
// - inserts
// - removes
// - moves
// - growths
// - recenters
// - front_shifts
// - allocated_cells
func NewCollector(namespace, subsystem string, provider StatsProvider) *Collector {
	return &Collector{
		provider: provider,
		insertsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "inserts"),
			"Number of successful insertions.",
			nil, nil,
		),
		removesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "removes"),
			"Number of successful removals.",
			nil, nil,
		),
		movesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "moves"),
			"Number of element relocations caused by insertions and removals.",
			nil, nil,
		),
		growthsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "growths"),
			"Number of backing buffer reallocations.",
			nil, nil,
		),
		recentersDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "recenters"),
			"Number of insertions that recentered the elements instead of growing.",
			nil, nil,
		),
		frontShiftsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "front_shifts"),
			"Number of front-half insertions without free cells before the start.",
			nil, nil,
		),
		allocatedCellsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, subsystem, "allocated_cells"),
			"Total capacity of buffers allocated by growth.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.insertsDesc
	descs <- c.removesDesc
	descs <- c.movesDesc
	descs <- c.growthsDesc
	descs <- c.recentersDesc
	descs <- c.frontShiftsDesc
	descs <- c.allocatedCellsDesc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(metrics chan<- prometheus.Metric) {
	s := c.provider.Snapshot()
	metrics <- prometheus.MustNewConstMetric(
		c.insertsDesc, prometheus.CounterValue, float64(s.Inserts),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.removesDesc, prometheus.CounterValue, float64(s.Removes),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.movesDesc, prometheus.CounterValue, float64(s.Moves),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.growthsDesc, prometheus.CounterValue, float64(s.Growths),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.recentersDesc, prometheus.CounterValue, float64(s.Recenters),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.frontShiftsDesc, prometheus.CounterValue, float64(s.FrontShifts),
	)
	metrics <- prometheus.MustNewConstMetric(
		c.allocatedCellsDesc, prometheus.CounterValue, float64(s.AllocatedCells),
	)
}
