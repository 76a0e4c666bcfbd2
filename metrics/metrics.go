// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics counters of the node.
//
// Values live in a go-metrics registry. They are dumped to the log periodically and
// exported to prometheus through Collector.
package metrics

import (
	"context"
	"net/http"
	"regexp"
	"sort"
	"time"

	"github.com/33cn/rps/types"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "rps metrics")

// Namespace prefix of exported prometheus names
var Namespace = "rps"

// Counter counter of the default registry
func Counter(name string) go_metrics.Counter {
	return go_metrics.GetOrRegisterCounter(name, go_metrics.DefaultRegistry)
}

// Timer timer of the default registry
func Timer(name string) go_metrics.Timer {
	return go_metrics.GetOrRegisterTimer(name, go_metrics.DefaultRegistry)
}

// Gauge gauge of the default registry
func Gauge(name string) go_metrics.Gauge {
	return go_metrics.GetOrRegisterGauge(name, go_metrics.DefaultRegistry)
}

// Snapshot flattens r: counters and gauges by name, timers as name.count and name.mean (ns)
func Snapshot(r go_metrics.Registry) map[string]float64 {
	out := make(map[string]float64)
	r.Each(func(name string, i interface{}) {
		switch m := i.(type) {
		case go_metrics.Counter:
			out[name] = float64(m.Count())
		case go_metrics.Gauge:
			out[name] = float64(m.Value())
		case go_metrics.Meter:
			out[name] = float64(m.Count())
		case go_metrics.Timer:
			s := m.Snapshot()
			out[name+".count"] = float64(s.Count())
			out[name+".mean"] = s.Mean()
		}
	})
	return out
}

// StartMetrics logs the default registry every LogIntervalSeconds until ctx is done
func StartMetrics(ctx context.Context, cfg *types.Metrics) {
	if cfg == nil || !cfg.Enable {
		mlog.Info("Metrics data is not enabled to emit")
		return
	}
	interval := time.Duration(cfg.LogIntervalSeconds) * time.Second
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				logSnapshot(Snapshot(go_metrics.DefaultRegistry))
			}
		}
	}()
}

func logSnapshot(snap map[string]float64) {
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)
	ctx := make([]interface{}, 0, 2*len(names))
	for _, name := range names {
		ctx = append(ctx, name, snap[name])
	}
	mlog.Info("metrics", ctx...)
}

var invalidChars = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// Collector exports a go-metrics registry to prometheus.
// It describes nothing up front, the set of names grows as the node runs.
type Collector struct {
	registry go_metrics.Registry
}

// NewCollector collector over r
func NewCollector(r go_metrics.Registry) *Collector {
	return &Collector{registry: r}
}

// Describe unchecked collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {}

// Collect one const metric per registry value
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.registry.Each(func(name string, i interface{}) {
		fqName := Namespace + "_" + invalidChars.ReplaceAllString(name, "_")
		switch m := i.(type) {
		case go_metrics.Counter:
			ch <- constMetric(fqName+"_total", prometheus.CounterValue, float64(m.Count()))
		case go_metrics.Gauge:
			ch <- constMetric(fqName, prometheus.GaugeValue, float64(m.Value()))
		case go_metrics.Meter:
			ch <- constMetric(fqName+"_total", prometheus.CounterValue, float64(m.Count()))
		case go_metrics.Timer:
			s := m.Snapshot()
			ch <- constMetric(fqName+"_count", prometheus.CounterValue, float64(s.Count()))
			ch <- constMetric(fqName+"_mean_seconds", prometheus.GaugeValue, s.Mean()/float64(time.Second))
		}
	})
}

func constMetric(name string, ty prometheus.ValueType, v float64) prometheus.Metric {
	desc := prometheus.NewDesc(name, name, nil, nil)
	return prometheus.MustNewConstMetric(desc, ty, v)
}

// Handler serves r in the prometheus text format
func Handler(r go_metrics.Registry) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector(r))
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
