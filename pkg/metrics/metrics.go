// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package metrics records Prometheus metrics for nagcfg runs.
//
// nagcfg is a one-shot command, so metrics live on a dedicated registry and
// are exported through the node-exporter textfile collector rather than an
// HTTP endpoint:
//
//	defer metrics.WriteTextfile("/var/lib/node_exporter/nagcfg.prom")
//
// WriteTextfile writes atomically, so a scraping node-exporter never sees a
// partial file.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Registry holds every nagcfg collector.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	buildTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nagcfg_build_total",
			Help: "Total number of resolve and render attempts",
		},
		[]string{"status"},
	)

	buildDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "nagcfg_build_duration_seconds",
			Help:    "Time taken to resolve and render the artifacts",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	fileChanges = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nagcfg_install_file_changes_total",
			Help: "Planned file changes by action",
		},
		[]string{"action"},
	)

	packagesInstalled = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "nagcfg_install_packages_total",
			Help: "Packages installed by the package manager",
		},
	)

	reloads = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nagcfg_install_reloads_total",
			Help: "systemd reloads triggered, by kind",
		},
		[]string{"kind"}, // daemon or service
	)

	installDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nagcfg_install_duration_seconds",
			Help:    "Time taken to apply an install plan",
			Buckets: []float64{0.1, 1, 5, 30, 60, 300, 600},
		},
		[]string{"status"},
	)

	lastRun = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "nagcfg_last_run_timestamp_seconds",
			Help: "Unix time of the last completed run",
		},
	)
)

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusSuccess
}

// ObserveBuild records one build started at start.
func ObserveBuild(start time.Time, err error) {
	buildTotal.WithLabelValues(status(err)).Inc()
	buildDuration.Observe(time.Since(start).Seconds())
	lastRun.SetToCurrentTime()
}

// ObserveChange records one planned file change.
func ObserveChange(action string) {
	fileChanges.WithLabelValues(action).Inc()
}

// ObservePackages records n installed packages.
func ObservePackages(n int) {
	packagesInstalled.Add(float64(n))
}

// ObserveReload records a reload of kind "daemon" or "service".
func ObserveReload(kind string) {
	reloads.WithLabelValues(kind).Inc()
}

// ObserveInstall records one apply started at start.
func ObserveInstall(start time.Time, err error) {
	installDuration.WithLabelValues(status(err)).Observe(time.Since(start).Seconds())
	lastRun.SetToCurrentTime()
}

// WriteTextfile writes the registry in text exposition format to path.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
