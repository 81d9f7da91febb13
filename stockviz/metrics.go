// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import "github.com/prometheus/client_golang/prometheus"

var chartRenderMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stockcharts_render_total",
		Help: "number of chart render calls by chart kind and render path",
	}, []string{"chart", "path"})

var chartRenderErrorMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stockcharts_render_errors_total",
		Help: "number of rejected chart render calls",
	}, []string{"chart"})

var chartBarsCreatedMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stockcharts_bars_created_total",
		Help: "number of volume bars added to surfaces",
	}, []string{"chart"})

var chartRenderDurationMetrics = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "stockcharts_render_duration_seconds",
		Help:    "duration of chart render calls",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"chart"})

var sessionPublishMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "stockcharts_session_updates_total",
		Help: "number of intraday snapshots published to subscribers",
	}, []string{"symbol"})

func init() {
	prometheus.MustRegister(
		chartRenderMetrics,
		chartRenderErrorMetrics,
		chartBarsCreatedMetrics,
		chartRenderDurationMetrics,
		sessionPublishMetrics,
	)
}
