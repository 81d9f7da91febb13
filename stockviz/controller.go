// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"stockcharts/scale"
	"stockcharts/stockplot"
	"stockcharts/stockval"
	"stockcharts/surface"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zhangyunhao116/skipmap"
)

var log = logrus.WithField("component", "stockviz")

// Controller renders charts onto surfaces. It keeps one intraday chart handle
// per surface id. Calls for the same surface must be serialized by the caller,
// calls for different surfaces may run concurrently.
type Controller struct {
	opts   Options
	charts *skipmap.StringMap[*DynamicChart]
}

func NewController(opts Options) *Controller {
	return &Controller{
		opts:   opts.withDefaults(),
		charts: skipmap.NewString[*DynamicChart](),
	}
}

func (c *Controller) Options() Options {
	return c.opts
}

// RenderStatic draws the historical chart, replacing the content of dst.
// Rendering the same data twice yields the same surface.
func (c *Controller) RenderStatic(dst surface.Surface, data stockval.DailyData) error {
	start := time.Now()
	records, err := data.PlotRecords()
	if err != nil {
		chartRenderErrorMetrics.WithLabelValues("static").Inc()
		return err
	}
	width, height := dst.Size()
	area := stockplot.NewPlotArea(width, height, c.opts.Margins)
	if area.Empty() {
		chartRenderErrorMetrics.WithLabelValues("static").Inc()
		return ErrZeroSizedSurface
	}

	// An intraday handle does not survive a static chart on the same surface.
	c.charts.LoadAndDelete(dst.ID())

	dst.Clear()
	dst.CreateRoot(StaticChartClass, area.Origin())
	s := stockplot.BuildDailyScales(records, area)
	stockplot.DrawAxes(dst, s, area, stockplot.StaticTimeTicks, scale.MultiFormat)
	stockplot.DrawPriceLine(dst, records, s, c.opts.Style)
	bars := stockplot.DrawBars(dst, records, s, area, c.opts.Style, nil)

	log.WithField("surface", dst.ID()).Debugf("Rendered daily chart with %d days.", len(records))
	chartRenderMetrics.WithLabelValues("static", "build").Inc()
	chartBarsCreatedMetrics.WithLabelValues("static").Add(float64(len(bars)))
	chartRenderDurationMetrics.WithLabelValues("static").Observe(time.Since(start).Seconds())
	return nil
}

// RenderDynamic draws the intraday chart. The first call on a surface builds
// the chart; later calls update it incrementally.
func (c *Controller) RenderDynamic(dst surface.Surface, data stockval.IntradayData) error {
	state := dst.FindExisting()
	if chart, ok := c.charts.Load(dst.ID()); ok {
		// Update rebuilds if the surface was cleared.
		return chart.Update(data)
	}
	if state == surface.Present {
		log.WithField("surface", dst.ID()).Warn("Surface carries a chart without intraday handle, rebuilding.")
	}
	chart, err := NewDynamicChart(dst, data, c.opts)
	if err != nil {
		return err
	}
	c.charts.Store(dst.ID(), chart)
	return nil
}

// Chart returns the intraday handle of dst, if any.
func (c *Controller) Chart(dst surface.Surface) (*DynamicChart, bool) {
	return c.charts.Load(dst.ID())
}

// Forget drops the intraday handle of dst. The surface content is not touched.
func (c *Controller) Forget(dst surface.Surface) {
	c.charts.LoadAndDelete(dst.ID())
}
