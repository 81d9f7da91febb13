// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"sort"
	"stockcharts/calendar"
	"stockcharts/scale"
	"stockcharts/stockplot"
	"stockcharts/stockval"
	"stockcharts/surface"
	"time"
)

const (
	StaticChartClass  = "line-chart"
	DynamicChartClass = "line-chart dynamic"
)

// DynamicChart is the handle of an intraday chart on one surface. It keeps the
// scales derived when the chart was built and the bars drawn so far, so that
// updates only touch what changed. Calls must be serialized by the caller.
type DynamicChart struct {
	dst     surface.Surface
	opts    Options
	session calendar.Session
	area    stockplot.PlotArea
	scales  stockplot.Scales
	axes    []surface.ElementID
	line    surface.ElementID
	bars    map[string]stockplot.DrawnBar
	state   surface.State
}

// NewDynamicChart builds an intraday chart on dst, replacing whatever dst contains.
// Nothing is drawn if data is invalid or dst is too small.
func NewDynamicChart(dst surface.Surface, data stockval.IntradayData, opts Options) (*DynamicChart, error) {
	d := &DynamicChart{dst: dst, opts: opts.withDefaults()}
	if err := d.build(data); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DynamicChart) build(data stockval.IntradayData) error {
	start := time.Now()
	now := d.opts.Now()
	session := d.opts.Sessions.SessionFor(now)
	records, err := data.PlotRecords(session.Open)
	if err != nil {
		chartRenderErrorMetrics.WithLabelValues("dynamic").Inc()
		return err
	}
	width, height := d.dst.Size()
	area := stockplot.NewPlotArea(width, height, d.opts.Margins)
	if area.Empty() {
		chartRenderErrorMetrics.WithLabelValues("dynamic").Inc()
		return ErrZeroSizedSurface
	}

	d.session = session
	d.area = area
	d.dst.Clear()
	d.dst.CreateRoot(DynamicChartClass, area.Origin())
	d.scales = stockplot.BuildSessionScales(records, session, area)
	d.axes = stockplot.DrawAxes(d.dst, d.scales, area, stockplot.DynamicTimeTicks, scale.ClockFormat)
	d.line = stockplot.DrawPriceLine(d.dst, records, d.scales, d.opts.Style)
	d.bars = make(map[string]stockplot.DrawnBar, len(records))
	d.addBars(records, now)
	d.state = surface.Present

	log.WithField("surface", d.dst.ID()).Debugf("Built intraday chart with %d minutes.", len(records))
	chartRenderMetrics.WithLabelValues("dynamic", "build").Inc()
	chartRenderDurationMetrics.WithLabelValues("dynamic").Observe(time.Since(start).Seconds())
	return nil
}

func (d *DynamicChart) addBars(records []stockval.PlotRecord, now time.Time) {
	drawn := stockplot.DrawBars(d.dst, records, d.scales, d.area, d.opts.Style, d.opts.Style.EnterTransition(now))
	for _, b := range drawn {
		d.bars[b.Key] = b
	}
	chartBarsCreatedMetrics.WithLabelValues("dynamic").Add(float64(len(drawn)))
}

// Update applies a new snapshot of the session. The line is replaced, bars are
// added for new minutes only. If the surface was cleared since the last call,
// the chart is built again.
func (d *DynamicChart) Update(data stockval.IntradayData) error {
	if d.dst.FindExisting() == surface.Absent {
		log.WithField("surface", d.dst.ID()).Warn("Intraday chart was removed from its surface, rebuilding.")
		return d.build(data)
	}
	start := time.Now()
	records, err := data.PlotRecords(d.session.Open)
	if err != nil {
		chartRenderErrorMetrics.WithLabelValues("dynamic").Inc()
		return err
	}

	if d.opts.Domains == RecomputeDomains {
		d.scales = d.scales.WithValueDomains(records, d.area)
		d.redrawAxes()
	}

	if err := d.dst.Remove(d.line); err != nil {
		log.WithError(err).Warn("Could not remove price line.")
	}
	d.line = stockplot.DrawPriceLine(d.dst, records, d.scales, d.opts.Style)

	refresh := d.opts.BarUpdate == RefreshExisting || d.opts.Domains == RecomputeDomains
	var entering []stockval.PlotRecord
	for _, r := range records {
		bar, exists := d.bars[r.Key]
		if !exists {
			entering = append(entering, r)
		} else if refresh {
			d.refreshBar(bar, r)
		}
	}
	d.addBars(entering, d.opts.Now())

	chartRenderMetrics.WithLabelValues("dynamic", "update").Inc()
	chartRenderDurationMetrics.WithLabelValues("dynamic").Observe(time.Since(start).Seconds())
	return nil
}

func (d *DynamicChart) redrawAxes() {
	for _, id := range d.axes {
		if err := d.dst.Remove(id); err != nil {
			log.WithError(err).Warn("Could not remove axis.")
		}
	}
	d.axes = stockplot.DrawAxes(d.dst, d.scales, d.area, stockplot.DynamicTimeTicks, scale.ClockFormat)
}

// A running enter transition continues towards the new height.
func (d *DynamicChart) refreshBar(bar stockplot.DrawnBar, r stockval.PlotRecord) {
	rect, ok := stockplot.BarGeometry(r, d.scales, d.area, d.opts.Style)
	if !ok {
		return
	}
	rect.Transition = bar.Rect.Transition
	if rect == bar.Rect {
		return
	}
	if err := d.dst.UpdateRect(bar.ID, rect); err != nil {
		log.WithError(err).WithField("key", r.Key).Warn("Could not update volume bar.")
		return
	}
	bar.Rect = rect
	d.bars[r.Key] = bar
}

func (d *DynamicChart) State() surface.State {
	return d.state
}

func (d *DynamicChart) Surface() surface.Surface {
	return d.dst
}

func (d *DynamicChart) Session() calendar.Session {
	return d.session
}

// Scales returns a copy of the scales in use.
func (d *DynamicChart) Scales() stockplot.Scales {
	return d.scales
}

// BarKeys returns the minutes that have a bar, in chronological order.
func (d *DynamicChart) BarKeys() []string {
	keys := make([]string, 0, len(d.bars))
	for k := range d.bars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
