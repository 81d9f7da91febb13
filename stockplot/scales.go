// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockplot

import (
	"stockcharts/calendar"
	"stockcharts/scale"
	"stockcharts/stockval"
)

// Scales is the coordinate mapping of one chart. X positions the line,
// Band positions the volume bars.
type Scales struct {
	X      scale.Time
	Price  scale.Linear
	Volume scale.Linear
	Band   scale.Band
}

func recordPrice(r stockval.PlotRecord) float64 {
	return r.Price
}

func recordVolume(r stockval.PlotRecord) float64 {
	return r.Volume
}

// PriceDomain returns the price extent with headroom above and below.
func PriceDomain(records []stockval.PlotRecord) (lo, hi float64) {
	lo, hi, _ = stockval.Extent(records, recordPrice)
	pad := stockval.PricePadding(lo, hi)
	return lo - pad, hi + pad
}

// VolumeDomain returns the volume extent. If all volumes are equal, the
// domain starts at zero so that bars remain visible.
func VolumeDomain(records []stockval.PlotRecord) (lo, hi float64) {
	lo, hi, _ = stockval.Extent(records, recordVolume)
	if stockval.IsDegenerate(lo, hi) {
		if hi > 0 {
			return 0, hi
		}
		return 0, 1
	}
	return lo, hi
}

func priceScale(records []stockval.PlotRecord, area PlotArea) scale.Linear {
	lo, hi := PriceDomain(records)
	return scale.NewLinear(lo, hi, area.Height*PriceRegionRatio, 0)
}

func volumeScale(records []stockval.PlotRecord, area PlotArea) scale.Linear {
	lo, hi := VolumeDomain(records)
	return scale.NewLinear(lo, hi, area.Height, area.Height*VolumeRegionRatio)
}

// BuildDailyScales derives the scales of the historical chart. The time domain
// spans the first to the last record. records must not be empty.
func BuildDailyScales(records []stockval.PlotRecord, area PlotArea) Scales {
	keys := make([]string, len(records))
	for i, r := range records {
		keys[i] = r.Key
	}
	return Scales{
		X:      scale.NewTime(records[0].Time, records[len(records)-1].Time, 0, area.Width),
		Price:  priceScale(records, area),
		Volume: volumeScale(records, area),
		Band:   scale.NewBand(keys, 0, area.Width, BandPadding, true),
	}
}

// BuildSessionScales derives the scales of the intraday chart. The time domain
// and the bands cover the whole session, independent of how many minutes were
// received so far. records must not be empty.
func BuildSessionScales(records []stockval.PlotRecord, session calendar.Session, area PlotArea) Scales {
	return Scales{
		X:      scale.NewTime(session.Open, session.Close, 0, area.Width),
		Price:  priceScale(records, area),
		Volume: volumeScale(records, area),
		Band:   scale.NewBand(session.MinuteKeys(), 0, area.Width, BandPadding, true),
	}
}

// WithValueDomains returns a copy with price and volume scales derived from records,
// keeping the horizontal scales.
func (s Scales) WithValueDomains(records []stockval.PlotRecord, area PlotArea) Scales {
	s.Price = priceScale(records, area)
	s.Volume = volumeScale(records, area)
	return s
}
