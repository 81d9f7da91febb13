// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockapi

import (
	"context"
	"net/http"
	"net/url"
	"stockcharts/stockval"
	"stockcharts/webclient"
	"time"

	"github.com/pkg/errors"
)

// DailyClient requests daily closing prices and volumes over HTTP. The
// server is expected to answer GET <url>?symbol=<symbol>&range=<range> with a
// daily dataset.
type DailyClient struct {
	url     string
	apiKey  string
	client  *http.Client
	limiter *webclient.RateLimiter
}

func NewDailyClient(dataUrl, apiKey string, timeout time.Duration) *DailyClient {
	return &DailyClient{
		url:     dataUrl,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		limiter: webclient.NewRateLimiter(),
	}
}

func (c *DailyClient) FetchDaily(ctx context.Context, symbol string, rangeName string) (stockval.DailyData, error) {
	query := url.Values{}
	query.Set("symbol", symbol)
	if rangeName != "" {
		query.Set("range", rangeName)
	}
	if c.apiKey != "" {
		query.Set("token", c.apiKey)
	}
	var data stockval.DailyData
	if err := webclient.GetJson(ctx, c.client, c.limiter, c.url+"?"+query.Encode(), &data); err != nil {
		return stockval.DailyData{}, errors.Wrapf(err, "could not fetch daily data of %s", symbol)
	}
	if data.Range == "" {
		data.Range = rangeName
	}
	log.Infof("Received %d days of %s.", data.Len(), symbol)
	return data, nil
}
