// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"context"
	"stockcharts/stockapi"
	"stockcharts/stockval"
	"stockcharts/stockviz"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	StaticCommand.Flags().String("url", "", "request the daily data from this url instead of a file")
	StaticCommand.Flags().String("symbol", "", "the symbol to request, e.g. SPY")
	StaticCommand.Flags().String("range", "3m", "the range to request, e.g. 1w, 3m, 1y")
	StaticCommand.Flags().String("api-key", "", "api key of the daily data server")
	StaticCommand.Flags().Duration("timeout", 10*time.Second, "timeout of the daily data request")
	RootCmd.AddCommand(StaticCommand)
}

var StaticCommand = &cobra.Command{
	Use:   "static [daily.json] [--url=[url] --symbol=[symbol]]",
	Short: "render the daily price and volume chart",
	Args:  cobra.MaximumNArgs(1),
	RunE:  renderStatic,
}

func loadDaily(cmd *cobra.Command, args []string) (stockval.DailyData, error) {
	var data stockval.DailyData
	if len(args) == 1 {
		return data, readDataset(args[0], &data)
	}
	dataUrl, err := cmd.Flags().GetString("url")
	if err != nil {
		return data, err
	}
	symbol, err := cmd.Flags().GetString("symbol")
	if err != nil {
		return data, err
	}
	if dataUrl == "" || symbol == "" {
		return data, errors.New("either a daily file or --url and --symbol are required")
	}
	rangeName, _ := cmd.Flags().GetString("range")
	apiKey, _ := cmd.Flags().GetString("api-key")
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return data, err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()
	return stockapi.NewDailyClient(dataUrl, apiKey, timeout).FetchDaily(ctx, symbol, rangeName)
}

func renderStatic(cmd *cobra.Command, args []string) error {
	data, err := loadDaily(cmd, args)
	if err != nil {
		return err
	}
	opts, err := chartOptions(cmd)
	if err != nil {
		return err
	}
	target, err := newRenderTarget(cmd)
	if err != nil {
		return err
	}
	if err := stockviz.NewController(opts).RenderStatic(target.canvas, data); err != nil {
		return err
	}
	return target.write(time.Now())
}
