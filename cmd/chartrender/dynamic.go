// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"stockcharts/calendar"
	"stockcharts/stockval"
	"stockcharts/stockviz"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	DynamicCommand.Flags().String("day", "", "session date, e.g. 2023-08-08 (default today)")
	DynamicCommand.Flags().Bool("replay", false, "feed the minutes one by one to exercise incremental updates")
	DynamicCommand.Flags().String("bar-update", "", "bar update policy: enter-only or refresh-existing")
	DynamicCommand.Flags().String("domains", "", "domain policy: fixed or recompute")
	DynamicCommand.Flags().Duration("frame", -1, "time after the last update at which the image is taken (default: after the bar animation)")
	RootCmd.AddCommand(DynamicCommand)
}

var DynamicCommand = &cobra.Command{
	Use:   "dynamic <intraday.json>",
	Short: "render the intraday chart of one session",
	Args:  cobra.ExactArgs(1),
	RunE:  renderDynamic,
}

func dynamicOptions(cmd *cobra.Command) (stockviz.Options, error) {
	opts, err := chartOptions(cmd)
	if err != nil {
		return opts, err
	}
	if s, _ := cmd.Flags().GetString("bar-update"); s != "" {
		if opts.BarUpdate, err = stockviz.ParseBarUpdatePolicy(s); err != nil {
			return opts, err
		}
	}
	if s, _ := cmd.Flags().GetString("domains"); s != "" {
		if opts.Domains, err = stockviz.ParseDomainPolicy(s); err != nil {
			return opts, err
		}
	}

	nyse := calendar.NewNYSECalendar()
	opts.Sessions = nyse
	day, err := cmd.Flags().GetString("day")
	if err != nil {
		return opts, err
	}
	if day != "" {
		t, err := time.ParseInLocation(stockval.DateKeyFormat, day, nyse.Location())
		if err != nil {
			return opts, errors.Wrap(err, "invalid session date")
		}
		noon := t.Add(12 * time.Hour)
		opts.Now = func() time.Time { return noon }
	}
	return opts, nil
}

func renderDynamic(cmd *cobra.Command, args []string) error {
	var data stockval.IntradayData
	if err := readDataset(args[0], &data); err != nil {
		return err
	}
	opts, err := dynamicOptions(cmd)
	if err != nil {
		return err
	}
	target, err := newRenderTarget(cmd)
	if err != nil {
		return err
	}
	replay, err := cmd.Flags().GetBool("replay")
	if err != nil {
		return err
	}

	ctrl := stockviz.NewController(opts)
	if replay {
		for n := 1; n <= data.Len(); n++ {
			if err := ctrl.RenderDynamic(target.canvas, data.Prefix(n)); err != nil {
				return errors.Wrapf(err, "replay of minute %d failed", n)
			}
		}
		log.Infof("Replayed %d minutes.", data.Len())
	} else if err := ctrl.RenderDynamic(target.canvas, data); err != nil {
		return err
	}

	frame, err := cmd.Flags().GetDuration("frame")
	if err != nil {
		return err
	}
	if frame < 0 {
		frame = ctrl.Options().Style.BarAnimation
	}
	return target.write(ctrl.Options().Now().Add(frame))
}
