// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"encoding/json"
	"os"
	"stockcharts/chartexport"
	"stockcharts/config"
	"stockcharts/stockviz"
	"stockcharts/surface"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.WithField("component", "chartrender")

func init() {
	RootCmd.PersistentFlags().Float64("width", 800, "total chart width in pixels")
	RootCmd.PersistentFlags().Float64("height", 600, "total chart height in pixels")
	RootCmd.PersistentFlags().StringP("output", "o", "chart.svg", "output file, .svg or .png")
	RootCmd.PersistentFlags().Bool("use-config", false, "use the chart settings of the global configuration")
	RootCmd.PersistentFlags().String("config", "", "configuration file to use instead of the global one, implies --use-config")
	RootCmd.PersistentFlags().String("log-level", "info", "log level, e.g. debug, info, warn")
}

var RootCmd = &cobra.Command{
	Use:           "chartrender",
	Short:         "render stock price and volume charts to SVG or PNG",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		logrus.SetLevel(lvl)
		return nil
	},
}

type renderTarget struct {
	canvas *surface.Canvas
	output string
	format chartexport.Format
}

func newRenderTarget(cmd *cobra.Command) (renderTarget, error) {
	width, err := cmd.Flags().GetFloat64("width")
	if err != nil {
		return renderTarget{}, err
	}
	height, err := cmd.Flags().GetFloat64("height")
	if err != nil {
		return renderTarget{}, err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return renderTarget{}, err
	}
	format, err := chartexport.FormatFromFileName(output)
	if err != nil {
		return renderTarget{}, err
	}
	return renderTarget{canvas: surface.NewCanvas(output, width, height), output: output, format: format}, nil
}

func (t renderTarget) write(at time.Time) error {
	file, err := os.Create(t.output)
	if err != nil {
		return errors.Wrap(err, "could not create output file")
	}
	defer file.Close()
	if err := chartexport.Render(file, t.canvas, at, t.format, chartexport.DefaultOptions()); err != nil {
		return err
	}
	log.Infof("Chart was written to %s.", t.output)
	return file.Close()
}

// chartOptions returns the default options or those of the global configuration.
func chartOptions(cmd *cobra.Command) (stockviz.Options, error) {
	useConfig, err := cmd.Flags().GetBool("use-config")
	if err != nil {
		return stockviz.Options{}, err
	}
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return stockviz.Options{}, err
	}
	if !useConfig && configFile == "" {
		return stockviz.DefaultOptions(), nil
	}
	appConfig, err := config.NewGlobalConfigFile(configFile).Copy(false)
	if err != nil {
		return stockviz.Options{}, err
	}
	return stockviz.OptionsFromConfig(appConfig.ChartConfig)
}

func readDataset(fileName string, v any) error {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return errors.Wrap(err, "could not read dataset")
	}
	return errors.Wrapf(json.Unmarshal(raw, v), "invalid dataset %s", fileName)
}
