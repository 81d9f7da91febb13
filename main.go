// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package main

import (
	"context"
	"stockcharts/cache"
	"stockcharts/config"
	"stockcharts/stockviz"

	"gioui.org/app"
	"github.com/sirupsen/logrus"
)

func main() {
	c := config.NewGlobalConfig()
	sessionCache, err := cache.NewLocalSessionCache()
	if err != nil {
		logrus.WithError(err).Fatal("Unable to initialize cache.")
	}
	a := stockviz.NewChartApp(c, sessionCache)
	if err := a.Initialize(); err != nil {
		logrus.WithError(err).Fatal("Unable to initialize chart viewer.")
	}
	go a.Run(context.Background())
	app.Main()
}
