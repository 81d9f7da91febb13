// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"stockcharts/cache"
	"stockcharts/config"
	"stockcharts/stockapi"
	"stockcharts/stockplot"
	"stockcharts/stockval"
	"stockcharts/surface"
	"stockcharts/widgets"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// connector is implemented by feeds which need a connection before subscribing.
type connector interface {
	Connect(ctx context.Context) error
}

// ChartApp shows the live intraday chart of one symbol, optionally together
// with the daily chart.
type ChartApp struct {
	config       config.Config
	appConfig    config.AppConfig
	ctrl         *Controller
	book         *stockapi.MinuteBook
	feed         stockapi.IntradayFeed
	publisher    *stockapi.Publisher[stockval.IntradayData]
	updates      <-chan stockval.IntradayData
	pending      *stockval.IntradayData
	pendingMutex sync.Mutex
	updater      *SessionUpdater
	sessionCache cache.SessionCache
	intraday     *surface.Canvas
	daily        *surface.Canvas
	dailyData    stockval.DailyData
	lastData     stockval.IntradayData
	intradayView *widgets.ChartView
	dailyView    *widgets.ChartView
	messageField *widgets.MessageField
	message      string
	messageMutex sync.Mutex
	plotTheme    *widgets.PlotTheme
	matTheme     *material.Theme
	win          *app.Window
	terminateWg  sync.WaitGroup
}

func NewChartApp(c config.Config, sessionCache cache.SessionCache) *ChartApp {
	return &ChartApp{
		config:       c,
		book:         stockapi.NewMinuteBook(),
		publisher:    stockapi.NewPublisher[stockval.IntradayData](1),
		sessionCache: sessionCache,
		intraday:     surface.NewCanvas("intraday", 0, 0),
		daily:        surface.NewCanvas("daily", 0, 0),
	}
}

func (a *ChartApp) Initialize() error {
	var err error
	a.appConfig, err = a.config.Copy(false)
	if err != nil {
		return err
	}
	opts, err := OptionsFromConfig(a.appConfig.ChartConfig)
	if err != nil {
		return err
	}
	a.ctrl = NewController(opts)

	if a.appConfig.LightTheme {
		a.plotTheme = widgets.NewLightPlotTheme()
		a.matTheme = widgets.NewLightMaterialTheme()
	} else {
		a.plotTheme = widgets.NewDarkPlotTheme()
		a.matTheme = widgets.NewDarkMaterialTheme()
	}
	a.messageField = widgets.NewMessageField(a.plotTheme)
	a.intradayView = widgets.NewChartView(a.intraday, a.plotTheme)
	a.intradayView.OnResize = func(width, height float64) { a.redrawIntraday() }
	a.dailyView = widgets.NewChartView(a.daily, a.plotTheme)
	a.dailyView.OnResize = func(width, height float64) { a.redrawDaily() }

	fc := a.appConfig.FeedConfig
	a.feed, err = newFeed(fc, a.book)
	if err != nil {
		return err
	}
	if err := a.feed.Subscribe(fc.Symbol); err != nil && !errors.Is(err, stockapi.ErrNotConnected) {
		return err
	}
	a.updates, err = a.publisher.Subscribe(fc.Symbol)
	if err != nil {
		return err
	}
	a.updater = NewSessionUpdater(a.book, a.ctrl.Options().Sessions, a.publisher)

	// Restore the minutes received before a restart.
	if cached, ok := a.sessionCache.Load(fc.Symbol, a.sessionDay()); ok {
		log.Infof("Restored %d cached minutes of %s.", cached.Len(), fc.Symbol)
		a.book.Replace(fc.Symbol, cached)
	}

	if a.appConfig.WindowConfig.ShowDaily {
		return a.loadDaily()
	}
	return nil
}

func (a *ChartApp) loadDaily() error {
	if file := a.appConfig.WindowConfig.DailyFile; file != "" {
		return readJSONFile(file, &a.dailyData)
	}
	fc := a.appConfig.FeedConfig
	if fc.DailyUrl == "" {
		return errors.New("daily chart requires a daily file or a daily url")
	}
	timeout := time.Duration(fc.DataTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	var err error
	a.dailyData, err = stockapi.NewDailyClient(fc.DailyUrl, fc.ApiKey, timeout).FetchDaily(ctx, fc.Symbol, fc.DailyRange)
	return err
}

func newFeed(fc config.FeedConfig, book *stockapi.MinuteBook) (stockapi.IntradayFeed, error) {
	if fc.IsReplay() {
		var data stockval.IntradayData
		if err := readJSONFile(fc.ReplayFile, &data); err != nil {
			return nil, err
		}
		return stockapi.NewReplayFeed(data, time.Duration(fc.ReplayIntervalMs)*time.Millisecond, book), nil
	}
	return stockapi.NewMinuteFeed(fc.WsUrl, fc.ApiKey, book), nil
}

func readJSONFile(fileName string, v any) error {
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return errors.Wrap(err, "could not read data file")
	}
	return errors.Wrapf(json.Unmarshal(raw, v), "invalid data file %s", fileName)
}

func (a *ChartApp) sessionDay() time.Time {
	return a.ctrl.Options().Sessions.SessionFor(a.ctrl.Options().Now()).Open
}

func (a *ChartApp) setMessage(msg string) {
	a.messageMutex.Lock()
	a.message = msg
	a.messageMutex.Unlock()
}

func (a *ChartApp) getMessage() string {
	a.messageMutex.Lock()
	defer a.messageMutex.Unlock()
	return a.message
}

func (a *ChartApp) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	a.createWindow()
	a.startBackground(ctx)
	err := a.handleEvents(ctx)
	if err != nil {
		log.WithError(err).Error("Terminating with error.")
	}
	cancel()
	a.terminate()
	os.Exit(0)
}

func (a *ChartApp) createWindow() {
	size := a.appConfig.WindowConfig.Size
	a.win = app.NewWindow(
		app.Title(a.config.GetAppName()+" "+a.appConfig.FeedConfig.Symbol),
		app.Size(unit.Dp(size.X), unit.Dp(size.Y)),
	)
}

func (a *ChartApp) startBackground(ctx context.Context) {
	if err := a.updater.Start(a.appConfig.FeedConfig.UpdateSchedule); err != nil {
		log.WithError(err).Error("Invalid update schedule, the chart will not be updated.")
		a.setMessage("Invalid update schedule.")
	}

	a.terminateWg.Add(2)
	go func() {
		defer a.terminateWg.Done()
		a.runFeed(ctx)
	}()
	go func() {
		defer a.terminateWg.Done()
		a.forwardUpdates()
	}()

	if addr := a.appConfig.MetricsAddr; addr != "" {
		srv := &http.Server{Addr: addr, Handler: promhttp.Handler()}
		a.terminateWg.Add(2)
		go func() {
			defer a.terminateWg.Done()
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.WithError(err).Error("Metrics server failed.")
			}
		}()
		go func() {
			defer a.terminateWg.Done()
			<-ctx.Done()
			srv.Close()
		}()
	}
}

// runFeed keeps the feed running, reconnecting after failures.
func (a *ChartApp) runFeed(ctx context.Context) {
	symbol := a.appConfig.FeedConfig.Symbol
	for {
		err := a.connectFeed(ctx, symbol)
		if err == nil {
			err = a.feed.Run(ctx)
		}
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			// Replay has finished.
			return
		}
		log.WithError(err).Warn("Intraday feed failed, retrying.")
		a.setMessage("Intraday feed is not available: " + err.Error())
		a.invalidate()
		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (a *ChartApp) connectFeed(ctx context.Context, symbol string) error {
	c, ok := a.feed.(connector)
	if !ok {
		return nil
	}
	if err := c.Connect(ctx); err != nil {
		return err
	}
	if err := a.feed.Subscribe(symbol); err != nil {
		return err
	}
	a.setMessage("")
	return nil
}

func (a *ChartApp) invalidate() {
	if a.win != nil {
		a.win.Invalidate()
	}
}

// forwardUpdates hands published snapshots to the frame loop. Only the newest
// snapshot is kept; it returns when the publisher is closed.
func (a *ChartApp) forwardUpdates() {
	for data := range a.updates {
		data := data
		a.pendingMutex.Lock()
		a.pending = &data
		a.pendingMutex.Unlock()
		a.invalidate()
	}
}

// applyPending renders the newest forwarded snapshot, if any. The canvases are
// only mutated from the frame loop.
func (a *ChartApp) applyPending() {
	a.pendingMutex.Lock()
	data := a.pending
	a.pending = nil
	a.pendingMutex.Unlock()
	if data != nil {
		a.applyUpdate(*data)
	}
}

func (a *ChartApp) handleEvents(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.win.Perform(system.ActionClose)
		case <-done:
		}
	}()

	var ops op.Ops
	for {
		switch e := a.win.NextEvent().(type) {
		case system.FrameEvent:
			a.applyPending()
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, a.matTheme.Bg)
			a.layout(gtx)
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
}

// applyUpdate renders a new snapshot of the session and caches it.
func (a *ChartApp) applyUpdate(data stockval.IntradayData) {
	a.lastData = data
	err := a.ctrl.RenderDynamic(a.intraday, data)
	if err != nil && !errors.Is(err, ErrZeroSizedSurface) {
		log.WithError(err).Warn("Could not render intraday chart.")
		a.setMessage("Invalid intraday data: " + err.Error())
		return
	}
	symbol := a.appConfig.FeedConfig.Symbol
	if err := a.sessionCache.Store(symbol, a.sessionDay(), data); err != nil {
		log.WithError(err).Warn("Could not cache intraday data.")
	}
}

func (a *ChartApp) redrawIntraday() {
	a.ctrl.Forget(a.intraday)
	a.intraday.Clear()
	if a.lastData.Len() == 0 {
		return
	}
	if err := a.ctrl.RenderDynamic(a.intraday, a.lastData); err != nil && !errors.Is(err, ErrZeroSizedSurface) {
		log.WithError(err).Warn("Could not render intraday chart.")
	}
}

func (a *ChartApp) redrawDaily() {
	if a.dailyData.Len() == 0 {
		return
	}
	if err := a.ctrl.RenderStatic(a.daily, a.dailyData); err != nil && !errors.Is(err, ErrZeroSizedSurface) {
		log.WithError(err).Warn("Could not render daily chart.")
	}
}

func (a *ChartApp) layout(gtx layout.Context) {
	symbol := a.appConfig.FeedConfig.Symbol
	intradayFrame := widgets.NewFrame(a.plotTheme, symbol+" intraday")
	if a.lastData.Len() > 0 {
		last := a.lastData.Minutes[a.lastData.Len()-1]
		intradayFrame.Subtitle = last.Minute + "  " + stockplot.FormatPrice(last.Average, 2)
	}
	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return a.messageField.Layout(a.getMessage(), gtx, a.matTheme)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return intradayFrame.Layout(gtx, a.matTheme, func(gtx layout.Context) layout.Dimensions {
				return a.intradayView.Layout(gtx, a.matTheme)
			})
		}),
	}
	if a.dailyData.Len() > 0 {
		dailyFrame := widgets.NewFrame(a.plotTheme, symbol+" daily")
		dailyFrame.Subtitle = a.dailyData.Range
		children = append(children,
			layout.Rigid(widgets.Divider(a.matTheme, unit.Dp(widgets.DefaultMargin/2)).Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				return dailyFrame.Layout(gtx, a.matTheme, func(gtx layout.Context) layout.Dimensions {
					return a.dailyView.Layout(gtx, a.matTheme)
				})
			}),
		)
	}
	layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

func (a *ChartApp) terminate() {
	a.updater.Stop()
	a.publisher.Close()
	a.terminateWg.Wait()
}
