// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockviz

import (
	"stockcharts/stockapi"
	"stockcharts/stockval"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
)

// Once per minute, matching the resolution of intraday data.
const DefaultUpdateSchedule = "* * * * *"

// SnapshotSource provides the intraday data received so far.
type SnapshotSource interface {
	Symbols() []string
	Snapshot(symbol string) (stockval.IntradayData, bool)
}

// SessionUpdater periodically publishes changed intraday snapshots to the
// subscribers of a symbol, e.g. the chart view.
type SessionUpdater struct {
	cron      *cron.Cron
	source    SnapshotSource
	sessions  SessionSource
	publisher *stockapi.Publisher[stockval.IntradayData]
	now       func() time.Time
	mutex     sync.Mutex
	published map[string]snapshotMark
}

// snapshotMark identifies a snapshot by its size and its latest minute.
type snapshotMark struct {
	count int
	last  stockval.MinuteRecord
}

func NewSessionUpdater(source SnapshotSource, sessions SessionSource, publisher *stockapi.Publisher[stockval.IntradayData]) *SessionUpdater {
	logger := cron.PrintfLogger(log)
	return &SessionUpdater{
		cron:      cron.New(cron.WithLogger(logger), cron.WithChain(cron.SkipIfStillRunning(logger))),
		source:    source,
		sessions:  sessions,
		publisher: publisher,
		now:       time.Now,
		published: make(map[string]snapshotMark),
	}
}

// Start schedules updates. An empty schedule uses DefaultUpdateSchedule.
func (u *SessionUpdater) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultUpdateSchedule
	}
	if _, err := u.cron.AddFunc(schedule, u.Tick); err != nil {
		return err
	}
	u.cron.Start()
	log.Infof("Session updater started with schedule %q.", schedule)
	return nil
}

func (u *SessionUpdater) Stop() {
	<-u.cron.Stop().Done()
	log.Info("Session updater stopped.")
}

// Tick publishes the snapshot of every symbol whose data changed since the last tick.
func (u *SessionUpdater) Tick() {
	u.mutex.Lock()
	defer u.mutex.Unlock()

	now := u.now()
	state := u.sessions.SessionFor(now).State(now)
	for _, symbol := range u.source.Symbols() {
		data, ok := u.source.Snapshot(symbol)
		if !ok || data.Len() == 0 {
			continue
		}
		mark := snapshotMark{count: data.Len(), last: data.Minutes[data.Len()-1]}
		if prev, ok := u.published[symbol]; ok && prev == mark {
			continue
		}
		if err := u.publisher.Publish(symbol, data); errors.Is(err, stockapi.ErrPublisherOverflow) {
			log.WithError(err).Debug("Replaced a pending intraday snapshot.")
		} else if err != nil {
			log.WithError(err).Warn("Could not publish intraday snapshot.")
		}
		u.published[symbol] = mark
		sessionPublishMetrics.WithLabelValues(symbol).Inc()
		log.WithField("market", state.String()).Debugf("Published %d minutes of %s.", data.Len(), symbol)
	}
}
