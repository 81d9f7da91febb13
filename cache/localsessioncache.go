// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package cache

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"stockcharts/config"
	"stockcharts/stockval"
	"strings"
	"sync"
	"time"

	"github.com/lotodore/localcache"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const CacheDirSessions = "sessions"

// Sessions of previous days are of no use to the live chart.
const SessionCacheDuration = time.Hour * 24

var log = logrus.WithField("component", "cache")

type localSessionCache struct {
	data  *localcache.Cache
	mutex sync.Mutex
}

func NewLocalSessionCache() (SessionCache, error) {
	data, err := localcache.New(filepath.Join(config.AppName, CacheDirSessions))
	if err != nil {
		return nil, errors.Wrap(err, "error initializing session cache")
	}
	return &localSessionCache{data: data}, nil
}

// SessionKey returns the cache key of a symbol on the date of day.
func SessionKey(symbol string, day time.Time) string {
	symbol = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToUpper(symbol))
	return fmt.Sprintf("%s-%s", symbol, day.Format("20060102"))
}

func (c *localSessionCache) Load(symbol string, day time.Time) (stockval.IntradayData, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	key := SessionKey(symbol, day)
	err := c.data.PurgeKey(key, SessionCacheDuration)
	if err != nil {
		log.Warnf("Error purging cache %s, session data may be outdated.", key)
	}
	raw, err := c.data.ReadFile(key)
	if err != nil {
		return stockval.IntradayData{}, false
	}
	var data stockval.IntradayData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.WithError(err).Warnf("Session cache %s contains invalid data.", key)
		if err := c.data.Remove(key); err != nil {
			log.Warnf("Error deleting cache %s, session data may be invalid.", key)
		}
		return stockval.IntradayData{}, false
	}
	return data, true
}

func (c *localSessionCache) Store(symbol string, day time.Time, data stockval.IntradayData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return errors.Wrapf(err, "could not encode session of %s", symbol)
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return errors.Wrapf(c.data.WriteFile(SessionKey(symbol, day), raw), "could not cache session of %s", symbol)
}
