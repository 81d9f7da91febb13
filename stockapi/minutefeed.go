// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package stockapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"stockcharts/stockval"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	MessageTypeMinute = "minute"
	MessageTypePing   = "ping"
	MessageTypeError  = "error"

	CommandSubscribe   = "subscribe"
	CommandUnsubscribe = "unsubscribe"
)

var log = logrus.WithField("component", "stockapi")

var ErrNotConnected = errors.New("minute feed is not connected")

type feedMessage struct {
	Type   string          `json:"type"`
	Symbol string          `json:"symbol"`
	Data   json.RawMessage `json:"data"`
	Msg    string          `json:"msg"`
}

type feedCommand struct {
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
}

// MinuteFeed receives minute aggregates over a websocket connection and merges
// them into a MinuteBook.
type MinuteFeed struct {
	wsUrl      string
	apiKey     string
	book       *MinuteBook
	conn       *websocket.Conn
	writeMutex sync.Mutex
}

func NewMinuteFeed(wsUrl, apiKey string, book *MinuteBook) *MinuteFeed {
	return &MinuteFeed{wsUrl: wsUrl, apiKey: apiKey, book: book}
}

func (f *MinuteFeed) Connect(ctx context.Context) error {
	if f.conn != nil {
		return errors.New("only a single minute feed connection is supported")
	}
	target := f.wsUrl
	if f.apiKey != "" {
		target = fmt.Sprintf("%s?token=%s", f.wsUrl, url.QueryEscape(f.apiKey))
	}
	log.Info("Establishing minute feed connection.")
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, target, nil)
	if err != nil {
		return errors.Wrap(err, "could not connect to minute feed")
	}
	f.conn = conn
	return nil
}

func (f *MinuteFeed) send(command, symbol string) error {
	f.writeMutex.Lock()
	defer f.writeMutex.Unlock()
	if f.conn == nil {
		return ErrNotConnected
	}
	return errors.Wrapf(f.conn.WriteJSON(feedCommand{Type: command, Symbol: symbol}), "%s %s", command, symbol)
}

func (f *MinuteFeed) Subscribe(symbol string) error {
	return f.send(CommandSubscribe, symbol)
}

func (f *MinuteFeed) Unsubscribe(symbol string) error {
	return f.send(CommandUnsubscribe, symbol)
}

// Run reads messages until the connection fails or ctx is cancelled.
func (f *MinuteFeed) Run(ctx context.Context) error {
	if f.conn == nil {
		return ErrNotConnected
	}
	conn := f.conn
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var message feedMessage
		if err := conn.ReadJSON(&message); err != nil {
			conn.Close()
			f.writeMutex.Lock()
			f.conn = nil
			f.writeMutex.Unlock()
			if ctx.Err() != nil {
				log.Info("Minute feed connection was closed.")
				return ctx.Err()
			}
			return errors.Wrap(err, "minute feed connection was terminated")
		}
		f.handleMessage(message)
	}
}

func (f *MinuteFeed) handleMessage(message feedMessage) {
	switch message.Type {
	case MessageTypeMinute:
		var data stockval.IntradayData
		if err := json.Unmarshal(message.Data, &data); err != nil {
			log.WithError(err).Warnf("Symbol %s: Invalid minute data received.", message.Symbol)
			return
		}
		f.book.Merge(message.Symbol, data.Minutes...)
	case MessageTypeError:
		log.Warnf("Minute feed error: %s", message.Msg)
	case MessageTypePing:
	default:
		log.Debugf("Unknown minute feed message type %q.", message.Type)
	}
}
