// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package mock

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

// NewFeedServer starts a websocket server which waits for the first command of
// a client and replies with messages. The connection is closed afterwards.
// The received commands are sent to the returned channel.
func NewFeedServer(t *testing.T, messages []string) (*httptest.Server, <-chan []byte) {
	commands := make(chan []byte, 16)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		_, command, err := conn.ReadMessage()
		if err != nil {
			return
		}
		commands <- command
		for _, m := range messages {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(m)); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv, commands
}

// WsUrl converts the http url of srv to a websocket url.
func WsUrl(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}
