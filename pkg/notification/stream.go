// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notification

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/canonical/caseflow/internal/logging"
	"github.com/canonical/caseflow/pkg/authentication"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Streamer bridges hub events to websocket clients. Each connection holds
// its own hub subscription, released when the socket closes.
type Streamer struct {
	hub      HubInterface
	upgrader websocket.Upgrader

	logger logging.LoggerInterface
}

func NewStreamer(hub HubInterface, allowedOrigins []string, logger logging.LoggerInterface) *Streamer {
	return &Streamer{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if len(allowedOrigins) == 0 {
					return true
				}
				origin := r.Header.Get("Origin")
				for _, allowed := range allowedOrigins {
					if origin == allowed {
						return true
					}
				}
				return false
			},
		},
		logger: logger,
	}
}

func (s *Streamer) HandleStream(w http.ResponseWriter, r *http.Request) {
	identityID, ok := authentication.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Errorf("websocket upgrade failed: %v", err)
		return
	}

	events, release := s.hub.Subscribe(identityID)

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.logger.Errorf("failed to set read deadline: %v", err)
		release()
		conn.Close()
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// The read loop only watches for close and pong traffic; clients don't
	// send data frames on this endpoint.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
					s.logger.Debugf("websocket read error for %s: %v", identityID, err)
				}
				return
			}
		}
	}()

	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		release()
		conn.Close()
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				s.logger.Errorf("failed to set write deadline for %s: %v", identityID, err)
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				s.logger.Debugf("dropping websocket client for %s: %v", identityID, err)
				return
			}
		case <-ticker.C:
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-readDone:
			return
		}
	}
}
