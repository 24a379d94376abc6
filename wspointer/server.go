// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wspointer

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sanihaq/left-press-draggable/base/errors"
	"github.com/sanihaq/left-press-draggable/events"
)

// Server accepts one websocket client at a time and forwards the
// pointer messages it sends into a queue.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	queue    *events.Queue
	conn     *websocket.Conn
}

// NewServer returns a server feeding the given queue.
func NewServer(q *events.Queue) *Server {
	return &Server{
		queue: q,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and forwards pointer messages
// until the client disconnects. Messages of unknown type are dropped.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	if err := s.acceptConn(conn); err != nil {
		errors.Log(err)
		conn.Close()
		return
	}
	defer s.cleanupConn(conn)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if e := Decode(&msg); e != nil {
			s.queue.Send(e)
		}
	}
}

// acceptConn ensures only one active pointer feed exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return errors.New("pointer feed already connected")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when it closes.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	conn.Close()
}
