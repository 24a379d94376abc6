// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wspointer

import (
	"github.com/gorilla/websocket"
	"github.com/sanihaq/left-press-draggable/events"
)

// Client sends pointer events to a [Server].
type Client struct {
	conn *websocket.Conn
}

// Dial connects to a pointer feed server at the given websocket URL.
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// Send transmits one pointer event.
func (c *Client) Send(e *events.Pointer) error {
	return c.conn.WriteJSON(Encode(e))
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
