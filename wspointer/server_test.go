// Copyright 2025 Sani Haq. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wspointer

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sanihaq/left-press-draggable/events"
	"github.com/sanihaq/left-press-draggable/gesture"
	"github.com/sanihaq/left-press-draggable/math32"
	"github.com/stretchr/testify/assert"
)

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestServerForwardsEvents(t *testing.T) {
	q := &events.Queue{}
	q.Init()
	srv := httptest.NewServer(NewServer(q))
	defer srv.Close()

	c, err := Dial(wsURL(srv))
	if !assert.NoError(t, err) {
		return
	}
	defer c.Close()

	assert.NoError(t, c.Send(events.NewPointerDown(1, math32.Vec2(10, 20), events.Left, events.Mouse)))
	assert.NoError(t, c.Send(events.NewPointerMove(1, math32.Vec2(15, 20), math32.Vec2(5, 0), events.Left, events.Mouse)))
	assert.NoError(t, c.Send(events.NewPointerUp(1, math32.Vec2(15, 20), events.Left, events.Mouse)))

	assert.Eventually(t, func() bool { return q.Len() == 3 }, 2*time.Second, 10*time.Millisecond)

	e := q.NextEvent()
	if assert.NotNil(t, e) {
		assert.Equal(t, events.Down, e.Typ)
		assert.Equal(t, events.PointerID(1), e.ID)
		assert.Equal(t, math32.Vec2(10, 20), e.Pos)
		assert.Equal(t, events.Left, e.Buttons)
	}
	e = q.NextEvent()
	if assert.NotNil(t, e) {
		assert.Equal(t, events.Move, e.Typ)
		assert.Equal(t, math32.Vec2(5, 0), e.Delta)
	}
	e = q.NextEvent()
	if assert.NotNil(t, e) {
		assert.Equal(t, events.Up, e.Typ)
	}
	assert.Nil(t, q.NextEvent())
}

func TestServerDropsUnknownMessages(t *testing.T) {
	q := &events.Queue{}
	q.Init()
	srv := httptest.NewServer(NewServer(q))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if !assert.NoError(t, err) {
		return
	}
	defer conn.Close()

	assert.NoError(t, conn.WriteJSON(Message{T: "wheel", ID: 1}))
	assert.NoError(t, conn.WriteJSON(Message{T: TypeDown, ID: 1, X: 1, Y: 2}))

	assert.Eventually(t, func() bool { return q.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	e := q.NextEvent()
	if assert.NotNil(t, e) {
		assert.Equal(t, events.Down, e.Typ)
	}
}

func TestServerSingleClient(t *testing.T) {
	q := &events.Queue{}
	q.Init()
	srv := httptest.NewServer(NewServer(q))
	defer srv.Close()

	first, err := Dial(wsURL(srv))
	if !assert.NoError(t, err) {
		return
	}
	defer first.Close()

	// the second feed upgrades but is closed immediately
	second, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if !assert.NoError(t, err) {
		return
	}
	defer second.Close()
	second.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = second.ReadMessage()
	assert.Error(t, err)

	// the first feed still works
	assert.NoError(t, first.Send(events.NewPointerDown(1, math32.Vec2(1, 1), events.Left, events.Mouse)))
	assert.Eventually(t, func() bool { return q.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestServerReconnectAfterClose(t *testing.T) {
	q := &events.Queue{}
	q.Init()
	srv := httptest.NewServer(NewServer(q))
	defer srv.Close()

	first, err := Dial(wsURL(srv))
	if !assert.NoError(t, err) {
		return
	}
	first.Close()

	// a send only reaches the queue once the server has let go of the
	// first connection, so retry until one lands
	assert.Eventually(t, func() bool {
		c, err := Dial(wsURL(srv))
		if err != nil {
			return false
		}
		c.Send(events.NewPointerDown(2, math32.Vec2(1, 1), events.Left, events.Mouse))
		c.Close()
		return q.Len() >= 1
	}, 2*time.Second, 20*time.Millisecond)
}

// TestServerDrivesRecognizer feeds a remote pointer sequence through the
// queue into a drag recognizer, the way a host event loop would.
func TestServerDrivesRecognizer(t *testing.T) {
	q := &events.Queue{}
	q.Init()
	srv := httptest.NewServer(NewServer(q))
	defer srv.Close()

	var origins []math32.Vector2
	md := gesture.NewHorizontalMultiDrag(func(origin math32.Vector2) gesture.Dragger {
		origins = append(origins, origin)
		return nil
	})
	md.Slop = func(events.Devices) float32 { return 10 }

	c, err := Dial(wsURL(srv))
	if !assert.NoError(t, err) {
		return
	}
	defer c.Close()

	assert.NoError(t, c.Send(events.NewPointerDown(7, math32.Vec2(100, 100), events.Left, events.Mouse)))
	assert.NoError(t, c.Send(events.NewPointerMove(7, math32.Vec2(120, 100), math32.Vec2(20, 0), events.Left, events.Mouse)))
	assert.Eventually(t, func() bool { return q.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	for e := q.NextEvent(); e != nil; e = q.NextEvent() {
		md.HandleEvent(e)
	}
	assert.Equal(t, []math32.Vector2{math32.Vec2(100, 100)}, origins)
}
