package room

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"github.com/mama165/relay-room/domain/chat"
)

// scriptedSource feeds events interactively from the test, ending the stream
// with a disconnect once the channel closes.
type scriptedSource struct {
	events chan chat.Event
}

func newScriptedSource() *scriptedSource {
	return &scriptedSource{events: make(chan chat.Event)}
}

func (s *scriptedSource) Next() (chat.Event, error) {
	evt, ok := <-s.events
	if !ok {
		return nil, io.EOF
	}
	return evt, nil
}

// client bundles a session with its source and drain, mirroring the two
// goroutines the transport runs per connection.
type client struct {
	session   *Session
	source    *scriptedSource
	forwarded chan chat.Message
	consumed  chan struct{}
}

func connect(registry *Registry, log *slog.Logger, peerAddr string) *client {
	c := &client{
		session:   NewSession(registry, log, peerAddr, 16),
		source:    newScriptedSource(),
		forwarded: make(chan chat.Message, 64),
		consumed:  make(chan struct{}),
	}
	go func() {
		defer close(c.forwarded)
		_ = c.session.Drain(func(message chat.Message) error {
			c.forwarded <- message
			return nil
		})
	}()
	go func() {
		defer close(c.consumed)
		c.session.Consume(context.Background(), c.source)
	}()
	return c
}

func (c *client) next(req *require.Assertions) chat.Message {
	select {
	case message, ok := <-c.forwarded:
		req.True(ok, "outbound stream closed while a message was expected")
		return message
	case <-time.After(time.Second):
		req.FailNow("timed out waiting for a message")
		return chat.Message{}
	}
}

func (c *client) closed(req *require.Assertions) {
	select {
	case message, ok := <-c.forwarded:
		req.False(ok, "expected a closed stream, got message %q", message.Text)
	case <-time.After(time.Second):
		req.FailNow("timed out waiting for the outbound stream to close")
	}
}

func TestRoom_Full_Scenario(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := NewRegistry(log)

	// Given client A joins as "alice"
	a := connect(registry, log, "10.0.0.1:1111")
	a.source.events <- chat.JoinEvent{Username: "alice"}

	// Then every connected client, A included, observes the join notice
	joined := a.next(req)
	req.Equal("system", joined.Username)
	req.Equal("alice joined the chat", joined.Text)
	req.True(joined.System)

	// When A sends "hi"
	a.source.events <- chat.TextEvent{Text: "hi"}

	// Then everyone receives it as a user message
	hi := a.next(req)
	req.Equal("alice", hi.Username)
	req.Equal("hi", hi.Text)
	req.False(hi.System)

	// When client B joins with a blank name
	b := connect(registry, log, "10.0.0.2:2222")
	b.source.events <- chat.JoinEvent{Username: ""}

	// Then B is assigned a guest name and both clients see the notice
	guestNotice := regexp.MustCompile(`^guest-[0-9a-f]{4} joined the chat$`)
	req.Regexp(guestNotice, b.next(req).Text)
	req.Regexp(guestNotice, a.next(req).Text)

	// When A leaves
	a.source.events <- chat.LeaveEvent{}
	<-a.consumed

	// Then everyone except A observes the leave notice
	left := b.next(req)
	req.Equal("alice left the chat", left.Text)
	req.True(left.System)

	// And A's stream closes with no further messages
	a.closed(req)

	// Cleanup: B disconnects, room empties
	close(b.source.events)
	<-b.consumed
	req.Zero(registry.Len())
}
