//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_room.go -package=mocks
package room

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mama165/relay-room/domain/chat"
	"github.com/mama165/relay-room/errors"
)

// EventSource supplies the inbound events of one connection.
// Next blocks until an event is available and returns io.EOF (or any
// transport error) once the stream ends; either way the session treats it as
// a disconnect.
type EventSource interface {
	Next() (chat.Event, error)
}

// Session drives one client's lifecycle: AwaitingJoin -> Joined ->
// Terminated. Two goroutines run for its lifetime, Consume reading the event
// source and Drain feeding the outbound sink; they communicate only through
// the bounded outbound channel.
type Session struct {
	connectionID string
	username     string // set on join, read only by the Consume goroutine
	outbound     chan chat.Message
	registry     *Registry
	log          *slog.Logger
	drainDone    chan struct{}
}

// NewSession allocates the session and its bounded outbound channel.
// The connection id is seeded by the peer address; the random suffix keeps it
// unique across reconnects from the same address, which matters because it is
// the registry key.
func NewSession(registry *Registry, log *slog.Logger, peerAddr string, bufferSize int) *Session {
	return &Session{
		connectionID: fmt.Sprintf("%s-%s", peerAddr, hexSuffix(6)),
		outbound:     make(chan chat.Message, bufferSize),
		registry:     registry,
		log:          log,
		drainDone:    make(chan struct{}),
	}
}

func (s *Session) ConnectionID() string {
	return s.connectionID
}

// Consume reads the event sequence until a leave, a transport error, or a
// cancellation, and validates protocol order. Teardown is unconditional:
// whatever ends the loop, the connection is unregistered and the sentinel is
// enqueued so Drain terminates.
func (s *Session) Consume(ctx context.Context, source EventSource) {
	defer s.teardown()

	for {
		if ctx.Err() != nil {
			s.log.Info("Session canceled", "connection_id", s.connectionID)
			return
		}

		evt, err := source.Next()
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				s.log.Info("Client disconnected", "connection_id", s.connectionID)
			} else {
				s.log.Error("Error consuming client events",
					"connection_id", s.connectionID, "error", err)
			}
			return
		}

		switch e := evt.(type) {
		case chat.JoinEvent:
			s.handleJoin(e)
		case chat.TextEvent:
			s.handleText(e)
		case chat.LeaveEvent:
			s.log.Info("Client requested to leave", "connection_id", s.connectionID)
			return
		}
	}
}

// Drain forwards the outbound channel to the sink until the sentinel, which
// is consumed without being forwarded. A send failure ends the session too:
// the transport cancels the stream context, Consume tears down, and the
// pending sentinel is absorbed by drainDone.
func (s *Session) Drain(send func(chat.Message) error) error {
	defer close(s.drainDone)

	for message := range s.outbound {
		if message.IsSentinel() {
			return nil
		}
		if err := send(message); err != nil {
			s.log.Warn("Stopped forwarding to client",
				"connection_id", s.connectionID, "error", err)
			return err
		}
	}
	return nil
}

func (s *Session) handleJoin(e chat.JoinEvent) {
	if s.username != "" {
		s.log.Warn("Protocol violation, event ignored",
			"connection_id", s.connectionID, "error", errors.ErrDuplicateJoin)
		return
	}
	username := strings.TrimSpace(e.Username)
	if username == "" {
		username = "guest-" + hexSuffix(4)
	}
	s.username = username
	s.registry.Register(s.connectionID, s.outbound, username)
}

func (s *Session) handleText(e chat.TextEvent) {
	if s.username == "" {
		s.log.Warn("Protocol violation, event ignored",
			"connection_id", s.connectionID, "error", errors.ErrNotJoined)
		return
	}
	// The sender is not excluded: everyone sees the message, author included.
	s.registry.Broadcast(chat.NewUserMessage(s.username, e.Text), "")
}

// teardown runs on every Consume exit path. Unregister first so no further
// broadcast targets this channel, then wake Drain. The sentinel send may find
// the channel full only after Drain has already returned, hence the select.
func (s *Session) teardown() {
	s.registry.Unregister(s.connectionID, s.username)
	select {
	case s.outbound <- chat.Sentinel():
	case <-s.drainDone:
	}
}

func hexSuffix(n int) string {
	id := uuid.New()
	return hex.EncodeToString(id[:])[:n]
}
