package room

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mama165/relay-room/domain/chat"
)

// Registry maintains the live-connection set of one room and broadcasts
// messages to it. The connection map is the only shared mutable structure;
// the lock guards map reads and writes only, never delivery.
//
// Registry is safe for concurrent use by multiple goroutines.
type Registry struct {
	mu      sync.Mutex
	clients map[string]chan chat.Message // connection id -> outbound channel
	log     *slog.Logger
}

func NewRegistry(log *slog.Logger) *Registry {
	return &Registry{clients: make(map[string]chan chat.Message), log: log}
}

// Register inserts the connection under the lock, then announces the join to
// the whole room (the new connection included, so it observes its own
// notice). Registration always succeeds; reusing an id overwrites.
func (r *Registry) Register(connectionID string, outbound chan chat.Message, username string) {
	r.mu.Lock()
	r.clients[connectionID] = outbound
	r.mu.Unlock()

	r.Broadcast(chat.NewSystemMessage(fmt.Sprintf("%s joined the chat", username)), "")
}

// Unregister removes the connection. The leave notice is only sent when the
// connection had completed its join, and never back to the departing
// connection: its channel is already gone or about to close.
func (r *Registry) Unregister(connectionID string, username string) {
	r.mu.Lock()
	delete(r.clients, connectionID)
	r.mu.Unlock()

	if username != "" {
		r.Broadcast(chat.NewSystemMessage(fmt.Sprintf("%s left the chat", username)), connectionID)
	}
}

// Broadcast fans the message out to every registered connection except
// exclude. Recipients are snapshotted under the lock; delivery happens after
// release so a slow consumer can never starve registration of others.
// Each enqueue is non-blocking: a full channel drops that one copy and the
// remaining recipients are unaffected.
func (r *Registry) Broadcast(message chat.Message, exclude string) {
	type recipient struct {
		id       string
		outbound chan chat.Message
	}

	r.mu.Lock()
	targets := make([]recipient, 0, len(r.clients))
	for id, outbound := range r.clients {
		if id == exclude {
			continue
		}
		targets = append(targets, recipient{id: id, outbound: outbound})
	}
	r.mu.Unlock()

	for _, target := range targets {
		select {
		case target.outbound <- message:
		default:
			// Best-effort delivery: the slow recipient misses this message.
			r.log.Warn("Outbound channel full, dropping message",
				"connection_id", target.id)
		}
	}
}

// Len reports the number of registered connections.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}
