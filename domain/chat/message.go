// Package chat contains core concepts of the relay room.
// This file defines Message values and related rules.
// Messages are immutable and stamped by the domain.
package chat

import (
	"time"
)

// SystemUsername is the author of every room-generated notice.
const SystemUsername = "system"

// Message represents an immutable chat event delivered to recipients.
// The control flag is unexported so user input can never forge the
// drain-terminating sentinel.
type Message struct {
	Username string
	Text     string
	SentAt   time.Time
	System   bool
	control  bool
}

func NewUserMessage(username, text string) Message {
	return Message{Username: username, Text: text, SentAt: time.Now().UTC()}
}

func NewSystemMessage(text string) Message {
	return Message{Username: SystemUsername, Text: text, SentAt: time.Now().UTC(), System: true}
}

// Sentinel returns the control message a session enqueues on teardown to
// terminate its outbound drain. It is never forwarded to a client.
func Sentinel() Message {
	return Message{Username: SystemUsername, SentAt: time.Now().UTC(), System: true, control: true}
}

func (m Message) IsSentinel() bool {
	return m.control
}
