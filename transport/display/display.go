// Package display renders wire messages into human-readable console lines.
package display

import (
	"fmt"
	"time"

	pb "github.com/mama165/relay-room/proto/chat"
)

// Format renders one message with a local timestamp at seconds precision.
// A missing or zero timestamp falls back to the current local time, a
// defensive default for malformed messages.
func Format(message *pb.ChatMessage) string {
	prefix := fmt.Sprintf("[%s]", message.GetUsername())
	if message.GetSystem() {
		prefix = "[system]"
	}
	return fmt.Sprintf("%s %s %s", timestamp(message).Format(time.TimeOnly), prefix, message.GetText())
}

func timestamp(message *pb.ChatMessage) time.Time {
	sentAt := message.GetSentAt()
	if sentAt == nil || (sentAt.GetSeconds() == 0 && sentAt.GetNanos() == 0) {
		return time.Now().Local()
	}
	return sentAt.AsTime().Local()
}
