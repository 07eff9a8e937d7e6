package chat

// Event is the tagged union of inbound client events.
// The transport produces them; the owning session consumes each exactly once.
type Event interface {
	isEvent()
}

// JoinEvent announces the client under the given username.
// A blank username is replaced by a generated guest name.
type JoinEvent struct {
	Username string
}

// TextEvent carries one line of user input to broadcast.
type TextEvent struct {
	Text string
}

// LeaveEvent ends the session on the client's initiative.
type LeaveEvent struct{}

func (JoinEvent) isEvent() {}

func (TextEvent) isEvent() {}

func (LeaveEvent) isEvent() {}
