package server

import (
	"log/slog"
	"sync"

	"google.golang.org/grpc/peer"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/samber/lo"

	"github.com/mama165/relay-room/domain/chat"
	pb "github.com/mama165/relay-room/proto/chat"
	"github.com/mama165/relay-room/room"
)

type ChatServer struct {
	pb.UnimplementedChatServiceServer
	registry   *room.Registry
	bufferSize int
	log        *slog.Logger
}

func NewChatServer(log *slog.Logger, registry *room.Registry, bufferSize int) *ChatServer {
	return &ChatServer{registry: registry, bufferSize: bufferSize, log: log}
}

// Chat carries one whole client session over a bidirectional stream.
// The inbound state machine runs on the handler goroutine so that a client
// disconnect or cancellation surfaces as a Recv error and the session
// teardown always completes before this method returns. The outbound drain
// runs in its own goroutine and is awaited too: no registry entry and no
// goroutine survives the handler. This method blocks until the client leaves,
// disconnects, or a network error occurs.
func (s *ChatServer) Chat(stream pb.ChatService_ChatServer) error {
	session := room.NewSession(s.registry, s.log, peerAddress(stream), s.bufferSize)
	s.log.Info("Client connected", "connection_id", session.ConnectionID())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = session.Drain(func(message chat.Message) error {
			return stream.Send(lo.ToPtr(toChatMessage(message)))
		})
	}()

	session.Consume(stream.Context(), &streamSource{stream: stream})
	wg.Wait()
	return nil
}

func peerAddress(stream pb.ChatService_ChatServer) string {
	if p, ok := peer.FromContext(stream.Context()); ok {
		return p.Addr.String()
	}
	return "unknown"
}

// streamSource adapts the gRPC request stream to the session's EventSource.
type streamSource struct {
	stream pb.ChatService_ChatServer
}

// Next decodes the oneof into a domain event. Payloads this server does not
// know are skipped rather than failing the session, so newer clients keep
// working against older servers.
func (s *streamSource) Next() (chat.Event, error) {
	for {
		evt, err := s.stream.Recv()
		if err != nil {
			return nil, err
		}
		switch e := evt.GetEvent().(type) {
		case *pb.ClientEvent_Join:
			return chat.JoinEvent{Username: e.Join.GetUsername()}, nil
		case *pb.ClientEvent_Message:
			return chat.TextEvent{Text: e.Message.GetText()}, nil
		case *pb.ClientEvent_Leave:
			return chat.LeaveEvent{}, nil
		}
	}
}

func toChatMessage(m chat.Message) pb.ChatMessage {
	return pb.ChatMessage{
		Username: m.Username,
		Text:     m.Text,
		SentAt:   timestamppb.New(m.SentAt),
		System:   m.System,
	}
}
