package server

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	pb "github.com/mama165/relay-room/proto/chat"
	"github.com/mama165/relay-room/room"
)

// fakeStream stands in for the gRPC bidi stream: scripted events in,
// captured messages out.
type fakeStream struct {
	ctx    context.Context
	events chan *pb.ClientEvent
	mu     sync.Mutex
	sent   []*pb.ChatMessage
}

func newFakeStream(ctx context.Context) *fakeStream {
	return &fakeStream{ctx: ctx, events: make(chan *pb.ClientEvent, 8)}
}

func (f *fakeStream) Recv() (*pb.ClientEvent, error) {
	select {
	case evt, ok := <-f.events:
		if !ok {
			return nil, io.EOF
		}
		return evt, nil
	case <-f.ctx.Done():
		return nil, f.ctx.Err()
	}
}

func (f *fakeStream) Send(message *pb.ChatMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, message)
	return nil
}

func (f *fakeStream) Context() context.Context     { return f.ctx }
func (f *fakeStream) SetHeader(metadata.MD) error  { return nil }
func (f *fakeStream) SendHeader(metadata.MD) error { return nil }
func (f *fakeStream) SetTrailer(metadata.MD)       {}
func (f *fakeStream) SendMsg(any) error            { return nil }
func (f *fakeStream) RecvMsg(any) error            { return nil }

func TestChatServer_Chat_Streams_A_Whole_Session(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := room.NewRegistry(log)
	chatServer := NewChatServer(log, registry, 16)

	// Given a client scripting join, one message, then leave
	stream := newFakeStream(context.Background())
	stream.events <- &pb.ClientEvent{Event: &pb.ClientEvent_Join{Join: &pb.JoinRequest{Username: "alice"}}}
	stream.events <- &pb.ClientEvent{Event: &pb.ClientEvent_Message{Message: &pb.ChatInput{Text: "hi"}}}
	stream.events <- &pb.ClientEvent{Event: &pb.ClientEvent_Leave{Leave: &pb.LeaveRequest{}}}

	// When the handler runs the session to completion
	err := chatServer.Chat(stream)

	// Then the stream closed cleanly and the registry is empty again
	req.NoError(err)
	req.Zero(registry.Len())

	// And the client received its join notice and its own message, stamped
	req.Len(stream.sent, 2)
	req.True(stream.sent[0].GetSystem())
	req.Equal("alice joined the chat", stream.sent[0].GetText())
	req.Equal("alice", stream.sent[1].GetUsername())
	req.Equal("hi", stream.sent[1].GetText())
	req.False(stream.sent[1].GetSystem())
	req.NotNil(stream.sent[1].GetSentAt())
}

func TestChatServer_Chat_Disconnect_Unregisters(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := room.NewRegistry(log)
	chatServer := NewChatServer(log, registry, 16)

	// Given a client that joins then disconnects (transport closes the stream)
	stream := newFakeStream(context.Background())
	stream.events <- &pb.ClientEvent{Event: &pb.ClientEvent_Join{Join: &pb.JoinRequest{Username: "alice"}}}
	close(stream.events)

	// When the handler runs
	err := chatServer.Chat(stream)

	// Then teardown ran despite the missing leave event
	req.NoError(err)
	req.Zero(registry.Len())
}

func TestChatServer_Chat_Cancellation_Unregisters(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := room.NewRegistry(log)
	chatServer := NewChatServer(log, registry, 16)

	// Given a stream whose context is already canceled
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stream := newFakeStream(ctx)

	// When the handler runs
	err := chatServer.Chat(stream)

	// Then it returns only after teardown completed
	req.NoError(err)
	req.Zero(registry.Len())
}
