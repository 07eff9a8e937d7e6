package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/mama165/relay-room/proto/chat"
	"github.com/mama165/relay-room/transport/display"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

// Config defines the client-side environment variables.
type Config struct {
	ServerAddress string `env:"CHAT_SERVER_ADDR,default=localhost:50051"`
	Username      string `env:"CHAT_USERNAME,default=anon"`
	LogLevel      string `env:"LOG_LEVEL,default=INFO"`
}

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run handles the gRPC client lifecycle, configuration loading, and message streaming.
// Connection failures are reported once; there is no retry loop.
func run() (int, error) {
	// 1. Load configuration from environment variables.
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Establish connection to the relay-room server.
	conn, err := grpc.NewClient(config.ServerAddress, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return exitRuntime, fmt.Errorf("could not connect to server at %s: %w", config.ServerAddress, err)
	}
	// Defer ensures the connection is closed even if the stream fails later.
	defer func() {
		log.Info("Closing connection...")
		_ = conn.Close()
	}()

	client := pb.NewChatServiceClient(conn)

	// 4. Initiate the bidirectional stream and join under the configured name.
	stream, err := client.Chat(ctx)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to open stream: %w", err)
	}

	if err := stream.Send(&pb.ClientEvent{
		Event: &pb.ClientEvent_Join{Join: &pb.JoinRequest{Username: config.Username}},
	}); err != nil {
		return exitRuntime, fmt.Errorf("failed to join: %w", err)
	}

	fmt.Printf("Connected to %s as %q. Type messages and hit Enter (Ctrl+D to quit).\n",
		config.ServerAddress, config.Username)

	// 5. Forward stdin lines until EOF, then leave.
	// The goroutine owns the send direction; Recv errors end the session.
	go sendInput(stream, log)

	// 6. Message reception loop.
	for {
		message, err := stream.Recv()
		if err != nil {
			// Normal exit if the user triggered a shutdown or the server
			// closed the stream after our leave.
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				log.Info("Stopping client...")
				return exitOK, nil
			}
			return exitRuntime, fmt.Errorf("stream error: %w", err)
		}

		line := display.Format(message)
		if message.GetSystem() {
			line = color.New(color.FgYellow).Render(line)
		}
		fmt.Println(line)
	}
}

// sendInput reads stdin line by line, skipping blanks, and sends each line as
// a chat input. EOF sends a leave so the server announces the departure and
// closes the outbound direction.
func sendInput(stream pb.ChatService_ChatClient, log *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := stream.Send(&pb.ClientEvent{
			Event: &pb.ClientEvent_Message{Message: &pb.ChatInput{Text: text}},
		}); err != nil {
			log.Warn("Failed to send message", "error", err)
			return
		}
	}

	if err := stream.Send(&pb.ClientEvent{
		Event: &pb.ClientEvent_Leave{Leave: &pb.LeaveRequest{}},
	}); err != nil {
		log.Warn("Failed to send leave", "error", err)
	}
	_ = stream.CloseSend()
}
