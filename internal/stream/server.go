// Package stream serves replay frames to websocket clients. Each client
// that connects to /ws receives the hand's frames as JSON messages on a
// fixed interval, then a final done message.
package stream

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/lox/handreplay/internal/replay"
	"github.com/lox/handreplay/internal/script"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second
)

// FrameMessage is the wire form of one replay frame
type FrameMessage struct {
	Type      string   `json:"type"`
	Index     int      `json:"index"`
	Total     int      `json:"total"`
	Banner    string   `json:"banner,omitempty"`
	Board     []string `json:"board,omitempty"`
	Highlight *int     `json:"highlight,omitempty"`
}

// Server streams one parsed hand's replay frames
type Server struct {
	hand     *script.ParsedHand
	interval time.Duration
	clock    quartz.Clock
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a frame-streaming server for hand
func NewServer(hand *script.ParsedHand, interval time.Duration, logger *log.Logger) *Server {
	return &Server{
		hand:     hand,
		interval: interval,
		clock:    quartz.NewReal(),
		logger:   logger.WithPrefix("stream"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// WithClock substitutes the playback clock, for tests
func (s *Server) WithClock(clock quartz.Clock) *Server {
	s.clock = clock
	return s
}

// Handler returns the HTTP handler exposing /ws
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// ListenAndServe serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// handleWS upgrades the connection and plays the hand to the client.
// Each client gets its own cursor; the parsed hand itself is shared
// read-only state.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.logger.Info("Client connected", "remote", conn.RemoteAddr())

	player := replay.NewAutoplayer(
		replay.NewState(s.hand),
		s.clock,
		s.interval,
		func(f replay.Frame) {
			if err := s.writeFrame(conn, f); err != nil {
				s.logger.Debug("Write failed, dropping client", "error", err)
				conn.Close()
			}
		},
	)

	if err := player.Run(r.Context()); err != nil {
		s.logger.Debug("Playback stopped", "error", err)
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(FrameMessage{Type: "done", Total: len(s.hand.Actions)}); err != nil {
		s.logger.Debug("Failed to send done message", "error", err)
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "replay complete"))
}

func (s *Server) writeFrame(conn *websocket.Conn, f replay.Frame) error {
	msg := FrameMessage{
		Type:      "frame",
		Index:     f.Index,
		Total:     len(s.hand.Actions),
		Banner:    f.Banner,
		Highlight: f.Highlight,
	}
	for _, card := range f.Board {
		msg.Board = append(msg.Board, card.String())
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}
