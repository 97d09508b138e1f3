package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"demondeduce/internal/solver"
)

// Server ties together HTTP serving and WebSocket handling.
type Server struct {
	handlers *Handlers
	port     int
}

func New(port int, opts solver.Options) *Server {
	return &Server{
		handlers: NewHandlers(opts),
		port:     port,
	}
}

// Start serves until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/create", s.handlers.HandleCreateTable)
	mux.HandleFunc("/api/qr", s.handlers.HandleQR)
	mux.HandleFunc("/api/viewer-id", s.handlers.HandleViewerID)
	mux.HandleFunc("/ws", s.handlers.HandleWS)

	addr := fmt.Sprintf(":%d", s.port)
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		s.handlers.Shutdown()
		srv.Shutdown(context.Background())
	}()

	log.Info().Str("addr", addr).Msg("table server starting")
	log.Info().Msgf("POST http://localhost%s/api/create to open a new table", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
