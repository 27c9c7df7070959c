package ops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Stats reports live counters for the health endpoint
type Stats interface {
	Len() int
}

// Server serves /health and /metrics next to the bot
type Server struct {
	addr     string
	metrics  http.Handler
	sessions Stats
	storage  string
	logger   *zap.Logger
	http     *http.Server
}

func NewServer(addr string, metrics http.Handler, sessions Stats, storage string, logger *zap.Logger) *Server {
	s := &Server{
		addr:     addr,
		metrics:  metrics,
		sessions: sessions,
		storage:  storage,
		logger:   logger,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"sessions": s.sessions.Len(),
			"storage":  s.storage,
		})
	})
	r.Handle("/metrics", s.metrics)

	return r
}

// Start runs the listener in the background until Shutdown
func (s *Server) Start() {
	go func() {
		s.logger.Info("Ops server listening", zap.String("addr", s.addr))
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Ops server failed", zap.Error(err))
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
