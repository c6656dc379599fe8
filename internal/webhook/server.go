// Copyright 2026 The Buzzhook Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package webhook

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// DefaultMaxBodySize bounds a delivery body. GitHub caps payloads at 25MB;
// anything near that is not a pull_request event we care about.
const DefaultMaxBodySize = 10 << 20

// Server receives webhook deliveries over HTTP.
type Server struct {
	addr        string
	verifier    *Verifier
	dispatcher  *Dispatcher
	logger      *zap.Logger
	maxBodySize int64

	server *http.Server
}

// NewServer creates a webhook server listening on addr.
func NewServer(addr string, verifier *Verifier, dispatcher *Dispatcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		addr:        addr,
		verifier:    verifier,
		dispatcher:  dispatcher,
		logger:      logger,
		maxBodySize: DefaultMaxBodySize,
	}
}

// Start runs the server until ctx is cancelled or the listener fails. On
// cancellation it shuts down gracefully and waits for in-flight check runs
// to reach a terminal state.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      s.routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("webhook server starting", zap.String("addr", s.addr))
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("webhook server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("webhook server shutdown failed: %w", err)
		}
		s.dispatcher.Wait()
		return ctx.Err()
	case err := <-errCh:
		return fmt.Errorf("webhook server error: %w", err)
	}
}

func (s *Server) routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Post("/webhook", s.handleWebhook)
	r.Get("/healthz", s.handleHealth)

	return r
}

// loggingMiddleware logs requests without touching payload content.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// handleWebhook verifies the delivery, acknowledges it, and only then
// hands it to the dispatcher. The acknowledgment never waits on the check
// run; the sender gets its response regardless of downstream latency.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodySize)

	event, ok := s.verifier.Verify(w, r)
	if !ok {
		return
	}

	s.logger.Info("delivery verified",
		zap.String("event", event.Type),
		zap.String("delivery_id", event.DeliveryID),
	)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))

	s.dispatcher.Dispatch(event)
}
