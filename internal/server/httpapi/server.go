// Package httpapi exposes the application over HTTP/JSON: route wiring,
// bearer-token middleware, and the mapping from service errors to status
// codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"postboard/internal/logging"
	"postboard/internal/server/services"
)

type Server struct {
	address string
	logger  logging.Logger
	users   *services.UserService
	posts   *services.PostService
	votes   *services.VoteService
}

func NewServer(a string, l logging.Logger, us *services.UserService, ps *services.PostService, vs *services.VoteService) *Server {
	return &Server{
		address: a,
		logger:  l.With("module", "httpapi"),
		users:   us,
		posts:   ps,
		votes:   vs,
	}
}

// Run starts the HTTP server and drains it gracefully when ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.logRequest(s.routes()),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
