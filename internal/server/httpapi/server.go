// Package httpapi exposes the authentication service over HTTP: form-encoded
// registration and login, cookie-carried sessions, JSON responses.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/auth"
)

type Server struct {
	address         string
	authService     *auth.Service
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewServer(a string, l logging.Logger, as *auth.Service, shutdownTimeout time.Duration) *Server {
	return &Server{
		address:         a,
		logger:          l.With("module", "httpapi"),
		authService:     as,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run starts the HTTP server and blocks until ctx is cancelled, then drains
// in-flight requests within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.rootPath)
	r.POST("/users", s.registerUser)
	r.POST("/sessions", s.loginSession)
	r.DELETE("/sessions", s.logoutSession)
	r.GET("/profile", s.profileSession)

	return r
}
