// Package rest is the HTTP transport of the stub backend, built on gin.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/resumerag/internal/logging"
	"github.com/dmitrijs2005/resumerag/internal/server/resumes"
	"github.com/dmitrijs2005/resumerag/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address       string
	users         *users.Service
	resumes       *resumes.Service
	logger        logging.Logger
	maxUploadSize int64
}

func NewHTTPServer(a string, l logging.Logger, us *users.Service, rs *resumes.Service, maxUploadSize int64) *HTTPServer {
	return &HTTPServer{
		address:       a,
		logger:        l.With("module", "http_server"),
		users:         us,
		resumes:       rs,
		maxUploadSize: maxUploadSize,
	}
}

// Router returns the gin engine serving the API.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	api.POST("/login", s.login)
	api.POST("/signup", s.signup)

	authed := api.Group("", s.authJWT())
	authed.POST("/upload", s.upload)
	authed.POST("/search", s.search)

	return r
}

// Run serves until ctx is cancelled and then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
