// Package httpapi exposes the public HTTP surface of charlore-api: the auth
// endpoints and the token-gated CRUD endpoints for encyclopedias,
// collections, elements and tags.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KarloJair/charlore-api/internal/logging"
	"github.com/KarloJair/charlore-api/internal/server/auth"
	"github.com/KarloJair/charlore-api/internal/server/collections"
	"github.com/KarloJair/charlore-api/internal/server/elements"
	"github.com/KarloJair/charlore-api/internal/server/encyclopedias"
	"github.com/KarloJair/charlore-api/internal/server/tags"
	"github.com/KarloJair/charlore-api/internal/server/users"
)

type Server struct {
	address       string
	logger        logging.Logger
	codec         *auth.Codec
	users         *users.Service
	encyclopedias *encyclopedias.Service
	collections   *collections.Service
	elements      *elements.Service
	tags          *tags.Service
}

func NewServer(
	address string,
	logger logging.Logger,
	codec *auth.Codec,
	us *users.Service,
	es *encyclopedias.Service,
	cs *collections.Service,
	els *elements.Service,
	ts *tags.Service,
) (*Server, error) {
	registerValidations()

	return &Server{
		address:       address,
		logger:        logger.With("module", "http_server"),
		codec:         codec,
		users:         us,
		encyclopedias: es,
		collections:   cs,
		elements:      els,
		tags:          ts,
	}, nil
}

// Router builds the gin engine with the middleware stack and all routes.
// Exposed separately from Run so tests can drive it with httptest.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestID())
	router.Use(s.requestLogger())

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/", s.register)
		authGroup.POST("/token", s.login)
	}

	protected := router.Group("/")
	protected.Use(s.requireToken())
	{
		protected.POST("/encyclopedias", s.createEncyclopedia)
		protected.GET("/encyclopedias/:user_id", s.listEncyclopedias)

		protected.POST("/collections", s.createCollection)
		protected.GET("/collections/:encyclopedia_id", s.listCollections)

		protected.POST("/elements", s.createElement)
		protected.GET("/elements/:collection_id", s.listElements)
		protected.GET("/element/:element_id", s.getElement)
		protected.PATCH("/element/:element_id", s.updateElement)
		protected.DELETE("/element_delete/:element_id", s.deleteElement)

		protected.POST("/tags", s.createTag)
	}

	return router
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
