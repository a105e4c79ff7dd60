package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
}

// NewRouter mounts the game pages, the JSON API and the websocket endpoint.
func NewRouter(logger *slog.Logger, handlers Handlers, ping PingHandler, ws http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger.With("component", "http")))
	r.Use(middleware.Recoverer)

	r.Get("/ping", ping.PingHandler)

	r.Get("/", handlers.GamePage)
	r.Get("/stats", handlers.StatsPage)
	r.Post("/move/{cell}", handlers.MoveForm)
	r.Post("/jump/{step}", handlers.JumpForm)
	r.Post("/sort/{order}", handlers.SortForm)
	r.Post("/restart", handlers.RestartForm)

	r.Route("/api/game", func(r chi.Router) {
		r.Get("/", handlers.GameJSON)
		r.Post("/move", handlers.MoveJSON)
		r.Post("/jump", handlers.JumpJSON)
		r.Post("/sort", handlers.SortJSON)
	})

	if ws != nil {
		r.Handle("/ws", ws)
	}

	return r
}

func New(logger *slog.Logger, port string, handler http.Handler) *Server {
	return &Server{
		logger: logger.With("component", "http_server"),
		httpServer: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       30 * time.Second,
		},
	}
}

// Start blocks until the server fails or is shut down.
func (that *Server) Start() error {
	that.logger.Info("Starting HTTP server", "addr", that.httpServer.Addr)

	if err := that.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	that.logger.Info("Shutting down HTTP server")

	if err := that.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
