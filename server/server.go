package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/ordemia/ordemia/config"
	"github.com/ordemia/ordemia/pkg/otel"
	"github.com/ordemia/ordemia/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	r.Route("/api", h.Attach)

	var handler http.Handler = r

	if otel.EnableTelemetry {
		handler = otelhttp.NewHandler(handler, "server")
	}

	return &Server{
		Config: cfg,

		handler: handler,
	}, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.Address,
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
