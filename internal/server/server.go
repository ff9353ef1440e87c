// Package server assembles the HTTP handler and runs the listener.
package server

import (
	"net/http"

	"github.com/benvon/starter-api/internal/config"
	"github.com/benvon/starter-api/internal/handlers"
	"github.com/benvon/starter-api/internal/metrics"
	"github.com/benvon/starter-api/internal/middleware"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Option customises the handler built by New.
type Option func(*options)

type options struct {
	serviceName    string
	tracerProvider trace.TracerProvider
	collector      *metrics.Collector
}

// WithTracing adds OpenTelemetry spans for matched routes.
func WithTracing(serviceName string, tp trace.TracerProvider) Option {
	return func(o *options) {
		o.serviceName = serviceName
		o.tracerProvider = tp
	}
}

// WithMetrics records request metrics into collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(o *options) {
		o.collector = collector
	}
}

// New builds the service's HTTP handler from cfg. All state is captured at
// construction time; the returned handler is safe for concurrent use.
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) http.Handler {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	r := newRouter(cfg, o)

	// Outermost first: request id, logging, metrics, panic recovery, CORS.
	var h http.Handler = r
	h = middleware.CORS(cfg.CORSOrigins, logger)(h)
	h = middleware.ErrorHandler(logger)(h)
	if o.collector != nil {
		h = middleware.Metrics(o.collector, r)(h)
	}
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)

	return h
}

// newRouter registers the service routes.
func newRouter(cfg *config.Config, o options) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	if o.tracerProvider != nil {
		r.Use(otelmux.Middleware(o.serviceName,
			otelmux.WithTracerProvider(o.tracerProvider),
			otelmux.WithPropagators(propagation.NewCompositeTextMapPropagator(
				propagation.TraceContext{},
				propagation.Baggage{},
			)),
		))
	}

	r.HandleFunc("/", handlers.Root).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet, http.MethodHead)

	handlers.NewOpenAPIHandler(cfg.Info).RegisterRoutes(r)

	return r
}
