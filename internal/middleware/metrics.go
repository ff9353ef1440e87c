package middleware

import (
	"net/http"
	"time"

	"github.com/benvon/starter-api/internal/metrics"
	"github.com/gorilla/mux"
)

// Metrics records request counts and latency. Routes are labelled with their
// mux path template so unknown paths cannot blow up label cardinality.
func Metrics(collector *metrics.Collector, router *mux.Router) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			collector.ObserveRequest(r.Method, routeTemplate(router, r), wrapped.statusCode, time.Since(start))
		})
	}
}

func routeTemplate(router *mux.Router, r *http.Request) string {
	var match mux.RouteMatch
	if router == nil || !router.Match(r, &match) || match.Route == nil {
		return metrics.UnmatchedRoute
	}
	tpl, err := match.Route.GetPathTemplate()
	if err != nil {
		return metrics.UnmatchedRoute
	}
	return tpl
}
