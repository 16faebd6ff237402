// Package middleware provides net/http middleware for serving rendered
// documents in production.
//
// Every constructor returns a func(http.Handler) http.Handler, so the
// middleware composes with chi, http.ServeMux or any other router.
//
// # OpenTelemetry Middleware
//
// OpenTelemetry starts one server span per request. Spans carry the HTTP
// method, the matched route pattern and the response status code; 5xx
// responses mark the span as failed.
//
//	r := chi.NewRouter()
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithTracerName("docs-site"),
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// # Prometheus Metrics
//
// Prometheus collects, per route pattern:
//   - funhtml_responses_total: responses by route and status code
//   - funhtml_response_duration_seconds: time to write the response
//   - funhtml_response_bytes: size of the response body
//
//	r.Use(middleware.Prometheus(middleware.WithNamespace("docs")))
//	r.Handle("/metrics", promhttp.Handler())
//
// Routes are labelled with the chi route pattern, or the http.ServeMux
// pattern, so the label set stays bounded. Requests that match no pattern
// are labelled "unmatched".
//
// # Request Logging
//
// RequestLogger logs one structured line per request with log/slog.
package middleware
