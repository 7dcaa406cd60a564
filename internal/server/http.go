package server

import (
	"fmt"
	"log/slog"
	"mime"
	"net/http"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/at-ishikawa/glossary/internal/api/v1/apiv1connect"
	"github.com/at-ishikawa/glossary/internal/config"
)

// NewHTTPHandler mounts the glossary service, /healthz and, when enabled, /metrics.
// The result speaks HTTP/1.1 and h2c and applies CORS for the configured origins.
func NewHTTPHandler(
	cfg config.ServerConfig,
	svc apiv1connect.GlossaryServiceHandler,
	registry *prometheus.Registry,
	logger *slog.Logger,
) (http.Handler, error) {
	interceptors := []connect.Interceptor{NewLoggingInterceptor(logger)}

	mux := http.NewServeMux()
	if cfg.Metrics.Enabled {
		metrics, err := NewMetrics(registry)
		if err != nil {
			return nil, fmt.Errorf("NewMetrics() > %w", err)
		}
		interceptors = append(interceptors, metrics.Interceptor())
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	}
	interceptors = append(interceptors, NewConcurrencyInterceptor(cfg.MaxConcurrentRequests))

	path, h := apiv1connect.NewGlossaryServiceHandler(svc, connect.WithInterceptors(interceptors...))
	mux.Handle(path, jsonOnlyMiddleware(h))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	return corsMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.CORS.AllowedOrigins), nil
}

// Messages are plain structs with no protobuf binary form.
var protoMediaTypes = map[string]bool{
	"application/proto":          true,
	"application/connect+proto":  true,
	"application/grpc":           true,
	"application/grpc+proto":     true,
	"application/grpc-web":       true,
	"application/grpc-web+proto": true,
}

const acceptedMediaTypes = "application/json, application/connect+json, application/grpc+json, application/grpc-web+json"

// jsonOnlyMiddleware answers 415 to RPCs encoded as protobuf.
func jsonOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isProtoEncoded(r) {
			w.Header().Set("Accept-Post", acceptedMediaTypes)
			http.Error(w, "only JSON encoded requests are supported", http.StatusUnsupportedMediaType)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isProtoEncoded(r *http.Request) bool {
	if r.Method == http.MethodGet {
		return r.URL.Query().Get("encoding") == "proto"
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}
	return protoMediaTypes[mediaType]
}

func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
