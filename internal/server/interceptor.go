package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/semaphore"
)

// RequestIDHeader carries the request id assigned by NewLoggingInterceptor.
const RequestIDHeader = "X-Request-Id"

// NewConcurrencyInterceptor bounds the number of unary calls handled at the same time.
// A call whose context ends while waiting for a slot fails without reaching the handler.
func NewConcurrencyInterceptor(limit int64) connect.UnaryInterceptorFunc {
	sem := semaphore.NewWeighted(limit)
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if err := sem.Acquire(ctx, 1); err != nil {
				code := connect.CodeCanceled
				if errors.Is(err, context.DeadlineExceeded) {
					code = connect.CodeDeadlineExceeded
				}
				return nil, connect.NewError(code, err)
			}
			defer sem.Release(1)
			return next(ctx, req)
		}
	}
}

// NewLoggingInterceptor logs every unary call with a request id.
// A request id sent by the caller is reused; otherwise a new one is generated.
func NewLoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			requestID := req.Header().Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			start := time.Now()
			res, err := next(ctx, req)
			duration := time.Since(start)

			attrs := []any{
				"request_id", requestID,
				"procedure", req.Spec().Procedure,
				"code", codeLabel(err),
				"duration", duration,
			}
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					connectErr.Meta().Set(RequestIDHeader, requestID)
				}
				logger.WarnContext(ctx, "rpc failed", append(attrs, "error", err)...)
				return res, err
			}

			res.Header().Set(RequestIDHeader, requestID)
			logger.InfoContext(ctx, "rpc handled", attrs...)
			return res, nil
		}
	}
}

// Metrics holds the RPC collectors exported on /metrics.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the RPC collectors and registers them on registerer.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "glossary_rpc_requests_total",
			Help: "Number of handled RPCs by procedure and result code.",
		}, []string{"procedure", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "glossary_rpc_duration_seconds",
			Help:    "Latency of handled RPCs.",
			Buckets: prometheus.DefBuckets,
		}, []string{"procedure"}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.duration} {
		if err := registerer.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Interceptor records one counter increment and one latency observation per unary call.
func (m *Metrics) Interceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			res, err := next(ctx, req)

			procedure := req.Spec().Procedure
			m.requests.WithLabelValues(procedure, codeLabel(err)).Inc()
			m.duration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())
			return res, err
		}
	}
}

func codeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}
