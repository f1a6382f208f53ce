// Package interceptors holds the unary server interceptors shared by every
// planner service.
package interceptors

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/metrics"
)

const unknownMethod = "unknown"

// Limiter is a process-wide token bucket satisfying the ratelimit
// middleware's Limiter interface.
type Limiter struct {
	bucket *rate.Limiter
}

// NewLimiter allows perSecond requests with bursts up to burst.
// A non-positive perSecond disables limiting.
func NewLimiter(perSecond float64, burst int) *Limiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &Limiter{bucket: rate.NewLimiter(limit, burst)}
}

// Limit rejects the call when the bucket is empty
func (l *Limiter) Limit(ctx context.Context) error {
	if l.bucket.Allow() {
		return nil
	}
	metrics.RateLimited.WithLabelValues(methodOf(ctx)).Inc()
	return errors.ResourceExhausted("request rate exceeded")
}

// UnaryMetrics records request counts and latency per method
func UnaryMetrics() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		metrics.RequestDuration.WithLabelValues(info.FullMethod).Observe(time.Since(start).Seconds())
		metrics.RequestCounter.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
		return resp, err
	}
}

func methodOf(ctx context.Context) string {
	if method, ok := grpc.Method(ctx); ok {
		return method
	}
	return unknownMethod
}
