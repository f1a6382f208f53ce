package interceptors_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/handlers/interceptors"
	"github.com/KirkDiggler/raid-planner/internal/metrics"
)

func TestLimiterRejectsOnceBucketIsEmpty(t *testing.T) {
	limiter := interceptors.NewLimiter(0.001, 2)
	rejected := metrics.RateLimited.WithLabelValues("unknown")
	before := testutil.ToFloat64(rejected)

	require.NoError(t, limiter.Limit(context.Background()))
	require.NoError(t, limiter.Limit(context.Background()))

	err := limiter.Limit(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsResourceExhausted(err))
	assert.Equal(t, before+1, testutil.ToFloat64(rejected))
}

func TestLimiterDisabled(t *testing.T) {
	limiter := interceptors.NewLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.NoError(t, limiter.Limit(context.Background()))
	}
}

func TestUnaryMetricsRecordsStatusCode(t *testing.T) {
	const method = "/raidplanner.v1alpha1.PlannerService/GetLedger"
	notFound := metrics.RequestCounter.WithLabelValues(method, codes.NotFound.String())
	ok := metrics.RequestCounter.WithLabelValues(method, codes.OK.String())
	notFoundBefore := testutil.ToFloat64(notFound)
	okBefore := testutil.ToFloat64(ok)

	intercept := interceptors.UnaryMetrics()
	info := &grpc.UnaryServerInfo{FullMethod: method}

	_, err := intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "ledger missing")
	})
	require.Error(t, err)

	resp, err := intercept(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	assert.Equal(t, notFoundBefore+1, testutil.ToFloat64(notFound))
	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
}
