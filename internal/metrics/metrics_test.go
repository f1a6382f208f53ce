package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/raid-planner/internal/errors"
	"github.com/KirkDiggler/raid-planner/internal/metrics"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, metrics.OutcomeSuccess, metrics.Outcome(nil))
	assert.Equal(t, metrics.OutcomeError, metrics.Outcome(errors.Internal("boom")))
}

func TestCountersIncrement(t *testing.T) {
	c := metrics.PriorityPasses.WithLabelValues(metrics.OutcomeSuccess)
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(c))
}
