// Package testutils provides shared helpers for repository and orchestrator tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/raid-planner/internal/redis"
)

// CreateTestRedisClient starts a miniredis server and returns a client bound
// to it. The server is closed when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})
	return client, mr
}
