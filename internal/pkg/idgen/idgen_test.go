package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/raid-planner/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("occ")
	assert.Equal(t, "occ_1", gen.Generate())
	assert.Equal(t, "occ_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("sched").Generate()
	require.True(t, strings.HasPrefix(id, "sched_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "sched_"))
	assert.NoError(t, err)

	other := idgen.NewUUID("").Generate()
	_, err = uuid.Parse(other)
	assert.NoError(t, err)
}
