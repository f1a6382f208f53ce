package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePairs(t *testing.T) {
	got, err := parsePairs([]string{"tome_currency=495", "weapon_token=1"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int32{"tome_currency": 495, "weapon_token": 1}, got)

	_, err = parsePairs([]string{"tome_currency"})
	assert.Error(t, err)

	_, err = parsePairs([]string{"tome_currency=lots"})
	assert.Error(t, err)
}

func TestParseSlots(t *testing.T) {
	got, err := parseSlots([]string{"weapon=weapon-savage", "head=head-tome"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"weapon": "weapon-savage", "head": "head-tome"}, got)

	_, err = parseSlots([]string{"shoulders=pads"})
	assert.Error(t, err)
}
