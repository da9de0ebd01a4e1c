package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("Fatiha123@#")
	require.NoError(t, err)
	assert.NotEqual(t, "Fatiha123@#", hash)

	assert.True(t, CheckPassword(hash, "Fatiha123@#"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "Fatiha123@#"))
}
