package cache

import (
	"testing"

	"quiz-board/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	_, err = NewRedisClient(config.RedisConfig{})
	assert.Error(t, err)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisClient(config.RedisConfig{Address: addr})
	assert.ErrorContains(t, err, "failed to connect to Redis")
}
