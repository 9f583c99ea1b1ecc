package adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"quiz-board/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheAdapter_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	key := "quizboard:leaderboard:ranked:all"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(key).SetVal(`[]`)
		val, err := adapter.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, `[]`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CacheMiss", func(t *testing.T) {
		mock.ExpectGet(key).RedisNil()
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectGet(key).SetErr(redisErr)
		val, err := adapter.Get(ctx, key)
		assert.ErrorIs(t, err, redisErr)
		assert.Empty(t, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	expiration := 30 * time.Second
	mock.ExpectSet("k", "v", expiration).SetVal("OK")
	assert.NoError(t, adapter.Set(ctx, "k", "v", expiration))

	redisErr := errors.New("some redis error")
	mock.ExpectSet("k", "v", expiration).SetErr(redisErr)
	assert.ErrorIs(t, adapter.Set(ctx, "k", "v", expiration), redisErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	t.Run("MultipleKeys", func(t *testing.T) {
		mock.ExpectDel("a", "b").SetVal(1)
		assert.NoError(t, adapter.Delete(ctx, "a", "b"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NoKeysIsNoop", func(t *testing.T) {
		assert.NoError(t, adapter.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectDel("a").SetErr(redisErr)
		assert.ErrorIs(t, adapter.Delete(ctx, "a"), redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCacheAdapter_Ping(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, adapter.Ping(ctx))

	redisErr := errors.New("some redis error")
	mock.ExpectPing().SetErr(redisErr)
	assert.ErrorIs(t, adapter.Ping(ctx), redisErr)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_HGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectHGet("h", "f").SetVal("1")
	val, err := adapter.HGet(ctx, "h", "f")
	assert.NoError(t, err)
	assert.Equal(t, "1", val)

	mock.ExpectHGet("h", "missing").RedisNil()
	_, err = adapter.HGet(ctx, "h", "missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_HGetAll(t *testing.T) {
	db, mock := redismock.NewClientMock()
	adapter := NewRedisCacheAdapter(db)
	ctx := context.Background()

	mock.ExpectHGetAll("h").SetVal(map[string]string{"0": "a"})
	val, err := adapter.HGetAll(ctx, "h")
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"0": "a"}, val)

	mock.ExpectHGetAll("absent").SetVal(map[string]string{})
	_, err = adapter.HGetAll(ctx, "absent")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCacheAdapter_HSetWithTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	adapter := NewRedisCacheAdapter(client)
	ctx := context.Background()

	err := adapter.HSetWithTTL(ctx, "quizboard:quiz:answerkey:q1", map[string]string{
		"0": `{"questionId":"a","correctAnswerIndex":1,"answerCount":4}`,
		"1": `{"questionId":"b","correctAnswerIndex":0,"answerCount":4}`,
	}, time.Minute)
	require.NoError(t, err)

	assert.Equal(t, time.Minute, mr.TTL("quizboard:quiz:answerkey:q1"))
	all, err := adapter.HGetAll(ctx, "quizboard:quiz:answerkey:q1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mr.FastForward(2 * time.Minute)
	_, err = adapter.HGetAll(ctx, "quizboard:quiz:answerkey:q1")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	assert.NoError(t, adapter.HSetWithTTL(ctx, "empty", nil, time.Minute))
	assert.False(t, mr.Exists("empty"))
}
