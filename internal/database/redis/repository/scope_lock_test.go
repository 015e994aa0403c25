package repository

import (
	"context"
	"testing"
	"time"

	"socialelections/internal/database/store"
	"socialelections/internal/telemetry"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestScopeLockBuildKey(t *testing.T) {
	t.Parallel()

	unitID, err := primitive.ObjectIDFromHex("65a1f0c2e4b0a1b2c3d4e5f6")
	require.NoError(t, err)

	repository := &ScopeLockRepository{}
	key := repository.buildKey(store.Scope{TechnicalUnitID: unitID, Category: "bedienden"})
	require.Equal(t, "socialelections:or_scope_lock:65a1f0c2e4b0a1b2c3d4e5f6:bedienden", key)
}

// 連不上 redis 時要回傳原本的錯誤，不能當成 lock timeout
func TestScopeLockTransportErrorIsNotTimeout(t *testing.T) {
	t.Parallel()

	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 200 * time.Millisecond, MaxRetries: -1})
	defer rdb.Close()

	repository := &ScopeLockRepository{trace: &telemetry.Trace{}, client: rdb, ttl: time.Second, wait: 2 * time.Second}
	_, err := repository.Lock(context.Background(), store.Scope{TechnicalUnitID: primitive.NewObjectID(), Category: "arbeiders"})
	require.Error(t, err)
	require.NotErrorIs(t, err, store.ErrScopeLockTimeout)
	require.NotErrorIs(t, err, context.DeadlineExceeded)
}
