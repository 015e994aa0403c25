package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"socialelections/config"
	"socialelections/internal/core"
	client "socialelections/internal/database/client"
	"socialelections/internal/database/store"
	"socialelections/internal/telemetry"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

// 只有持有同一個 token 的人可以刪除 lease，避免 TTL 過期後誤刪別人的鎖
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const scopeLockRetryInterval = 25 * time.Millisecond

// ScopeLockRepository 以 SET NX PX 實作跨 instance 的 (unit, category) 互斥
type ScopeLockRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
	ttl    time.Duration
	wait   time.Duration
}

func NewScopeLockRepository(config *config.Configuration, trace *telemetry.Trace, client *client.RedisClient) *ScopeLockRepository {
	return &ScopeLockRepository{
		trace:  trace,
		client: client.Client(),
		ttl:    config.WorksCouncil.LockTTLDuration(),
		wait:   config.WorksCouncil.LockWaitDuration(),
	}
}

func (repository *ScopeLockRepository) Lock(contextValue context.Context, scope store.Scope) (_ func(), returnedError error) {
	contextValue, span, endSpan := repository.trace.WithSpan(contextValue, string(core.SpanScopeLock))
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(scope)
	token := uuid.NewString()
	startAt := time.Now()
	traceMetadata := core.TraceScopeLockMeta{Key: redisKey, Driver: string(config.LockerRedis)}

	waitContext, cancel := context.WithTimeout(contextValue, repository.wait)
	defer cancel()

	ticker := time.NewTicker(scopeLockRetryInterval)
	defer ticker.Stop()

	for {
		traceMetadata.Attempts++
		acquired, setError := repository.client.SetNX(waitContext, redisKey, token, repository.ttl).Result()
		if setError != nil && !errors.Is(setError, context.DeadlineExceeded) && !errors.Is(setError, context.Canceled) {
			returnedError = setError
			repository.observe(span, traceMetadata, startAt, "error")
			return nil, returnedError
		}
		if acquired {
			repository.observe(span, traceMetadata, startAt, "acquired")
			return repository.unlocker(redisKey, token), nil
		}

		select {
		case <-waitContext.Done():
			repository.observe(span, traceMetadata, startAt, "timeout")
			if contextValue.Err() != nil {
				returnedError = contextValue.Err()
			} else {
				returnedError = fmt.Errorf("%w: %s", store.ErrScopeLockTimeout, redisKey)
			}
			return nil, returnedError
		case <-ticker.C:
		}
	}
}

// unlocker 用獨立 context 釋放，呼叫端 ctx 已取消也要能放鎖
func (repository *ScopeLockRepository) unlocker(redisKey, token string) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = releaseScript.Run(ctx, repository.client, []string{redisKey}, token).Err()
		})
	}
}

func (repository *ScopeLockRepository) observe(span trace.Span, meta core.TraceScopeLockMeta, startAt time.Time, result string) {
	repository.trace.RecordScopeLock(span, meta, startAt, result)
}

// buildKey socialelections:or_scope_lock:<unitHex>:<category>
func (repository *ScopeLockRepository) buildKey(scope store.Scope) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, core.RedisKeyScopeLock, scope.String())
}
