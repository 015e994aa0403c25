package database

import (
	"fmt"
	"socialelections/config"
	client "socialelections/internal/database/client"
	fluentdRepo "socialelections/internal/database/fluentd/repository"
	"socialelections/internal/database/memory"
	mongoRepo "socialelections/internal/database/mongodb/repository"
	redisRepo "socialelections/internal/database/redis/repository"
	"socialelections/internal/database/store"
	"socialelections/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewFluentdClient,
	fluentdRepo.ProviderSet,
	NewStore,
	NewLocker,
)

// NewStore 依 WORKS_COUNCIL__STORAGE 選擇持久層，mongo 連線只在需要時建立
func NewStore(conf *config.Configuration, logger *zap.Logger) (store.Store, func(), error) {
	switch conf.WorksCouncil.Storage {
	case config.StorageMongo:
		mongoClient, cleanup, err := client.NewMongoClient(logger, conf)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("works council storage", zap.String("driver", string(config.StorageMongo)))
		return mongoRepo.New(mongoClient, logger), cleanup, nil
	case config.StorageMemory, "":
		logger.Info("works council storage", zap.String("driver", string(config.StorageMemory)))
		return memory.NewStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown WORKS_COUNCIL__STORAGE %q", conf.WorksCouncil.Storage)
	}
}

// NewLocker 依 WORKS_COUNCIL__LOCKER 選擇 scope lock；多 instance 部署必須用 redis
func NewLocker(conf *config.Configuration, logger *zap.Logger, trace *telemetry.Trace) (store.ScopeLocker, func(), error) {
	switch conf.WorksCouncil.Locker {
	case config.LockerRedis:
		redisClient, cleanup, err := client.NewRedisClient(logger, conf)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("works council scope lock", zap.String("driver", string(config.LockerRedis)))
		return redisRepo.NewScopeLockRepository(conf, trace, redisClient), cleanup, nil
	case config.LockerMemory, "":
		logger.Info("works council scope lock", zap.String("driver", string(config.LockerMemory)))
		return memory.NewLocker(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown WORKS_COUNCIL__LOCKER %q", conf.WorksCouncil.Locker)
	}
}
