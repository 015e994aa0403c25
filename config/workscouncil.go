package config

import "time"

type StorageDriver string

const (
	StorageMemory StorageDriver = "memory"
	StorageMongo  StorageDriver = "mongo"
)

type LockerDriver string

const (
	LockerMemory LockerDriver = "memory"
	LockerRedis  LockerDriver = "redis"
)

type WorksCouncil struct {
	// memory | mongo
	Storage StorageDriver `mapstructure:"STORAGE" json:"storage" yaml:"storage"`
	// memory | redis，多個 instance 共用同一份資料時必須用 redis
	Locker LockerDriver `mapstructure:"LOCKER" json:"locker" yaml:"locker"`
	// redis lease 存活時間（毫秒）
	LockTTL int64 `mapstructure:"LOCK_TTL" json:"lockTTL" yaml:"lockTTL"`
	// 取得 scope lock 的最長等待（毫秒）
	LockWait int64 `mapstructure:"LOCK_WAIT" json:"lockWait" yaml:"lockWait"`
	// 開啟後 setManager 會檢查 employee 是否屬於該 unit
	EnforceManagerUnit bool `mapstructure:"ENFORCE_MANAGER_UNIT" json:"enforceManagerUnit" yaml:"enforceManagerUnit"`
	// 空字串代表不排程
	IntegrityCron   string `mapstructure:"INTEGRITY_CRON" json:"integrityCron" yaml:"integrityCron"`
	IntegrityRepair bool   `mapstructure:"INTEGRITY_REPAIR" json:"integrityRepair" yaml:"integrityRepair"`
}

func (w WorksCouncil) LockTTLDuration() time.Duration {
	if w.LockTTL <= 0 {
		return 10 * time.Second
	}
	return time.Duration(w.LockTTL) * time.Millisecond
}

func (w WorksCouncil) LockWaitDuration() time.Duration {
	if w.LockWait <= 0 {
		return 5 * time.Second
	}
	return time.Duration(w.LockWait) * time.Millisecond
}
