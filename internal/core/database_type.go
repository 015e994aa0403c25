package core

// ─── Database Types ────────────────────────────────────────────────────────────

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────

// 沒有設定 MONGODB__DATABASE 時使用
const (
	MongoDBSocialElections MongoDatabaseName = "social_elections"
)

// MongoDB collections
const (
	MongoCollectionEmployees      MongoCollection = "employees"
	MongoCollectionTechnicalUnits MongoCollection = "technical_units"
	MongoCollectionWorksCouncils  MongoCollection = "works_councils"
	MongoCollectionOrMemberships  MongoCollection = "or_memberships"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName RedisKey = "socialelections" // 伺服器名稱
	RedisKeyScopeLock  RedisKey = "or_scope_lock"   // (unit, category) 串行化 lease
)

const (
	FluentdRequest     FluentdSubTag = "request_log"
	FluentdResponse    FluentdSubTag = "response_log"
	FluentdLedgerEvent FluentdSubTag = "or_ledger_event"
)
