package repository

import (
	"socialelections/internal/core"
	client "socialelections/internal/database/client"
	"socialelections/internal/database/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// 統一管理所有 MongoDB repository，對外實作 store.Store
type MongoDBRepository struct {
	employeeRepo      *EmployeeRepository
	technicalUnitRepo *TechnicalUnitRepository
	worksCouncilRepo  *WorksCouncilRepository
	orMembershipRepo  *OrMembershipRepository
}

// 建立 MongoDB repository 物件
func NewMongoDBRepository(
	employeeRepo *EmployeeRepository,
	technicalUnitRepo *TechnicalUnitRepository,
	worksCouncilRepo *WorksCouncilRepository,
	orMembershipRepo *OrMembershipRepository,
) *MongoDBRepository {
	return &MongoDBRepository{
		employeeRepo:      employeeRepo,
		technicalUnitRepo: technicalUnitRepo,
		worksCouncilRepo:  worksCouncilRepo,
		orMembershipRepo:  orMembershipRepo,
	}
}

func (r *MongoDBRepository) Employees() store.EmployeeStore           { return r.employeeRepo }
func (r *MongoDBRepository) TechnicalUnits() store.TechnicalUnitStore { return r.technicalUnitRepo }
func (r *MongoDBRepository) WorksCouncils() store.WorksCouncilStore   { return r.worksCouncilRepo }
func (r *MongoDBRepository) Memberships() store.MembershipStore       { return r.orMembershipRepo }

// New 依序建立各 collection 的 repository
func New(mongoClient *client.MongoClient, logger *zap.Logger) *MongoDBRepository {
	return NewMongoDBRepository(
		NewEmployeeRepository(mongoClient, logger),
		NewTechnicalUnitRepository(mongoClient, logger),
		NewWorksCouncilRepository(mongoClient, logger),
		NewOrMembershipRepository(mongoClient, logger),
	)
}

// reportIndexError 建立 index 失敗不阻止啟動；unique index 失敗時資料完整性只剩 scope lock 保護，用 error 等級
func reportIndexError(logger *zap.Logger, collection core.MongoCollection, err error, unique bool) {
	if err == nil {
		return
	}
	fields := []zap.Field{zap.String("collection", string(collection)), zap.Error(err)}
	if unique {
		logger.Error("failed to create unique mongo indexes", fields...)
		return
	}
	logger.Warn("failed to create mongo indexes", fields...)
}

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}
