package model

import (
	"socialelections/internal/core"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrMembership struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	WorksCouncilID  primitive.ObjectID `json:"worksCouncilId" bson:"worksCouncilId"`
	TechnicalUnitID primitive.ObjectID `json:"technicalUnitId" bson:"technicalUnitId"`
	EmployeeID      primitive.ObjectID `json:"employeeId" bson:"employeeId"`
	Category        core.ORCategory    `json:"category" bson:"category"`
	Order           int                `json:"order" bson:"order"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// order 不設 unique：compaction 與 reorder 在同一個 transaction 內會短暫重複
var OrMembershipIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "employeeId", Value: 1}, {Key: "category", Value: 1}},
		Options: options.Index().SetName("uniq_employeeId_category").SetUnique(true),
	},
	{
		Keys:    bson.D{{Key: "technicalUnitId", Value: 1}, {Key: "category", Value: 1}, {Key: "order", Value: 1}},
		Options: options.Index().SetName("idx_technicalUnitId_category_order"),
	},
	{
		Keys:    bson.D{{Key: "worksCouncilId", Value: 1}},
		Options: options.Index().SetName("idx_worksCouncilId"),
	},
}
