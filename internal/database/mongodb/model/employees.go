package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Employee 不保存 orMembership，OR 狀態一律由 or_memberships 投影
type Employee struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	TechnicalUnitID primitive.ObjectID `json:"technicalUnitId" bson:"technicalUnitId"`
	FirstName       string             `json:"firstName" bson:"firstName"`
	LastName        string             `json:"lastName" bson:"lastName"`
	Email           string             `json:"email" bson:"email"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role            string             `json:"role,omitempty" bson:"role,omitempty"`
	StartDate       *time.Time         `json:"startDate,omitempty" bson:"startDate,omitempty"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var EmployeeIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "technicalUnitId", Value: 1}, {Key: "lastName", Value: 1}},
		Options: options.Index().SetName("idx_technicalUnitId_lastName"),
	},
	{
		Keys:    bson.D{{Key: "technicalUnitId", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetName("idx_technicalUnitId_email"),
	},
}
