package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WorksCouncil 每個 technical unit 最多一筆，第一次 OR 操作時才建立
type WorksCouncil struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	TechnicalUnitID primitive.ObjectID `json:"technicalUnitId" bson:"technicalUnitId"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

var WorksCouncilIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "technicalUnitId", Value: 1}},
		Options: options.Index().SetName("uniq_technicalUnitId").SetUnique(true),
	},
}
