package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Address struct {
	Street     string `json:"street" bson:"street"`
	Number     string `json:"number" bson:"number"`
	PostalCode string `json:"postalCode" bson:"postalCode"`
	City       string `json:"city" bson:"city"`
	Country    string `json:"country" bson:"country"`
}

type ElectionBodies struct {
	CPBW      bool `json:"cpbw" bson:"cpbw"`
	OR        bool `json:"or" bson:"or"`
	SDWorkers bool `json:"sdWorkers" bson:"sdWorkers"`
	SDClerks  bool `json:"sdClerks" bson:"sdClerks"`
}

type TechnicalUnit struct {
	ID                primitive.ObjectID  `json:"id" bson:"_id"`
	CompanyID         primitive.ObjectID  `json:"companyId" bson:"companyId"`
	Name              string              `json:"name" bson:"name"`
	Code              string              `json:"code" bson:"code"`
	Description       string              `json:"description,omitempty" bson:"description,omitempty"`
	NumberOfEmployees int                 `json:"numberOfEmployees" bson:"numberOfEmployees"`
	ManagerEmployeeID *primitive.ObjectID `json:"managerEmployeeId,omitempty" bson:"managerEmployeeId,omitempty"`
	Department        string              `json:"department,omitempty" bson:"department,omitempty"`
	Location          Address             `json:"location" bson:"location"`
	Status            string              `json:"status" bson:"status"`
	Language          string              `json:"language" bson:"language"`
	PCWorkers         string              `json:"pcWorkers,omitempty" bson:"pcWorkers,omitempty"`
	PCClerks          string              `json:"pcClerks,omitempty" bson:"pcClerks,omitempty"`
	FodDossierBase    string              `json:"fodDossierBase,omitempty" bson:"fodDossierBase,omitempty"`
	FodDossierSuffix  string              `json:"fodDossierSuffix,omitempty" bson:"fodDossierSuffix,omitempty"`
	ElectionBodies    ElectionBodies      `json:"electionBodies" bson:"electionBodies"`
	CreatedAt         time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt" bson:"updatedAt"`
}

var TechnicalUnitIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: "companyId", Value: 1}, {Key: "code", Value: 1}},
		Options: options.Index().SetName("idx_companyId_code"),
	},
	{
		Keys:    bson.D{{Key: "managerEmployeeId", Value: 1}},
		Options: options.Index().SetName("idx_managerEmployeeId").SetSparse(true),
	},
}
