package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"socialelections/internal/core"
	client "socialelections/internal/database/client"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type TechnicalUnitRepository struct {
	collection *mongo.Collection
}

func NewTechnicalUnitRepository(mongoClient *client.MongoClient, logger *zap.Logger) *TechnicalUnitRepository {
	repository := &TechnicalUnitRepository{
		collection: mongoClient.Collection(core.MongoCollectionTechnicalUnits),
	}
	reportIndexError(logger, core.MongoCollectionTechnicalUnits, repository.ensureIndexes(context.Background()), false)
	return repository
}

func (repository *TechnicalUnitRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.TechnicalUnitIndexes)
	return err
}

func (repository *TechnicalUnitRepository) Create(contextValue context.Context, unit *model.TechnicalUnit) (_ *model.TechnicalUnit, returnedError error) {
	nowUTC := time.Now().UTC()
	record := *unit
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	record.CreatedAt = nowUTC
	record.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, &record)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	record.ID = objectID
	return &record, nil
}

func (repository *TechnicalUnitRepository) FindByID(contextValue context.Context, unitIdentifier primitive.ObjectID) (_ *model.TechnicalUnit, returnedError error) {
	var unit model.TechnicalUnit
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": unitIdentifier}).Decode(&unit); returnedError != nil {
		if errors.Is(returnedError, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, returnedError
	}
	return &unit, nil
}

func (repository *TechnicalUnitRepository) List(contextValue context.Context, companyIdentifier *primitive.ObjectID) (_ []*model.TechnicalUnit, returnedError error) {
	return repository.Search(contextValue, store.TechnicalUnitFilter{CompanyID: companyIdentifier})
}

func (repository *TechnicalUnitRepository) Search(contextValue context.Context, filter store.TechnicalUnitFilter) (_ []*model.TechnicalUnit, returnedError error) {
	query := bson.M{}
	if filter.CompanyID != nil {
		query["companyId"] = *filter.CompanyID
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		regex := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
		fields := []string{"name", "code", "description", "department", "status", "location.city", "location.street"}
		or := make(bson.A, 0, len(fields))
		for _, field := range fields {
			or = append(or, bson.M{field: regex})
		}
		query["$or"] = or
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "code", Value: 1}, {Key: "_id", Value: 1}})
	cursor, findError := repository.collection.Find(contextValue, query, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	results := []*model.TechnicalUnit{}
	for cursor.Next(contextValue) {
		var unit model.TechnicalUnit
		if decodeError := cursor.Decode(&unit); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &unit)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

// Update 只 $set 可編輯欄位，managerEmployeeId 與 createdAt 不動
func (repository *TechnicalUnitRepository) Update(contextValue context.Context, unit *model.TechnicalUnit) (_ *model.TechnicalUnit, returnedError error) {
	update := bson.M{"$set": bson.M{
		"name":              unit.Name,
		"code":              unit.Code,
		"description":       unit.Description,
		"numberOfEmployees": unit.NumberOfEmployees,
		"department":        unit.Department,
		"location":          unit.Location,
		"status":            unit.Status,
		"language":          unit.Language,
		"pcWorkers":         unit.PCWorkers,
		"pcClerks":          unit.PCClerks,
		"fodDossierBase":    unit.FodDossierBase,
		"fodDossierSuffix":  unit.FodDossierSuffix,
		"electionBodies":    unit.ElectionBodies,
	}}
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.TechnicalUnit
	if returnedError = repository.collection.FindOneAndUpdate(contextValue, bson.M{"_id": unit.ID}, withUpdatedAt(update), findOptions).Decode(&updated); returnedError != nil {
		if errors.Is(returnedError, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, returnedError
	}
	return &updated, nil
}

// SetManager employeeIdentifier 為 nil 時 $unset
func (repository *TechnicalUnitRepository) SetManager(contextValue context.Context, unitIdentifier primitive.ObjectID, employeeIdentifier *primitive.ObjectID) (returnedError error) {
	update := bson.M{"$unset": bson.M{"managerEmployeeId": ""}}
	if employeeIdentifier != nil {
		update = bson.M{"$set": bson.M{"managerEmployeeId": *employeeIdentifier}}
	}
	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": unitIdentifier}, withUpdatedAt(update))
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (repository *TechnicalUnitRepository) ClearManagerIf(contextValue context.Context, employeeIdentifier primitive.ObjectID) (_ int64, returnedError error) {
	result, updateError := repository.collection.UpdateMany(contextValue,
		bson.M{"managerEmployeeId": employeeIdentifier},
		withUpdatedAt(bson.M{"$unset": bson.M{"managerEmployeeId": ""}}),
	)
	if updateError != nil {
		return 0, updateError
	}
	return result.ModifiedCount, nil
}

func (repository *TechnicalUnitRepository) DeleteByID(contextValue context.Context, unitIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": unitIdentifier})
	return returnedError
}
