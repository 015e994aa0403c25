package repository

import (
	"context"
	"errors"
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

type WorksCouncilRepository struct {
	collection *mongo.Collection
}

func NewWorksCouncilRepository(mongoClient *client.MongoClient, logger *zap.Logger) *WorksCouncilRepository {
	repository := &WorksCouncilRepository{
		collection: mongoClient.Collection(core.MongoCollectionWorksCouncils),
	}
	// FindOrCreate 依賴 uniq_technicalUnitId
	reportIndexError(logger, core.MongoCollectionWorksCouncils, repository.ensureIndexes(context.Background()), true)
	return repository
}

func (repository *WorksCouncilRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.WorksCouncilIndexes)
	return err
}

// FindOrCreate 以 uniq_technicalUnitId 保證同一個 unit 只會有一筆；
// 兩個 upsert 同時插入時輸的一方會拿到 E11000，改讀已存在的那筆
func (repository *WorksCouncilRepository) FindOrCreate(contextValue context.Context, technicalUnitIdentifier primitive.ObjectID) (_ *model.WorksCouncil, returnedError error) {
	nowUTC := time.Now().UTC()
	filter := bson.M{"technicalUnitId": technicalUnitIdentifier}
	update := bson.M{
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID(), "createdAt": nowUTC},
		"$set":         bson.M{"updatedAt": nowUTC},
	}
	updateOptions := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var council model.WorksCouncil
	returnedError = repository.collection.FindOneAndUpdate(contextValue, filter, update, updateOptions).Decode(&council)
	if returnedError == nil {
		return &council, nil
	}
	if !mongo.IsDuplicateKeyError(returnedError) {
		return nil, returnedError
	}
	return repository.FindByUnit(contextValue, technicalUnitIdentifier)
}

func (repository *WorksCouncilRepository) FindByUnit(contextValue context.Context, technicalUnitIdentifier primitive.ObjectID) (_ *model.WorksCouncil, returnedError error) {
	var council model.WorksCouncil
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"technicalUnitId": technicalUnitIdentifier}).Decode(&council); returnedError != nil {
		if errors.Is(returnedError, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, returnedError
	}
	return &council, nil
}

func (repository *WorksCouncilRepository) DeleteByUnit(contextValue context.Context, technicalUnitIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"technicalUnitId": technicalUnitIdentifier})
	return returnedError
}
