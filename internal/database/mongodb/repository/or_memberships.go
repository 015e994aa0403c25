package repository

import (
	"context"
	"time"

	"socialelections/internal/core"
	client "socialelections/internal/database/client"
	"socialelections/internal/database/mongodb/model"
	"socialelections/internal/database/mongodb/txn"
	"socialelections/internal/database/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type OrMembershipRepository struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func NewOrMembershipRepository(mongoClient *client.MongoClient, logger *zap.Logger) *OrMembershipRepository {
	repository := &OrMembershipRepository{
		client:     mongoClient.Client(),
		collection: mongoClient.Collection(core.MongoCollectionOrMemberships),
	}
	// uniq_employeeId_category 是 membership 唯一性在 DB 端的最後防線，失敗要用 error 等級記錄
	reportIndexError(logger, core.MongoCollectionOrMemberships, repository.ensureIndexes(context.Background()), true)
	return repository
}

func (repository *OrMembershipRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.OrMembershipIndexes)
	return err
}

func (repository *OrMembershipRepository) ListByUnit(contextValue context.Context, technicalUnitIdentifier primitive.ObjectID, category *core.ORCategory) (_ []*model.OrMembership, returnedError error) {
	filter := bson.M{"technicalUnitId": technicalUnitIdentifier}
	if category != nil {
		filter["category"] = *category
	}
	results, findError := repository.find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	// 類別順序不是字母序，排序交給 store.SortMemberships
	store.SortMemberships(results)
	return results, nil
}

func (repository *OrMembershipRepository) ListByEmployee(contextValue context.Context, employeeIdentifier primitive.ObjectID) (_ []*model.OrMembership, returnedError error) {
	results, findError := repository.find(contextValue, bson.M{"employeeId": employeeIdentifier})
	if findError != nil {
		return nil, findError
	}
	store.SortMemberships(results)
	return results, nil
}

func (repository *OrMembershipRepository) find(contextValue context.Context, filter bson.M) (_ []*model.OrMembership, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	results := []*model.OrMembership{}
	for cursor.Next(contextValue) {
		var membership model.OrMembership
		if decodeError := cursor.Decode(&membership); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &membership)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

type scopeGroup struct {
	ID struct {
		TechnicalUnitID primitive.ObjectID `bson:"technicalUnitId"`
		Category        core.ORCategory    `bson:"category"`
	} `bson:"_id"`
}

func (repository *OrMembershipRepository) ListScopes(contextValue context.Context) (_ []store.Scope, returnedError error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": bson.M{"technicalUnitId": "$technicalUnitId", "category": "$category"}}}},
	}
	cursor, aggregateError := repository.collection.Aggregate(contextValue, pipeline)
	if aggregateError != nil {
		return nil, aggregateError
	}
	defer cursor.Close(contextValue)

	var groups []scopeGroup
	if decodeError := cursor.All(contextValue, &groups); decodeError != nil {
		return nil, decodeError
	}
	scopes := make([]store.Scope, 0, len(groups))
	for _, group := range groups {
		scopes = append(scopes, store.Scope{TechnicalUnitID: group.ID.TechnicalUnitID, Category: group.ID.Category})
	}
	store.SortScopes(scopes)
	return scopes, nil
}

// ApplyChange 在同一個 transaction 內依序 delete、insert、更新 order。
// 任何一步失敗整批 abort；standalone 部署沒有 transaction，失敗時可能留下部分寫入
func (repository *OrMembershipRepository) ApplyChange(contextValue context.Context, change store.ScopeChange) (returnedError error) {
	if change.Empty() {
		return nil
	}
	at := change.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	return txn.Run(contextValue, repository.client, func(ctx context.Context) error {
		if len(change.Deletes) > 0 {
			_, deleteError := repository.collection.DeleteMany(ctx, bson.M{
				"_id":             bson.M{"$in": change.Deletes},
				"technicalUnitId": change.Scope.TechnicalUnitID,
			})
			if deleteError != nil {
				return deleteError
			}
		}

		if len(change.Inserts) > 0 {
			documents := make([]any, 0, len(change.Inserts))
			for _, row := range change.Inserts {
				record := *row
				if record.ID.IsZero() {
					record.ID = primitive.NewObjectID()
				}
				record.CreatedAt = at
				record.UpdatedAt = at
				documents = append(documents, &record)
			}
			if _, insertError := repository.collection.InsertMany(ctx, documents); insertError != nil {
				if mongo.IsDuplicateKeyError(insertError) {
					return store.ErrDuplicateMembership
				}
				return insertError
			}
		}

		if len(change.Orders) > 0 {
			models := make([]mongo.WriteModel, 0, len(change.Orders))
			for _, update := range change.Orders {
				models = append(models, mongo.NewUpdateOneModel().
					SetFilter(bson.M{
						"_id":             update.MembershipID,
						"technicalUnitId": change.Scope.TechnicalUnitID,
						"category":        change.Scope.Category,
					}).
					SetUpdate(bson.M{"$set": bson.M{"order": update.Order, "updatedAt": at}}))
			}
			result, bulkError := repository.collection.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(true))
			if bulkError != nil {
				return bulkError
			}
			if result.MatchedCount != int64(len(change.Orders)) {
				return store.ErrNotFound
			}
		}
		return nil
	})
}

func (repository *OrMembershipRepository) DeleteByUnit(contextValue context.Context, technicalUnitIdentifier primitive.ObjectID) (_ int64, returnedError error) {
	result, deleteError := repository.collection.DeleteMany(contextValue, bson.M{"technicalUnitId": technicalUnitIdentifier})
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}
