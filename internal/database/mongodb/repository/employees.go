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

type EmployeeRepository struct {
	collection *mongo.Collection
}

func NewEmployeeRepository(mongoClient *client.MongoClient, logger *zap.Logger) *EmployeeRepository {
	repository := &EmployeeRepository{
		collection: mongoClient.Collection(core.MongoCollectionEmployees),
	}
	reportIndexError(logger, core.MongoCollectionEmployees, repository.ensureIndexes(context.Background()), false)
	return repository
}

func (repository *EmployeeRepository) ensureIndexes(contextValue context.Context) error {
	_, err := repository.collection.Indexes().CreateMany(contextValue, model.EmployeeIndexes)
	return err
}

func (repository *EmployeeRepository) Create(contextValue context.Context, employee *model.Employee) (_ *model.Employee, returnedError error) {
	nowUTC := time.Now().UTC()
	record := *employee
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

func (repository *EmployeeRepository) FindByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (_ *model.Employee, returnedError error) {
	var employee model.Employee
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": employeeIdentifier}).Decode(&employee); returnedError != nil {
		if errors.Is(returnedError, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, returnedError
	}
	return &employee, nil
}

// FindByIDs 依輸入順序回傳找得到的 employee，重複 id 只回一次
func (repository *EmployeeRepository) FindByIDs(contextValue context.Context, employeeIdentifiers []primitive.ObjectID) (_ []*model.Employee, returnedError error) {
	if len(employeeIdentifiers) == 0 {
		return []*model.Employee{}, nil
	}
	found, findError := repository.find(contextValue, bson.M{"_id": bson.M{"$in": employeeIdentifiers}}, nil)
	if findError != nil {
		return nil, findError
	}
	byID := make(map[primitive.ObjectID]*model.Employee, len(found))
	for _, employee := range found {
		byID[employee.ID] = employee
	}
	results := make([]*model.Employee, 0, len(found))
	for _, id := range employeeIdentifiers {
		if employee, ok := byID[id]; ok {
			results = append(results, employee)
			delete(byID, id)
		}
	}
	return results, nil
}

func (repository *EmployeeRepository) ListByUnit(contextValue context.Context, technicalUnitIdentifier primitive.ObjectID) (_ []*model.Employee, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	return repository.find(contextValue, bson.M{"technicalUnitId": technicalUnitIdentifier}, findOptions)
}

// Search 的 query 以 regexp.QuoteMeta 轉成不分大小寫的子字串比對
func (repository *EmployeeRepository) Search(contextValue context.Context, filter store.EmployeeFilter) (_ []*model.Employee, returnedError error) {
	query := bson.M{}
	if filter.TechnicalUnitID != nil {
		query["technicalUnitId"] = *filter.TechnicalUnitID
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := regexp.QuoteMeta(q)
		regex := primitive.Regex{Pattern: pattern, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"$expr": bson.M{"$regexMatch": bson.M{
				"input":   bson.M{"$concat": bson.A{"$firstName", " ", "$lastName"}},
				"regex":   pattern,
				"options": "i",
			}}},
			bson.M{"email": regex},
			bson.M{"role": regex},
			bson.M{"phone": regex},
		}
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	return repository.find(contextValue, query, findOptions)
}

func (repository *EmployeeRepository) Update(contextValue context.Context, employee *model.Employee) (_ *model.Employee, returnedError error) {
	update := bson.M{"$set": bson.M{
		"technicalUnitId": employee.TechnicalUnitID,
		"firstName":       employee.FirstName,
		"lastName":        employee.LastName,
		"email":           employee.Email,
		"phone":           employee.Phone,
		"role":            employee.Role,
		"startDate":       employee.StartDate,
		"status":          employee.Status,
	}}
	findOptions := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated model.Employee
	if returnedError = repository.collection.FindOneAndUpdate(contextValue, bson.M{"_id": employee.ID}, withUpdatedAt(update), findOptions).Decode(&updated); returnedError != nil {
		if errors.Is(returnedError, mongo.ErrNoDocuments) {
			return nil, store.ErrNotFound
		}
		return nil, returnedError
	}
	return &updated, nil
}

func (repository *EmployeeRepository) find(contextValue context.Context, filter bson.M, findOptions *options.FindOptions) (_ []*model.Employee, returnedError error) {
	cursor, findError := repository.collection.Find(contextValue, filter, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	results := []*model.Employee{}
	for cursor.Next(contextValue) {
		var employee model.Employee
		if decodeError := cursor.Decode(&employee); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &employee)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}
	return results, nil
}

func (repository *EmployeeRepository) DeleteByID(contextValue context.Context, employeeIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": employeeIdentifier})
	return returnedError
}

func (repository *EmployeeRepository) DeleteByUnit(contextValue context.Context, technicalUnitIdentifier primitive.ObjectID) (_ int64, returnedError error) {
	result, deleteError := repository.collection.DeleteMany(contextValue, bson.M{"technicalUnitId": technicalUnitIdentifier})
	if deleteError != nil {
		return 0, deleteError
	}
	return result.DeletedCount, nil
}
