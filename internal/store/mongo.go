package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"idcard/internal/models"
)

const collectionName = "employees"

// MongoStore implements EmployeeStore on top of a MongoDB collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique index on prno that backs the duplicate
// detection in Create. Safe to call on every startup.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "prno", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create prno index: %w", err)
	}
	return nil
}

func (s *MongoStore) Create(ctx context.Context, e *models.Employee) error {
	_, err := s.col.InsertOne(ctx, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatePrno
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

func (s *MongoStore) FindByPrno(ctx context.Context, prno string) (*models.Employee, error) {
	var e models.Employee
	err := s.col.FindOne(ctx, bson.M{"prno": prno}).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find employee %q: %w", prno, err)
	}
	return &e, nil
}

func (s *MongoStore) Update(ctx context.Context, e *models.Employee) error {
	result, err := s.col.ReplaceOne(ctx, bson.M{"prno": e.Prno}, e)
	if err != nil {
		return fmt.Errorf("update employee %q: %w", e.Prno, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Search(ctx context.Context, f Filter) ([]Summary, error) {
	findOptions := options.Find().SetProjection(bson.M{
		"name":       1,
		"department": 1,
		"prno":       1,
		"mobileNo":   1,
	})

	cursor, err := s.col.Find(ctx, searchQuery(f), findOptions)
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	defer cursor.Close(ctx)

	results := make([]Summary, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	return results, nil
}

func (s *MongoStore) FindAll(ctx context.Context) ([]models.Employee, error) {
	cursor, err := s.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cursor.Close(ctx)

	employees := make([]models.Employee, 0)
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	return employees, nil
}

// searchQuery builds the Mongo filter document for a search. Absent criteria
// add no clause, so the empty filter matches everything.
func searchQuery(f Filter) bson.M {
	query := bson.M{}
	if f.Name != "" {
		query["name"] = bson.M{"$regex": f.Name, "$options": "i"}
	}
	if f.Prno != "" {
		query["prno"] = f.Prno
	}
	if f.Department != "" {
		query["department"] = f.Department
	}
	return query
}
