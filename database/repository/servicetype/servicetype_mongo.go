package servicetypeRepo

import (
	"context"
	"fmt"
	"time"

	"autocare/database"
	"autocare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceTypeRepo implements ServiceTypeRepository using MongoDB.
type MongoServiceTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceTypeRepo creates a new instance of ServiceTypeRepository using MongoDB.
func NewMongoServiceTypeRepo() ServiceTypeRepository {
	coll := database.MongoClient.Database("autocare").Collection("service_types")
	repo := &MongoServiceTypeRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoServiceTypeRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a service type by its unique ID.
func (r *MongoServiceTypeRepo) GetByID(id string) (*models.ServiceType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var st models.ServiceType
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&st)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service type with id %s: %w", id, err)
	}
	return &st, nil
}

// GetAll retrieves every service type.
func (r *MongoServiceTypeRepo) GetAll() ([]models.ServiceType, error) {
	return r.find(bson.M{})
}

// GetByIDs retrieves the service types with the given ids.
func (r *MongoServiceTypeRepo) GetByIDs(ids []string) ([]models.ServiceType, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(bson.M{"id": bson.M{"$in": ids}})
}

func (r *MongoServiceTypeRepo) find(filter bson.M) ([]models.ServiceType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.ServiceType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("failed to decode service types: %w", err)
	}
	return types, nil
}

// Create inserts a new service type document.
func (r *MongoServiceTypeRepo) Create(serviceType *models.ServiceType) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	serviceType.CreatedAt = now
	serviceType.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, serviceType)
	if err != nil {
		return fmt.Errorf("failed to create service type: %w", err)
	}
	return nil
}
