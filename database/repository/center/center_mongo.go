package centerRepo

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

// MongoCenterRepo implements CenterRepository using MongoDB.
type MongoCenterRepo struct {
	coll *mongo.Collection
}

// NewMongoCenterRepo creates a new instance of CenterRepository using MongoDB.
func NewMongoCenterRepo() CenterRepository {
	coll := database.MongoClient.Database("autocare").Collection("service_centers")
	repo := &MongoCenterRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCenterRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "location_geo", Value: "2dsphere"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a service center by its unique ID.
func (r *MongoCenterRepo) GetByID(id string) (*models.ServiceCenter, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var center models.ServiceCenter
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&center)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service center with id %s: %w", id, err)
	}
	return &center, nil
}

// GetAll retrieves every service center.
func (r *MongoCenterRepo) GetAll() ([]models.ServiceCenter, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service centers: %w", err)
	}
	defer cursor.Close(ctx)

	var centers []models.ServiceCenter
	if err := cursor.All(ctx, &centers); err != nil {
		return nil, fmt.Errorf("failed to decode service centers: %w", err)
	}
	return centers, nil
}

// GetNearby retrieves centers within radiusMeters of the given coordinates,
// ordered nearest first by the 2dsphere index.
func (r *MongoCenterRepo) GetNearby(lat, lng float64, radiusMeters float64) ([]models.ServiceCenter, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"location_geo": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lng, lat},
				},
				"$maxDistance": radiusMeters,
			},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to run nearby query: %w", err)
	}
	defer cursor.Close(ctx)

	var centers []models.ServiceCenter
	if err := cursor.All(ctx, &centers); err != nil {
		return nil, fmt.Errorf("failed to decode nearby centers: %w", err)
	}
	return centers, nil
}

// Create inserts a new service center document.
func (r *MongoCenterRepo) Create(center *models.ServiceCenter) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	center.CreatedAt = now
	center.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, center)
	if err != nil {
		return fmt.Errorf("failed to create service center: %w", err)
	}
	return nil
}

// Update modifies an existing service center document.
func (r *MongoCenterRepo) Update(center *models.ServiceCenter) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	center.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": center.ID}, bson.M{"$set": center})
	if err != nil {
		return fmt.Errorf("failed to update service center with id %s: %w", center.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service center with id %s not found", center.ID)
	}
	return nil
}

// UpdateRating folds a new feedback rating into the running average.
func (r *MongoCenterRepo) UpdateRating(id string, rating int) error {
	center, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if center == nil {
		return fmt.Errorf("service center with id %s not found", id)
	}

	total := center.Rating*float64(center.RatingCount) + float64(rating)
	center.RatingCount++
	center.Rating = total / float64(center.RatingCount)

	return r.Update(center)
}
