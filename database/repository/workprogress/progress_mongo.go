package progressRepo

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

// MongoProgressRepo implements ProgressRepository using MongoDB.
type MongoProgressRepo struct {
	coll *mongo.Collection
}

// NewMongoProgressRepo creates a new instance of ProgressRepository using MongoDB.
func NewMongoProgressRepo() ProgressRepository {
	coll := database.MongoClient.Database("autocare").Collection("work_progress")
	repo := &MongoProgressRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProgressRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "technician_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a progress record by its unique ID.
func (r *MongoProgressRepo) GetByID(id string) (*models.WorkProgress, error) {
	return r.findOne(bson.M{"id": id})
}

// GetByBooking retrieves the progress record attached to a booking.
func (r *MongoProgressRepo) GetByBooking(bookingID string) (*models.WorkProgress, error) {
	return r.findOne(bson.M{"booking_id": bookingID})
}

func (r *MongoProgressRepo) findOne(filter bson.M) (*models.WorkProgress, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var progress models.WorkProgress
	err := r.coll.FindOne(ctx, filter).Decode(&progress)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch work progress: %w", err)
	}
	return &progress, nil
}

// GetByTechnician retrieves all records a technician owns, newest first.
func (r *MongoProgressRepo) GetByTechnician(technicianID string) ([]models.WorkProgress, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"technician_id": technicianID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work progress for technician %s: %w", technicianID, err)
	}
	defer cursor.Close(ctx)

	var records []models.WorkProgress
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode work progress records: %w", err)
	}
	return records, nil
}

// Create inserts a new progress document.
func (r *MongoProgressRepo) Create(progress *models.WorkProgress) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	progress.CreatedAt = now
	progress.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, progress)
	if err != nil {
		return fmt.Errorf("failed to create work progress: %w", err)
	}
	return nil
}

// UpdateSetDocument applies a $set update to the progress document.
func (r *MongoProgressRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updated_at"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update work progress with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("work progress with id %s not found", id)
	}
	return nil
}
