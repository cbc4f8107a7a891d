package driverRepo

import (
	"context"
	"fmt"
	"time"

	"smarttour/database"
	"smarttour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDriverRepo implements DriverRepository using MongoDB.
type MongoDriverRepo struct {
	coll *mongo.Collection
}

// NewMongoDriverRepo creates a new instance of DriverRepository using MongoDB.
func NewMongoDriverRepo() DriverRepository {
	repo := &MongoDriverRepo{coll: database.Collection("drivers")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoDriverRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "license_number", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new driver profile.
func (r *MongoDriverRepo) Create(driver *models.Driver) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	driver.CreatedAt = now
	driver.UpdatedAt = now
	if driver.Status == "" {
		driver.Status = models.DriverActive
	}
	if driver.Rating == 0 {
		driver.Rating = 5
	}

	if _, err := r.coll.InsertOne(ctx, driver); err != nil {
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// Update modifies an existing driver profile.
func (r *MongoDriverRepo) Update(driver *models.Driver) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	driver.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": driver.ID}, bson.M{"$set": driver})
	if err != nil {
		return fmt.Errorf("failed to update driver with id %s: %w", driver.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("driver with id %s not found", driver.ID)
	}
	return nil
}

// GetByID retrieves a driver by its unique ID. Returns nil when absent.
func (r *MongoDriverRepo) GetByID(id string) (*models.Driver, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var driver models.Driver
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&driver); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch driver with id %s: %w", id, err)
	}
	return &driver, nil
}

// GetByUserID retrieves the driver profile owned by a user account.
func (r *MongoDriverRepo) GetByUserID(userID string) (*models.Driver, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var driver models.Driver
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&driver); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch driver for user %s: %w", userID, err)
	}
	return &driver, nil
}

// GetAll retrieves drivers, optionally filtered by status.
func (r *MongoDriverRepo) GetAll(status string) ([]models.Driver, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve drivers: %w", err)
	}
	defer cursor.Close(ctx)

	var drivers []models.Driver
	for cursor.Next(ctx) {
		var d models.Driver
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode driver: %w", err)
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}

// IncrementTrips bumps the completed-trip counter.
func (r *MongoDriverRepo) IncrementTrips(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"total_trips": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to increment trips for driver %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("driver with id %s not found", id)
	}
	return nil
}

// AppendReview stores a customer review on the driver profile.
func (r *MongoDriverRepo) AppendReview(id string, review models.DriverReview) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"reviews": review},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to append review for driver %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("driver with id %s not found", id)
	}
	return nil
}
