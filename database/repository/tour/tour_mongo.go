package tourRepo

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

// MongoTourRepo implements TourRepository using MongoDB.
type MongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo creates a new instance of TourRepository using MongoDB.
func NewMongoTourRepo() TourRepository {
	repo := &MongoTourRepo{coll: database.Collection("tours")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoTourRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "area", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new tour document.
func (r *MongoTourRepo) Create(tour *models.Tour) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	tour.CreatedAt = now
	tour.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, tour); err != nil {
		return fmt.Errorf("failed to create tour: %w", err)
	}
	return nil
}

// Update modifies an existing tour document.
func (r *MongoTourRepo) Update(tour *models.Tour) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	tour.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": tour.ID}, bson.M{"$set": tour})
	if err != nil {
		return fmt.Errorf("failed to update tour with id %s: %w", tour.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tour with id %s not found", tour.ID)
	}
	return nil
}

// Delete removes a tour document by its ID.
func (r *MongoTourRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete tour with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("tour with id %s not found", id)
	}
	return nil
}

// GetByID retrieves a tour by its unique ID. Returns nil when absent.
func (r *MongoTourRepo) GetByID(id string) (*models.Tour, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tour models.Tour
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tour); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch tour with id %s: %w", id, err)
	}
	return &tour, nil
}

// GetAll retrieves tours matching the optional area/season filter.
func (r *MongoTourRepo) GetAll(filter TourFilter) ([]models.Tour, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Area != "" {
		query["area"] = filter.Area
	}
	if filter.Season != "" {
		query["available_seasons"] = filter.Season
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tours: %w", err)
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	for cursor.Next(ctx) {
		var t models.Tour
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode tour: %w", err)
		}
		tours = append(tours, t)
	}
	return tours, nil
}

// SetImage stores the served image URL on a tour.
func (r *MongoTourRepo) SetImage(id, imageURL string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"image": imageURL, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set image for tour %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("tour with id %s not found", id)
	}
	return nil
}
