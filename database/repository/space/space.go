// File: database/repository/space/space.go
package spaceRepo

import (
	"context"
	"fmt"
	"time"

	"feastly/database"
	"feastly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the read-only collaborator interface for spaces. Space CRUD
// lives in the restaurant-management surface, outside this core.
type Repository interface {
	FindByID(ctx context.Context, id string) (*models.Space, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Space, error)
}

type mongoSpaceRepo struct {
	coll *mongo.Collection
}

// NewMongoSpaceRepo constructs a new MongoDB space repository.
func NewMongoSpaceRepo() Repository {
	db := database.MongoClient.Database(database.DBName())
	return &mongoSpaceRepo{coll: db.Collection("spaces")}
}

func (r *mongoSpaceRepo) FindByID(ctx context.Context, id string) (*models.Space, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var space models.Space
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&space); err != nil {
		return nil, err
	}
	return &space, nil
}

func (r *mongoSpaceRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]models.Space, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"restaurantId": restaurantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list spaces for restaurant %s: %w", restaurantID, err)
	}
	defer cursor.Close(ctx)

	var spaces []models.Space
	if err := cursor.All(ctx, &spaces); err != nil {
		return nil, fmt.Errorf("failed to decode spaces: %w", err)
	}
	return spaces, nil
}
