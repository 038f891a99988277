// File: database/repository/account/account.go
package accountRepo

import (
	"context"
	"time"

	"feastly/database"
	"feastly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository exposes read-only identity lookups for the booking core.
// Signup/profile management is handled by the out-of-scope auth surface.
type Repository interface {
	GetCustomerByID(ctx context.Context, id string) (*models.Customer, error)
	GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error)
}

type mongoAccountRepo struct {
	customers   *mongo.Collection
	restaurants *mongo.Collection
}

// NewMongoAccountRepo constructs a new MongoDB account repository.
func NewMongoAccountRepo() Repository {
	db := database.MongoClient.Database(database.DBName())
	return &mongoAccountRepo{
		customers:   db.Collection("customers"),
		restaurants: db.Collection("restaurants"),
	}
}

func (r *mongoAccountRepo) GetCustomerByID(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := r.customers.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *mongoAccountRepo) GetRestaurantByID(ctx context.Context, id string) (*models.Restaurant, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var restaurant models.Restaurant
	if err := r.restaurants.FindOne(ctx, bson.M{"id": id}).Decode(&restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}
