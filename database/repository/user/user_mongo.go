package userRepo

import (
	"context"
	"fmt"
	"time"

	"glowbook/config"
	"glowbook/database"
	"glowbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepo implements Repository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new user repository backed by MongoDB.
func NewMongoUserRepo() Repository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("users")
	return &MongoUserRepo{coll: coll}
}

func (r *MongoUserRepo) GetByID(id string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}
