package catalogRepo

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

// MongoCatalogRepo implements Repository using MongoDB.
type MongoCatalogRepo struct {
	vendors  *mongo.Collection
	services *mongo.Collection
	addons   *mongo.Collection
}

// NewMongoCatalogRepo creates a new catalog repository backed by MongoDB.
func NewMongoCatalogRepo() Repository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoCatalogRepo{
		vendors:  db.Collection("vendors"),
		services: db.Collection("services"),
		addons:   db.Collection("addons"),
	}
}

func (r *MongoCatalogRepo) FindVendor(id string) (*models.Vendor, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var vendor models.Vendor
	if err := r.vendors.FindOne(ctx, bson.M{"id": id}).Decode(&vendor); err != nil {
		return nil, fmt.Errorf("failed to fetch vendor with id %s: %w", id, err)
	}
	return &vendor, nil
}

func (r *MongoCatalogRepo) FindService(id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var service models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &service, nil
}

func (r *MongoCatalogRepo) FindAddon(id string) (*models.Addon, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var addon models.Addon
	if err := r.addons.FindOne(ctx, bson.M{"id": id}).Decode(&addon); err != nil {
		return nil, fmt.Errorf("failed to fetch addon with id %s: %w", id, err)
	}
	return &addon, nil
}

func (r *MongoCatalogRepo) ListServices() ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)
	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}
