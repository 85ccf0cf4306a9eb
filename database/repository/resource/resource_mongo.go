package resourceRepo

import (
	"context"
	"fmt"
	"time"

	"worklane/config"
	"worklane/database"
	"worklane/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoResourceRepo implements ResourceRepository using MongoDB.
type MongoResourceRepo struct {
	coll *mongo.Collection
}

// NewMongoResourceRepo constructs a new instance of MongoResourceRepo.
func NewMongoResourceRepo() ResourceRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoResourceRepo{
		coll: db.Collection("resources"),
	}
}

// GetByID retrieves a resource document by ID.
func (repo *MongoResourceRepo) GetByID(ctx context.Context, resourceID string) (*models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var res models.Resource
	filter := bson.M{"id": resourceID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&res); err != nil {
		return nil, fmt.Errorf("error fetching resource with id %s: %w", resourceID, err)
	}
	return &res, nil
}

// GetByIDs retrieves all resource documents for the given IDs in one query.
func (repo *MongoResourceRepo) GetByIDs(ctx context.Context, resourceIDs []string) ([]models.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bson.M{"$in": resourceIDs}}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching resources: %w", err)
	}
	defer cursor.Close(ctx)

	var resources []models.Resource
	for cursor.Next(ctx) {
		var res models.Resource
		if err := cursor.Decode(&res); err != nil {
			return nil, fmt.Errorf("error decoding resource: %w", err)
		}
		resources = append(resources, res)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return resources, nil
}

// AddBlockedRange appends a blocked range to a resource document. Used by
// the booking collaborator when a proposal is accepted.
func (repo *MongoResourceRepo) AddBlockedRange(ctx context.Context, resourceID string, blocked models.BlockedRange) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": resourceID}
	update := bson.M{"$push": bson.M{"blockedRanges": blocked}}
	result, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error adding blocked range for resource %s: %w", resourceID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("resource with id %s not found", resourceID)
	}
	return nil
}

// RemoveBlockedRangesByReference pulls every blocked range tagged with the
// given reference (a booking ID) across all resources. Returns how many
// resource documents were touched.
func (repo *MongoResourceRepo) RemoveBlockedRangesByReference(ctx context.Context, reference string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"blockedRanges.reference": reference}
	update := bson.M{"$pull": bson.M{"blockedRanges": bson.M{"reference": reference}}}
	result, err := repo.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("error removing blocked ranges for reference %s: %w", reference, err)
	}
	return result.ModifiedCount, nil
}
