package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}

func (repo *MongoBookingRepo) decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]models.Booking, error) {
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// GetActiveForResources returns every booking that is still blocking time
// (status not completed/cancelled/refunded) for any of the given resources.
func (repo *MongoBookingRepo) GetActiveForResources(ctx context.Context, resourceIDs []string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"resourceIds": bson.M{"$in": resourceIDs},
		"status":      bson.M{"$nin": models.TerminalBookingStatuses},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding active bookings: %w", err)
	}
	return repo.decodeAll(ctx, cursor)
}

// GetActiveForProject returns every non-terminal booking of a project.
func (repo *MongoBookingRepo) GetActiveForProject(ctx context.Context, projectID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"projectId": projectID,
		"status":    bson.M{"$nin": models.TerminalBookingStatuses},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding project bookings: %w", err)
	}
	return repo.decodeAll(ctx, cursor)
}

// GetByID retrieves a booking document by ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": bookingID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking with id %s not found", bookingID)
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	return &booking, nil
}
