package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Ibrahim-Omar1/DNNDON/internal/apperrors"
	"github.com/Ibrahim-Omar1/DNNDON/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepository implements NotificationRepository for MongoDB.
type MongoNotificationRepository struct {
	collection *mongo.Collection
}

var _ NotificationRepository = (*MongoNotificationRepository)(nil)

// NewMongoNotificationRepository creates a repository over the
// "notifications" collection of db.
func NewMongoNotificationRepository(db *mongo.Database) *MongoNotificationRepository {
	return &MongoNotificationRepository{collection: db.Collection("notifications")}
}

// Insert validates n, assigns defaults and stores it.
func (r *MongoNotificationRepository) Insert(ctx context.Context, n models.Notification) (*models.Notification, error) {
	if err := validateRecord(n); err != nil {
		return nil, err
	}

	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Status == "" {
		n.Status = models.StatusInProgress
	}
	if n.DateTime.IsZero() {
		n.DateTime = time.Now()
	}

	if _, err := r.collection.InsertOne(ctx, n); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return &n, nil
}

// GetByID retrieves a record by id.
func (r *MongoNotificationRepository) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	var n models.Notification
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("notification %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return &n, nil
}

// UpdateByID applies the patch via $set and refreshes the timestamp,
// returning the post-update document.
func (r *MongoNotificationRepository) UpdateByID(ctx context.Context, id string, patch models.UpdateNotificationRequest) (*models.Notification, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	set := bson.M{"date_time": time.Now()}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Space != nil {
		set["space"] = *patch.Space
	}
	if patch.Country != nil {
		set["country"] = *patch.Country
	}
	if patch.City != nil {
		set["city"] = *patch.City
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var n models.Notification
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&n)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("notification %s not found", id)
		}
		return nil, apperrors.NewInternal(err)
	}
	return &n, nil
}

// RemoveByID deletes a record by id.
func (r *MongoNotificationRepository) RemoveByID(ctx context.Context, id string) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return apperrors.NewInternal(err)
	}
	if res.DeletedCount == 0 {
		return apperrors.NewNotFound("notification %s not found", id)
	}
	return nil
}

// All returns every record, newest first.
func (r *MongoNotificationRepository) All(ctx context.Context) ([]models.Notification, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date_time", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, findOptions)
	if err != nil {
		return nil, apperrors.NewInternal(err)
	}
	defer cursor.Close(ctx)

	var records []models.Notification
	if err = cursor.All(ctx, &records); err != nil {
		return nil, apperrors.NewInternal(err)
	}
	return records, nil
}
