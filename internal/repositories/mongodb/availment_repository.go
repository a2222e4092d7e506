package mongodb

import (
	"context"
	"time"

	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AvailmentRepository implements the repositories.AvailmentRepository interface
type AvailmentRepository struct {
	collection *mongo.Collection
}

// NewAvailmentRepository creates a new AvailmentRepository
func NewAvailmentRepository(db *mongo.Database) repositories.AvailmentRepository {
	return &AvailmentRepository{
		collection: db.Collection("availments"),
	}
}

// Create creates a new availment record
func (r *AvailmentRepository) Create(ctx context.Context, availment *models.Availment) error {
	availment.CreatedAt = time.Now()
	availment.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, availment)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		availment.ID = id
	}
	return nil
}

// FindByID finds an availment by ID
func (r *AvailmentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Availment, error) {
	var availment models.Availment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&availment)
	if err != nil {
		return nil, err
	}
	return &availment, nil
}

// FindByMemberID finds all availments belonging to a member, newest first
func (r *AvailmentRepository) FindByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]*models.Availment, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"memberId": memberID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var availments []*models.Availment
	if err := cursor.All(ctx, &availments); err != nil {
		return nil, err
	}
	return availments, nil
}

// FindAll finds all availments with pagination, newest first
func (r *AvailmentRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Availment, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var availments []*models.Availment
	if err := cursor.All(ctx, &availments); err != nil {
		return nil, err
	}
	return availments, nil
}

// UpdateStatus updates an availment's status. The approval date is set only
// when provided; the rejection reason is written as given.
func (r *AvailmentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, rejectReason string, approvedAt *time.Time) error {
	update := bson.M{
		"status":    status,
		"updatedAt": time.Now(),
	}
	if rejectReason != "" {
		update["rejectReason"] = rejectReason
	}
	if approvedAt != nil {
		update["approvedAt"] = *approvedAt
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count counts all availments
func (r *AvailmentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
