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

// BenefitRepository implements the repositories.BenefitRepository interface
type BenefitRepository struct {
	collection *mongo.Collection
}

// NewBenefitRepository creates a new BenefitRepository
func NewBenefitRepository(db *mongo.Database) repositories.BenefitRepository {
	return &BenefitRepository{
		collection: db.Collection("benefits"),
	}
}

// Create creates a new benefit
func (r *BenefitRepository) Create(ctx context.Context, benefit *models.Benefit) error {
	benefit.CreatedAt = time.Now()
	benefit.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, benefit)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		benefit.ID = id
	}
	return nil
}

// FindByID finds a benefit by ID
func (r *BenefitRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Benefit, error) {
	var benefit models.Benefit
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&benefit)
	if err != nil {
		return nil, err
	}
	return &benefit, nil
}

// FindAll finds all benefits sorted by name
func (r *BenefitRepository) FindAll(ctx context.Context) ([]*models.Benefit, error) {
	opts := options.Find().SetSort(bson.M{"name": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var benefits []*models.Benefit
	if err := cursor.All(ctx, &benefits); err != nil {
		return nil, err
	}
	return benefits, nil
}

// Update updates a benefit
func (r *BenefitRepository) Update(ctx context.Context, benefit *models.Benefit) error {
	benefit.UpdatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": benefit.ID}, benefit)
	return err
}

// Delete deletes a benefit
func (r *BenefitRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// Count counts all benefits
func (r *BenefitRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
