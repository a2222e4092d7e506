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

// PaymentRepository implements the repositories.PaymentRepository interface
type PaymentRepository struct {
	collection *mongo.Collection
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *mongo.Database) repositories.PaymentRepository {
	return &PaymentRepository{
		collection: db.Collection("payments"),
	}
}

// Create creates a new payment
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	payment.CreatedAt = time.Now()
	if payment.PaidAt.IsZero() {
		payment.PaidAt = payment.CreatedAt
	}
	result, err := r.collection.InsertOne(ctx, payment)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		payment.ID = id
	}
	return nil
}

// FindByMemberID finds all payments made by a member, newest first
func (r *PaymentRepository) FindByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]*models.Payment, error) {
	opts := options.Find().SetSort(bson.M{"paidAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"memberId": memberID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []*models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// FindAll finds all payments with pagination, newest first
func (r *PaymentRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Payment, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"paidAt": -1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []*models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// Count counts all payments
func (r *PaymentRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
