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

// MemberRepository implements the repositories.MemberRepository interface
type MemberRepository struct {
	collection *mongo.Collection
}

// NewMemberRepository creates a new MemberRepository
func NewMemberRepository(db *mongo.Database) repositories.MemberRepository {
	return &MemberRepository{
		collection: db.Collection("members"),
	}
}

// Create creates a new member
func (r *MemberRepository) Create(ctx context.Context, member *models.Member) error {
	member.CreatedAt = time.Now()
	member.UpdatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, member)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		member.ID = id
	}
	return nil
}

// FindByID finds a member by internal ID
func (r *MemberRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	var member models.Member
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByMemberNo finds a member by public member number
func (r *MemberRepository) FindByMemberNo(ctx context.Context, memberNo string) (*models.Member, error) {
	var member models.Member
	err := r.collection.FindOne(ctx, bson.M{"memberNo": memberNo}).Decode(&member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByEmail finds a member by email
func (r *MemberRepository) FindByEmail(ctx context.Context, email string) (*models.Member, error) {
	var member models.Member
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&member)
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindAll finds all members with pagination
func (r *MemberRepository) FindAll(ctx context.Context, page, limit int) ([]*models.Member, error) {
	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.M{"lastName": 1})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []*models.Member
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateProfile applies a partial profile update. Email and password are never
// part of the update document.
func (r *MemberRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, profile models.ProfileUpdate, updatedAt time.Time) error {
	update := bson.M{
		"firstName":   profile.FirstName,
		"middleName":  profile.MiddleName,
		"lastName":    profile.LastName,
		"suffix":      profile.Suffix,
		"phone":       profile.Phone,
		"gender":      profile.Gender,
		"civilStatus": profile.CivilStatus,
		"address":     profile.Address,
		"status":      profile.Status,
		"updatedAt":   updatedAt,
	}
	if !profile.BirthDate.IsZero() {
		update["birthDate"] = profile.BirthDate
	}
	if !profile.MembershipDate.IsZero() {
		update["membershipDate"] = profile.MembershipDate
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

// UpdatePhotoURL sets the member's ID photo URL
func (r *MemberRepository) UpdatePhotoURL(ctx context.Context, id primitive.ObjectID, photoURL string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"photoUrl": photoURL, "updatedAt": time.Now()},
	})
	return err
}

// UpdatePassword replaces the stored credential hash
func (r *MemberRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"password": passwordHash, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count counts all members
func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
