package repositories

import (
	"context"
	"time"

	"github.com/oscahub/osca-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberRepository defines the interface for member data operations
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Member, error)
	FindByMemberNo(ctx context.Context, memberNo string) (*models.Member, error)
	FindByEmail(ctx context.Context, email string) (*models.Member, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Member, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, profile models.ProfileUpdate, updatedAt time.Time) error
	UpdatePhotoURL(ctx context.Context, id primitive.ObjectID, photoURL string) error
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	Count(ctx context.Context) (int64, error)
}

// BenefitRepository defines the interface for benefit data operations
type BenefitRepository interface {
	Create(ctx context.Context, benefit *models.Benefit) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Benefit, error)
	FindAll(ctx context.Context) ([]*models.Benefit, error)
	Update(ctx context.Context, benefit *models.Benefit) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// AvailmentRepository defines the interface for availment data operations
type AvailmentRepository interface {
	Create(ctx context.Context, availment *models.Availment) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Availment, error)
	FindByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]*models.Availment, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Availment, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status, rejectReason string, approvedAt *time.Time) error
	Count(ctx context.Context) (int64, error)
}

// PaymentRepository defines the interface for payment data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByMemberID(ctx context.Context, memberID primitive.ObjectID) ([]*models.Payment, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.Payment, error)
	Count(ctx context.Context) (int64, error)
}
