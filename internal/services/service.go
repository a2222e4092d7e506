package services

import (
	"context"

	"github.com/oscahub/osca-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	// Login verifies credentials and returns a signed token with the member record
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)

	// Reauthenticate verifies the session account's current password
	Reauthenticate(ctx context.Context, session *models.Session, currentPassword string) error

	// UpdatePassword hashes and stores a new credential for the member
	UpdatePassword(ctx context.Context, memberID primitive.ObjectID, newPassword string) error
}

// AvailmentService defines the interface for benefit request operations
type AvailmentService interface {
	// SubmitRequest validates, uploads attached documents, and persists a new
	// pending availment, returning the created record with its reference number
	SubmitRequest(ctx context.Context, req *SubmitRequest) (*models.Availment, error)

	// GetEligibility classifies whether the member may request the benefit
	GetEligibility(ctx context.Context, memberID, benefitID primitive.ObjectID) (*Eligibility, error)

	// GetStats derives the member's display counters
	GetStats(ctx context.Context, memberID primitive.ObjectID) (*Stats, error)

	// GetByMember lists the member's availments, newest first
	GetByMember(ctx context.Context, memberID primitive.ObjectID) ([]*models.Availment, error)

	// GetByID retrieves a single availment
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Availment, error)

	// GetAll lists availments with pagination
	GetAll(ctx context.Context, page, limit int) ([]*models.Availment, error)

	// Approve transitions a pending availment to approved
	Approve(ctx context.Context, id primitive.ObjectID) (*models.Availment, error)

	// Reject transitions a pending availment to rejected with a reason
	Reject(ctx context.Context, id primitive.ObjectID, reason string) (*models.Availment, error)
}

// MemberService defines the interface for member record operations
type MemberService interface {
	// GetMember retrieves a member by internal id
	GetMember(ctx context.Context, id primitive.ObjectID) (*models.Member, error)

	// GetMemberByNo retrieves a member by public member number
	GetMemberByNo(ctx context.Context, memberNo string) (*models.Member, error)

	// GetMembers lists members with pagination
	GetMembers(ctx context.Context, page, limit int) ([]*models.Member, error)

	// CreateMember registers a new member with a hashed credential
	CreateMember(ctx context.Context, member *models.Member, password string) error

	// UpdateProfile saves the profile editor draft; session is the caller's
	// verified identity, passed explicitly
	UpdateProfile(ctx context.Context, session *models.Session, id primitive.ObjectID, req *models.UpdateProfileRequest) error

	// UploadPhoto stores an ID photo and records its URL on the member
	UploadPhoto(ctx context.Context, id primitive.ObjectID, fileName, contentType string, data []byte) (string, error)

	// GetIDCard composes the printable ID card view for a member
	GetIDCard(ctx context.Context, id primitive.ObjectID) (*models.IDCard, error)
}

// BenefitService defines the interface for benefit catalogue operations
type BenefitService interface {
	GetBenefit(ctx context.Context, id primitive.ObjectID) (*models.Benefit, error)
	GetBenefits(ctx context.Context) ([]*models.Benefit, error)
	CreateBenefit(ctx context.Context, benefit *models.Benefit) error
	UpdateBenefit(ctx context.Context, benefit *models.Benefit) error
	DeleteBenefit(ctx context.Context, id primitive.ObjectID) error
}

// PaymentService defines the interface for payment operations
type PaymentService interface {
	GetPaymentsByMember(ctx context.Context, memberID primitive.ObjectID) ([]*models.Payment, error)
	GetPayments(ctx context.Context, page, limit int) ([]*models.Payment, error)
	RecordPayment(ctx context.Context, payment *models.Payment) error
}
