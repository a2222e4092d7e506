package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/internal/repositories"
	"github.com/oscahub/osca-backend/internal/utils"
	"github.com/oscahub/osca-backend/pkg/blobstore"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure MemberServiceImpl implements MemberService
var _ MemberService = (*MemberServiceImpl)(nil)

type MemberServiceImpl struct {
	memberRepo repositories.MemberRepository
	auth       AuthService
	blobs      blobstore.Store
	now        func() time.Time
}

func NewMemberService(memberRepo repositories.MemberRepository, auth AuthService, blobs blobstore.Store) *MemberServiceImpl {
	return &MemberServiceImpl{
		memberRepo: memberRepo,
		auth:       auth,
		blobs:      blobs,
		now:        time.Now,
	}
}

// GetMember retrieves a member by internal id.
func (s *MemberServiceImpl) GetMember(ctx context.Context, id primitive.ObjectID) (*models.Member, error) {
	return s.memberRepo.FindByID(ctx, id)
}

// GetMemberByNo retrieves a member by public member number.
func (s *MemberServiceImpl) GetMemberByNo(ctx context.Context, memberNo string) (*models.Member, error) {
	return s.memberRepo.FindByMemberNo(ctx, memberNo)
}

// GetMembers lists members with pagination.
func (s *MemberServiceImpl) GetMembers(ctx context.Context, page, limit int) ([]*models.Member, error) {
	return s.memberRepo.FindAll(ctx, page, limit)
}

// CreateMember registers a new member with a hashed credential.
func (s *MemberServiceImpl) CreateMember(ctx context.Context, member *models.Member, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	member.Password = string(hash)
	if member.Role == "" {
		member.Role = "member"
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	slog.Info("Member registered", "memberNo", member.MemberNo)
	return nil
}

// UpdateProfile saves the profile editor draft. The generic write covers
// every draft field except password and email, and lands regardless of what
// happens to the credential afterwards. The password is changed only when the
// draft carries a new one, a session exists, and the session account matches
// the record's email; a failed change leaves the already-written profile
// fields in place. Email is not updated by any path.
func (s *MemberServiceImpl) UpdateProfile(ctx context.Context, session *models.Session, id primitive.ObjectID, req *models.UpdateProfileRequest) error {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to retrieve member: %w", err)
	}

	if err := s.memberRepo.UpdateProfile(ctx, id, req.Profile, s.now()); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if req.NewPassword == "" {
		return nil
	}
	if session == nil || session.Email != member.Email {
		slog.Warn("Password change skipped, session does not match record", "memberId", id.Hex())
		return nil
	}

	if err := s.auth.Reauthenticate(ctx, session, req.CurrentPassword); err != nil {
		return fmt.Errorf("profile saved but password change failed: %w", err)
	}
	if err := s.auth.UpdatePassword(ctx, member.ID, req.NewPassword); err != nil {
		return fmt.Errorf("profile saved but password change failed: %w", err)
	}
	return nil
}

// UploadPhoto stores an ID photo under the member's blob prefix and records
// its durable URL on the record.
func (s *MemberServiceImpl) UploadPhoto(ctx context.Context, id primitive.ObjectID, fileName, contentType string, data []byte) (string, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("failed to retrieve member: %w", err)
	}

	key := utils.DocumentKey("members", member.OwnerKey(), uuid.NewString(), fileName)
	url, err := s.blobs.Upload(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	if err := s.memberRepo.UpdatePhotoURL(ctx, id, url); err != nil {
		return "", fmt.Errorf("failed to record photo URL: %w", err)
	}
	return url, nil
}

// GetIDCard composes the printable ID card view for a member.
func (s *MemberServiceImpl) GetIDCard(ctx context.Context, id primitive.ObjectID) (*models.IDCard, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve member: %w", err)
	}
	return &models.IDCard{
		MemberNo:       member.MemberNo,
		FullName:       member.FullName(),
		BirthDate:      member.BirthDate,
		Address:        member.Address,
		PhotoURL:       member.PhotoURL,
		MembershipDate: member.MembershipDate,
		Status:         member.Status,
	}, nil
}
