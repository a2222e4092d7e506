package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/oscahub/osca-backend/internal/config"
	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// ErrInvalidCredentials is returned for any login or re-authentication
// failure; it deliberately does not say which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Compile-time check to ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

type AuthServiceImpl struct {
	memberRepo repositories.MemberRepository
	cfg        *config.Config
}

func NewAuthService(memberRepo repositories.MemberRepository, cfg *config.Config) *AuthServiceImpl {
	return &AuthServiceImpl{
		memberRepo: memberRepo,
		cfg:        cfg,
	}
}

// Login verifies the email/password pair and returns a signed token.
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	member, err := s.memberRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		slog.Warn("Login failed, account not found", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)); err != nil {
		slog.Warn("Login failed, password mismatch", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub":   member.ID.Hex(),
		"email": member.Email,
		"role":  member.Role,
		"exp":   time.Now().Add(time.Second * time.Duration(s.cfg.JWT.ExpiresIn)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWT.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	member.Password = ""
	return &models.LoginResponse{Token: signed, Member: member}, nil
}

// Reauthenticate verifies the session account's current password before a
// credential change.
func (s *AuthServiceImpl) Reauthenticate(ctx context.Context, session *models.Session, currentPassword string) error {
	if session == nil {
		return ErrInvalidCredentials
	}
	member, err := s.memberRepo.FindByID(ctx, session.AccountID)
	if err != nil {
		return fmt.Errorf("failed to retrieve account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// UpdatePassword hashes and stores a new credential for the member.
func (s *AuthServiceImpl) UpdatePassword(ctx context.Context, memberID primitive.ObjectID, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.memberRepo.UpdatePassword(ctx, memberID, string(hash)); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	slog.Info("Password updated", "memberId", memberID.Hex())
	return nil
}
