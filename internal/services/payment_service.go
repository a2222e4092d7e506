package services

import (
	"context"
	"errors"

	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidPayment is returned for payments without a member or a positive amount.
var ErrInvalidPayment = errors.New("payment requires a member and a positive amount")

// Compile-time check to ensure PaymentServiceImpl implements PaymentService
var _ PaymentService = (*PaymentServiceImpl)(nil)

type PaymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository) *PaymentServiceImpl {
	return &PaymentServiceImpl{paymentRepo: paymentRepo}
}

// GetPaymentsByMember lists a member's payments, newest first.
func (s *PaymentServiceImpl) GetPaymentsByMember(ctx context.Context, memberID primitive.ObjectID) ([]*models.Payment, error) {
	return s.paymentRepo.FindByMemberID(ctx, memberID)
}

// GetPayments lists payments with pagination.
func (s *PaymentServiceImpl) GetPayments(ctx context.Context, page, limit int) ([]*models.Payment, error) {
	return s.paymentRepo.FindAll(ctx, page, limit)
}

// RecordPayment persists an agent-entered payment.
func (s *PaymentServiceImpl) RecordPayment(ctx context.Context, payment *models.Payment) error {
	if payment.MemberID.IsZero() || payment.Amount <= 0 {
		return ErrInvalidPayment
	}
	return s.paymentRepo.Create(ctx, payment)
}
