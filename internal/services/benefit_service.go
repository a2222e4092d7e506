package services

import (
	"context"

	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure BenefitServiceImpl implements BenefitService
var _ BenefitService = (*BenefitServiceImpl)(nil)

type BenefitServiceImpl struct {
	benefitRepo repositories.BenefitRepository
}

func NewBenefitService(benefitRepo repositories.BenefitRepository) *BenefitServiceImpl {
	return &BenefitServiceImpl{benefitRepo: benefitRepo}
}

func (s *BenefitServiceImpl) GetBenefit(ctx context.Context, id primitive.ObjectID) (*models.Benefit, error) {
	return s.benefitRepo.FindByID(ctx, id)
}

func (s *BenefitServiceImpl) GetBenefits(ctx context.Context) ([]*models.Benefit, error) {
	return s.benefitRepo.FindAll(ctx)
}

func (s *BenefitServiceImpl) CreateBenefit(ctx context.Context, benefit *models.Benefit) error {
	return s.benefitRepo.Create(ctx, benefit)
}

func (s *BenefitServiceImpl) UpdateBenefit(ctx context.Context, benefit *models.Benefit) error {
	return s.benefitRepo.Update(ctx, benefit)
}

func (s *BenefitServiceImpl) DeleteBenefit(ctx context.Context, id primitive.ObjectID) error {
	return s.benefitRepo.Delete(ctx, id)
}
