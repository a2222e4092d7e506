package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/internal/repositories"
	"github.com/oscahub/osca-backend/internal/utils"
	"github.com/oscahub/osca-backend/pkg/blobstore"
	"github.com/oscahub/osca-backend/pkg/smsgateway"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Validation and lifecycle errors surfaced to the client as 4xx responses.
var (
	ErrNoBenefitSelected = errors.New("no benefit selected")
	ErrNoDocuments       = errors.New("at least one supporting document is required")
	ErrInvalidTransition = errors.New("availment is not pending")
	ErrNoRejectionReason = errors.New("rejection reason is required")
)

// ErrIneligible reports a refused submission together with the classifier's
// reason.
type ErrIneligible struct {
	Reason string
}

func (e *ErrIneligible) Error() string {
	return "member is not eligible for this benefit: " + e.Reason
}

// SubmitRequest is the benefit request payload: the chosen benefit, optional
// free-text notes, and the attached evidence files in upload order.
type SubmitRequest struct {
	MemberID  primitive.ObjectID
	BenefitID primitive.ObjectID
	Notes     string
	Files     []SubmitFile
}

// SubmitFile is one attached document.
type SubmitFile struct {
	Name string
	Type string
	Data []byte
}

// Compile-time check to ensure AvailmentServiceImpl implements AvailmentService
var _ AvailmentService = (*AvailmentServiceImpl)(nil)

type AvailmentServiceImpl struct {
	availmentRepo repositories.AvailmentRepository
	benefitRepo   repositories.BenefitRepository
	memberRepo    repositories.MemberRepository
	blobs         blobstore.Store
	sms           smsgateway.Gateway
	now           func() time.Time
}

func NewAvailmentService(availmentRepo repositories.AvailmentRepository, benefitRepo repositories.BenefitRepository, memberRepo repositories.MemberRepository, blobs blobstore.Store, sms smsgateway.Gateway) *AvailmentServiceImpl {
	return &AvailmentServiceImpl{
		availmentRepo: availmentRepo,
		benefitRepo:   benefitRepo,
		memberRepo:    memberRepo,
		blobs:         blobs,
		sms:           sms,
		now:           time.Now,
	}
}

// partition splits a member's availment history into the approved set and the
// outstanding request set the classifier and aggregator operate on.
func partition(all []*models.Availment) (approved, requests []*models.Availment) {
	for _, a := range all {
		if models.StatusEquals(a.Status, models.StatusApproved) {
			approved = append(approved, a)
		} else {
			requests = append(requests, a)
		}
	}
	return approved, requests
}

// SubmitRequest validates the request, uploads each attached document in
// order, and appends a pending availment record. Any upload failure aborts
// the whole submission before anything is persisted; there is no retry.
func (s *AvailmentServiceImpl) SubmitRequest(ctx context.Context, req *SubmitRequest) (*models.Availment, error) {
	if req.BenefitID.IsZero() {
		return nil, ErrNoBenefitSelected
	}
	if len(req.Files) == 0 {
		return nil, ErrNoDocuments
	}

	member, err := s.memberRepo.FindByID(ctx, req.MemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve member: %w", err)
	}
	benefit, err := s.benefitRepo.FindByID(ctx, req.BenefitID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve benefit: %w", err)
	}

	// Conditional insert: refuse when current state already holds a matching
	// approved or pending record, instead of trusting a stale client check.
	history, err := s.availmentRepo.FindByMemberID(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availment history: %w", err)
	}
	approved, requests := partition(history)
	if verdict := ClassifyEligibility(benefit.ID, benefit.Name, approved, requests); !verdict.Eligible {
		return nil, &ErrIneligible{Reason: verdict.Reason}
	}

	// Uploads are sequential: each must land before the next begins, and the
	// first failure abandons the submission with nothing persisted.
	token := uuid.NewString()
	documents := make([]models.Document, 0, len(req.Files))
	for _, f := range req.Files {
		key := utils.DocumentKey("availments", member.OwnerKey(), token, f.Name)
		url, err := s.blobs.Upload(ctx, key, f.Type, bytes.NewReader(f.Data))
		if err != nil {
			slog.Error("Document upload failed", "key", key, "error", err)
			return nil, fmt.Errorf("failed to upload document %s: %w", f.Name, err)
		}
		documents = append(documents, models.Document{
			Name:       f.Name,
			URL:        url,
			Type:       f.Type,
			UploadedAt: s.now(),
		})
	}

	submittedAt := s.now()
	availment := &models.Availment{
		MemberID:    member.ID,
		MemberNo:    member.MemberNo,
		MemberName:  member.FullName(),
		BenefitID:   benefit.ID,
		BenefitName: benefit.Name,
		Amount:      benefit.Amount,
		Status:      models.StatusPending,
		Notes:       req.Notes,
		ReferenceNo: utils.GenerateReferenceNo(submittedAt),
		Documents:   documents,
		CreatedAt:   submittedAt,
		UpdatedAt:   submittedAt,
	}

	if err := s.availmentRepo.Create(ctx, availment); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}

	slog.Info("Benefit request submitted", "memberNo", member.MemberNo, "benefit", benefit.Name, "referenceNo", availment.ReferenceNo)
	s.notify(member, fmt.Sprintf("Your request for %s has been received. Reference No: %s", benefit.Name, availment.ReferenceNo))

	return availment, nil
}

// GetEligibility classifies whether the member may request the benefit.
func (s *AvailmentServiceImpl) GetEligibility(ctx context.Context, memberID, benefitID primitive.ObjectID) (*Eligibility, error) {
	benefit, err := s.benefitRepo.FindByID(ctx, benefitID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve benefit: %w", err)
	}
	history, err := s.availmentRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availment history: %w", err)
	}
	approved, requests := partition(history)
	return ClassifyEligibility(benefit.ID, benefit.Name, approved, requests), nil
}

// GetStats derives the member's display counters from current state.
func (s *AvailmentServiceImpl) GetStats(ctx context.Context, memberID primitive.ObjectID) (*Stats, error) {
	history, err := s.availmentRepo.FindByMemberID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availment history: %w", err)
	}
	approved, requests := partition(history)
	return ComputeStats(approved, requests, s.now()), nil
}

// GetByMember lists the member's availments, newest first.
func (s *AvailmentServiceImpl) GetByMember(ctx context.Context, memberID primitive.ObjectID) ([]*models.Availment, error) {
	return s.availmentRepo.FindByMemberID(ctx, memberID)
}

// GetByID retrieves a single availment.
func (s *AvailmentServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Availment, error) {
	return s.availmentRepo.FindByID(ctx, id)
}

// GetAll lists availments with pagination.
func (s *AvailmentServiceImpl) GetAll(ctx context.Context, page, limit int) ([]*models.Availment, error) {
	return s.availmentRepo.FindAll(ctx, page, limit)
}

// Approve transitions a pending availment to approved, stamping the approval
// date. Only pending records may transition.
func (s *AvailmentServiceImpl) Approve(ctx context.Context, id primitive.ObjectID) (*models.Availment, error) {
	availment, err := s.availmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availment: %w", err)
	}
	if !models.StatusEquals(availment.Status, models.StatusPending) {
		return nil, ErrInvalidTransition
	}

	approvedAt := s.now()
	if err := s.availmentRepo.UpdateStatus(ctx, id, models.StatusApproved, "", &approvedAt); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	availment.Status = models.StatusApproved
	availment.ApprovedAt = &approvedAt

	slog.Info("Availment approved", "id", id.Hex(), "referenceNo", availment.ReferenceNo)
	s.notifyMember(ctx, availment.MemberID, fmt.Sprintf("Your benefit request %s has been approved.", availment.ReferenceNo))

	return availment, nil
}

// Reject transitions a pending availment to rejected, recording the reason.
func (s *AvailmentServiceImpl) Reject(ctx context.Context, id primitive.ObjectID, reason string) (*models.Availment, error) {
	if reason == "" {
		return nil, ErrNoRejectionReason
	}

	availment, err := s.availmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve availment: %w", err)
	}
	if !models.StatusEquals(availment.Status, models.StatusPending) {
		return nil, ErrInvalidTransition
	}

	if err := s.availmentRepo.UpdateStatus(ctx, id, models.StatusRejected, reason, nil); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	availment.Status = models.StatusRejected
	availment.RejectReason = reason

	slog.Info("Availment rejected", "id", id.Hex(), "referenceNo", availment.ReferenceNo, "reason", reason)
	s.notifyMember(ctx, availment.MemberID, fmt.Sprintf("Your benefit request %s was not approved: %s. You may submit a new request.", availment.ReferenceNo, reason))

	return availment, nil
}

// notify sends a best-effort SMS; failures are logged and never propagated.
func (s *AvailmentServiceImpl) notify(member *models.Member, message string) {
	if s.sms == nil || member.Phone == "" {
		return
	}
	if _, err := s.sms.SendSMS(member.Phone, message); err != nil {
		slog.Warn("SMS notification failed", "memberNo", member.MemberNo, "error", err)
	}
}

func (s *AvailmentServiceImpl) notifyMember(ctx context.Context, memberID primitive.ObjectID, message string) {
	if s.sms == nil {
		return
	}
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		slog.Warn("SMS notification skipped, member lookup failed", "memberId", memberID.Hex(), "error", err)
		return
	}
	s.notify(member, message)
}
