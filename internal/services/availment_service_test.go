package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oscahub/osca-backend/internal/models"
	"github.com/oscahub/osca-backend/pkg/smsgateway"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newSubmitFixture(t *testing.T) (*AvailmentServiceImpl, *models.Member, *models.Benefit, *fakeAvailmentRepo, *fakeBlobStore, *smsgateway.MockGateway) {
	t.Helper()

	member := &models.Member{
		ID:        primitive.NewObjectID(),
		MemberNo:  "OSCA-2024-0042",
		FirstName: "Rosario",
		LastName:  "Dela Cruz",
		Email:     "rosario@example.com",
		Phone:     "+639170000042",
	}
	benefit := &models.Benefit{
		ID:     primitive.NewObjectID(),
		Name:   "Hospitalization Assistance",
		Amount: 2000,
	}

	availRepo := &fakeAvailmentRepo{}
	blobs := &fakeBlobStore{}
	sms := smsgateway.NewMockGateway()

	svc := NewAvailmentService(availRepo, newFakeBenefitRepo(benefit), newFakeMemberRepo(member), blobs, sms)
	svc.now = func() time.Time { return time.UnixMilli(1700000012345) }
	return svc, member, benefit, availRepo, blobs, sms
}

func TestSubmitRequestRequiresBenefit(t *testing.T) {
	svc, member, _, availRepo, blobs, _ := newSubmitFixture(t)

	_, err := svc.SubmitRequest(context.Background(), &SubmitRequest{
		MemberID: member.ID,
		Files:    []SubmitFile{{Name: "doc.pdf", Type: "application/pdf"}},
	})

	require.ErrorIs(t, err, ErrNoBenefitSelected)
	assert.Zero(t, availRepo.creates)
	assert.Empty(t, blobs.keys)
}

func TestSubmitRequestRequiresDocuments(t *testing.T) {
	svc, member, benefit, availRepo, blobs, _ := newSubmitFixture(t)

	_, err := svc.SubmitRequest(context.Background(), &SubmitRequest{
		MemberID:  member.ID,
		BenefitID: benefit.ID,
	})

	require.ErrorIs(t, err, ErrNoDocuments)
	assert.Zero(t, availRepo.creates, "validation failure must not reach persistence")
	assert.Empty(t, blobs.keys, "validation failure must not reach storage")
}

func TestSubmitRequestUploadsEveryFileInOrder(t *testing.T) {
	svc, member, benefit, availRepo, blobs, sms := newSubmitFixture(t)

	created, err := svc.SubmitRequest(context.Background(), &SubmitRequest{
		MemberID:  member.ID,
		BenefitID: benefit.ID,
		Notes:     "for my operation last month",
		Files: []SubmitFile{
			{Name: "medical abstract.pdf", Type: "application/pdf", Data: []byte("a")},
			{Name: "receipt.jpg", Type: "image/jpeg", Data: []byte("b")},
		},
	})
	require.NoError(t, err)

	require.Len(t, blobs.keys, 2)
	assert.True(t, strings.HasPrefix(blobs.keys[0], "availments/"+member.ID.Hex()+"/"))
	assert.True(t, strings.HasSuffix(blobs.keys[0], "_medical_abstract.pdf"))
	assert.True(t, strings.HasSuffix(blobs.keys[1], "_receipt.jpg"))

	require.Len(t, created.Documents, 2)
	assert.Equal(t, "medical abstract.pdf", created.Documents[0].Name)
	assert.Equal(t, "receipt.jpg", created.Documents[1].Name)
	assert.Equal(t, "https://blobs.test/"+blobs.keys[0], created.Documents[0].URL)
	assert.Equal(t, "https://blobs.test/"+blobs.keys[1], created.Documents[1].URL)

	assert.Equal(t, 1, availRepo.creates)
	assert.Equal(t, models.StatusPending, created.Status)
	assert.Equal(t, "BR-00012345", created.ReferenceNo)
	assert.Equal(t, benefit.Name, created.BenefitName)
	assert.Equal(t, benefit.Amount, created.Amount)
	assert.Equal(t, member.MemberNo, created.MemberNo)
	assert.Equal(t, "Rosario Dela Cruz", created.MemberName)
	assert.Equal(t, "for my operation last month", created.Notes)

	require.Len(t, sms.Sent, 1)
	assert.Contains(t, sms.Sent[0], "BR-00012345")
}

func TestSubmitRequestUploadFailureAbortsBeforePersist(t *testing.T) {
	svc, member, benefit, availRepo, blobs, _ := newSubmitFixture(t)
	blobs.failAfter = 1 // second upload fails

	_, err := svc.SubmitRequest(context.Background(), &SubmitRequest{
		MemberID:  member.ID,
		BenefitID: benefit.ID,
		Files: []SubmitFile{
			{Name: "first.pdf", Type: "application/pdf"},
			{Name: "second.pdf", Type: "application/pdf"},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "second.pdf")
	assert.Zero(t, availRepo.creates, "no partial record may be written on upload failure")
}

func TestSubmitRequestRefusedWhenPendingExists(t *testing.T) {
	svc, member, benefit, availRepo, _, _ := newSubmitFixture(t)
	availRepo.availments = append(availRepo.availments, &models.Availment{
		ID:          primitive.NewObjectID(),
		MemberID:    member.ID,
		BenefitID:   benefit.ID,
		BenefitName: benefit.Name,
		Status:      models.StatusPending,
	})

	_, err := svc.SubmitRequest(context.Background(), &SubmitRequest{
		MemberID:  member.ID,
		BenefitID: benefit.ID,
		Files:     []SubmitFile{{Name: "doc.pdf", Type: "application/pdf"}},
	})

	var ineligible *ErrIneligible
	require.ErrorAs(t, err, &ineligible)
	assert.Equal(t, ReasonPendingRequest, ineligible.Reason)
	assert.Zero(t, availRepo.creates, "no new record appended")
}

func TestSubmitRequestAllowedAfterRejection(t *testing.T) {
	svc, member, benefit, availRepo, _, _ := newSubmitFixture(t)
	availRepo.availments = append(availRepo.availments, &models.Availment{
		ID:          primitive.NewObjectID(),
		MemberID:    member.ID,
		BenefitID:   benefit.ID,
		BenefitName: benefit.Name,
		Status:      models.StatusRejected,
	})

	created, err := svc.SubmitRequest(context.Background(), &SubmitRequest{
		MemberID:  member.ID,
		BenefitID: benefit.ID,
		Files:     []SubmitFile{{Name: "doc.pdf", Type: "application/pdf"}},
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)
}

func TestApproveStampsApprovalDate(t *testing.T) {
	svc, member, benefit, availRepo, _, _ := newSubmitFixture(t)
	pending := &models.Availment{
		ID:        primitive.NewObjectID(),
		MemberID:  member.ID,
		BenefitID: benefit.ID,
		Status:    models.StatusPending,
	}
	availRepo.availments = append(availRepo.availments, pending)

	approved, err := svc.Approve(context.Background(), pending.ID)
	require.NoError(t, err)

	assert.Equal(t, models.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)
	assert.Equal(t, time.UnixMilli(1700000012345), *approved.ApprovedAt)
}

func TestApproveRefusesNonPending(t *testing.T) {
	svc, member, _, availRepo, _, _ := newSubmitFixture(t)
	done := &models.Availment{
		ID:       primitive.NewObjectID(),
		MemberID: member.ID,
		Status:   models.StatusApproved,
	}
	availRepo.availments = append(availRepo.availments, done)

	_, err := svc.Approve(context.Background(), done.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRejectRequiresReason(t *testing.T) {
	svc, _, _, _, _, _ := newSubmitFixture(t)

	_, err := svc.Reject(context.Background(), primitive.NewObjectID(), "")
	require.ErrorIs(t, err, ErrNoRejectionReason)
}

func TestRejectRecordsReason(t *testing.T) {
	svc, member, _, availRepo, _, _ := newSubmitFixture(t)
	pending := &models.Availment{
		ID:       primitive.NewObjectID(),
		MemberID: member.ID,
		Status:   "Pending",
	}
	availRepo.availments = append(availRepo.availments, pending)

	rejected, err := svc.Reject(context.Background(), pending.ID, "incomplete documents")
	require.NoError(t, err)

	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.Equal(t, "incomplete documents", rejected.RejectReason)
	assert.Nil(t, rejected.ApprovedAt)
}
