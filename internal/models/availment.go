package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Availment statuses. Stored as free text by the legacy clients, so all
// comparisons must go through StatusEquals.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// StatusEquals reports whether a stored status matches one of the canonical
// statuses, ignoring case.
func StatusEquals(status, want string) bool {
	return strings.EqualFold(strings.TrimSpace(status), want)
}

// IsValidStatus reports whether status is one of the canonical availment statuses.
func IsValidStatus(status string) bool {
	return StatusEquals(status, StatusPending) ||
		StatusEquals(status, StatusApproved) ||
		StatusEquals(status, StatusRejected)
}

// Document describes a file attached to an availment request.
type Document struct {
	Name       string    `bson:"name" json:"name"`
	URL        string    `bson:"url" json:"url"`
	Type       string    `bson:"type" json:"type"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// Availment represents a member's claim on a benefit, from request through
// approval or rejection. Benefit name and amount are denormalized onto the
// record at submission time for display; the benefit id remains authoritative.
type Availment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MemberID     primitive.ObjectID `bson:"memberId,omitempty" json:"memberId,omitempty"`
	MemberNo     string             `bson:"memberNo,omitempty" json:"memberNo,omitempty"`
	MemberName   string             `bson:"memberName" json:"memberName"`
	BenefitID    primitive.ObjectID `bson:"benefitId,omitempty" json:"benefitId,omitempty"`
	BenefitName  string             `bson:"benefitName" json:"benefitName"`
	Amount       float64            `bson:"amount" json:"amount"`
	Status       string             `bson:"status" json:"status"`
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	RejectReason string             `bson:"rejectReason,omitempty" json:"rejectReason,omitempty"`
	ReferenceNo  string             `bson:"referenceNo,omitempty" json:"referenceNo,omitempty"`
	Documents    []Document         `bson:"documents" json:"documents"`
	ApprovedAt   *time.Time         `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// EffectiveDate is the date an approved availment counts against: the approval
// date when recorded, otherwise the submission date.
func (a *Availment) EffectiveDate() time.Time {
	if a.ApprovedAt != nil && !a.ApprovedAt.IsZero() {
		return *a.ApprovedAt
	}
	return a.CreatedAt
}
