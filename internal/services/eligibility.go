package services

import (
	"github.com/oscahub/osca-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ineligibility reasons surfaced to the member.
const (
	ReasonAlreadyReceived = "already received"
	ReasonPendingRequest  = "pending request exists"
)

// Eligibility is the verdict on whether a member may submit a new request for
// a benefit. LastRejected carries the most recent matching rejected request,
// if any, so the client can offer reapply messaging; it never blocks.
type Eligibility struct {
	Eligible     bool              `json:"eligible"`
	Reason       string            `json:"reason,omitempty"`
	LastRejected *models.Availment `json:"lastRejected,omitempty"`
}

// matchesBenefit reports whether a record refers to the candidate benefit.
// The benefit id is the primary key; the denormalized benefit name is a
// fallback for legacy records written without an id.
func matchesBenefit(a *models.Availment, benefitID primitive.ObjectID, benefitName string) bool {
	if !a.BenefitID.IsZero() && !benefitID.IsZero() && a.BenefitID == benefitID {
		return true
	}
	return a.BenefitName != "" && a.BenefitName == benefitName
}

// ClassifyEligibility decides whether a new request may be submitted for the
// candidate benefit, given the member's approved availments and outstanding
// requests. Pure function of its inputs.
func ClassifyEligibility(benefitID primitive.ObjectID, benefitName string, approved, requests []*models.Availment) *Eligibility {
	for _, a := range approved {
		if matchesBenefit(a, benefitID, benefitName) {
			return &Eligibility{Eligible: false, Reason: ReasonAlreadyReceived}
		}
	}

	for _, r := range requests {
		if models.StatusEquals(r.Status, models.StatusPending) && matchesBenefit(r, benefitID, benefitName) {
			return &Eligibility{Eligible: false, Reason: ReasonPendingRequest}
		}
	}

	var lastRejected *models.Availment
	for _, r := range requests {
		if !models.StatusEquals(r.Status, models.StatusRejected) || !matchesBenefit(r, benefitID, benefitName) {
			continue
		}
		if lastRejected == nil || r.CreatedAt.After(lastRejected.CreatedAt) {
			lastRejected = r
		}
	}

	return &Eligibility{Eligible: true, LastRejected: lastRejected}
}
