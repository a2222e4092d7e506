package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment represents a membership due or contribution collected from a member
type Payment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MemberID    primitive.ObjectID `bson:"memberId" json:"memberId"`
	Amount      float64            `bson:"amount" json:"amount"`
	Method      string             `bson:"method" json:"method"` // cash, gcash, bank
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Agent       string             `bson:"agent,omitempty" json:"agent,omitempty"`
	PaidAt      time.Time          `bson:"paidAt" json:"paidAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
