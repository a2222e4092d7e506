package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Benefit represents a benefit the association offers to its members
type Benefit struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Amount       float64            `bson:"amount" json:"amount"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Requirements string             `bson:"requirements,omitempty" json:"requirements,omitempty"`
	Active       bool               `bson:"active" json:"active"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
