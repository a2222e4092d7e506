package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Member represents a registered senior-citizen member
type Member struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MemberNo       string             `bson:"memberNo" json:"memberNo"` // public OSCA ID number
	FirstName      string             `bson:"firstName" json:"firstName"`
	MiddleName     string             `bson:"middleName,omitempty" json:"middleName,omitempty"`
	LastName       string             `bson:"lastName" json:"lastName"`
	Suffix         string             `bson:"suffix,omitempty" json:"suffix,omitempty"`
	Email          string             `bson:"email" json:"email"`
	Password       string             `bson:"password,omitempty" json:"-"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	BirthDate      time.Time          `bson:"birthDate,omitempty" json:"birthDate,omitempty"`
	Gender         string             `bson:"gender,omitempty" json:"gender,omitempty"`
	CivilStatus    string             `bson:"civilStatus,omitempty" json:"civilStatus,omitempty"`
	Address        string             `bson:"address,omitempty" json:"address,omitempty"`
	PhotoURL       string             `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	Role           string             `bson:"role" json:"role"` // member, admin
	Status         string             `bson:"status" json:"status"`
	MembershipDate time.Time          `bson:"membershipDate,omitempty" json:"membershipDate,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FullName joins the member's name parts for display.
func (m *Member) FullName() string {
	parts := []string{m.FirstName, m.MiddleName, m.LastName, m.Suffix}
	name := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			name = append(name, p)
		}
	}
	return strings.Join(name, " ")
}

// OwnerKey is the key member records are filed under in blob storage: the
// stable internal id when present, falling back to the public member number,
// then to an opaque token.
func (m *Member) OwnerKey() string {
	if !m.ID.IsZero() {
		return m.ID.Hex()
	}
	if m.MemberNo != "" {
		return m.MemberNo
	}
	return "unknown"
}

// ProfileUpdate carries the editable profile fields of a member record.
// Email and password are deliberately absent: the generic profile write never
// touches either (password changes go through the credential path, email is
// not updated by any path).
type ProfileUpdate struct {
	FirstName      string    `json:"firstName"`
	MiddleName     string    `json:"middleName"`
	LastName       string    `json:"lastName"`
	Suffix         string    `json:"suffix"`
	Phone          string    `json:"phone"`
	BirthDate      time.Time `json:"birthDate"`
	Gender         string    `json:"gender"`
	CivilStatus    string    `json:"civilStatus"`
	Address        string    `json:"address"`
	Status         string    `json:"status"`
	MembershipDate time.Time `json:"membershipDate"`
}

// IDCard is the composed view rendered on a printable member ID card.
type IDCard struct {
	MemberNo       string    `json:"memberNo"`
	FullName       string    `json:"fullName"`
	BirthDate      time.Time `json:"birthDate"`
	Address        string    `json:"address"`
	PhotoURL       string    `json:"photoUrl,omitempty"`
	MembershipDate time.Time `json:"membershipDate"`
	Status         string    `json:"status"`
}
