package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// LoginRequest defines the structure for login requests
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token and the authenticated member.
type LoginResponse struct {
	Token  string  `json:"token"`
	Member *Member `json:"member"`
}

// Session identifies the authenticated account behind a request. It is built
// from the verified token claims and passed explicitly into any operation that
// needs the caller's identity.
type Session struct {
	AccountID primitive.ObjectID `json:"accountId"`
	Email     string             `json:"email"`
	Role      string             `json:"role"`
}

// UpdateProfileRequest is the profile editor's save payload. NewPassword is
// only acted on when the session account matches the record's email, and
// requires CurrentPassword for re-authentication.
type UpdateProfileRequest struct {
	Profile         ProfileUpdate `json:"profile"`
	NewPassword     string        `json:"newPassword,omitempty"`
	CurrentPassword string        `json:"currentPassword,omitempty"`
}
