package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Username     string    `db:"username"`      // Unique, lowercase
	Email        string    `db:"email"`         // Unique, lowercase
	FullName     string    `db:"full_name"`     // Display name
	Avatar       string    `db:"avatar"`        // Public avatar URL
	CoverImage   string    `db:"cover_image"`   // Public cover image URL, may be empty
	PasswordHash string    `db:"password_hash"` // bcrypt hash
	RefreshToken *string   `db:"refresh_token"` // Current refresh token, nil after logout
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `db:"updated_at"`    // Last update timestamp
}

// User is the public view of a user. It has no password or refresh token fields.
// swagger:model User
type User struct {
	UserID     uuid.UUID `json:"_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToUser strips credentials from a stored user.
func (u *UserDB) ToUser() *User {
	if u == nil {
		return nil
	}
	return &User{
		UserID:     u.UserID,
		Username:   u.Username,
		Email:      u.Email,
		FullName:   u.FullName,
		Avatar:     u.Avatar,
		CoverImage: u.CoverImage,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// StoredRefreshToken returns the persisted refresh token or "".
func (u *UserDB) StoredRefreshToken() string {
	if u == nil || u.RefreshToken == nil {
		return ""
	}
	return *u.RefreshToken
}
