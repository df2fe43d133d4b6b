package models

import "github.com/google/uuid"

// AccessClaims is the identity carried by an access token.
type AccessClaims struct {
	UserID   uuid.UUID `json:"_id"`
	Email    string    `json:"email"`
	Username string    `json:"username"`
	FullName string    `json:"fullName"`
}

// TokenPair bundles a short-lived access token and a long-lived refresh token.
// swagger:model TokenPair
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResult is returned by a successful login.
// swagger:model LoginResult
type LoginResult struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
