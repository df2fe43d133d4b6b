package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username, optional when email is given
	// example: alice
	Username string `json:"username"`

	// Email, optional when username is given
	// example: alice@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret1
	Password string `json:"password"`
}

// RefreshTokenRequest is the optional body of a refresh request
// swagger:model RefreshTokenRequest
type RefreshTokenRequest struct {
	// Used when the refreshToken cookie is absent
	RefreshToken string `json:"refreshToken"`
}
