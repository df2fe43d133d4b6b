package models

// ChangePasswordRequest represents the JSON body for a password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// required: true
	OldPassword string `json:"oldPassword"`

	// required: true
	NewPassword string `json:"newPassword"`
}

// UpdateAccountRequest represents the JSON body for account updates
// swagger:model UpdateAccountRequest
type UpdateAccountRequest struct {
	// required: true
	// example: Alice Liddell
	FullName string `json:"fullName"`

	// required: true
	// example: alice@example.com
	Email string `json:"email"`
}
