package dto

// RegisterRequest carries the fields required to create a new player.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest starts the credential-recovery flow.
type ForgotPasswordRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// ResetPasswordRequest exchanges a reset token for a new password.
type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	ResetToken  string `json:"resetToken" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdatePlayerRequest defines the data allowed for updating a player.
// Only the password is updatable.
type UpdatePlayerRequest struct {
	Password string `json:"password" binding:"required"`
}

// ListPlayersParams defines query parameters for listing players.
type ListPlayersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}
