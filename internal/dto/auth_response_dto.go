package dto

// LoginResponse represents the response for a successful login.
// ForgotPassword reuses it: the source contract returns a session token there too.
type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a plain status message for message-level outcomes.
type MessageResponse struct {
	Message string `json:"message"`
}
