package dto

// LoginResponse is returned by login and refresh. TokenType is always
// "Bearer".
type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}

// ForgotPasswordResponse acknowledges a reset request. ResetToken is
// populated only outside production mode; in production the token
// travels through the configured notifier instead.
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken,omitempty"`
}

// MessageResponse is a generic acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}
