package dto

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,is-username"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"fullName" validate:"max=100"`
}

// LoginRequest authenticates by email.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the access token and the authenticated profile.
type AuthResponse struct {
	Token string           `json:"token"`
	User  *ProfileResponse `json:"user"`
}
