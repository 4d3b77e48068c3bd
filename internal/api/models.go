package api

import "github.com/taskhub/taskhub-api/internal/domain"

// SignupRequest is the request body for creating an account.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=7,max=72,excludes=password"`
}

// LoginRequest is the request body for email/password login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by signup and login: the profile plus a fresh
// bearer token.
type AuthResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

// CreateTaskRequest is the request body for creating a task. Completed is
// optional and defaults to false; a non-boolean value fails JSON decoding.
type CreateTaskRequest struct {
	Description string `json:"description" validate:"required"`
	Completed   bool   `json:"completed"`
}
