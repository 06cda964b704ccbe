package dto

import "github.com/webslearn/webslearn/internal/app/models"

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string          `json:"username" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=6"`
	Role     models.RoleType `json:"role" binding:"required"`
}

// RegisterResponse carries the identifier of the newly created account
type RegisterResponse struct {
	UserID  int64  `json:"userId"`
	Message string `json:"message"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful credential verification: the issued
// bearer token plus the authenticated user's public record.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse represents a user record without the password hash
type UserResponse struct {
	ID       int64           `json:"id"`
	Username string          `json:"username"`
	Email    string          `json:"email"`
	Role     models.RoleType `json:"role"`
}
