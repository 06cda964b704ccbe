package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"` // Display name shown to other users
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // Hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
