package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent    RoleType = "student"
	RoleInstructor RoleType = "instructor"
)

// Valid reports whether the role is one of the known role values.
func (r RoleType) Valid() bool {
	return r == RoleStudent || r == RoleInstructor
}
