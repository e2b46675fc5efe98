package models

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleEditor
}

// User is an admin/editor account as kept in the users table. Password is
// stored as given (plaintext unless PASSWORD_HASHING is on), so the struct
// must never be rendered to HTTP clients directly; use Public.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	FullName  string    `json:"fullName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// NewUser is the create candidate: everything but id and createdAt.
type NewUser struct {
	Username string
	Password string
	FullName string
	Role     Role
}
