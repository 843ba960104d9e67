package domain

import "time"

// RoleStaff grants catalog write access without full admin privileges.
const RoleStaff = "staff"

// User is the persisted identity record. PasswordHash is excluded from JSON
// so a raw User can never leak credentials through a response.
type User struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	Phone          string    `json:"phone,omitempty" bson:"phone,omitempty"`
	DocumentType   string    `json:"document_type,omitempty" bson:"document_type,omitempty"`
	DocumentNumber string    `json:"document_number,omitempty" bson:"document_number,omitempty"`
	IsAdmin        bool      `json:"is_admin" bson:"is_admin"`
	Roles          []string  `json:"roles,omitempty" bson:"roles,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// TokenPayload is the claim set embedded in issued tokens. It carries no
// secret material and is trusted only after signature and expiry checks.
type TokenPayload struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	IsAdmin bool     `json:"is_admin"`
	Roles   []string `json:"roles,omitempty"`
}

// HasRole reports whether the payload carries the given role.
func (p TokenPayload) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Payload derives the token claims for this user.
func (u *User) Payload() TokenPayload {
	return TokenPayload{ID: u.ID, Name: u.Name, IsAdmin: u.IsAdmin, Roles: u.Roles}
}
