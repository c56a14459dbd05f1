package model

import "time"

// Role names the two staff roles.  Admins maintain the room and drink
// registries; both roles operate the booking desk.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User represents a staff account as stored in the `users` table.
// Booking records reference the acting user so reports can attribute
// who opened a booking.
type User struct {
	ID           uint64    `json:"id"`         // users.id
	Name         string    `json:"name"`       // users.name
	Email        string    `json:"email"`      // users.email
	PasswordHash string    `json:"-"`          // users.password_hash (never serialized)
	Role         string    `json:"role"`       // users.role (admin | employee)
	CreatedAt    time.Time `json:"created_at"` // users.created_at
	UpdatedAt    time.Time `json:"updated_at"` // users.updated_at
}

// RefreshToken models an entry in the `refresh_tokens` table.  Only
// the SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uint64     // refresh_tokens.id
	UserID    uint64     // refresh_tokens.user_id
	TokenHash string     // refresh_tokens.token_hash
	ExpiresAt time.Time  // refresh_tokens.expires_at
	RevokedAt *time.Time // refresh_tokens.revoked_at (nullable)
	CreatedAt time.Time  // refresh_tokens.created_at
}
