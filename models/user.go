package models

import "time"

// User represents an account entity used for authentication, authorization
// and profile display. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is server-assigned and immutable.
	UserID int64 `json:"id"`

	// Username is the unique public handle of the user.
	Username string `json:"username"`

	// Email is the unique address used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown publicly.
	Name string `json:"name"`

	// Bio is a free-form self description.
	Bio string `json:"bio"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt advances on every profile or favorites mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate carries the optional profile fields of a profile update request.
// A nil field means "keep the current value".
type UserUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Bio      *string `json:"bio,omitempty"`

	// Password, when non-nil, replaces the stored credential. The service
	// layer hashes it before anything below ever sees the plaintext.
	Password *string `json:"password,omitempty"`
}

// Credentials is the request body of the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the request body of the register endpoint.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
}
