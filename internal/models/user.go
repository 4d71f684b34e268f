package models

import "time"

// User represents a user account, both as the database row and as the
// JSON representation returned by the API. The token field is transient:
// it is populated on login responses only and is never persisted.
type User struct {
	ID        int64      `json:"id" db:"id"`                            // Primary key, assigned on creation
	Username  string     `json:"userName" db:"username"`                // Unique login identity
	Password  string     `json:"password" db:"password"`                // Stored as a bcrypt hash
	Name      *string    `json:"name,omitempty" db:"name"`              // Optional first name
	Surname   *string    `json:"surname,omitempty" db:"surname"`        // Optional surname
	Email     *string    `json:"email,omitempty" db:"email"`            // Optional email
	Age       *int       `json:"age,omitempty" db:"age"`                // Optional age
	Active    bool       `json:"active" db:"active"`                    // Active flag
	LastLogin *time.Time `json:"lastLogging,omitempty" db:"last_login"` // Set on successful login, second precision
	CreatedAt time.Time  `json:"creationDate" db:"created_at"`          // Set once at creation, second precision
	Token     string     `json:"token,omitempty" db:"-"`                // Transient bearer token
}
