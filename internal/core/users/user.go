package users

import "time"

// User is an account. Posts and comments carry a snapshot of the username
// and profile picture taken at creation time, not a live join to this row.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	ProfilePicture *string   `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// SignupRequest represents input for creating an account
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents input for authenticating with email + password
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is a signed-in user plus the bearer token identifying them
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
