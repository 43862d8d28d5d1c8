package domain

// User represents a stored user record. PasswordHash is a bcrypt hash,
// or empty for accounts created by an admin without a password.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
}

// PublicUser is the projection of a User that may leave the service.
// It never carries the password hash.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
