package models

// User represents a registered account.
// The password digest never leaves the server: it is excluded from JSON.
type User struct {
	// UserID is the identifier assigned by the database.
	UserID int64 `json:"id"`

	// Username is the unique login name. It is also the subject of issued tokens.
	Username string `json:"username"`

	// Email is the unique e-mail address of the account.
	Email string `json:"email"`

	// HashedPassword is the bcrypt digest of the user's password.
	HashedPassword string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// RegisterRequest is the body of a registration call.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	// bcrypt ignores everything past 72 bytes, so longer passwords are rejected
	Password string `json:"password" validate:"required,max=72"`
}

// LoginRequest carries the credentials of a login call.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
