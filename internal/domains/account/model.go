package account

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User là domain entity - ánh xạ 1:1 với bảng users trong DB
type User struct {
	// Identity
	ID       uuid.UUID `db:"id" json:"id"`
	Username string    `db:"username" json:"username"` // unique index ở storage layer

	// Authentication
	PasswordHash string `db:"password_hash" json:"-"` // Never expose in JSON

	// Profile
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Email     string `db:"email" json:"email"`

	// Timestamps
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CheckPassword so sánh plaintext với stored hash
// bcrypt.CompareHashAndPassword là constant-time comparison
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
