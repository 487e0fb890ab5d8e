package account

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Validation messages giữ nguyên wording của form cũ - client tests
// assert literal text
const (
	msgFieldRequired   = "This field is required."
	msgInvalidEmail    = "Enter a valid email address."
	msgUsernameTaken   = "A user with that username already exists."
	msgBadCredentials  = "Please enter a correct username and password."
	msgPasswordTooLong = "Ensure this value has at most 128 characters."
)

// ========================================
// AUTH DTOs
// ========================================

// RegisterRequest - input cho account registration
type RegisterRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password"`
}

// Validate trả về validation.Errors - map field -> message
// Mỗi constraint vi phạm là một entry riêng, handler render nguyên map
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error(msgFieldRequired),
			validation.Length(1, 150),
		),
		validation.Field(&r.Password,
			validation.Required.Error(msgFieldRequired),
			validation.Length(1, 128).Error(msgPasswordTooLong),
		),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error(msgInvalidEmail)),
		),
	)
}

// LoginRequest - input cho authenticate
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error(msgFieldRequired)),
		validation.Field(&r.Password, validation.Required.Error(msgFieldRequired)),
	)
}

// ========================================
// PROFILE DTOs
// ========================================

// ProfileDTO - public user representation (safe to expose)
type ProfileDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// ToProfileDTO converts User entity to ProfileDTO
func (u *User) ToProfileDTO() ProfileDTO {
	return ProfileDTO{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

// UpdateProfileRequest - user sửa profile của chính mình
// Validation như registration trừ password (password đổi qua flow riêng,
// ngoài scope)
type UpdateProfileRequest struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

func (r UpdateProfileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error(msgFieldRequired),
			validation.Length(1, 150),
		),
		validation.Field(&r.FirstName, validation.Length(0, 150)),
		validation.Field(&r.LastName, validation.Length(0, 150)),
		validation.Field(&r.Email,
			validation.When(r.Email != "", is.Email.Error(msgInvalidEmail)),
		),
	)
}
