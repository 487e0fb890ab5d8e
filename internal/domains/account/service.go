package account

import (
	"context"

	"bookshelf-backend/internal/sessions"
)

// Service định nghĩa business logic layer contract
// Session được truyền explicit vào mọi operation cần authentication -
// không có ambient auth state
type Service interface {
	// Register tạo user mới
	// Failure: validation.Errors (field -> message), zero records created
	Register(ctx context.Context, req RegisterRequest) (*ProfileDTO, error)

	// Authenticate xác thực credentials và phát hành session
	// Failure: ErrInvalidCredentials (một error duy nhất cho cả unknown
	// username lẫn wrong password), session vẫn Anonymous
	Authenticate(ctx context.Context, req LoginRequest) (sessions.Session, string, error)

	// Logout revoke session record; Resolve sau đó trả về Anonymous
	Logout(ctx context.Context, sess sessions.Session) error

	// GetProfile đọc profile của user đang đăng nhập
	// Failure: *AuthRequiredError{Next: ProfileURL} nếu chưa authenticated
	GetProfile(ctx context.Context, sess sessions.Session) (*ProfileDTO, error)

	// UpdateProfile validate và persist thay đổi profile
	// Validation như registration trừ password
	UpdateProfile(ctx context.Context, sess sessions.Session, req UpdateProfileRequest) (*ProfileDTO, error)
}
