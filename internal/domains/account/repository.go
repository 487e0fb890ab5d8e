package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository định nghĩa contract cho data access layer
// Interface cho phép swap implementation và mock trong unit tests
type Repository interface {
	// Create insert user mới - atomic create-if-unique
	// Uniqueness enforce bằng unique index trên users.username, KHÔNG
	// phải check-then-insert: hai registration giống nhau chạy đồng thời
	// thì đúng một cái thành công
	// Returns: ErrUsernameAlreadyExists nếu username đã tồn tại
	Create(ctx context.Context, u *User) error

	// FindByID tìm user theo ID
	// Returns: ErrUserNotFound nếu không tìm thấy
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByUsername tìm user theo username (dùng cho login)
	// Returns: ErrUserNotFound nếu không tìm thấy
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Update cập nhật profile fields
	// Returns: ErrUserNotFound / ErrUsernameAlreadyExists
	Update(ctx context.Context, u *User) error
}
