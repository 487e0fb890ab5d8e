package sessions

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrSessionNotFound - record không tồn tại hoặc đã bị revoke/expire
	ErrSessionNotFound = errors.New("session not found")
)

// Store định nghĩa contract cho session persistence
// Server-side record là source of truth: logout xóa record nên token
// đang lưu ở client trở thành vô giá trị ngay lập tức
type Store interface {
	// Issue tạo session record mới cho user, trả về Session và token
	// (handle mà client giữ giữa các requests)
	Issue(ctx context.Context, userID uuid.UUID, username string) (Session, string, error)

	// Resolve map token về Session. Token invalid, hết hạn hoặc đã
	// revoke đều resolve về Anonymous + ErrSessionNotFound
	Resolve(ctx context.Context, token string) (Session, error)

	// Revoke xóa session record (logout)
	Revoke(ctx context.Context, s Session) error
}
