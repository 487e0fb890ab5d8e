package catalog

import (
	"context"

	"github.com/google/uuid"
)

// Repository định nghĩa contract cho data access layer
type Repository interface {
	// List trả về book summaries (kèm author names và rating aggregate)
	// theo title ascending; titleFilter rỗng = tất cả
	List(ctx context.Context, titleFilter string) ([]BookSummary, error)

	// FindByID load book kèm authors và reviews
	// Returns: ErrBookNotFound
	FindByID(ctx context.Context, id uuid.UUID) (*BookDetail, error)

	// CreateReview insert review mới
	// Foreign key enforce tồn tại của book ở storage layer
	// Returns: ErrBookNotFound nếu book id không tồn tại
	CreateReview(ctx context.Context, review *BookReview) error
}
