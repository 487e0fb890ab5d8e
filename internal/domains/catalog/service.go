package catalog

import (
	"context"

	"github.com/google/uuid"

	"bookshelf-backend/internal/sessions"
)

// Service định nghĩa business logic layer contract
type Service interface {
	// ListBooks trả về book summaries theo title ascending
	// Filter title (nếu có) là case-insensitive substring match
	ListBooks(ctx context.Context, filter ListBooksFilter) ([]BookSummary, error)

	// GetBook trả về full detail kèm related authors và reviews
	// Returns: ErrBookNotFound
	GetBook(ctx context.Context, id uuid.UUID) (*BookDetail, error)

	// AddReview tạo review mới gắn với book
	// Session authenticated thì review gắn user id, anonymous vẫn được
	// phép. Review immutable sau khi tạo.
	// Returns: ErrBookNotFound / validation.Errors
	AddReview(ctx context.Context, bookID uuid.UUID, sess sessions.Session, req AddReviewRequest) (*BookReview, error)
}
