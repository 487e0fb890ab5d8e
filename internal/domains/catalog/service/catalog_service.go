package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/catalog"
	"bookshelf-backend/internal/sessions"
)

// catalogService implement catalog.Service interface
type catalogService struct {
	repo catalog.Repository
}

// NewCatalogService tạo service instance
func NewCatalogService(repo catalog.Repository) catalog.Service {
	return &catalogService{repo: repo}
}

// ListBooks trả về summaries, filter title là case-insensitive substring
func (s *catalogService) ListBooks(ctx context.Context, filter catalog.ListBooksFilter) ([]catalog.BookSummary, error) {
	books, err := s.repo.List(ctx, filter.Title)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// GetBook trả về full detail kèm authors và reviews
func (s *catalogService) GetBook(ctx context.Context, id uuid.UUID) (*catalog.BookDetail, error) {
	detail, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err // ErrBookNotFound hoặc storage error, đã wrap ở repo
	}
	return detail, nil
}

// AddReview tạo review immutable gắn với book
func (s *catalogService) AddReview(ctx context.Context, bookID uuid.UUID, sess sessions.Session, req catalog.AddReviewRequest) (*catalog.BookReview, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. BUILD REVIEW ENTITY
	// Authenticated session thì review gắn user id; anonymous để nil
	review := &catalog.BookReview{
		ID:        uuid.New(),
		BookID:    bookID,
		Reviewer:  req.Reviewer,
		Content:   req.Content,
		Rating:    req.Rating,
		CreatedAt: time.Now(),
	}
	if sess.IsAuthenticated() {
		userID := sess.UserID
		review.UserID = &userID
	}

	// 3. PERSIST
	// Book existence check không tách rời insert - foreign key làm việc
	// đó atomically, repo map violation về ErrBookNotFound
	if err := s.repo.CreateReview(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}
