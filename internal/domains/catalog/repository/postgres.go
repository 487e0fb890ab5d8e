package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"bookshelf-backend/internal/domains/catalog"
	"bookshelf-backend/pkg/cache"
)

// postgresRepository implements catalog.Repository
// pgxpool cho PostgreSQL, Redis cache-aside trên book detail
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

// NewPostgresRepository tạo catalog repository instance
func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) catalog.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

// Cache key constants
const (
	bookCacheKeyPrefix = "book:"
	bookCacheTTL       = 15 * time.Minute
)

// List trả về summaries theo title ascending
// titleFilter match case-insensitive substring qua ILIKE
func (r *postgresRepository) List(ctx context.Context, titleFilter string) ([]catalog.BookSummary, error) {
	query := `
        SELECT
            b.id,
            b.title,
            b.subtitle,
            COALESCE(
                (SELECT array_agg(a.name ORDER BY a.name)
                 FROM authors a
                 JOIN book_authors ba ON ba.author_id = a.id
                 WHERE ba.book_id = b.id),
                '{}'
            ) AS authors,
            (SELECT COUNT(*) FROM book_reviews rv WHERE rv.book_id = b.id) AS review_count,
            COALESCE(
                (SELECT AVG(rv.rating) FROM book_reviews rv WHERE rv.book_id = b.id),
                0
            )::text AS average_rating
        FROM books b
        WHERE $1 = '' OR b.title ILIKE '%' || $1 || '%'
        ORDER BY b.title ASC
    `

	rows, err := r.pool.Query(ctx, query, titleFilter)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	summaries := []catalog.BookSummary{}
	for rows.Next() {
		var s catalog.BookSummary
		var avg string
		if err := rows.Scan(&s.ID, &s.Title, &s.Subtitle, &s.Authors, &s.ReviewCount, &avg); err != nil {
			return nil, fmt.Errorf("scan book summary: %w", err)
		}
		rating, err := decimal.NewFromString(avg)
		if err != nil {
			return nil, fmt.Errorf("parse average rating: %w", err)
		}
		s.AverageRating = rating.Round(2)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book rows: %w", err)
	}

	return summaries, nil
}

// FindByID load book detail với caching (cache-aside pattern)
func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.BookDetail, error) {
	cacheKey := bookCacheKeyPrefix + id.String()

	var cached catalog.BookDetail
	found, err := r.cache.Get(ctx, cacheKey, &cached)
	if err == nil && found {
		return &cached, nil
	}

	// Cache miss - query database
	query := `
        SELECT id, title, subtitle, description, published_year, subjects,
               created_at, updated_at
        FROM books
        WHERE id = $1
    `

	var detail catalog.BookDetail
	err = r.pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.Title,
		&detail.Subtitle,
		&detail.Description,
		&detail.PublishedYear,
		&detail.Subjects,
		&detail.CreatedAt,
		&detail.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book by id: %w", err)
	}

	if detail.Authors, err = r.loadAuthors(ctx, id); err != nil {
		return nil, err
	}
	if detail.Reviews, err = r.loadReviews(ctx, id); err != nil {
		return nil, err
	}

	detail.ReviewCount = len(detail.Reviews)
	detail.AverageRating = averageRating(detail.Reviews)

	// Ignore cache set error - request không fail vì cache unavailable
	_ = r.cache.Set(ctx, cacheKey, &detail, bookCacheTTL)

	return &detail, nil
}

// CreateReview insert review mới
// Book existence enforce bằng foreign key - 23503 map về ErrBookNotFound
func (r *postgresRepository) CreateReview(ctx context.Context, review *catalog.BookReview) error {
	query := `
        INSERT INTO book_reviews (id, book_id, user_id, reviewer, content, rating, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.BookID,
		review.UserID,
		review.Reviewer,
		review.Content,
		review.Rating,
		review.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// 23503 = foreign_key_violation (book id không tồn tại)
			if pgErr.Code == "23503" {
				return catalog.ErrBookNotFound
			}
		}
		return fmt.Errorf("create review: %w", err)
	}

	// Detail đã cache giờ stale (review count / avg rating)
	_ = r.cache.Delete(ctx, bookCacheKeyPrefix+review.BookID.String())

	return nil
}

func (r *postgresRepository) loadAuthors(ctx context.Context, bookID uuid.UUID) ([]catalog.Author, error) {
	query := `
        SELECT a.id, a.name, a.created_at
        FROM authors a
        JOIN book_authors ba ON ba.author_id = a.id
        WHERE ba.book_id = $1
        ORDER BY a.name ASC
    `

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("load book authors: %w", err)
	}
	defer rows.Close()

	authors := []catalog.Author{}
	for rows.Next() {
		var a catalog.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *postgresRepository) loadReviews(ctx context.Context, bookID uuid.UUID) ([]catalog.BookReview, error) {
	query := `
        SELECT id, book_id, user_id, reviewer, content, rating, created_at
        FROM book_reviews
        WHERE book_id = $1
        ORDER BY created_at DESC
    `

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("load book reviews: %w", err)
	}
	defer rows.Close()

	reviews := []catalog.BookReview{}
	for rows.Next() {
		var rv catalog.BookReview
		if err := rows.Scan(&rv.ID, &rv.BookID, &rv.UserID, &rv.Reviewer, &rv.Content, &rv.Rating, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func averageRating(reviews []catalog.BookReview) decimal.Decimal {
	if len(reviews) == 0 {
		return decimal.Zero
	}
	sum := int64(0)
	for _, rv := range reviews {
		sum += int64(rv.Rating)
	}
	return decimal.NewFromInt(sum).Div(decimal.NewFromInt(int64(len(reviews)))).Round(2)
}
