package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Author là independent entity
type Author struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Book - catalog entry, liên kết 0..n Authors qua book_authors
type Book struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Subtitle      *string        `db:"subtitle" json:"subtitle,omitempty"`
	Description   *string        `db:"description" json:"description,omitempty"`
	PublishedYear *int           `db:"published_year" json:"published_year,omitempty"`
	Subjects      pq.StringArray `db:"subjects" json:"subjects,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`

	// Loaded qua join, không phải columns của bảng books
	Authors []Author     `db:"-" json:"authors,omitempty"`
	Reviews []BookReview `db:"-" json:"reviews,omitempty"`
}

// BookAuthor là join entity - materialize quan hệ many-to-many
type BookAuthor struct {
	BookID   uuid.UUID `db:"book_id" json:"book_id"`
	AuthorID uuid.UUID `db:"author_id" json:"author_id"`
}

// BookReview thuộc về một Book và (optionally) một User
// Immutable sau khi tạo - không có update/delete path
type BookReview struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	BookID    uuid.UUID  `db:"book_id" json:"book_id"`
	UserID    *uuid.UUID `db:"user_id" json:"user_id,omitempty"` // nil = anonymous
	Reviewer  string     `db:"reviewer" json:"reviewer"`
	Content   string     `db:"content" json:"content"`
	Rating    int        `db:"rating" json:"rating"` // 1..5
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
