package catalog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListBooksFilter - optional filter cho list operation
// Title match là case-insensitive substring
type ListBooksFilter struct {
	Title string `form:"title"`
}

// BookSummary - một dòng trên listing page
type BookSummary struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Subtitle      *string         `json:"subtitle,omitempty"`
	Authors       []string        `json:"authors"`
	ReviewCount   int             `json:"review_count"`
	AverageRating decimal.Decimal `json:"average_rating"`
}

// BookDetail - full detail kèm related authors và reviews
type BookDetail struct {
	Book
	ReviewCount   int             `json:"review_count"`
	AverageRating decimal.Decimal `json:"average_rating"`
}

// AddReviewRequest - input cho review submission
// UserID gắn từ session ở service layer, không nhận từ client
type AddReviewRequest struct {
	Reviewer string `json:"reviewer"`
	Content  string `json:"content"`
	Rating   int    `json:"rating"`
}

func (r AddReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Reviewer,
			validation.Required.Error("This field is required."),
			validation.Length(1, 150),
		),
		validation.Field(&r.Content,
			validation.Required.Error("This field is required."),
			validation.Length(1, 5000),
		),
		validation.Field(&r.Rating,
			validation.Required.Error("This field is required."),
			validation.Min(1).Error("Rating must be between 1 and 5."),
			validation.Max(5).Error("Rating must be between 1 and 5."),
		),
	)
}
