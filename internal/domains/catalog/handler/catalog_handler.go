package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookshelf-backend/internal/domains/catalog"
	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/pkg/logger"
)

type CatalogHandler struct {
	service catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ========================================
// GET /books?title=<substring>
// ========================================

func (h *CatalogHandler) ListBooks(c *gin.Context) {
	filter := catalog.ListBooksFilter{
		Title: c.Query("title"),
	}

	books, err := h.service.ListBooks(c.Request.Context(), filter)
	if err != nil {
		logger.Error("list books failed", err)
		response.InternalServerError(c, "could not list books")
		return
	}

	response.Success(c, http.StatusOK, books)
}

// ========================================
// GET /books/:id
// ========================================

func (h *CatalogHandler) GetBook(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	detail, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrBookNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("get book failed", err)
		response.InternalServerError(c, "could not load book")
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// ========================================
// POST /books/:id/review
// ========================================

func (h *CatalogHandler) AddReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req catalog.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	sess := middleware.CurrentSession(c)

	review, err := h.service.AddReview(c.Request.Context(), id, sess, req)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			response.ValidationFailed(c, fieldErrs)
			return
		}
		if errors.Is(err, catalog.ErrBookNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		logger.Error("add review failed", err)
		response.InternalServerError(c, "could not add review")
		return
	}

	response.Success(c, http.StatusCreated, review)
}
