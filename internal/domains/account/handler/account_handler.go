package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookshelf-backend/internal/domains/account"
	"bookshelf-backend/internal/shared/middleware"
	"bookshelf-backend/internal/shared/response"
	"bookshelf-backend/pkg/logger"
)

type AccountHandler struct {
	service account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{service: svc}
}

// ========================================
// POST /users/register
// ========================================

func (h *AccountHandler) Register(c *gin.Context) {
	var req account.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	profile, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			response.ValidationFailed(c, fieldErrs)
			return
		}
		logger.Error("register failed", err)
		response.InternalServerError(c, "could not create account")
		return
	}

	response.Success(c, http.StatusCreated, profile)
}

// ========================================
// POST /users/login
// ========================================

func (h *AccountHandler) Login(c *gin.Context) {
	var req account.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	sess, token, err := h.service.Authenticate(c.Request.Context(), req)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			response.ValidationFailed(c, fieldErrs)
			return
		}
		if errors.Is(err, account.ErrInvalidCredentials) {
			// Một message duy nhất - không phân biệt unknown username
			// với wrong password
			response.Unauthorized(c, err.Error())
			return
		}
		logger.Error("login failed", err)
		response.InternalServerError(c, "could not log in")
		return
	}

	// Session continuity: client giữ token (cookie hoặc tự gửi Bearer)
	c.SetCookie(middleware.SessionCookieName, token, 0, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{
		"token":    token,
		"username": sess.Username,
		"next":     c.DefaultQuery("next", "/"),
	})
}

// ========================================
// POST /users/logout
// ========================================

func (h *AccountHandler) Logout(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	if err := h.service.Logout(c.Request.Context(), sess); err != nil {
		logger.Error("logout failed", err)
		response.InternalServerError(c, "could not log out")
		return
	}

	// Clear cookie - identity checks sau đó report unauthenticated
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// ========================================
// GET /users/profile
// ========================================

func (h *AccountHandler) GetProfile(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	profile, err := h.service.GetProfile(c.Request.Context(), sess)
	if err != nil {
		var authErr *account.AuthRequiredError
		if errors.As(err, &authErr) {
			response.LoginRedirect(c, authErr.RedirectTo())
			return
		}
		logger.Error("get profile failed", err)
		response.InternalServerError(c, "could not load profile")
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// ========================================
// POST /users/profile/edit
// ========================================

func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	sess := middleware.CurrentSession(c)

	var req account.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), sess, req)
	if err != nil {
		var authErr *account.AuthRequiredError
		if errors.As(err, &authErr) {
			response.LoginRedirect(c, authErr.RedirectTo())
			return
		}
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			response.ValidationFailed(c, fieldErrs)
			return
		}
		logger.Error("update profile failed", err)
		response.InternalServerError(c, "could not update profile")
		return
	}

	// Success trỏ về profile view
	response.Success(c, http.StatusOK, gin.H{
		"user":     profile,
		"redirect": account.ProfileURL,
	})
}
