package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookshelf-backend/internal/domains/account"
	"bookshelf-backend/internal/sessions"
	"bookshelf-backend/pkg/logger"
)

// bcrypt cost = 12: balance giữa security và latency mỗi login
const bcryptCost = 12

// dummyHash để compare khi username không tồn tại - giữ thời gian
// authenticate xấp xỉ nhau cho cả hai failure paths
// (hash của chuỗi rỗng với cost 12)
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(""), bcryptCost)
	if err != nil {
		panic(fmt.Sprintf("generate dummy hash: %v", err))
	}
	return h
}()

// accountService implement account.Service interface
type accountService struct {
	repo  account.Repository // Data access layer
	store sessions.Store     // Session persistence
}

// NewAccountService tạo service instance
// Inject repository và session store qua constructor
func NewAccountService(repo account.Repository, store sessions.Store) account.Service {
	return &accountService{
		repo:  repo,
		store: store,
	}
}

// Register tạo user mới
func (s *accountService) Register(ctx context.Context, req account.RegisterRequest) (*account.ProfileDTO, error) {
	// 1. VALIDATE INPUT
	// validation.Errors là map field -> message, mỗi constraint một entry
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. HASH PASSWORD
	// Plaintext không bao giờ chạm storage
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. CREATE USER ENTITY
	now := time.Now()
	newUser := &account.User{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(passwordHash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// 4. PERSIST - atomic create-if-unique
	// Uniqueness enforce ở unique index, không phải application check;
	// concurrent duplicate registration thì đúng một cái insert được
	if err := s.repo.Create(ctx, newUser); err != nil {
		if errors.Is(err, account.ErrUsernameAlreadyExists) {
			// Map conflict về field-level error như các lỗi form khác
			return nil, validation.Errors{
				"username": account.ErrUsernameAlreadyExists,
			}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// 5. RETURN DTO (không expose hash)
	dto := newUser.ToProfileDTO()
	return &dto, nil
}

// Authenticate xác thực credentials và phát hành authenticated session
func (s *accountService) Authenticate(ctx context.Context, req account.LoginRequest) (sessions.Session, string, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return sessions.Anonymous(), "", err
	}

	// 2. FIND USER BY USERNAME
	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, account.ErrUserNotFound) {
			// Unknown username và wrong password phải không phân biệt
			// được từ bên ngoài - cả response lẫn timing. Dummy compare
			// giữ chi phí bcrypt trên path này
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			logger.Debug("authenticate failed: unknown username")
			return sessions.Anonymous(), "", account.ErrInvalidCredentials
		}
		return sessions.Anonymous(), "", fmt.Errorf("find user: %w", err)
	}

	// 3. VERIFY PASSWORD
	if !u.CheckPassword(req.Password) {
		logger.Debug("authenticate failed: password mismatch")
		return sessions.Anonymous(), "", account.ErrInvalidCredentials
	}

	// 4. ISSUE SESSION
	// Transition: Anonymous -> Authenticated
	sess, token, err := s.store.Issue(ctx, u.ID, u.Username)
	if err != nil {
		return sessions.Anonymous(), "", fmt.Errorf("issue session: %w", err)
	}

	return sess, token, nil
}

// Logout revoke session record
// Transition: Authenticated -> Anonymous
func (s *accountService) Logout(ctx context.Context, sess sessions.Session) error {
	if err := s.store.Revoke(ctx, sess); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// GetProfile đọc profile của user đang đăng nhập
func (s *accountService) GetProfile(ctx context.Context, sess sessions.Session) (*account.ProfileDTO, error) {
	if !sess.IsAuthenticated() {
		return nil, &account.AuthRequiredError{Next: account.ProfileURL}
	}

	u, err := s.repo.FindByID(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	dto := u.ToProfileDTO()
	return &dto, nil
}

// UpdateProfile validate và persist thay đổi profile
func (s *accountService) UpdateProfile(ctx context.Context, sess sessions.Session, req account.UpdateProfileRequest) (*account.ProfileDTO, error) {
	if !sess.IsAuthenticated() {
		return nil, &account.AuthRequiredError{Next: account.ProfileURL}
	}

	// Validation như registration trừ password
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByID(ctx, sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	u.Username = req.Username
	u.FirstName = req.FirstName
	u.LastName = req.LastName
	u.Email = req.Email
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, account.ErrUsernameAlreadyExists) {
			// Đổi sang username người khác đang giữ
			return nil, validation.Errors{
				"username": account.ErrUsernameAlreadyExists,
			}
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	dto := u.ToProfileDTO()
	return &dto, nil
}
