package service

import (
	"context"
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf-backend/internal/domains/account"
	"bookshelf-backend/internal/sessions"
)

// ========================================
// TEST DOUBLES
// ========================================

// fakeRepository giữ users in-memory, enforce username uniqueness như
// unique index thật
type fakeRepository struct {
	users map[uuid.UUID]*account.User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: map[uuid.UUID]*account.User{}}
}

func (f *fakeRepository) Create(_ context.Context, u *account.User) error {
	for _, existing := range f.users {
		if existing.Username == u.Username {
			return account.ErrUsernameAlreadyExists
		}
	}
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeRepository) FindByID(_ context.Context, id uuid.UUID) (*account.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, account.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeRepository) FindByUsername(_ context.Context, username string) (*account.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, account.ErrUserNotFound
}

func (f *fakeRepository) Update(_ context.Context, u *account.User) error {
	if _, ok := f.users[u.ID]; !ok {
		return account.ErrUserNotFound
	}
	for id, existing := range f.users {
		if id != u.ID && existing.Username == u.Username {
			return account.ErrUsernameAlreadyExists
		}
	}
	clone := *u
	f.users[u.ID] = &clone
	return nil
}

func (f *fakeRepository) count() int {
	return len(f.users)
}

// fakeStore là in-memory sessions.Store
type fakeStore struct {
	records map[string]sessions.Session
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[string]sessions.Session{}}
}

func (f *fakeStore) Issue(_ context.Context, userID uuid.UUID, username string) (sessions.Session, string, error) {
	sess := sessions.Session{
		ID:            uuid.New(),
		UserID:        userID,
		Username:      username,
		Authenticated: true,
	}
	token := "token-" + sess.ID.String()
	f.records[token] = sess
	return sess, token, nil
}

func (f *fakeStore) Resolve(_ context.Context, token string) (sessions.Session, error) {
	sess, ok := f.records[token]
	if !ok {
		return sessions.Anonymous(), sessions.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeStore) Revoke(_ context.Context, sess sessions.Session) error {
	for token, rec := range f.records {
		if rec.ID == sess.ID {
			delete(f.records, token)
		}
	}
	return nil
}

func validRegisterRequest() account.RegisterRequest {
	return account.RegisterRequest{
		Username:  "jamshidev",
		FirstName: "Jamshid",
		LastName:  "Mahmudjonov",
		Email:     "jmahmudjonov75@gmail.com",
		Password:  "somepassword",
	}
}

// ========================================
// REGISTER
// ========================================

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account with hashed password", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewAccountService(repo, newFakeStore())

		profile, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)
		require.NotNil(t, profile)

		assert.Equal(t, 1, repo.count())
		assert.Equal(t, "jamshidev", profile.Username)
		assert.Equal(t, "Jamshid", profile.FirstName)
		assert.Equal(t, "Mahmudjonov", profile.LastName)
		assert.Equal(t, "jmahmudjonov75@gmail.com", profile.Email)

		stored, err := repo.FindByUsername(ctx, "jamshidev")
		require.NoError(t, err)
		assert.NotEqual(t, "somepassword", stored.PasswordHash)
		assert.True(t, stored.CheckPassword("somepassword"))
	})

	t.Run("missing username and password are both reported", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewAccountService(repo, newFakeStore())

		_, err := svc.Register(ctx, account.RegisterRequest{
			FirstName: "Jamshid",
			Email:     "jamshid@gmail.com",
		})
		require.Error(t, err)

		var fieldErrs validation.Errors
		require.True(t, errors.As(err, &fieldErrs))
		require.Contains(t, fieldErrs, "username")
		require.Contains(t, fieldErrs, "password")
		assert.Equal(t, "This field is required.", fieldErrs["username"].Error())
		assert.Equal(t, "This field is required.", fieldErrs["password"].Error())

		assert.Equal(t, 0, repo.count())
	})

	t.Run("invalid email format", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewAccountService(repo, newFakeStore())

		req := validRegisterRequest()
		req.Email = "invalid-email"

		_, err := svc.Register(ctx, req)
		require.Error(t, err)

		var fieldErrs validation.Errors
		require.True(t, errors.As(err, &fieldErrs))
		require.Contains(t, fieldErrs, "email")
		assert.Equal(t, "Enter a valid email address.", fieldErrs["email"].Error())

		assert.Equal(t, 0, repo.count())
	})

	t.Run("duplicate username creates no extra record", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewAccountService(repo, newFakeStore())

		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		// Các fields khác khác hẳn - chỉ username trùng
		second := account.RegisterRequest{
			Username:  "jamshidev",
			FirstName: "Other",
			LastName:  "Person",
			Email:     "other@gmail.com",
			Password:  "otherpassword",
		}
		_, err = svc.Register(ctx, second)
		require.Error(t, err)

		var fieldErrs validation.Errors
		require.True(t, errors.As(err, &fieldErrs))
		require.Contains(t, fieldErrs, "username")
		assert.Equal(t, "A user with that username already exists.", fieldErrs["username"].Error())

		assert.Equal(t, 1, repo.count())
	})
}

// ========================================
// AUTHENTICATE / LOGOUT
// ========================================

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (account.Service, *fakeStore) {
		repo := newFakeRepository()
		store := newFakeStore()
		svc := NewAccountService(repo, store)
		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)
		return svc, store
	}

	t.Run("correct credentials yield authenticated session", func(t *testing.T) {
		svc, store := setup(t)

		sess, token, err := svc.Authenticate(ctx, account.LoginRequest{
			Username: "jamshidev",
			Password: "somepassword",
		})
		require.NoError(t, err)
		assert.True(t, sess.IsAuthenticated())
		assert.Equal(t, "jamshidev", sess.Username)
		assert.NotEmpty(t, token)

		resolved, err := store.Resolve(ctx, token)
		require.NoError(t, err)
		assert.True(t, resolved.IsAuthenticated())
	})

	t.Run("wrong username and wrong password are indistinguishable", func(t *testing.T) {
		svc, _ := setup(t)

		sess, token, err := svc.Authenticate(ctx, account.LoginRequest{
			Username: "wrong-username",
			Password: "somepassword",
		})
		assert.ErrorIs(t, err, account.ErrInvalidCredentials)
		assert.False(t, sess.IsAuthenticated())
		assert.Empty(t, token)

		sess, token, err = svc.Authenticate(ctx, account.LoginRequest{
			Username: "jamshidev",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, account.ErrInvalidCredentials)
		assert.False(t, sess.IsAuthenticated())
		assert.Empty(t, token)

		// Failure không khóa account - correct credentials vẫn vào được
		sess, _, err = svc.Authenticate(ctx, account.LoginRequest{
			Username: "jamshidev",
			Password: "somepassword",
		})
		require.NoError(t, err)
		assert.True(t, sess.IsAuthenticated())
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepository()
	store := newFakeStore()
	svc := NewAccountService(repo, store)

	_, err := svc.Register(ctx, validRegisterRequest())
	require.NoError(t, err)

	sess, token, err := svc.Authenticate(ctx, account.LoginRequest{
		Username: "jamshidev",
		Password: "somepassword",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess))

	// Identity checks sau logout report unauthenticated
	resolved, err := store.Resolve(ctx, token)
	assert.ErrorIs(t, err, sessions.ErrSessionNotFound)
	assert.False(t, resolved.IsAuthenticated())
}

// ========================================
// PROFILE
// ========================================

func TestGetProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthenticated session gets redirect-style error", func(t *testing.T) {
		svc := NewAccountService(newFakeRepository(), newFakeStore())

		_, err := svc.GetProfile(ctx, sessions.Anonymous())
		require.Error(t, err)

		var authErr *account.AuthRequiredError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, account.ProfileURL, authErr.Next)
		assert.Equal(t, account.LoginURL+"?next="+account.ProfileURL, authErr.RedirectTo())
	})

	t.Run("authenticated session gets stored fields", func(t *testing.T) {
		repo := newFakeRepository()
		store := newFakeStore()
		svc := NewAccountService(repo, store)

		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		sess, _, err := svc.Authenticate(ctx, account.LoginRequest{
			Username: "jamshidev",
			Password: "somepassword",
		})
		require.NoError(t, err)

		profile, err := svc.GetProfile(ctx, sess)
		require.NoError(t, err)
		assert.Equal(t, "jamshidev", profile.Username)
		assert.Equal(t, "Jamshid", profile.FirstName)
		assert.Equal(t, "Mahmudjonov", profile.LastName)
		assert.Equal(t, "jmahmudjonov75@gmail.com", profile.Email)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (account.Service, *fakeRepository, sessions.Session) {
		repo := newFakeRepository()
		store := newFakeStore()
		svc := NewAccountService(repo, store)

		_, err := svc.Register(ctx, validRegisterRequest())
		require.NoError(t, err)

		sess, _, err := svc.Authenticate(ctx, account.LoginRequest{
			Username: "jamshidev",
			Password: "somepassword",
		})
		require.NoError(t, err)
		return svc, repo, sess
	}

	t.Run("persists last name and email change", func(t *testing.T) {
		svc, repo, sess := setup(t)

		profile, err := svc.UpdateProfile(ctx, sess, account.UpdateProfileRequest{
			Username:  "jamshidev",
			FirstName: "Jamshid",
			LastName:  "Doe",
			Email:     "doe@gmail.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "Doe", profile.LastName)
		assert.Equal(t, "doe@gmail.com", profile.Email)

		// Verify bằng cách re-read record
		stored, err := repo.FindByUsername(ctx, "jamshidev")
		require.NoError(t, err)
		assert.Equal(t, "Doe", stored.LastName)
		assert.Equal(t, "doe@gmail.com", stored.Email)
	})

	t.Run("requires authentication", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.UpdateProfile(ctx, sessions.Anonymous(), account.UpdateProfileRequest{
			Username: "jamshidev",
		})

		var authErr *account.AuthRequiredError
		require.True(t, errors.As(err, &authErr))
		assert.Equal(t, account.ProfileURL, authErr.Next)
	})

	t.Run("rejects username already held by another user", func(t *testing.T) {
		svc, _, sess := setup(t)

		_, err := svc.Register(ctx, account.RegisterRequest{
			Username: "taken",
			Password: "password",
		})
		require.NoError(t, err)

		_, err = svc.UpdateProfile(ctx, sess, account.UpdateProfileRequest{
			Username: "taken",
		})
		require.Error(t, err)

		var fieldErrs validation.Errors
		require.True(t, errors.As(err, &fieldErrs))
		assert.Equal(t, "A user with that username already exists.", fieldErrs["username"].Error())
	})
}
