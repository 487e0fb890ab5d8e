package sessiontoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	m := NewManager("test-secret-key")

	token, err := m.Generate(uuid.New(), uuid.New(), "jamshidev", time.Hour)

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestValidate(t *testing.T) {
	m := NewManager("test-secret-key")
	sessionID := uuid.New()
	userID := uuid.New()

	t.Run("valid token", func(t *testing.T) {
		token, err := m.Generate(sessionID, userID, "jamshidev", time.Hour)
		assert.NoError(t, err)

		claims, err := m.Validate(token)
		assert.NoError(t, err)
		assert.NotNil(t, claims)
		assert.Equal(t, sessionID.String(), claims.SessionID)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "jamshidev", claims.Username)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("wrong-secret")
		token, err := other.Generate(sessionID, userID, "jamshidev", time.Hour)
		assert.NoError(t, err)

		claims, err := m.Validate(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		c := Claims{
			SessionID: sessionID.String(),
			UserID:    userID.String(),
			Username:  "jamshidev",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
		token, err := tkn.SignedString([]byte("test-secret-key"))
		assert.NoError(t, err)

		claims, err := m.Validate(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("malformed token", func(t *testing.T) {
		claims, err := m.Validate("not.a.valid.token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
