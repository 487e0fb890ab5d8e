package sessions

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionStates(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		assert.False(t, Anonymous().IsAuthenticated())
	})

	t.Run("authenticated", func(t *testing.T) {
		sess := Session{
			ID:            uuid.New(),
			UserID:        uuid.New(),
			Username:      "jamshidev",
			Authenticated: true,
		}
		assert.True(t, sess.IsAuthenticated())
	})

	t.Run("flag without identity is not authenticated", func(t *testing.T) {
		sess := Session{Authenticated: true}
		assert.False(t, sess.IsAuthenticated())
	})
}
