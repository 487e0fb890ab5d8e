package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"bookshelf-backend/pkg/sessiontoken"
)

const sessionKeyPrefix = "session:"

// sessionRecord là phần lưu trong Redis - chỉ identity payload
type sessionRecord struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// redisStore implement Store trên Redis với TTL
// Token là HS256-signed handle chứa session id (jti)
type redisStore struct {
	client *redis.Client
	tokens *sessiontoken.Manager
	ttl    time.Duration
}

// NewRedisStore tạo Redis-backed session store
func NewRedisStore(client *redis.Client, tokens *sessiontoken.Manager, ttl time.Duration) Store {
	return &redisStore{
		client: client,
		tokens: tokens,
		ttl:    ttl,
	}
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

func (s *redisStore) Issue(ctx context.Context, userID uuid.UUID, username string) (Session, string, error) {
	sessionID := uuid.New()

	data, err := json.Marshal(sessionRecord{UserID: userID, Username: username})
	if err != nil {
		return Anonymous(), "", fmt.Errorf("marshal session record: %w", err)
	}

	if err := s.client.Set(ctx, sessionKey(sessionID), data, s.ttl).Err(); err != nil {
		return Anonymous(), "", fmt.Errorf("store session: %w", err)
	}

	token, err := s.tokens.Generate(sessionID, userID, username, s.ttl)
	if err != nil {
		// Record đã ghi nhưng không phát hành được handle - dọn lại
		_ = s.client.Del(ctx, sessionKey(sessionID)).Err()
		return Anonymous(), "", fmt.Errorf("generate session token: %w", err)
	}

	return Session{
		ID:            sessionID,
		UserID:        userID,
		Username:      username,
		Authenticated: true,
	}, token, nil
}

func (s *redisStore) Resolve(ctx context.Context, token string) (Session, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return Anonymous(), ErrSessionNotFound
	}

	sessionID, err := uuid.Parse(claims.SessionID)
	if err != nil {
		return Anonymous(), ErrSessionNotFound
	}

	data, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Đã logout hoặc expire - token còn đó nhưng record không còn
			return Anonymous(), ErrSessionNotFound
		}
		return Anonymous(), fmt.Errorf("load session: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Anonymous(), fmt.Errorf("unmarshal session record: %w", err)
	}

	return Session{
		ID:            sessionID,
		UserID:        rec.UserID,
		Username:      rec.Username,
		Authenticated: true,
	}, nil
}

func (s *redisStore) Revoke(ctx context.Context, sess Session) error {
	if !sess.IsAuthenticated() {
		// Revoke trên anonymous session là no-op
		return nil
	}
	if err := s.client.Del(ctx, sessionKey(sess.ID)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
