package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"bookshelf-backend/internal/domains/account"
	"bookshelf-backend/internal/sessions"
	"bookshelf-backend/internal/shared/response"
)

const sessionContextKey = "session"

// SessionCookieName - fallback khi client không gửi Authorization header
const SessionCookieName = "bookshelf_session"

// ResolveSession map token (Bearer header hoặc cookie) về Session value
// và set vào gin context. KHÔNG reject request - route nào cần auth thì
// dùng RequireAuth. Token invalid/revoked resolve về Anonymous.
func ResolveSession(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		// 1. Authorization: Bearer <token>
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				token = parts[1]
			}
		}

		// 2. Cookie fallback
		if token == "" {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				token = cookie
			}
		}

		sess := sessions.Anonymous()
		if token != "" {
			// Resolve failure = anonymous, không phải error
			if resolved, err := store.Resolve(c.Request.Context(), token); err == nil {
				sess = resolved
			}
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequireAuth chặn anonymous requests với redirect-style signal
// Location = login URL + ?next=<original path> để quay lại sau login
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if !sess.IsAuthenticated() {
			authErr := &account.AuthRequiredError{Next: c.Request.URL.Path}
			response.LoginRedirect(c, authErr.RedirectTo())
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession lấy Session đã resolve từ gin context
// Chưa chạy qua ResolveSession thì trả về Anonymous
func CurrentSession(c *gin.Context) sessions.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(sessions.Session); ok {
			return sess
		}
	}
	return sessions.Anonymous()
}
