package middleware

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/session"
)

const (
	ContextUserID   = "user_id"
	ContextNickname = "nickname"
)

// SessionLoader resolves the session cookie into request-scoped identity.
// Anonymous requests pass through, handlers decide whether identity is
// required.
func SessionLoader(sessions session.Store, cookieName string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			if !errors.Is(err, custom_errors.ErrSessionNotFound) {
				log.Warn("Failed to load session", slog.String("error", err.Error()))
			}
			c.Next()
			return
		}

		c.Set(ContextUserID, sess.UserID)
		c.Set(ContextNickname, sess.Nickname)
		c.Next()
	}
}

// SessionUserID returns the logged-in user id, or nil for anonymous
// requests.
func SessionUserID(c *gin.Context) *int64 {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return nil
	}
	userID, ok := value.(int64)
	if !ok {
		return nil
	}
	return &userID
}

func SessionNickname(c *gin.Context) string {
	value, exists := c.Get(ContextNickname)
	if !exists {
		return ""
	}
	nickname, _ := value.(string)
	return nickname
}
