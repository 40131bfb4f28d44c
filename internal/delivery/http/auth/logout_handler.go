package auth_http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"lostnfound-board/internal/config"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/session"
)

type LogoutHandler struct {
	sessions session.Store
	cfg      config.Session
	log      *logger.Logger
}

func NewLogoutHandler(sessions session.Store, cfg config.Session, log *logger.Logger) *LogoutHandler {
	return &LogoutHandler{
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

func (h *LogoutHandler) Logout(c *gin.Context) {
	sessionID, err := c.Cookie(h.cfg.CookieName)
	if err == nil && sessionID != "" {
		if err := h.sessions.Delete(c.Request.Context(), sessionID); err != nil {
			h.log.Warn("Failed to delete session", slog.String("error", err.Error()))
		}
	}

	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}
