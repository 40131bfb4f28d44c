package auth_http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lostnfound-board/internal/config"
	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	user_service "lostnfound-board/internal/service/user"
	"lostnfound-board/internal/session"
)

type LoginHandler struct {
	userService user_service.Service
	sessions    session.Store
	cfg         config.Session
	validate    *validator.Validate
	log         *logger.Logger
}

func NewLoginHandler(userService user_service.Service, sessions session.Store, cfg config.Session, validate *validator.Validate, log *logger.Logger) *LoginHandler {
	return &LoginHandler{
		userService: userService,
		sessions:    sessions,
		cfg:         cfg,
		validate:    validate,
		log:         log,
	}
}

type LoginRequestInternal struct {
	Nickname string `validate:"required,max=32"`
}

func (h *LoginHandler) Login(c *gin.Context) {
	nickname := c.PostForm("nickname")

	if err := h.validate.Struct(&LoginRequestInternal{Nickname: nickname}); err != nil {
		renderError(c, http.StatusBadRequest, "Nickname is required and must be at most 32 characters.")
		return
	}

	user, err := h.userService.LoginOrRegister(c.Request.Context(), nickname)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrValidationFailed):
			renderError(c, http.StatusBadRequest, "Nickname is required and must be at most 32 characters.")
		default:
			renderError(c, http.StatusInternalServerError, "Failed to log in.")
		}
		return
	}

	sessionID, err := h.sessions.Create(c.Request.Context(), user)
	if err != nil {
		h.log.Error("Failed to create session",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()))
		renderError(c, http.StatusInternalServerError, "Failed to log in.")
		return
	}

	c.SetCookie(h.cfg.CookieName, sessionID, int(h.cfg.TTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/posts")
}
