package auth_http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lostnfound-board/internal/config"
	"lostnfound-board/internal/logger"
	user_service "lostnfound-board/internal/service/user"
	"lostnfound-board/internal/session"
)

var validate = validator.New()

type AuthHTTPService struct {
	loginHandler  *LoginHandler
	logoutHandler *LogoutHandler
}

func NewAuthHTTPService(userService user_service.Service, sessions session.Store, cfg config.Session, log *logger.Logger) *AuthHTTPService {
	return &AuthHTTPService{
		loginHandler:  NewLoginHandler(userService, sessions, cfg, validate, log),
		logoutHandler: NewLogoutHandler(sessions, cfg, log),
	}
}

func (s *AuthHTTPService) Login(c *gin.Context) {
	s.loginHandler.Login(c)
}

func (s *AuthHTTPService) Logout(c *gin.Context) {
	s.logoutHandler.Logout(c)
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"message": message})
}
