package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"lostnfound-board/internal/config"
	auth_http "lostnfound-board/internal/delivery/http/auth"
	post_http "lostnfound-board/internal/delivery/http/post"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/metrics"
	"lostnfound-board/internal/middleware"
	"lostnfound-board/internal/session"
)

type Server struct {
	engine  *gin.Engine
	server  *http.Server
	address string
	port    int
	log     *logger.Logger
}

func NewServer(
	cfg *config.Config,
	postAPI *post_http.PostHTTPService,
	authAPI *auth_http.AuthHTTPService,
	sessions session.Store,
	log *logger.Logger,
	metricsProvider metrics.Provider,
) *Server {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(log, metricsProvider))
	engine.Use(middleware.SessionLoader(sessions, cfg.Session.CookieName, log))

	engine.SetFuncMap(template.FuncMap{
		"base": func(path *string) string {
			if path == nil {
				return ""
			}
			return filepath.Base(*path)
		},
	})
	engine.LoadHTMLGlob("web/templates/*.html")
	engine.Static("/static", "web/static")
	engine.Static("/uploads", cfg.Uploads.Dir)

	engine.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{"nickname": middleware.SessionNickname(c)})
	})
	engine.GET("/create", func(c *gin.Context) {
		c.HTML(http.StatusOK, "create.html", gin.H{"nickname": middleware.SessionNickname(c)})
	})
	engine.GET("/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"nickname": middleware.SessionNickname(c)})
	})
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/create", postAPI.CreatePost)
	engine.GET("/posts", postAPI.ListPosts)
	engine.POST("/complete/:post_id", postAPI.MarkFound)
	engine.GET("/post/:post_id", postAPI.GetPost)
	engine.POST("/post/:post_id/comment", postAPI.AddComment)

	engine.POST("/login", authAPI.Login)
	engine.GET("/logout", authAPI.Logout)

	return &Server{
		engine:  engine,
		address: cfg.HTTPServer.Address,
		port:    cfg.HTTPServer.Port,
		log:     log,
	}
}

func (s *Server) Run() error {
	address := fmt.Sprintf("%s:%d", s.address, s.port)
	s.server = &http.Server{
		Addr:    address,
		Handler: s.engine,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
