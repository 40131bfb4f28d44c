package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/middleware"
	"lostnfound-board/internal/model"
)

type PostLister interface {
	ListPosts(ctx context.Context) ([]*model.PostDetailed, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         *logger.Logger
}

func NewListPostsHandler(postService PostLister, log *logger.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListPostsHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		renderError(c, http.StatusInternalServerError, "Failed to load posts.")
		return
	}

	c.HTML(http.StatusOK, "posts.html", gin.H{
		"posts":    posts,
		"nickname": middleware.SessionNickname(c),
	})
}
