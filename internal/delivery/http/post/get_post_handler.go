package post_http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/middleware"
	"lostnfound-board/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
}

type GetPostHandler struct {
	postService PostGetter
	validate    *validator.Validate
	log         *logger.Logger
}

func NewGetPostHandler(postService PostGetter, validate *validator.Validate, log *logger.Logger) *GetPostHandler {
	return &GetPostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type GetPostRequestInternal struct {
	ID int64 `validate:"required,gt=0"`
}

func (h *GetPostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		renderError(c, http.StatusBadRequest, "Invalid post id.")
		return
	}

	if err := h.validate.Struct(&GetPostRequestInternal{ID: id}); err != nil {
		renderError(c, http.StatusBadRequest, "Invalid post id.")
		return
	}

	post, err := h.postService.GetPostByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			renderError(c, http.StatusNotFound, "Post not found.")
		default:
			renderError(c, http.StatusInternalServerError, "Failed to load the post.")
		}
		return
	}

	c.HTML(http.StatusOK, "post_detail.html", gin.H{
		"post":     post,
		"nickname": middleware.SessionNickname(c),
	})
}
