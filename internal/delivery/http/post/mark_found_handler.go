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
)

type PostCloser interface {
	MarkFound(ctx context.Context, id int64) error
}

type MarkFoundHandler struct {
	postService PostCloser
	validate    *validator.Validate
	log         *logger.Logger
}

func NewMarkFoundHandler(postService PostCloser, validate *validator.Validate, log *logger.Logger) *MarkFoundHandler {
	return &MarkFoundHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type MarkFoundRequestInternal struct {
	ID int64 `validate:"required,gt=0"`
}

func (h *MarkFoundHandler) MarkFound(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		renderError(c, http.StatusBadRequest, "Invalid post id.")
		return
	}

	if err := h.validate.Struct(&MarkFoundRequestInternal{ID: id}); err != nil {
		renderError(c, http.StatusBadRequest, "Invalid post id.")
		return
	}

	if err := h.postService.MarkFound(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			renderError(c, http.StatusNotFound, "Post not found.")
		default:
			renderError(c, http.StatusInternalServerError, "Failed to mark the post as found.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/posts")
}
