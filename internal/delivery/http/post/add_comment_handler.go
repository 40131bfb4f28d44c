package post_http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/middleware"
	"lostnfound-board/internal/model"
)

type CommentAdder interface {
	AddComment(ctx context.Context, comment *model.CreateCommentDTO) (*model.Comment, error)
}

type AddCommentHandler struct {
	postService CommentAdder
	validate    *validator.Validate
	log         *logger.Logger
}

func NewAddCommentHandler(postService CommentAdder, validate *validator.Validate, log *logger.Logger) *AddCommentHandler {
	return &AddCommentHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type AddCommentRequestInternal struct {
	PostID  int64  `validate:"required,gt=0"`
	Content string `validate:"required,max=2000"`
}

func (h *AddCommentHandler) AddComment(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		renderError(c, http.StatusBadRequest, "Invalid post id.")
		return
	}

	content := c.PostForm("content")

	validationReq := &AddCommentRequestInternal{
		PostID:  postID,
		Content: content,
	}
	if err := h.validate.Struct(validationReq); err != nil {
		renderError(c, http.StatusBadRequest, "Comment content is required.")
		return
	}

	commentDTO := &model.CreateCommentDTO{
		PostID:   postID,
		AuthorID: middleware.SessionUserID(c),
		Content:  content,
	}

	_, err = h.postService.AddComment(c.Request.Context(), commentDTO)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrValidationFailed):
			renderError(c, http.StatusBadRequest, "Comment content is required.")
		case errors.Is(err, custom_errors.ErrPostNotFound):
			renderError(c, http.StatusNotFound, "Post not found.")
		default:
			renderError(c, http.StatusInternalServerError, "Failed to add the comment.")
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/post/%d", postID))
}
