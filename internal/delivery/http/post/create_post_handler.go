package post_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/middleware"
	"lostnfound-board/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
	log         *logger.Logger
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate, log *logger.Logger) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
		log:         log,
	}
}

type CreatePostRequestInternal struct {
	Title       string `validate:"required,max=100"`
	Description string `validate:"omitempty,max=2000"`
}

func (h *CreatePostHandler) CreatePost(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")

	validationReq := &CreatePostRequestInternal{
		Title:       title,
		Description: description,
	}
	if err := h.validate.Struct(validationReq); err != nil {
		renderError(c, http.StatusBadRequest, "Title is required and must be at most 100 characters.")
		return
	}

	var image *model.UploadInput
	file, header, err := c.Request.FormFile("image")
	if err == nil && header.Filename != "" {
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				h.log.Warn("Failed to close upload", slog.String("error", closeErr.Error()))
			}
		}()
		image = &model.UploadInput{
			Filename: header.Filename,
			Data:     file,
		}
	}

	var descriptionPtr *string
	if description != "" {
		descriptionPtr = &description
	}

	postDTO := &model.CreatePostDTO{
		AuthorID:    middleware.SessionUserID(c),
		Title:       title,
		Description: descriptionPtr,
		Image:       image,
	}

	_, err = h.postService.CreatePost(c.Request.Context(), postDTO)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrValidationFailed):
			renderError(c, http.StatusBadRequest, "Title is required and must be at most 100 characters.")
		case errors.Is(err, custom_errors.ErrInvalidFileType):
			renderError(c, http.StatusBadRequest, "Image must be a jpg, jpeg, png, gif or webp file.")
		case errors.Is(err, custom_errors.ErrUserNotFound):
			renderError(c, http.StatusNotFound, "User not found.")
		case errors.Is(err, custom_errors.ErrUploadFailed):
			renderError(c, http.StatusInternalServerError, "Failed to store the image.")
		default:
			renderError(c, http.StatusInternalServerError, "Failed to create the post.")
		}
		return
	}

	c.Redirect(http.StatusFound, "/posts")
}
