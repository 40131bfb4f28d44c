package post_http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"lostnfound-board/internal/logger"
	post_service "lostnfound-board/internal/service/post"
)

var validate = validator.New()

type PostHTTPService struct {
	postService        post_service.Service
	log                *logger.Logger
	createPostHandler  *CreatePostHandler
	listPostsHandler   *ListPostsHandler
	getPostHandler     *GetPostHandler
	markFoundHandler   *MarkFoundHandler
	addCommentHandler  *AddCommentHandler
}

func NewPostHTTPService(postService post_service.Service, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		postService:       postService,
		log:               log,
		createPostHandler: NewCreatePostHandler(postService, validate, log),
		listPostsHandler:  NewListPostsHandler(postService, log),
		getPostHandler:    NewGetPostHandler(postService, validate, log),
		markFoundHandler:  NewMarkFoundHandler(postService, validate, log),
		addCommentHandler: NewAddCommentHandler(postService, validate, log),
	}
}

func (s *PostHTTPService) CreatePost(c *gin.Context) {
	s.createPostHandler.CreatePost(c)
}

func (s *PostHTTPService) ListPosts(c *gin.Context) {
	s.listPostsHandler.ListPosts(c)
}

func (s *PostHTTPService) GetPost(c *gin.Context) {
	s.getPostHandler.GetPost(c)
}

func (s *PostHTTPService) MarkFound(c *gin.Context) {
	s.markFoundHandler.MarkFound(c)
}

func (s *PostHTTPService) AddComment(c *gin.Context) {
	s.addCommentHandler.AddComment(c)
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"message": message})
}
