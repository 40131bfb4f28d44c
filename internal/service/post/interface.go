package post_service

import (
	"context"

	"lostnfound-board/internal/model"
)

type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	ListPosts(ctx context.Context) ([]*model.PostDetailed, error)
	MarkFound(ctx context.Context, id int64) error
	AddComment(ctx context.Context, comment *model.CreateCommentDTO) (*model.Comment, error)
	SweepExpired(ctx context.Context) (int64, error)
}
