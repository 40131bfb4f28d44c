package comment_repository

import (
	"context"

	"lostnfound-board/internal/model"
)

type Repository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
}
