package cache

import (
	"context"

	"lostnfound-board/internal/model"
)

type PostCache interface {
	GetPost(ctx context.Context, postID int64) (*model.PostDetailed, error)
	SetPost(ctx context.Context, post *model.PostDetailed) error
	DeletePost(ctx context.Context, postID int64) error
	DeleteAllPosts(ctx context.Context) error
	GetPostList(ctx context.Context) ([]*model.PostDetailed, error)
	SetPostList(ctx context.Context, posts []*model.PostDetailed) error
	DeletePostList(ctx context.Context) error
}
