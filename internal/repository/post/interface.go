package post_repository

import (
	"context"
	"time"

	"lostnfound-board/internal/model"
)

type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	List(ctx context.Context) ([]*model.Post, error)
	UpdateStatus(ctx context.Context, id int64, status model.PostStatus) error
	SweepUrgent(ctx context.Context, cutoff time.Time) (int64, error)
	Delete(ctx context.Context, id int64) error
}
