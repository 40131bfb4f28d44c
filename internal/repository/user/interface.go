package user_repository

import (
	"context"

	"lostnfound-board/internal/model"
)

type Repository interface {
	Create(ctx context.Context, nickname string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByNickname(ctx context.Context, nickname string) (*model.User, error)
}
