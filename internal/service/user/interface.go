package user_service

import (
	"context"

	"lostnfound-board/internal/model"
)

type Service interface {
	LoginOrRegister(ctx context.Context, nickname string) (*model.User, error)
}
