package session

import (
	"context"

	"lostnfound-board/internal/model"
)

// Session is the identity bound to a browser after login.
type Session struct {
	UserID   int64  `json:"user_id"`
	Nickname string `json:"nickname"`
}

type Store interface {
	Create(ctx context.Context, user *model.User) (string, error)
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
