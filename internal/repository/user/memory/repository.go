package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/model"
)

type UserRepository struct {
	log        *logger.Logger
	mu         sync.RWMutex
	users      map[int64]*model.User
	byNickname map[string]int64
	nextID     int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:        log,
		users:      make(map[int64]*model.User),
		byNickname: make(map[string]int64),
		nextID:     1,
	}
}

func (u *UserRepository) Create(ctx context.Context, nickname string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, exists := u.byNickname[nickname]; exists {
		u.log.Debug("Nickname already taken", slog.String("nickname", nickname))
		return nil, custom_errors.ErrNicknameTaken
	}

	newUser := &model.User{
		ID:        u.nextID,
		Nickname:  nickname,
		CreatedAt: pgtype.Timestamp{Time: time.Now().UTC(), Valid: true},
	}
	u.nextID++

	u.users[newUser.ID] = newUser
	u.byNickname[nickname] = newUser.ID

	result := *newUser
	return &result, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}

func (u *UserRepository) GetByNickname(ctx context.Context, nickname string) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	id, exists := u.byNickname[nickname]
	if !exists {
		u.log.Debug("User not found by nickname", slog.String("nickname", nickname))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *u.users[id]
	return &result, nil
}
