package user_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/model"
	user_repository "lostnfound-board/internal/repository/user"
)

const maxNicknameLength = 32

type UserService struct {
	userRepo user_repository.Repository
	log      *logger.Logger
}

func NewUserService(userRepo user_repository.Repository, log *logger.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		log:      log,
	}
}

// LoginOrRegister returns the user with the given nickname, creating it on
// first login. Two concurrent first logins race on the unique constraint;
// the loser re-reads the winner's row.
func (s *UserService) LoginOrRegister(ctx context.Context, nickname string) (*model.User, error) {
	nickname = strings.TrimSpace(nickname)
	if nickname == "" || len(nickname) > maxNicknameLength {
		s.log.Debug("Rejected invalid nickname", slog.Int("nickname_length", len(nickname)))
		return nil, custom_errors.ErrValidationFailed
	}

	user, err := s.userRepo.GetByNickname(ctx, nickname)
	if err == nil {
		s.log.Debug("Existing user logged in", slog.Int64("user_id", user.ID), slog.String("nickname", nickname))
		return user, nil
	}
	if !errors.Is(err, custom_errors.ErrUserNotFound) {
		s.log.Error("Failed to get user by nickname", slog.String("nickname", nickname), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	user, err = s.userRepo.Create(ctx, nickname)
	if err != nil {
		if errors.Is(err, custom_errors.ErrNicknameTaken) {
			user, err = s.userRepo.GetByNickname(ctx, nickname)
			if err != nil {
				s.log.Error("Failed to get user after nickname race", slog.String("nickname", nickname), slog.String("error", err.Error()))
				return nil, custom_errors.ErrDatabaseQuery
			}
			return user, nil
		}
		s.log.Error("Failed to create user", slog.String("nickname", nickname), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.log.Info("New user registered", slog.Int64("user_id", user.ID), slog.String("nickname", nickname))
	return user, nil
}
