package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	redis_cache "lostnfound-board/internal/cache/redis"
	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/model"
)

const sessionKeyPrefix = "session:"

type RedisStore struct {
	client *redis_cache.Client
	log    *logger.Logger
	ttl    time.Duration
}

func NewRedisStore(client *redis_cache.Client, ttl time.Duration, log *logger.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (s *RedisStore) Create(ctx context.Context, user *model.User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user cannot be nil")
	}

	sessionID := uuid.NewString()
	sess := &Session{
		UserID:   user.ID,
		Nickname: user.Nickname,
	}

	if err := s.client.Set(ctx, s.getKey(sessionID), sess, s.ttl); err != nil {
		s.log.Error("Failed to store session",
			slog.Int64("user_id", user.ID),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	s.log.Debug("Session created",
		slog.Int64("user_id", user.ID),
		slog.Duration("ttl", s.ttl))
	return sessionID, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	var sess Session
	err := s.client.Get(ctx, s.getKey(sessionID), &sess)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			s.log.Debug("Session not found", slog.String("session_id", sessionID))
			return nil, custom_errors.ErrSessionNotFound
		}
		s.log.Error("Failed to get session",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Delete(ctx, s.getKey(sessionID)); err != nil {
		s.log.Error("Failed to delete session",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.log.Debug("Session deleted", slog.String("session_id", sessionID))
	return nil
}

func (s *RedisStore) getKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
