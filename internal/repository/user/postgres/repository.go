package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/metrics"
	"lostnfound-board/internal/model"
	"lostnfound-board/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewUserRepository(db db.PgDB, log *logger.Logger, metricsProvider metrics.Provider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metricsProvider}
}

func (u *UserRepository) Create(ctx context.Context, nickname string) (*model.User, error) {
	start := time.Now()
	now := pgtype.Timestamp{Time: time.Now().UTC(), Valid: true}

	args := pgx.NamedArgs{
		"nickname":   nickname,
		"created_at": now,
	}

	query := `
		INSERT INTO users (nickname, created_at)
		VALUES (@nickname, @created_at)
		RETURNING id, nickname, created_at`

	var createdUser model.User
	err := u.db.QueryRow(ctx, query, args).Scan(
		&createdUser.ID,
		&createdUser.Nickname,
		&createdUser.CreatedAt,
	)

	if err != nil {
		u.metrics.IncrementDatabaseQueries("user_create", false)
		u.metrics.RecordDatabaseQueryDuration("user_create", time.Since(start))
		u.metrics.IncrementUserOperations("create", false)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			u.log.Debug("Nickname already taken", slog.String("nickname", nickname))
			return nil, custom_errors.ErrNicknameTaken
		}
		u.log.Error("Error creating user", slog.String("nickname", nickname), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.metrics.IncrementDatabaseQueries("user_create", true)
	u.metrics.RecordDatabaseQueryDuration("user_create", time.Since(start))
	u.metrics.IncrementUserOperations("create", true)
	return &createdUser, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, nickname, created_at FROM users WHERE id = @id`
	row := u.db.QueryRow(ctx, query, args)
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Nickname,
		&user.CreatedAt,
	)
	if err != nil {
		u.metrics.IncrementDatabaseQueries("user_get_by_id", false)
		u.metrics.RecordDatabaseQueryDuration("user_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	u.metrics.IncrementDatabaseQueries("user_get_by_id", true)
	u.metrics.RecordDatabaseQueryDuration("user_get_by_id", time.Since(start))
	return user, nil
}

func (u *UserRepository) GetByNickname(ctx context.Context, nickname string) (*model.User, error) {
	start := time.Now()
	args := pgx.NamedArgs{"nickname": nickname}
	query := `SELECT id, nickname, created_at FROM users WHERE nickname = @nickname`
	row := u.db.QueryRow(ctx, query, args)
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Nickname,
		&user.CreatedAt,
	)
	if err != nil {
		u.metrics.IncrementDatabaseQueries("user_get_by_nickname", false)
		u.metrics.RecordDatabaseQueryDuration("user_get_by_nickname", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			u.log.Debug("User not found by nickname", slog.String("nickname", nickname), slog.String("error", err.Error()))
			return nil, custom_errors.ErrUserNotFound
		}
		u.log.Error("Error getting user by nickname", slog.String("nickname", nickname), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	u.metrics.IncrementDatabaseQueries("user_get_by_nickname", true)
	u.metrics.RecordDatabaseQueryDuration("user_get_by_nickname", time.Since(start))
	return user, nil
}
