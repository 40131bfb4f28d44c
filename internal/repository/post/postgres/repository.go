package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/metrics"
	"lostnfound-board/internal/model"
	"lostnfound-board/internal/repository/postgres/db"
)

type PostRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metricsProvider metrics.Provider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metricsProvider}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	start := time.Now()
	now := pgtype.Timestamp{Time: time.Now().UTC(), Valid: true}

	args := pgx.NamedArgs{
		"title":       post.Title,
		"description": post.Description,
		"image_path":  post.ImagePath,
		"status":      model.PostStatusOpen,
		"author_id":   post.AuthorID,
		"created_at":  now,
	}

	query := `
		INSERT INTO posts (title, description, image_path, status, author_id, created_at)
		VALUES (@title, @description, @image_path, @status, @author_id, @created_at)
		RETURNING id, title, description, image_path, status, author_id, created_at`

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.Title,
		&createdPost.Description,
		&createdPost.ImagePath,
		&createdPost.Status,
		&createdPost.AuthorID,
		&createdPost.CreatedAt,
	)

	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_create", false)
		p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
		p.metrics.IncrementPostOperations("create", false)
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	p.metrics.RecordDatabaseQueryDuration("post_create", time.Since(start))
	p.metrics.IncrementPostOperations("create", true)
	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, title, description, image_path, status, author_id, created_at
				FROM posts WHERE id = @id`
	row := p.db.QueryRow(ctx, query, args)
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.ImagePath,
		&post.Status,
		&post.AuthorID,
		&post.CreatedAt,
	)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	p.metrics.RecordDatabaseQueryDuration("post_get_by_id", time.Since(start))
	return post, nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	start := time.Now()
	query := `SELECT id, title, description, image_path, status, author_id, created_at
				FROM posts ORDER BY created_at DESC`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error listing posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Description,
			&post.ImagePath,
			&post.Status,
			&post.AuthorID,
			&post.CreatedAt,
		)
		if err != nil {
			p.metrics.IncrementDatabaseQueries("post_list", false)
			p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
			p.log.Error("Error scanning post during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		p.metrics.IncrementDatabaseQueries("post_list", false)
		p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
		p.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_list", true)
	p.metrics.RecordDatabaseQueryDuration("post_list", time.Since(start))
	return posts, nil
}

func (p *PostRepository) UpdateStatus(ctx context.Context, id int64, status model.PostStatus) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id, "status": status}
	query := `UPDATE posts SET status = @status WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_update_status", false)
		p.metrics.RecordDatabaseQueryDuration("post_update_status", time.Since(start))
		p.metrics.IncrementPostOperations("update_status", false)
		p.log.Error("Error updating post status", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_update_status", true)
	p.metrics.RecordDatabaseQueryDuration("post_update_status", time.Since(start))
	if result.RowsAffected() == 0 {
		p.metrics.IncrementPostOperations("update_status", false)
		return custom_errors.ErrPostNotFound
	}
	p.metrics.IncrementPostOperations("update_status", true)
	return nil
}

func (p *PostRepository) SweepUrgent(ctx context.Context, cutoff time.Time) (int64, error) {
	start := time.Now()
	args := pgx.NamedArgs{
		"open":   model.PostStatusOpen,
		"urgent": model.PostStatusUrgent,
		"cutoff": pgtype.Timestamp{Time: cutoff.UTC(), Valid: true},
	}
	query := `UPDATE posts SET status = @urgent WHERE status = @open AND created_at <= @cutoff`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_sweep_urgent", false)
		p.metrics.RecordDatabaseQueryDuration("post_sweep_urgent", time.Since(start))
		p.metrics.IncrementPostOperations("sweep", false)
		p.log.Error("Error sweeping stale posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_sweep_urgent", true)
	p.metrics.RecordDatabaseQueryDuration("post_sweep_urgent", time.Since(start))
	p.metrics.IncrementPostOperations("sweep", true)
	return result.RowsAffected(), nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_delete", false)
		p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
		p.metrics.IncrementPostOperations("delete", false)
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	p.metrics.IncrementDatabaseQueries("post_delete", true)
	p.metrics.RecordDatabaseQueryDuration("post_delete", time.Since(start))
	if result.RowsAffected() == 0 {
		p.metrics.IncrementPostOperations("delete", false)
		return custom_errors.ErrPostNotFound
	}
	p.metrics.IncrementPostOperations("delete", true)
	return nil
}
