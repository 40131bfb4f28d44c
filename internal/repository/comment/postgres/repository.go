package comment_repository_postgres

import (
	"context"
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

type CommentRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewCommentRepository(db db.PgDB, log *logger.Logger, metricsProvider metrics.Provider) *CommentRepository {
	return &CommentRepository{db: db, log: log, metrics: metricsProvider}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	start := time.Now()
	now := pgtype.Timestamp{Time: time.Now().UTC(), Valid: true}

	args := pgx.NamedArgs{
		"post_id":    comment.PostID,
		"author_id":  comment.AuthorID,
		"content":    comment.Content,
		"created_at": now,
	}

	query := `
		INSERT INTO comments (post_id, author_id, content, created_at)
		VALUES (@post_id, @author_id, @content, @created_at)
		RETURNING id, post_id, author_id, content, created_at`

	var createdComment model.Comment
	err := c.db.QueryRow(ctx, query, args).Scan(
		&createdComment.ID,
		&createdComment.PostID,
		&createdComment.AuthorID,
		&createdComment.Content,
		&createdComment.CreatedAt,
	)

	if err != nil {
		c.metrics.IncrementDatabaseQueries("comment_create", false)
		c.metrics.RecordDatabaseQueryDuration("comment_create", time.Since(start))
		c.metrics.IncrementCommentOperations("create", false)
		c.log.Error("Error creating comment", slog.Int64("post_id", comment.PostID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.metrics.IncrementDatabaseQueries("comment_create", true)
	c.metrics.RecordDatabaseQueryDuration("comment_create", time.Since(start))
	c.metrics.IncrementCommentOperations("create", true)
	return &createdComment, nil
}

func (c *CommentRepository) GetByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	start := time.Now()
	args := pgx.NamedArgs{"post_id": postID}
	query := `SELECT id, post_id, author_id, content, created_at
				FROM comments WHERE post_id = @post_id ORDER BY created_at ASC, id ASC`

	rows, err := c.db.Query(ctx, query, args)
	if err != nil {
		c.metrics.IncrementDatabaseQueries("comment_get_by_post", false)
		c.metrics.RecordDatabaseQueryDuration("comment_get_by_post", time.Since(start))
		c.log.Error("Error getting comments by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var comments []*model.Comment
	for rows.Next() {
		var comment model.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.Content,
			&comment.CreatedAt,
		)
		if err != nil {
			c.metrics.IncrementDatabaseQueries("comment_get_by_post", false)
			c.metrics.RecordDatabaseQueryDuration("comment_get_by_post", time.Since(start))
			c.log.Error("Error scanning comment during GetByPost", slog.Int64("post_id", postID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		comments = append(comments, &comment)
	}

	if err = rows.Err(); err != nil {
		c.metrics.IncrementDatabaseQueries("comment_get_by_post", false)
		c.metrics.RecordDatabaseQueryDuration("comment_get_by_post", time.Since(start))
		c.log.Error("Error iterating rows during GetByPost", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	c.metrics.IncrementDatabaseQueries("comment_get_by_post", true)
	c.metrics.RecordDatabaseQueryDuration("comment_get_by_post", time.Since(start))
	return comments, nil
}
