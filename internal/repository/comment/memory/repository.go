package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/model"
)

type CommentRepository struct {
	log      *logger.Logger
	mu       sync.RWMutex
	comments map[int64]*model.Comment
	nextID   int64
}

func NewCommentRepository(log *logger.Logger) *CommentRepository {
	return &CommentRepository{
		log:      log,
		comments: make(map[int64]*model.Comment),
		nextID:   1,
	}
}

func (c *CommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	createdAt := comment.CreatedAt
	if !createdAt.Valid {
		createdAt = pgtype.Timestamp{Time: time.Now().UTC(), Valid: true}
	}

	newComment := &model.Comment{
		ID:        c.nextID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: createdAt,
	}
	c.nextID++

	c.comments[newComment.ID] = newComment

	result := *newComment
	return &result, nil
}

func (c *CommentRepository) GetByPost(ctx context.Context, postID int64) ([]*model.Comment, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var comments []*model.Comment
	for _, comment := range c.comments {
		if comment.PostID == postID {
			result := *comment
			comments = append(comments, &result)
		}
	}

	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Time.Equal(comments[j].CreatedAt.Time) {
			return comments[i].ID < comments[j].ID
		}
		return comments[i].CreatedAt.Time.Before(comments[j].CreatedAt.Time)
	})

	return comments, nil
}
