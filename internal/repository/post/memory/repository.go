package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/model"
)

type PostRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:    log,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	createdAt := post.CreatedAt
	if !createdAt.Valid {
		createdAt = pgtype.Timestamp{Time: time.Now().UTC(), Valid: true}
	}

	newPost := &model.Post{
		ID:          p.nextID,
		Title:       post.Title,
		Description: post.Description,
		ImagePath:   post.ImagePath,
		Status:      model.PostStatusOpen,
		AuthorID:    post.AuthorID,
		CreatedAt:   createdAt,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) List(ctx context.Context) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	posts := make([]*model.Post, 0, len(p.posts))
	for _, post := range p.posts {
		result := *post
		posts = append(posts, &result)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.Time.After(posts[j].CreatedAt.Time)
	})

	return posts, nil
}

func (p *PostRepository) UpdateStatus(ctx context.Context, id int64, status model.PostStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id during UpdateStatus", slog.Int64("id", id))
		return custom_errors.ErrPostNotFound
	}

	post.Status = status
	return nil
}

func (p *PostRepository) SweepUrgent(ctx context.Context, cutoff time.Time) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var swept int64
	for _, post := range p.posts {
		if post.Status == model.PostStatusOpen && !post.CreatedAt.Time.After(cutoff) {
			post.Status = model.PostStatusUrgent
			swept++
		}
	}

	return swept, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}
