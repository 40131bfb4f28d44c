package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"lostnfound-board/internal/cache"
	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/metrics"
	"lostnfound-board/internal/model"
)

type PostServiceCacheDecorator struct {
	service   Service
	postCache cache.PostCache
	log       *logger.Logger
	metrics   metrics.Provider
}

func NewPostServiceCacheDecorator(
	service Service,
	postCache cache.PostCache,
	log *logger.Logger,
	metricsProvider metrics.Provider,
) Service {
	return &PostServiceCacheDecorator{
		service:   service,
		postCache: postCache,
		log:       log,
		metrics:   metricsProvider,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	result, err := d.service.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := d.postCache.SetPost(ctx, result); err != nil {
		d.log.Warn("Failed to cache created post",
			slog.Int64("post_id", result.Post.ID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))

	d.invalidateList(ctx)

	return result, nil
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	cacheStart := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Post found in cache", slog.Int64("post_id", id))
		d.metrics.IncrementCacheHits()
		return cachedPost, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	post, err := d.service.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setCacheStart := time.Now()
	if err := d.postCache.SetPost(ctx, post); err != nil {
		d.log.Warn("Failed to cache post",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_set", time.Since(setCacheStart))

	return post, nil
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context) ([]*model.PostDetailed, error) {
	cacheStart := time.Now()
	cachedPosts, err := d.postCache.GetPostList(ctx)
	d.metrics.RecordCacheOperationDuration("post_list_get", time.Since(cacheStart))
	if err == nil {
		d.log.Debug("Post list found in cache", slog.Int("count", len(cachedPosts)))
		d.metrics.IncrementCacheHits()
		return cachedPosts, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post list from cache", slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	posts, err := d.service.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	setCacheStart := time.Now()
	if err := d.postCache.SetPostList(ctx, posts); err != nil {
		d.log.Warn("Failed to cache post list", slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_list_set", time.Since(setCacheStart))

	return posts, nil
}

func (d *PostServiceCacheDecorator) MarkFound(ctx context.Context, id int64) error {
	if err := d.service.MarkFound(ctx, id); err != nil {
		return err
	}

	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after mark found",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	d.invalidateList(ctx)

	return nil
}

func (d *PostServiceCacheDecorator) AddComment(ctx context.Context, comment *model.CreateCommentDTO) (*model.Comment, error) {
	result, err := d.service.AddComment(ctx, comment)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := d.postCache.DeletePost(ctx, comment.PostID); err != nil {
		d.log.Warn("Failed to invalidate post cache after comment",
			slog.Int64("post_id", comment.PostID),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	return result, nil
}

func (d *PostServiceCacheDecorator) SweepExpired(ctx context.Context) (int64, error) {
	swept, err := d.service.SweepExpired(ctx)
	if err != nil {
		return 0, err
	}

	// The sweep can touch any open post, so every cached entry is suspect.
	if swept > 0 {
		start := time.Now()
		if err := d.postCache.DeleteAllPosts(ctx); err != nil {
			d.log.Warn("Failed to invalidate post cache after sweep", slog.String("error", err.Error()))
		}
		d.metrics.RecordCacheOperationDuration("post_delete_all", time.Since(start))

		d.invalidateList(ctx)
	}

	return swept, nil
}

func (d *PostServiceCacheDecorator) invalidateList(ctx context.Context) {
	start := time.Now()
	if err := d.postCache.DeletePostList(ctx); err != nil {
		d.log.Warn("Failed to invalidate post list cache", slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_list_delete", time.Since(start))
}
