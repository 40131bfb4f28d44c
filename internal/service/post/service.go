package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/model"
	comment_repository "lostnfound-board/internal/repository/comment"
	post_repository "lostnfound-board/internal/repository/post"
	"lostnfound-board/internal/repository/postgres"
	user_repository "lostnfound-board/internal/repository/user"
	"lostnfound-board/internal/storage"
)

const maxTitleLength = 100

type PostService struct {
	postRepo    post_repository.Repository
	commentRepo comment_repository.Repository
	userRepo    user_repository.Repository
	uow         postgres.UnitOfWork
	uploads     storage.Store
	sweepMaxAge time.Duration
	log         *logger.Logger
}

func NewPostService(
	postRepo post_repository.Repository,
	commentRepo comment_repository.Repository,
	userRepo user_repository.Repository,
	uow postgres.UnitOfWork,
	uploads storage.Store,
	sweepMaxAge time.Duration,
	log *logger.Logger,
) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		userRepo:    userRepo,
		uow:         uow,
		uploads:     uploads,
		sweepMaxAge: sweepMaxAge,
		log:         log,
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (result *model.PostDetailed, err error) {
	title := strings.TrimSpace(post.Title)
	if title == "" || len(title) > maxTitleLength {
		s.log.Debug("Rejected post with invalid title", slog.Int("title_length", len(title)))
		return nil, custom_errors.ErrValidationFailed
	}

	var imagePath *string
	if post.Image != nil {
		path, uploadErr := s.uploads.Save(ctx, post.Image.Filename, post.Image.Data)
		if uploadErr != nil {
			if errors.Is(uploadErr, custom_errors.ErrInvalidFileType) {
				s.log.Debug("Rejected post with invalid image type", slog.String("filename", post.Image.Filename))
				return nil, custom_errors.ErrInvalidFileType
			}
			s.log.Error("Failed to store upload", slog.String("error", uploadErr.Error()))
			return nil, custom_errors.ErrUploadFailed
		}
		imagePath = &path
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		s.removeOrphanedUpload(ctx, imagePath)
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
			s.removeOrphanedUpload(ctx, imagePath)
		}
	}()

	postRepo := tx.PostRepository()
	userRepo := tx.UserRepository()

	var author *model.User
	if post.AuthorID != nil {
		author, err = userRepo.GetByID(ctx, *post.AuthorID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrUserNotFound) {
				s.log.Debug("Author not found when creating post", slog.Int64("author_id", *post.AuthorID))
				return nil, custom_errors.ErrUserNotFound
			}
			s.log.Error("Failed to get author", slog.String("error", err.Error()), slog.Int64("author_id", *post.AuthorID))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	newPost := &model.Post{
		Title:       title,
		Description: post.Description,
		ImagePath:   imagePath,
		AuthorID:    post.AuthorID,
	}
	createdPost, err := postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	postDetailed := &model.PostDetailed{
		Post:     createdPost,
		Author:   author,
		Comments: []*model.CommentDetailed{},
	}
	return postDetailed, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	authors := make(map[int64]*model.User)

	author, err := s.resolveAuthor(ctx, post.AuthorID, authors)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to get comments by post",
			slog.String("error", err.Error()),
			slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}

	commentsDetailed := make([]*model.CommentDetailed, 0, len(comments))
	for _, comment := range comments {
		commentAuthor, err := s.resolveAuthor(ctx, comment.AuthorID, authors)
		if err != nil {
			return nil, err
		}
		commentsDetailed = append(commentsDetailed, &model.CommentDetailed{
			Comment: comment,
			Author:  commentAuthor,
		})
	}

	postDetailed := &model.PostDetailed{
		Post:     post,
		Author:   author,
		Comments: commentsDetailed,
	}
	return postDetailed, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]*model.PostDetailed, error) {
	posts, err := s.postRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	authors := make(map[int64]*model.User)

	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		author, err := s.resolveAuthor(ctx, post.AuthorID, authors)
		if err != nil {
			return nil, err
		}
		result = append(result, &model.PostDetailed{
			Post:   post,
			Author: author,
		})
	}
	return result, nil
}

func (s *PostService) MarkFound(ctx context.Context, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()

	post, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for mark found", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for mark found", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	// Closed is terminal, marking again is a no-op.
	if post.Status == model.PostStatusClosed {
		s.log.Debug("Post already closed", slog.Int64("id", id))
		return nil
	}

	err = postRepo.UpdateStatus(ctx, id, model.PostStatusClosed)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for status update", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post status", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.log.Info("Post marked as found", slog.Int64("id", id))
	return nil
}

func (s *PostService) AddComment(ctx context.Context, comment *model.CreateCommentDTO) (result *model.Comment, err error) {
	content := strings.TrimSpace(comment.Content)
	if content == "" {
		s.log.Debug("Rejected comment with empty content", slog.Int64("post_id", comment.PostID))
		return nil, custom_errors.ErrValidationFailed
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil {
				if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
					s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
				} else {
					s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
				}
			}
		}
	}()

	postRepo := tx.PostRepository()
	commentRepo := tx.CommentRepository()

	_, err = postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found when adding comment", slog.Int64("post_id", comment.PostID))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for comment", slog.String("error", err.Error()), slog.Int64("post_id", comment.PostID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	newComment := &model.Comment{
		PostID:   comment.PostID,
		AuthorID: comment.AuthorID,
		Content:  content,
	}
	createdComment, err := commentRepo.Create(ctx, newComment)
	if err != nil {
		s.log.Error("Failed to create comment", slog.String("error", err.Error()), slog.Int64("post_id", comment.PostID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return createdComment, nil
}

func (s *PostService) SweepExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-s.sweepMaxAge)

	swept, err := s.postRepo.SweepUrgent(ctx, cutoff)
	if err != nil {
		s.log.Error("Failed to sweep stale posts", slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}

	if swept > 0 {
		s.log.Info("Swept stale posts to urgent", slog.Int64("count", swept))
	}
	return swept, nil
}

// resolveAuthor looks up an optional author, caching users across a single
// request. A dangling author reference degrades to anonymous instead of
// failing the whole read.
func (s *PostService) resolveAuthor(ctx context.Context, authorID *int64, cache map[int64]*model.User) (*model.User, error) {
	if authorID == nil {
		return nil, nil
	}
	if user, ok := cache[*authorID]; ok {
		return user, nil
	}

	user, err := s.userRepo.GetByID(ctx, *authorID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Author not found", slog.Int64("author_id", *authorID))
			cache[*authorID] = nil
			return nil, nil
		}
		s.log.Error("Failed to get author", slog.String("error", err.Error()), slog.Int64("author_id", *authorID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	cache[*authorID] = user
	return user, nil
}

func (s *PostService) removeOrphanedUpload(ctx context.Context, imagePath *string) {
	if imagePath == nil {
		return
	}
	if err := s.uploads.Remove(ctx, *imagePath); err != nil {
		s.log.Warn("Failed to remove orphaned upload", slog.String("path", *imagePath), slog.String("error", err.Error()))
	}
}
