package post_service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
	"lostnfound-board/internal/model"
	comment_repository_mock "lostnfound-board/mocks/comment"
	post_repository_mock "lostnfound-board/mocks/post"
	postgres_mock "lostnfound-board/mocks/postgres"
	storage_mock "lostnfound-board/mocks/storage"
	user_repository_mock "lostnfound-board/mocks/user"
)

const testSweepMaxAge = 30 * 24 * time.Hour

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }

func TestPostService_CreatePost(t *testing.T) {
	log := logger.New("test")
	type args struct {
		ctx  context.Context
		post *model.CreatePostDTO
	}
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository, uow *postgres_mock.UnitOfWork, uploads *storage_mock.Store, tx *postgres_mock.Transaction)
		args        args
		want        *model.PostDetailed
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository, uow *postgres_mock.UnitOfWork, uploads *storage_mock.Store, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				tx.On("UserRepository").Return(userRepo)
				userRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, Nickname: "finder"}, nil)
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(&model.Post{ID: 1, Title: "Lost umbrella", Status: model.PostStatusOpen, AuthorID: int64Ptr(1)}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			args: args{
				ctx: context.Background(),
				post: &model.CreatePostDTO{
					AuthorID:    int64Ptr(1),
					Title:       "Lost umbrella",
					Description: strPtr("Black umbrella, left in room 301"),
				},
			},
			want: &model.PostDetailed{
				Post:     &model.Post{ID: 1, Title: "Lost umbrella", Status: model.PostStatusOpen, AuthorID: int64Ptr(1)},
				Author:   &model.User{ID: 1, Nickname: "finder"},
				Comments: []*model.CommentDetailed{},
			},
			wantErr: false,
		},
		{
			name: "Success anonymous with image",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository, uow *postgres_mock.UnitOfWork, uploads *storage_mock.Store, tx *postgres_mock.Transaction) {
				uploads.On("Save", mock.Anything, "wallet.png", mock.Anything).Return("uploads/abc_wallet.png", nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				tx.On("UserRepository").Return(userRepo)
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(&model.Post{ID: 2, Title: "Found wallet", Status: model.PostStatusOpen, ImagePath: strPtr("uploads/abc_wallet.png")}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			args: args{
				ctx: context.Background(),
				post: &model.CreatePostDTO{
					Title: "Found wallet",
					Image: &model.UploadInput{Filename: "wallet.png", Data: strings.NewReader("png-bytes")},
				},
			},
			want: &model.PostDetailed{
				Post:     &model.Post{ID: 2, Title: "Found wallet", Status: model.PostStatusOpen, ImagePath: strPtr("uploads/abc_wallet.png")},
				Comments: []*model.CommentDetailed{},
			},
			wantErr: false,
		},
		{
			name:  "Empty title",
			mocks: nil,
			args: args{
				ctx:  context.Background(),
				post: &model.CreatePostDTO{Title: "   "},
			},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrValidationFailed,
		},
		{
			name:  "Title too long",
			mocks: nil,
			args: args{
				ctx:  context.Background(),
				post: &model.CreatePostDTO{Title: strings.Repeat("a", 101)},
			},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrValidationFailed,
		},
		{
			name: "Invalid image type",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository, uow *postgres_mock.UnitOfWork, uploads *storage_mock.Store, tx *postgres_mock.Transaction) {
				uploads.On("Save", mock.Anything, "report.exe", mock.Anything).Return("", custom_errors.ErrInvalidFileType)
			},
			args: args{
				ctx: context.Background(),
				post: &model.CreatePostDTO{
					Title: "Found wallet",
					Image: &model.UploadInput{Filename: "report.exe", Data: strings.NewReader("mz")},
				},
			},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidFileType,
		},
		{
			name: "Author not found",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository, uow *postgres_mock.UnitOfWork, uploads *storage_mock.Store, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				tx.On("UserRepository").Return(userRepo)
				userRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, custom_errors.ErrUserNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			args: args{
				ctx: context.Background(),
				post: &model.CreatePostDTO{
					AuthorID: int64Ptr(99),
					Title:    "Lost umbrella",
				},
			},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrUserNotFound,
		},
		{
			name: "Transaction begin error",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository, uow *postgres_mock.UnitOfWork, uploads *storage_mock.Store, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(nil, errors.New("db error"))
			},
			args: args{
				ctx:  context.Background(),
				post: &model.CreatePostDTO{Title: "Lost umbrella"},
			},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
		{
			name: "Error creating post removes orphaned upload",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository, uow *postgres_mock.UnitOfWork, uploads *storage_mock.Store, tx *postgres_mock.Transaction) {
				uploads.On("Save", mock.Anything, "wallet.png", mock.Anything).Return("uploads/abc_wallet.png", nil)
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				tx.On("UserRepository").Return(userRepo)
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(nil, errors.New("insert failed"))
				tx.On("Rollback", mock.Anything).Return(nil)
				uploads.On("Remove", mock.Anything, "uploads/abc_wallet.png").Return(nil)
			},
			args: args{
				ctx: context.Background(),
				post: &model.CreatePostDTO{
					Title: "Found wallet",
					Image: &model.UploadInput{Filename: "wallet.png", Data: strings.NewReader("png-bytes")},
				},
			},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
		{
			name: "Commit error",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository, uow *postgres_mock.UnitOfWork, uploads *storage_mock.Store, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				tx.On("UserRepository").Return(userRepo)
				postRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Post")).Return(&model.Post{ID: 1, Title: "Lost umbrella"}, nil)
				tx.On("Commit", mock.Anything).Return(errors.New("commit failed"))
				tx.On("Rollback", mock.Anything).Return(errors.New("tx is closed"))
			},
			args: args{
				ctx:  context.Background(),
				post: &model.CreatePostDTO{Title: "Lost umbrella"},
			},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			commentRepo := new(comment_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			uploads := new(storage_mock.Store)
			tx := new(postgres_mock.Transaction)

			if tt.mocks != nil {
				tt.mocks(postRepo, userRepo, uow, uploads, tx)
			}

			s := NewPostService(postRepo, commentRepo, userRepo, uow, uploads, testSweepMaxAge, log)
			got, err := s.CreatePost(tt.args.ctx, tt.args.post)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %v, got %v", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			postRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			uploads.AssertExpectations(t)
			tx.AssertExpectations(t)
		})
	}
}

func TestPostService_GetPostByID(t *testing.T) {
	log := logger.New("test")
	type args struct {
		ctx    context.Context
		postID int64
	}
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository, commentRepo *comment_repository_mock.Repository, userRepo *user_repository_mock.Repository)
		args        args
		want        *model.PostDetailed
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success with comments",
			mocks: func(postRepo *post_repository_mock.Repository, commentRepo *comment_repository_mock.Repository, userRepo *user_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, Title: "Lost umbrella", Status: model.PostStatusOpen, AuthorID: int64Ptr(1)}, nil)
				userRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, Nickname: "finder"}, nil).Once()
				commentRepo.On("GetByPost", mock.Anything, int64(1)).Return([]*model.Comment{
					{ID: 10, PostID: 1, AuthorID: int64Ptr(1), Content: "Still looking"},
					{ID: 11, PostID: 1, Content: "Saw it near the gym"},
				}, nil)
			},
			args: args{ctx: context.Background(), postID: 1},
			want: &model.PostDetailed{
				Post:   &model.Post{ID: 1, Title: "Lost umbrella", Status: model.PostStatusOpen, AuthorID: int64Ptr(1)},
				Author: &model.User{ID: 1, Nickname: "finder"},
				Comments: []*model.CommentDetailed{
					{Comment: &model.Comment{ID: 10, PostID: 1, AuthorID: int64Ptr(1), Content: "Still looking"}, Author: &model.User{ID: 1, Nickname: "finder"}},
					{Comment: &model.Comment{ID: 11, PostID: 1, Content: "Saw it near the gym"}},
				},
			},
			wantErr: false,
		},
		{
			name: "Dangling author resolves to anonymous",
			mocks: func(postRepo *post_repository_mock.Repository, commentRepo *comment_repository_mock.Repository, userRepo *user_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(2)).Return(&model.Post{ID: 2, Title: "Found keys", Status: model.PostStatusOpen, AuthorID: int64Ptr(7)}, nil)
				userRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, custom_errors.ErrUserNotFound).Once()
				commentRepo.On("GetByPost", mock.Anything, int64(2)).Return([]*model.Comment{}, nil)
			},
			args: args{ctx: context.Background(), postID: 2},
			want: &model.PostDetailed{
				Post:     &model.Post{ID: 2, Title: "Found keys", Status: model.PostStatusOpen, AuthorID: int64Ptr(7)},
				Comments: []*model.CommentDetailed{},
			},
			wantErr: false,
		},
		{
			name: "Post not found",
			mocks: func(postRepo *post_repository_mock.Repository, commentRepo *comment_repository_mock.Repository, userRepo *user_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrPostNotFound)
			},
			args:        args{ctx: context.Background(), postID: 404},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Comments query error",
			mocks: func(postRepo *post_repository_mock.Repository, commentRepo *comment_repository_mock.Repository, userRepo *user_repository_mock.Repository) {
				postRepo.On("GetByID", mock.Anything, int64(3)).Return(&model.Post{ID: 3, Title: "Lost cat", Status: model.PostStatusOpen}, nil)
				commentRepo.On("GetByPost", mock.Anything, int64(3)).Return(nil, errors.New("query failed"))
			},
			args:        args{ctx: context.Background(), postID: 3},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			commentRepo := new(comment_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			uploads := new(storage_mock.Store)

			if tt.mocks != nil {
				tt.mocks(postRepo, commentRepo, userRepo)
			}

			s := NewPostService(postRepo, commentRepo, userRepo, uow, uploads, testSweepMaxAge, log)
			got, err := s.GetPostByID(tt.args.ctx, tt.args.postID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %v, got %v", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			postRepo.AssertExpectations(t)
			commentRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_ListPosts(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository)
		want        []*model.PostDetailed
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success with shared author looked up once",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository) {
				postRepo.On("List", mock.Anything).Return([]*model.Post{
					{ID: 2, Title: "Found keys", Status: model.PostStatusOpen, AuthorID: int64Ptr(1)},
					{ID: 1, Title: "Lost umbrella", Status: model.PostStatusUrgent, AuthorID: int64Ptr(1)},
				}, nil)
				userRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.User{ID: 1, Nickname: "finder"}, nil).Once()
			},
			want: []*model.PostDetailed{
				{Post: &model.Post{ID: 2, Title: "Found keys", Status: model.PostStatusOpen, AuthorID: int64Ptr(1)}, Author: &model.User{ID: 1, Nickname: "finder"}},
				{Post: &model.Post{ID: 1, Title: "Lost umbrella", Status: model.PostStatusUrgent, AuthorID: int64Ptr(1)}, Author: &model.User{ID: 1, Nickname: "finder"}},
			},
			wantErr: false,
		},
		{
			name: "Empty board",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository) {
				postRepo.On("List", mock.Anything).Return([]*model.Post{}, nil)
			},
			want:    []*model.PostDetailed{},
			wantErr: false,
		},
		{
			name: "List error",
			mocks: func(postRepo *post_repository_mock.Repository, userRepo *user_repository_mock.Repository) {
				postRepo.On("List", mock.Anything).Return(nil, errors.New("query failed"))
			},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			commentRepo := new(comment_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			uploads := new(storage_mock.Store)

			if tt.mocks != nil {
				tt.mocks(postRepo, userRepo)
			}

			s := NewPostService(postRepo, commentRepo, userRepo, uow, uploads, testSweepMaxAge, log)
			got, err := s.ListPosts(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %v, got %v", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			postRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_MarkFound(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction)
		postID      int64
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, Title: "Lost umbrella", Status: model.PostStatusOpen}, nil)
				postRepo.On("UpdateStatus", mock.Anything, int64(1), model.PostStatusClosed).Return(nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			postID:  1,
			wantErr: false,
		},
		{
			name: "Urgent post can still be closed",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(2)).Return(&model.Post{ID: 2, Title: "Lost cat", Status: model.PostStatusUrgent}, nil)
				postRepo.On("UpdateStatus", mock.Anything, int64(2), model.PostStatusClosed).Return(nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			postID:  2,
			wantErr: false,
		},
		{
			name: "Already closed is a no-op",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(3)).Return(&model.Post{ID: 3, Title: "Found keys", Status: model.PostStatusClosed}, nil)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			postID:  3,
			wantErr: false,
		},
		{
			name: "Post not found",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrPostNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			postID:      404,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Transaction begin error",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(nil, errors.New("db error"))
			},
			postID:      1,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
		{
			name: "Update status error",
			mocks: func(postRepo *post_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, Title: "Lost umbrella", Status: model.PostStatusOpen}, nil)
				postRepo.On("UpdateStatus", mock.Anything, int64(1), model.PostStatusClosed).Return(errors.New("update failed"))
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			postID:      1,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			commentRepo := new(comment_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			uploads := new(storage_mock.Store)
			tx := new(postgres_mock.Transaction)

			if tt.mocks != nil {
				tt.mocks(postRepo, uow, tx)
			}

			s := NewPostService(postRepo, commentRepo, userRepo, uow, uploads, testSweepMaxAge, log)
			err := s.MarkFound(context.Background(), tt.postID)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %v, got %v", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
			}

			postRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
		})
	}
}

func TestPostService_AddComment(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository, commentRepo *comment_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction)
		comment     *model.CreateCommentDTO
		want        *model.Comment
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository, commentRepo *comment_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				tx.On("CommentRepository").Return(commentRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, Title: "Lost umbrella", Status: model.PostStatusOpen}, nil)
				commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(&model.Comment{ID: 10, PostID: 1, Content: "Saw it near the gym"}, nil)
				tx.On("Commit", mock.Anything).Return(nil)
			},
			comment: &model.CreateCommentDTO{PostID: 1, Content: "Saw it near the gym"},
			want:    &model.Comment{ID: 10, PostID: 1, Content: "Saw it near the gym"},
			wantErr: false,
		},
		{
			name:        "Empty content",
			mocks:       nil,
			comment:     &model.CreateCommentDTO{PostID: 1, Content: "   "},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrValidationFailed,
		},
		{
			name: "Post not found",
			mocks: func(postRepo *post_repository_mock.Repository, commentRepo *comment_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				tx.On("CommentRepository").Return(commentRepo)
				postRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrPostNotFound)
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			comment:     &model.CreateCommentDTO{PostID: 404, Content: "Anyone found it?"},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrPostNotFound,
		},
		{
			name: "Error creating comment",
			mocks: func(postRepo *post_repository_mock.Repository, commentRepo *comment_repository_mock.Repository, uow *postgres_mock.UnitOfWork, tx *postgres_mock.Transaction) {
				uow.On("Begin", mock.Anything).Return(tx, nil)
				tx.On("PostRepository").Return(postRepo)
				tx.On("CommentRepository").Return(commentRepo)
				postRepo.On("GetByID", mock.Anything, int64(1)).Return(&model.Post{ID: 1, Title: "Lost umbrella", Status: model.PostStatusOpen}, nil)
				commentRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil, errors.New("insert failed"))
				tx.On("Rollback", mock.Anything).Return(nil)
			},
			comment:     &model.CreateCommentDTO{PostID: 1, Content: "Saw it near the gym"},
			want:        nil,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			commentRepo := new(comment_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			uploads := new(storage_mock.Store)
			tx := new(postgres_mock.Transaction)

			if tt.mocks != nil {
				tt.mocks(postRepo, commentRepo, uow, tx)
			}

			s := NewPostService(postRepo, commentRepo, userRepo, uow, uploads, testSweepMaxAge, log)
			got, err := s.AddComment(context.Background(), tt.comment)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %v, got %v", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			postRepo.AssertExpectations(t)
			commentRepo.AssertExpectations(t)
			uow.AssertExpectations(t)
			tx.AssertExpectations(t)
		})
	}
}

func TestPostService_SweepExpired(t *testing.T) {
	log := logger.New("test")
	tests := []struct {
		name        string
		mocks       func(postRepo *post_repository_mock.Repository)
		want        int64
		wantErr     bool
		wantErrType error
	}{
		{
			name: "Success",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("SweepUrgent", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(3), nil)
			},
			want:    3,
			wantErr: false,
		},
		{
			name: "Nothing to sweep",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("SweepUrgent", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(0), nil)
			},
			want:    0,
			wantErr: false,
		},
		{
			name: "Sweep error",
			mocks: func(postRepo *post_repository_mock.Repository) {
				postRepo.On("SweepUrgent", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(0), errors.New("update failed"))
			},
			want:        0,
			wantErr:     true,
			wantErrType: custom_errors.ErrDatabaseQuery,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			postRepo := new(post_repository_mock.Repository)
			commentRepo := new(comment_repository_mock.Repository)
			userRepo := new(user_repository_mock.Repository)
			uow := new(postgres_mock.UnitOfWork)
			uploads := new(storage_mock.Store)

			if tt.mocks != nil {
				tt.mocks(postRepo)
			}

			s := NewPostService(postRepo, commentRepo, userRepo, uow, uploads, testSweepMaxAge, log)
			got, err := s.SweepExpired(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.True(t, errors.Is(err, tt.wantErrType), "expected error type %v, got %v", tt.wantErrType, err)
				}
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			postRepo.AssertExpectations(t)
		})
	}
}

func TestPostService_SweepExpired_CutoffWindow(t *testing.T) {
	log := logger.New("test")
	postRepo := new(post_repository_mock.Repository)
	commentRepo := new(comment_repository_mock.Repository)
	userRepo := new(user_repository_mock.Repository)
	uow := new(postgres_mock.UnitOfWork)
	uploads := new(storage_mock.Store)

	postRepo.On("SweepUrgent", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		expected := time.Now().UTC().Add(-testSweepMaxAge)
		diff := expected.Sub(cutoff)
		if diff < 0 {
			diff = -diff
		}
		return diff < time.Minute
	})).Return(int64(0), nil)

	s := NewPostService(postRepo, commentRepo, userRepo, uow, uploads, testSweepMaxAge, log)
	_, err := s.SweepExpired(context.Background())

	assert.NoError(t, err)
	postRepo.AssertExpectations(t)
}
