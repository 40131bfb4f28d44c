package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
)

var validExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type Store interface {
	Save(ctx context.Context, filename string, data io.Reader) (string, error)
	Remove(ctx context.Context, path string) error
}

// FileStore writes uploads under a fixed directory and returns the
// relative path recorded on the post.
type FileStore struct {
	dir     string
	maxSize int64
	log     *logger.Logger
}

func NewFileStore(dir string, maxSize int64, log *logger.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Error("Failed to create uploads directory",
			slog.String("dir", dir),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &FileStore{
		dir:     dir,
		maxSize: maxSize,
		log:     log,
	}, nil
}

func (f *FileStore) Save(ctx context.Context, filename string, data io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !validExtensions[ext] {
		f.log.Debug("Rejected upload with invalid extension",
			slog.String("filename", filename),
			slog.String("ext", ext))
		return "", custom_errors.ErrInvalidFileType
	}

	// filepath.Base strips any directory components a client may smuggle
	// into the filename.
	storedName := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filename))
	path := filepath.Join(f.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		f.log.Error("Failed to create upload file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return "", custom_errors.ErrUploadFailed
	}

	written, err := io.Copy(dst, io.LimitReader(data, f.maxSize+1))
	if closeErr := dst.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		f.log.Error("Failed to write upload file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		_ = os.Remove(path)
		return "", custom_errors.ErrUploadFailed
	}
	if written > f.maxSize {
		f.log.Debug("Rejected upload over size limit",
			slog.String("filename", filename),
			slog.Int64("max_size", f.maxSize))
		_ = os.Remove(path)
		return "", custom_errors.ErrUploadFailed
	}

	f.log.Debug("Upload stored",
		slog.String("filename", filename),
		slog.String("path", path),
		slog.Int64("bytes", written))
	return path, nil
}

func (f *FileStore) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		f.log.Error("Failed to remove upload file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to remove upload file: %w", err)
	}

	f.log.Debug("Upload removed", slog.String("path", path))
	return nil
}
