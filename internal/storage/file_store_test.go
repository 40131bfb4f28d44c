package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lostnfound-board/internal/custom_errors"
	"lostnfound-board/internal/logger"
)

func TestFileStore_Save(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()

	tests := []struct {
		name        string
		filename    string
		content     string
		maxSize     int64
		wantErr     bool
		wantErrType error
	}{
		{
			name:     "Stores jpg upload",
			filename: "umbrella.jpg",
			content:  "fake-jpeg-bytes",
			maxSize:  1024,
			wantErr:  false,
		},
		{
			name:     "Extension check is case insensitive",
			filename: "umbrella.PNG",
			content:  "fake-png-bytes",
			maxSize:  1024,
			wantErr:  false,
		},
		{
			name:        "Rejects executable",
			filename:    "report.exe",
			content:     "mz",
			maxSize:     1024,
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidFileType,
		},
		{
			name:        "Rejects file without extension",
			filename:    "umbrella",
			content:     "bytes",
			maxSize:     1024,
			wantErr:     true,
			wantErrType: custom_errors.ErrInvalidFileType,
		},
		{
			name:        "Rejects oversize upload",
			filename:    "umbrella.jpg",
			content:     strings.Repeat("x", 32),
			maxSize:     16,
			wantErr:     true,
			wantErrType: custom_errors.ErrUploadFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			store, err := NewFileStore(dir, tt.maxSize, log)
			require.NoError(t, err)

			path, err := store.Save(ctx, tt.filename, strings.NewReader(tt.content))

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrType != nil {
					assert.ErrorIs(t, err, tt.wantErrType)
				}
				entries, readErr := os.ReadDir(dir)
				require.NoError(t, readErr)
				assert.Empty(t, entries, "rejected upload must not leave a file behind")
				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(path, dir))
			assert.True(t, strings.HasSuffix(path, filepath.Base(tt.filename)))

			stored, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, tt.content, string(stored))
		})
	}
}

func TestFileStore_Save_UniqueNames(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir, 1024, log)
	require.NoError(t, err)

	first, err := store.Save(ctx, "umbrella.jpg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save(ctx, "umbrella.jpg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestFileStore_Save_StripsDirectoryComponents(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir, 1024, log)
	require.NoError(t, err)

	path, err := store.Save(ctx, "../../etc/passwd.png", strings.NewReader("bytes"))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path), "stored file must stay inside the uploads directory")
}

func TestFileStore_Remove(t *testing.T) {
	log := logger.New("test")
	ctx := context.Background()
	dir := t.TempDir()

	store, err := NewFileStore(dir, 1024, log)
	require.NoError(t, err)

	path, err := store.Save(ctx, "umbrella.jpg", strings.NewReader("bytes"))
	require.NoError(t, err)

	err = store.Remove(ctx, path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	err = store.Remove(ctx, path)
	assert.Error(t, err)
}
