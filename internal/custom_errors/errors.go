package custom_errors

import "errors"

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNicknameTaken = errors.New("nickname already taken")

	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidFileType  = errors.New("invalid file type")
	ErrUploadFailed     = errors.New("upload failed")

	ErrDatabaseQuery = errors.New("database query error")
	ErrDatabaseScan  = errors.New("database scan error")

	ErrCacheMiss       = errors.New("cache miss")
	ErrSessionNotFound = errors.New("session not found")
)
