package model

import "io"

type CreatePostDTO struct {
	AuthorID    *int64       `json:"author_id,omitempty"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Image       *UploadInput `json:"-"`
}

type UploadInput struct {
	Filename string
	Data     io.Reader
}
