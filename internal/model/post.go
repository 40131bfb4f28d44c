package model

import "github.com/jackc/pgx/v5/pgtype"

type PostStatus string

const (
	PostStatusOpen   PostStatus = "open"
	PostStatusUrgent PostStatus = "urgent"
	PostStatusClosed PostStatus = "closed"
)

type Post struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	ImagePath   *string          `json:"image_path,omitempty"`
	Status      PostStatus       `json:"status"`
	AuthorID    *int64           `json:"author_id,omitempty"`
	CreatedAt   pgtype.Timestamp `json:"created_at"`
}
