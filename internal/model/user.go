package model

import "github.com/jackc/pgx/v5/pgtype"

type User struct {
	ID        int64            `json:"id"`
	Nickname  string           `json:"nickname"`
	CreatedAt pgtype.Timestamp `json:"created_at"`
}
