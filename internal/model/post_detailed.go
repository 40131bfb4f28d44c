package model

type PostDetailed struct {
	Post     *Post              `json:"post,omitempty"`
	Author   *User              `json:"author,omitempty"`
	Comments []*CommentDetailed `json:"comments,omitempty"`
}

type CommentDetailed struct {
	Comment *Comment `json:"comment,omitempty"`
	Author  *User    `json:"author,omitempty"`
}
