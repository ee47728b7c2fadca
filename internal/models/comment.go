package models

import "time"

// Comment is a reader comment attached to a post.
type Comment struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"postId"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	AuthorPic  string    `json:"authorPic"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}
