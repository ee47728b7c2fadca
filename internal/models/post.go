package models

import "time"

// Post represents a published blog post.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle"`
	Date       string    `json:"date"` // Display date, e.g. "August 31, 2026"
	Body       string    `json:"body"`
	ImgURL     string    `json:"imgUrl"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName"`
	CreatedAt  time.Time `json:"createdAt"`
}
