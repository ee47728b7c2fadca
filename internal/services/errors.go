package services

import "errors"

var (
	ErrPostNotFound   = errors.New("post not found")
	ErrDuplicateTitle = errors.New("a post with this title already exists")
)
