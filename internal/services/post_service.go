package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/evmarsh/blogforge-be/internal/models"
)

// postDateLayout is the human-readable date stamped on a post at creation.
const postDateLayout = "January 2, 2006"

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	GetAllPosts(ctx context.Context) ([]models.Post, error)
	GetPostByID(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, title, subtitle, body, imgURL string, authorID int64) (models.Post, error)
	UpdatePost(ctx context.Context, id int64, title, subtitle, body, imgURL string, authorID int64) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// PostService provides business logic for blog posts.
type PostService struct {
	db *sql.DB
}

// NewPostService creates a new PostService.
func NewPostService(db *sql.DB) *PostService {
	return &PostService{db: db}
}

const postColumns = `p.id, p.title, p.subtitle, p.date, p.body, p.img_url, p.author_id, u.name, p.created_at`

// GetAllPosts lists every post, newest first.
func (s *PostService) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+postColumns+" FROM posts p JOIN users u ON u.id = p.author_id ORDER BY p.id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Date, &post.Body,
			&post.ImgURL, &post.AuthorID, &post.AuthorName, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetPostByID retrieves a single post.
func (s *PostService) GetPostByID(ctx context.Context, id int64) (models.Post, error) {
	var post models.Post
	row := s.db.QueryRowContext(ctx,
		"SELECT "+postColumns+" FROM posts p JOIN users u ON u.id = p.author_id WHERE p.id = ?", id)
	err := row.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Date, &post.Body,
		&post.ImgURL, &post.AuthorID, &post.AuthorName, &post.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Post{}, ErrPostNotFound
		}
		return models.Post{}, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// CreatePost publishes a new post, stamping it with today's display date.
func (s *PostService) CreatePost(ctx context.Context, title, subtitle, body, imgURL string, authorID int64) (models.Post, error) {
	date := time.Now().Format(postDateLayout)

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO posts(title, subtitle, date, body, img_url, author_id) VALUES(?, ?, ?, ?, ?, ?)",
		title, subtitle, date, body, imgURL, authorID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Post{}, ErrDuplicateTitle
		}
		return models.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to read new post id: %w", err)
	}

	return s.GetPostByID(ctx, id)
}

// UpdatePost edits an existing post. The original publication date is kept.
func (s *PostService) UpdatePost(ctx context.Context, id int64, title, subtitle, body, imgURL string, authorID int64) (models.Post, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE posts SET title = ?, subtitle = ?, body = ?, img_url = ?, author_id = ? WHERE id = ?",
		title, subtitle, body, imgURL, authorID, id)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Post{}, ErrDuplicateTitle
		}
		return models.Post{}, fmt.Errorf("failed to update post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return models.Post{}, ErrPostNotFound
	}

	return s.GetPostByID(ctx, id)
}

// DeletePost removes a post and, through the schema's cascade, its comments.
func (s *PostService) DeletePost(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}
	return nil
}
